package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/helpers"
)

// memStore is an in-memory implementation of every store interface. Holding
// all tables in one struct lets the cascade methods mirror the transactional
// sweeps of the real repositories.
type memStore struct {
	users         map[int64]*models.User
	questions     map[int64]*models.Question
	answers       map[int64]*models.Answer
	ratings       map[[2]int64]bool // (answerID, userID)
	reports       map[int64]*models.Report
	favorites     [][2]int64 // (userID, questionID), in insertion order
	comments      map[int64]*models.Comment
	notifications map[int64]*models.Notification

	nextUser, nextQuestion, nextAnswer, nextReport, nextComment, nextNotification int64

	failNotifications bool
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[int64]*models.User),
		questions:     make(map[int64]*models.Question),
		answers:       make(map[int64]*models.Answer),
		ratings:       make(map[[2]int64]bool),
		reports:       make(map[int64]*models.Report),
		comments:      make(map[int64]*models.Comment),
		notifications: make(map[int64]*models.Notification),
	}
}

// --- UserStore ---

func (m *memStore) Create(ctx context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
	}
	m.nextUser++
	user.ID = m.nextUser
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *memStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memStore) List(ctx context.Context) ([]*models.User, error) {
	return m.sortedUsers(func(a, b *models.User) bool { return a.ID < b.ID }), nil
}

func (m *memStore) TopByHelpfulness(ctx context.Context, limit int) ([]*models.User, error) {
	users := m.sortedUsers(func(a, b *models.User) bool {
		if a.TotalHelpfulness != b.TotalHelpfulness {
			return a.TotalHelpfulness > b.TotalHelpfulness
		}
		return a.ID < b.ID
	})
	return truncate(users, limit), nil
}

func (m *memStore) TopByQuestions(ctx context.Context, limit int) ([]*models.User, error) {
	users := m.sortedUsers(func(a, b *models.User) bool {
		if a.QuestionsAsked != b.QuestionsAsked {
			return a.QuestionsAsked > b.QuestionsAsked
		}
		return a.ID < b.ID
	})
	return truncate(users, limit), nil
}

func (m *memStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memStore) DeleteCascade(ctx context.Context, userID int64) error {
	if _, ok := m.users[userID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for id, a := range m.answers {
		if a.UserID == userID {
			m.deleteAnswerRows(id)
		}
	}
	for id, q := range m.questions {
		if q.UserID == userID {
			m.deleteQuestionRows(id)
		}
	}
	for pair := range m.ratings {
		if pair[1] == userID {
			delete(m.ratings, pair)
		}
	}
	m.favorites = filterPairs(m.favorites, func(p [2]int64) bool { return p[0] != userID })
	for id, c := range m.comments {
		if c.UserID == userID {
			delete(m.comments, id)
		}
	}
	for id, r := range m.reports {
		if r.ReporterID == userID {
			delete(m.reports, id)
		}
	}
	for id, n := range m.notifications {
		if n.UserID == userID {
			delete(m.notifications, id)
		}
	}
	delete(m.users, userID)
	return nil
}

func (m *memStore) sortedUsers(less func(a, b *models.User) bool) []*models.User {
	users := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.SliceStable(users, func(i, j int) bool { return less(users[i], users[j]) })
	return users
}

// --- QuestionStore ---

type memQuestions struct{ *memStore }

func (m *memStore) Questions() *memQuestions { return &memQuestions{m} }

func (q *memQuestions) Create(ctx context.Context, question *models.Question) error {
	q.nextQuestion++
	question.ID = q.nextQuestion
	question.CreatedAt = time.Now()
	q.questions[question.ID] = question
	if owner, ok := q.users[question.UserID]; ok {
		owner.QuestionsAsked++
	}
	return nil
}

func (q *memQuestions) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	question, ok := q.questions[id]
	if !ok {
		return nil, apperrors.ErrQuestionNotFound
	}
	question.AnswerCount = q.answerCount(id)
	return question, nil
}

func (q *memQuestions) List(ctx context.Context, filter models.QuestionFilter) ([]*models.Question, int64, error) {
	var matched []*models.Question
	for _, question := range q.questions {
		if filter.Subject != nil && question.Subject != *filter.Subject {
			continue
		}
		if filter.Tag != nil && !contains(question.Tags, *filter.Tag) {
			continue
		}
		question.AnswerCount = q.answerCount(question.ID)
		matched = append(matched, question)
	}

	switch filter.Sort {
	case models.SortPopular:
		sort.SliceStable(matched, func(i, j int) bool {
			if matched[i].AnswerCount != matched[j].AnswerCount {
				return matched[i].AnswerCount > matched[j].AnswerCount
			}
			return matched[i].ID > matched[j].ID
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	}

	total := int64(len(matched))
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
	if int(offset) >= len(matched) {
		return nil, total, nil
	}
	end := int(offset) + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (q *memQuestions) DeleteCascade(ctx context.Context, id int64) error {
	if _, ok := q.questions[id]; !ok {
		return apperrors.ErrQuestionNotFound
	}
	q.deleteQuestionRows(id)
	return nil
}

func (q *memQuestions) answerCount(questionID int64) int {
	count := 0
	for _, a := range q.answers {
		if a.QuestionID == questionID {
			count++
		}
	}
	return count
}

// --- AnswerStore ---

type memAnswers struct{ *memStore }

func (m *memStore) Answers() *memAnswers { return &memAnswers{m} }

func (a *memAnswers) Create(ctx context.Context, answer *models.Answer) error {
	a.nextAnswer++
	answer.ID = a.nextAnswer
	answer.CreatedAt = time.Now()
	a.answers[answer.ID] = answer
	if owner, ok := a.users[answer.UserID]; ok {
		owner.AnswersGiven++
	}
	return nil
}

func (a *memAnswers) GetByID(ctx context.Context, id int64) (*models.Answer, error) {
	answer, ok := a.answers[id]
	if !ok {
		return nil, apperrors.ErrAnswerNotFound
	}
	return answer, nil
}

func (a *memAnswers) ListByQuestion(ctx context.Context, questionID int64) ([]*models.Answer, error) {
	var answers []*models.Answer
	for _, answer := range a.answers {
		if answer.QuestionID == questionID {
			answers = append(answers, answer)
		}
	}
	sort.SliceStable(answers, func(i, j int) bool {
		if answers[i].Rating != answers[j].Rating {
			return answers[i].Rating > answers[j].Rating
		}
		return answers[i].ID < answers[j].ID
	})
	return answers, nil
}

func (a *memAnswers) Rate(ctx context.Context, answerID, raterID int64) (*models.Answer, error) {
	answer, ok := a.answers[answerID]
	if !ok {
		return nil, apperrors.ErrAnswerNotFound
	}
	pair := [2]int64{answerID, raterID}
	if a.ratings[pair] {
		return nil, apperrors.ErrAlreadyRated
	}
	a.ratings[pair] = true
	answer.Rating++
	if owner, ok := a.users[answer.UserID]; ok {
		owner.TotalHelpfulness++
	}
	return answer, nil
}

func (a *memAnswers) DeleteCascade(ctx context.Context, id int64) error {
	if _, ok := a.answers[id]; !ok {
		return apperrors.ErrAnswerNotFound
	}
	a.deleteAnswerRows(id)
	return nil
}

// --- ReportStore ---

type memReports struct{ *memStore }

func (m *memStore) Reports() *memReports { return &memReports{m} }

func (r *memReports) Create(ctx context.Context, report *models.Report) error {
	r.nextReport++
	report.ID = r.nextReport
	report.CreatedAt = time.Now()
	r.reports[report.ID] = report
	return nil
}

func (r *memReports) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, apperrors.ErrReportNotFound
	}
	return report, nil
}

func (r *memReports) ListOpen(ctx context.Context) ([]*models.OpenReport, error) {
	var open []*models.OpenReport
	for _, report := range r.reports {
		if report.Resolved {
			continue
		}
		entry := &models.OpenReport{Report: *report}
		if reporter, ok := r.users[report.ReporterID]; ok {
			entry.ReporterName = reporter.Username
		}
		switch report.Kind {
		case models.ReportKindQuestion:
			if q, ok := r.questions[report.TargetID]; ok {
				entry.Content = q.Content
			}
		case models.ReportKindAnswer:
			if a, ok := r.answers[report.TargetID]; ok {
				entry.Content = a.Content
			}
		}
		open = append(open, entry)
	}
	sort.SliceStable(open, func(i, j int) bool { return open[i].ID > open[j].ID })
	return open, nil
}

func (r *memReports) Resolve(ctx context.Context, id int64) error {
	report, ok := r.reports[id]
	if !ok {
		return apperrors.ErrReportNotFound
	}
	report.Resolved = true
	return nil
}

func (r *memReports) ResolveAndDelete(ctx context.Context, report *models.Report) error {
	switch report.Kind {
	case models.ReportKindQuestion:
		if _, ok := r.questions[report.TargetID]; !ok {
			return apperrors.ErrQuestionNotFound
		}
		r.deleteQuestionRows(report.TargetID)
	case models.ReportKindAnswer:
		if _, ok := r.answers[report.TargetID]; !ok {
			return apperrors.ErrAnswerNotFound
		}
		r.deleteAnswerRows(report.TargetID)
	}
	if remaining, ok := r.reports[report.ID]; ok {
		remaining.Resolved = true
	}
	return nil
}

// --- FavoriteStore ---

type memFavorites struct{ *memStore }

func (m *memStore) Favorites() *memFavorites { return &memFavorites{m} }

func (f *memFavorites) Add(ctx context.Context, userID, questionID int64) (bool, error) {
	pair := [2]int64{userID, questionID}
	for _, existing := range f.favorites {
		if existing == pair {
			return false, nil
		}
	}
	f.favorites = append(f.favorites, pair)
	return true, nil
}

func (f *memFavorites) Remove(ctx context.Context, userID, questionID int64) (bool, error) {
	pair := [2]int64{userID, questionID}
	before := len(f.favorites)
	f.favorites = filterPairs(f.favorites, func(p [2]int64) bool { return p != pair })
	return len(f.favorites) < before, nil
}

func (f *memFavorites) Exists(ctx context.Context, userID, questionID int64) (bool, error) {
	pair := [2]int64{userID, questionID}
	for _, existing := range f.favorites {
		if existing == pair {
			return true, nil
		}
	}
	return false, nil
}

func (f *memFavorites) ListQuestions(ctx context.Context, userID int64) ([]*models.Question, error) {
	var questions []*models.Question
	// Most recently favorited first
	for i := len(f.favorites) - 1; i >= 0; i-- {
		if f.favorites[i][0] != userID {
			continue
		}
		if q, ok := f.questions[f.favorites[i][1]]; ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

// --- CommentStore ---

type memComments struct{ *memStore }

func (m *memStore) Comments() *memComments { return &memComments{m} }

func (c *memComments) Create(ctx context.Context, comment *models.Comment) error {
	c.nextComment++
	comment.ID = c.nextComment
	comment.CreatedAt = time.Now()
	c.comments[comment.ID] = comment
	return nil
}

func (c *memComments) ListByQuestion(ctx context.Context, questionID int64) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, comment := range c.comments {
		if comment.QuestionID == questionID {
			comments = append(comments, comment)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// --- NotificationStore ---

type memNotifications struct{ *memStore }

func (m *memStore) Notifications() *memNotifications { return &memNotifications{m} }

func (n *memNotifications) Create(ctx context.Context, notification *models.Notification) error {
	if n.failNotifications {
		return errors.New("notification store unavailable")
	}
	n.nextNotification++
	notification.ID = n.nextNotification
	notification.CreatedAt = time.Now()
	n.notifications[notification.ID] = notification
	return nil
}

func (n *memNotifications) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, notification := range n.notifications {
		if notification.UserID == userID {
			out = append(out, notification)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (n *memNotifications) MarkRead(ctx context.Context, id, userID int64) error {
	notification, ok := n.notifications[id]
	if !ok || notification.UserID != userID {
		return apperrors.ErrNotificationNotFound
	}
	notification.IsRead = true
	return nil
}

// --- shared cascade sweeps ---

func (m *memStore) deleteAnswerRows(answerID int64) {
	for pair := range m.ratings {
		if pair[0] == answerID {
			delete(m.ratings, pair)
		}
	}
	for id, r := range m.reports {
		if r.Kind == models.ReportKindAnswer && r.TargetID == answerID {
			delete(m.reports, id)
		}
	}
	for id, c := range m.comments {
		if c.AnswerID != nil && *c.AnswerID == answerID {
			delete(m.comments, id)
		}
	}
	delete(m.answers, answerID)
}

func (m *memStore) deleteQuestionRows(questionID int64) {
	for id, a := range m.answers {
		if a.QuestionID == questionID {
			m.deleteAnswerRows(id)
		}
	}
	for id, r := range m.reports {
		if r.Kind == models.ReportKindQuestion && r.TargetID == questionID {
			delete(m.reports, id)
		}
	}
	for id, c := range m.comments {
		if c.QuestionID == questionID {
			delete(m.comments, id)
		}
	}
	m.favorites = filterPairs(m.favorites, func(p [2]int64) bool { return p[1] != questionID })
	delete(m.questions, questionID)
}

// --- fakes for the image pipeline ---

type fakeProcessor struct {
	fail bool
	out  []byte
}

func (p *fakeProcessor) ResizeAndCompress(data []byte) ([]byte, error) {
	if p.fail {
		return nil, errors.New("not an image")
	}
	if p.out != nil {
		return p.out, nil
	}
	return data, nil
}

type fakeStorage struct {
	saved   [][]byte
	removed []string
	nextURL string
}

func (s *fakeStorage) SaveImage(data []byte) (string, error) {
	s.saved = append(s.saved, data)
	if s.nextURL != "" {
		return s.nextURL, nil
	}
	return "http://localhost:8080/uploads/test.jpg", nil
}

func (s *fakeStorage) Remove(url string) error {
	s.removed = append(s.removed, url)
	return nil
}

func seedUser(m *memStore, username string, role models.Role) *models.User {
	user := &models.User{Username: username, PasswordHash: "x", Grade: models.GradeFive, Role: role}
	if err := m.Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user
}

// --- small helpers ---

func truncate(users []*models.User, limit int) []*models.User {
	if limit >= 0 && len(users) > limit {
		return users[:limit]
	}
	return users
}

func filterPairs(pairs [][2]int64, keep func([2]int64) bool) [][2]int64 {
	out := pairs[:0]
	for _, p := range pairs {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
