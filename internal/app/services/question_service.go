package services

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/filestorage"
	"github.com/kareemh/maarif/internal/pkg/imaging"
)

// QuestionService defines the interface for question operations
type QuestionService interface {
	Create(ctx context.Context, userID int64, req *dto.CreateQuestionRequest) (*models.Question, error)
	List(ctx context.Context, filter models.QuestionFilter) ([]*models.Question, int64, error)
	Get(ctx context.Context, id int64) (*models.Question, error)
	Delete(ctx context.Context, identity models.Identity, id int64) error
}

// questionServiceImpl implements QuestionService
type questionServiceImpl struct {
	questionStore QuestionStore
	processor     imaging.Processor
	storage       filestorage.Storage
	sanitizer     *bluemonday.Policy
	logger        zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	questionStore QuestionStore,
	processor imaging.Processor,
	storage filestorage.Storage,
	logger zerolog.Logger,
) QuestionService {
	return &questionServiceImpl{
		questionStore: questionStore,
		processor:     processor,
		storage:       storage,
		sanitizer:     bluemonday.StrictPolicy(),
		logger:        logger,
	}
}

// Create validates, sanitizes and stores a question. An attached image is
// decoded, resized and written to storage before the database row exists, so
// a failed insert can leak a file but never a row pointing at nothing.
func (s *questionServiceImpl) Create(ctx context.Context, userID int64, req *dto.CreateQuestionRequest) (*models.Question, error) {
	subject := strings.TrimSpace(s.sanitizer.Sanitize(req.Subject))
	if subject == "" {
		return nil, apperrors.NewValidationError("subject is required").WithField("subject")
	}
	content := strings.TrimSpace(s.sanitizer.Sanitize(req.Content))
	if content == "" {
		return nil, apperrors.NewValidationError("content is required").WithField("content")
	}

	var tags []string
	for _, tag := range req.Tags {
		tag = strings.TrimSpace(s.sanitizer.Sanitize(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	var imageURL *string
	if req.ImageData != "" {
		url, err := s.storeImage(req.ImageData)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	question := &models.Question{
		UserID:   userID,
		Subject:  subject,
		Content:  content,
		Tags:     tags,
		ImageURL: imageURL,
	}
	if err := s.questionStore.Create(ctx, question); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("questionId", question.ID).
		Int64("userId", userID).
		Str("subject", subject).
		Msg("Question created")
	return question, nil
}

// List returns a filtered, sorted page of questions with the total match count
func (s *questionServiceImpl) List(ctx context.Context, filter models.QuestionFilter) ([]*models.Question, int64, error) {
	return s.questionStore.List(ctx, filter)
}

// Get retrieves a question by id
func (s *questionServiceImpl) Get(ctx context.Context, id int64) (*models.Question, error) {
	return s.questionStore.GetByID(ctx, id)
}

// Delete removes a question with its full dependency tree. Admin only. The
// stored image file is cleaned up best-effort after the rows are gone.
func (s *questionServiceImpl) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if !identity.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	question, err := s.questionStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.questionStore.DeleteCascade(ctx, id); err != nil {
		return err
	}

	if question.ImageURL != nil {
		if err := s.storage.Remove(*question.ImageURL); err != nil {
			s.logger.Warn().Err(err).Str("imageUrl", *question.ImageURL).Msg("Failed to remove question image file")
		}
	}

	s.logger.Info().Int64("questionId", id).Int64("adminId", identity.UserID).Msg("Question deleted")
	return nil
}

func (s *questionServiceImpl) storeImage(imageData string) (string, error) {
	raw, err := imaging.DecodeBase64(imageData)
	if err != nil {
		return "", apperrors.NewValidationError("image data is not valid base64").WithField("imageData")
	}

	processed, err := s.processor.ResizeAndCompress(raw)
	if err != nil {
		return "", apperrors.NewValidationError("image data could not be decoded").WithField("imageData")
	}

	url, err := s.storage.SaveImage(processed)
	if err != nil {
		return "", err
	}
	return url, nil
}
