package models

// Role represents a user's role in the forum
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Grade represents a student's class level. Only grades 4 through 6 are enrolled.
type Grade int16

const (
	GradeFour Grade = 4
	GradeFive Grade = 5
	GradeSix  Grade = 6
)

// IsValid reports whether the grade is one of the enrolled class levels
func (g Grade) IsValid() bool {
	return g >= GradeFour && g <= GradeSix
}

// Identity is the authenticated caller attached to a request. It is resolved
// from the session by middleware and threaded explicitly through service calls
// instead of being read from ambient state.
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
