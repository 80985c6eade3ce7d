package user

import (
	"errors"
	"time"

	"github.com/reservalasala/room-booking-backend/internal/role"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrNameRequired       = errors.New("first and last name are required")
	ErrUnknownSector      = errors.New("unknown sector")
	ErrUnknownRole        = errors.New("unknown role")
	ErrBadAdminCode       = errors.New("invalid admin secret code")
)

// User represents an account in the system. Sector and Role hold the display
// names of the respective catalog entries, mirroring what the booking grid
// shows next to an owner's name.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Sector       string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return role.IsAdmin(u.Role)
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	Name     string
	Sector   string
	Role     string
	IsActive *bool // pointer to distinguish false from not set

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
