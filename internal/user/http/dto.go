package http

import (
	"time"

	"github.com/reservalasala/room-booking-backend/internal/user"
)

// UserTag is the minimal user reference embedded in other responses.
type UserTag struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Sector    string `json:"sector"`
}

type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	Sector      string     `json:"sector"`
	Role        string     `json:"role"`
	IsAdmin     bool       `json:"is_admin"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	var lastLoginAt *time.Time
	if u.LastLoginAt != nil {
		ll := *u.LastLoginAt
		lastLoginAt = &ll
	}

	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Sector:      u.Sector,
		Role:        u.Role,
		IsAdmin:     u.IsAdmin(),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: lastLoginAt,
	}
}

// RegisterRequest defines the payload for user registration. AdminCode is
// only required when registering with the administrator role.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Sector    string `json:"sector" binding:"required"`
	Role      string `json:"role" binding:"required"`
	AdminCode string `json:"admin_code"`
}

// Validate performs custom validation for RegisterRequest.
func (r *RegisterRequest) Validate() error {
	return nil
}

// LoginRequest defines the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Validate performs custom validation for LoginRequest.
func (r *LoginRequest) Validate() error {
	return nil
}

// UpdateUserRequest defines fields allowed to be updated via PATCH /users/:id.
// Use pointers to distinguish between "field not sent" and "field sent as false/empty".
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Sector    *string `json:"sector"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

// Validate performs custom validation for UpdateUserRequest.
func (r *UpdateUserRequest) Validate() error {
	return nil
}

// ListUsersRequest defines query parameters for listing users.
type ListUsersRequest struct {
	Email     string `form:"email"`
	Name      string `form:"name"`
	Sector    string `form:"sector"`
	Role      string `form:"role"`
	IsActive  *bool  `form:"is_active"`
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"omitempty,min=1,max=200"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=created_at email last_name last_login_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// Validate performs custom validation for ListUsersRequest.
func (r *ListUsersRequest) Validate() error {
	return nil
}

// LoginResponse returns the token and user info.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// MeResponse returns the current user info.
type MeResponse struct {
	User UserResponse `json:"user"`
}
