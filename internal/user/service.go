package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reservalasala/room-booking-backend/internal/auth"
	"github.com/reservalasala/room-booking-backend/internal/role"
	"github.com/reservalasala/room-booking-backend/internal/sector"
	"github.com/reservalasala/room-booking-backend/internal/settings"
)

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Sector    string
	Role      string
	// AdminCode must match the stored secret when Role is the administrator
	// role; it is ignored otherwise.
	AdminCode string
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Sector    *string
	Role      *string
	IsActive  *bool
}

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*User, error)
	// Deactivate soft-deletes the account; its bookings remain.
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo            Repository
	hasher          auth.PasswordHasher
	roleService     role.Service
	sectorService   sector.Service
	settingsService settings.Service

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(
	repo Repository,
	hasher auth.PasswordHasher,
	roleService role.Service,
	sectorService sector.Service,
	settingsService settings.Service,
) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		roleService:       roleService,
		sectorService:     sectorService,
		settingsService:   settingsService,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(req.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, ErrNameRequired
	}

	if err := s.checkSector(ctx, req.Sector); err != nil {
		return nil, err
	}
	if err := s.checkRole(ctx, req.Role); err != nil {
		return nil, err
	}

	// Self-assigning the administrator role requires the shared secret code.
	if role.IsAdmin(req.Role) {
		ok, err := s.settingsService.VerifyAdminCode(ctx, req.AdminCode)
		if err != nil {
			return nil, fmt.Errorf("failed to verify admin code: %w", err)
		}
		if !ok {
			return nil, ErrBadAdminCode
		}
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        strings.TrimSpace(req.Phone),
		Sector:       req.Sector,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if !u.IsActive {
		return nil, ErrInactiveUser
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update must not block the login.
	now := time.Now().UTC()
	_ = s.repo.UpdateLastLogin(ctx, u.ID, now)

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, ErrNameRequired
		}
		u.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return nil, ErrNameRequired
		}
		u.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Sector != nil {
		if err := s.checkSector(ctx, *req.Sector); err != nil {
			return nil, err
		}
		u.Sector = *req.Sector
	}
	if req.Role != nil {
		if err := s.checkRole(ctx, *req.Role); err != nil {
			return nil, err
		}
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

// checkSector validates the sector name against the catalog. The catalog is
// a handful of rows, so a list scan beats a dedicated lookup query.
func (s *service) checkSector(ctx context.Context, name string) error {
	sectors, err := s.sectorService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sectors: %w", err)
	}
	for _, sec := range sectors {
		if sec.Name == name {
			return nil
		}
	}
	return ErrUnknownSector
}

func (s *service) checkRole(ctx context.Context, name string) error {
	roles, err := s.roleService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list roles: %w", err)
	}
	for _, r := range roles {
		if r.Name == name {
			return nil
		}
	}
	return ErrUnknownRole
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
