package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservalasala/room-booking-backend/internal/role"
	"github.com/reservalasala/room-booking-backend/internal/sector"
	"github.com/reservalasala/room-booking-backend/internal/settings"
)

type fakeRepository struct {
	users  []*User
	nextID int
}

func (f *fakeRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (*User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) Create(ctx context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now()
	copied := *u
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	for _, u := range f.users {
		if u.ID == id {
			stamp := t
			u.LastLoginAt = &stamp
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepository) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return f.users, len(f.users), nil
}

func (f *fakeRepository) Update(ctx context.Context, u *User) error {
	for i, existing := range f.users {
		if existing.ID == u.ID {
			copied := *u
			f.users[i] = &copied
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepository) Deactivate(ctx context.Context, id string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.IsActive = false
			return nil
		}
	}
	return ErrNotFound
}

// plainHasher avoids bcrypt cost in tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

type fakeRoleService struct {
	names []string
}

func (f *fakeRoleService) Create(ctx context.Context, name string) (*role.Role, error) {
	panic("not used")
}

func (f *fakeRoleService) GetByID(ctx context.Context, id string) (*role.Role, error) {
	panic("not used")
}

func (f *fakeRoleService) List(ctx context.Context) ([]*role.Role, error) {
	out := make([]*role.Role, len(f.names))
	for i, name := range f.names {
		out[i] = &role.Role{ID: fmt.Sprintf("role-%d", i), Name: name}
	}
	return out, nil
}

func (f *fakeRoleService) Update(ctx context.Context, id string, name string) (*role.Role, error) {
	panic("not used")
}

func (f *fakeRoleService) Delete(ctx context.Context, id string) error {
	panic("not used")
}

func (f *fakeRoleService) EnsureDefaults(ctx context.Context) error {
	panic("not used")
}

type fakeSectorService struct {
	names []string
}

func (f *fakeSectorService) Create(ctx context.Context, name string) (*sector.Sector, error) {
	panic("not used")
}

func (f *fakeSectorService) GetByID(ctx context.Context, id string) (*sector.Sector, error) {
	panic("not used")
}

func (f *fakeSectorService) List(ctx context.Context) ([]*sector.Sector, error) {
	out := make([]*sector.Sector, len(f.names))
	for i, name := range f.names {
		out[i] = &sector.Sector{ID: fmt.Sprintf("sector-%d", i), Name: name}
	}
	return out, nil
}

func (f *fakeSectorService) Update(ctx context.Context, id string, name string) (*sector.Sector, error) {
	panic("not used")
}

func (f *fakeSectorService) Delete(ctx context.Context, id string) error {
	panic("not used")
}

func (f *fakeSectorService) EnsureDefaults(ctx context.Context) error {
	panic("not used")
}

type fakeSettingsService struct {
	adminCode string
}

func (f *fakeSettingsService) Get(ctx context.Context) (*settings.Settings, error) {
	panic("not used")
}

func (f *fakeSettingsService) Update(ctx context.Context, req settings.UpdateRequest) (*settings.Settings, error) {
	panic("not used")
}

func (f *fakeSettingsService) SetImage(ctx context.Context, slot string, fileID string) error {
	panic("not used")
}

func (f *fakeSettingsService) VerifyAdminCode(ctx context.Context, code string) (bool, error) {
	return code == f.adminCode, nil
}

func (f *fakeSettingsService) EnsureDefaults(ctx context.Context, initialCode string) error {
	panic("not used")
}

func newTestService(t *testing.T) (Service, *fakeRepository) {
	t.Helper()

	repo := &fakeRepository{}
	svc := NewService(
		repo,
		plainHasher{},
		&fakeRoleService{names: role.DefaultNames},
		&fakeSectorService{names: sector.DefaultNames},
		&fakeSettingsService{adminCode: "secreto"},
	)
	return svc, repo
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Email:     "Ana.Lopez@example.com",
		Password:  "password123",
		FirstName: "Ana",
		LastName:  "López",
		Phone:     "555-0100",
		Sector:    "Sistemas",
		Role:      "Empleado",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email", func(t *testing.T) {
		svc, _ := newTestService(t)

		u, err := svc.Register(ctx, validRegister())
		require.NoError(t, err)

		assert.Equal(t, "ana.lopez@example.com", u.Email)
		assert.Equal(t, "hashed:password123", u.PasswordHash)
		assert.True(t, u.IsActive)
		assert.False(t, u.IsAdmin())
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Register(ctx, validRegister())
		require.NoError(t, err)

		req := validRegister()
		req.Email = "ANA.LOPEZ@example.com"
		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("short password", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRegister()
		req.Password = "short"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("blank names", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRegister()
		req.FirstName = "   "
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("unknown sector", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRegister()
		req.Sector = "Marketing"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrUnknownSector)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRegister()
		req.Role = "Gerente"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("admin role needs the secret code", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRegister()
		req.Role = role.AdminName

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrBadAdminCode)

		req.AdminCode = "wrong"
		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrBadAdminCode)

		req.AdminCode = "secreto"
		u, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T) (Service, *fakeRepository) {
		svc, repo := newTestService(t)
		_, err := svc.Register(ctx, validRegister())
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("success records last login", func(t *testing.T) {
		svc, repo := register(t)

		u, err := svc.Login(ctx, "ana.lopez@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "ana.lopez@example.com", u.Email)

		stored, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := register(t)

		_, err := svc.Login(ctx, "ana.lopez@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := register(t)

		_, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		svc, _ := register(t)

		u, err := svc.Login(ctx, "ana.lopez@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, svc.Deactivate(ctx, u.ID))

		_, err = svc.Login(ctx, "ana.lopez@example.com", "password123")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		svc, _ := newTestService(t)
		created, err := svc.Register(ctx, validRegister())
		require.NoError(t, err)

		phone := "555-0199"
		sectorName := "Legales"
		u, err := svc.Update(ctx, created.ID, UpdateRequest{
			Phone:  &phone,
			Sector: &sectorName,
		})
		require.NoError(t, err)

		assert.Equal(t, "555-0199", u.Phone)
		assert.Equal(t, "Legales", u.Sector)
		// Untouched fields survive
		assert.Equal(t, "Ana", u.FirstName)
	})

	t.Run("unknown sector rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		created, err := svc.Register(ctx, validRegister())
		require.NoError(t, err)

		bad := "Marketing"
		_, err = svc.Update(ctx, created.ID, UpdateRequest{Sector: &bad})
		assert.ErrorIs(t, err, ErrUnknownSector)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, _ := newTestService(t)

		phone := "555-0199"
		_, err := svc.Update(ctx, "user-404", UpdateRequest{Phone: &phone})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
