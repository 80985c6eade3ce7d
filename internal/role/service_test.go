package role

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	roles  []*Role
	nextID int
}

func (f *fakeRepository) Create(ctx context.Context, r *Role) error {
	for _, existing := range f.roles {
		if existing.Name == r.Name {
			return ErrNameTaken
		}
	}
	f.nextID++
	r.ID = fmt.Sprintf("role-%d", f.nextID)
	copied := *r
	f.roles = append(f.roles, &copied)
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (*Role, error) {
	for _, r := range f.roles {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) List(ctx context.Context) ([]*Role, error) {
	return f.roles, nil
}

func (f *fakeRepository) Update(ctx context.Context, r *Role) error {
	for i, existing := range f.roles {
		if existing.ID == r.ID {
			copied := *r
			f.roles[i] = &copied
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	for i, r := range f.roles {
		if r.ID == id {
			f.roles = append(f.roles[:i], f.roles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func seededService(t *testing.T) (Service, *fakeRepository) {
	t.Helper()

	repo := &fakeRepository{}
	svc := NewService(repo)
	require.NoError(t, svc.EnsureDefaults(context.Background()))
	return svc, repo
}

func findByName(t *testing.T, repo *fakeRepository, name string) *Role {
	t.Helper()

	for _, r := range repo.roles {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("role %q not found", name)
	return nil
}

func TestEnsureDefaults(t *testing.T) {
	svc, repo := seededService(t)

	require.Len(t, repo.roles, len(DefaultNames))
	for _, name := range DefaultNames {
		findByName(t, repo, name)
	}

	// Running again must not duplicate
	require.NoError(t, svc.EnsureDefaults(context.Background()))
	assert.Len(t, repo.roles, len(DefaultNames))
}

func TestAdminRoleIsProtected(t *testing.T) {
	ctx := context.Background()
	svc, repo := seededService(t)

	admin := findByName(t, repo, AdminName)
	other := findByName(t, repo, "Empleado")

	t.Run("rename admin rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, admin.ID, "Jefe")
		assert.ErrorIs(t, err, ErrProtected)
	})

	t.Run("delete admin rejected", func(t *testing.T) {
		err := svc.Delete(ctx, admin.ID)
		assert.ErrorIs(t, err, ErrProtected)
	})

	t.Run("other roles mutable", func(t *testing.T) {
		updated, err := svc.Update(ctx, other.ID, "Ventas")
		require.NoError(t, err)
		assert.Equal(t, "Ventas", updated.Name)

		assert.NoError(t, svc.Delete(ctx, other.ID))
	})
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(AdminName))
	assert.False(t, IsAdmin("Empleado"))
	assert.False(t, IsAdmin(""))
	// Exact match only
	assert.False(t, IsAdmin("administrador"))
}
