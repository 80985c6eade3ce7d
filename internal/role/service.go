package role

import (
	"context"
	"strings"
)

type Service interface {
	Create(ctx context.Context, name string) (*Role, error)
	GetByID(ctx context.Context, id string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
	Update(ctx context.Context, id string, name string) (*Role, error)
	Delete(ctx context.Context, id string) error
	// EnsureDefaults seeds DefaultNames when the table is empty.
	EnsureDefaults(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	r := &Role{Name: name}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Role, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Role, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, name string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Renaming the administrator role would orphan every admin account.
	if IsAdmin(r.Name) {
		return nil, ErrProtected
	}

	r.Name = name
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if IsAdmin(r.Name) {
		return ErrProtected
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) EnsureDefaults(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, name := range DefaultNames {
		if err := s.repo.Create(ctx, &Role{Name: name}); err != nil {
			return err
		}
	}
	return nil
}
