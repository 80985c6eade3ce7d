package sector

import (
	"context"
	"strings"
)

type Service interface {
	Create(ctx context.Context, name string) (*Sector, error)
	GetByID(ctx context.Context, id string) (*Sector, error)
	List(ctx context.Context) ([]*Sector, error)
	Update(ctx context.Context, id string, name string) (*Sector, error)
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

func (s *service) Create(ctx context.Context, name string) (*Sector, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	sec := &Sector{Name: name}
	if err := s.repo.Create(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Sector, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Sector, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, name string) (*Sector, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	sec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sec.Name = name
	if err := s.repo.Update(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
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
		if err := s.repo.Create(ctx, &Sector{Name: name}); err != nil {
			return err
		}
	}
	return nil
}
