package room

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name    string
	Address string
}

type UpdateRequest struct {
	Name    *string
	Address *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, ErrAddressRequired
	}

	r := &Room{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		r.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		if strings.TrimSpace(*req.Address) == "" {
			return nil, ErrAddressRequired
		}
		r.Address = strings.TrimSpace(*req.Address)
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes the room. Its bookings go with it via the ON DELETE CASCADE
// foreign key, so no orphaned reservations survive.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
