package settings

import (
	"context"
	"crypto/subtle"
	"strings"
)

type UpdateRequest struct {
	AdminSecretCode      *string
	LogoFileID           *string
	BackgroundFileID     *string
	HomeBackgroundFileID *string
	SiteImageFileID      *string
}

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, req UpdateRequest) (*Settings, error)
	// SetImage points the named branding slot at an uploaded file.
	SetImage(ctx context.Context, slot string, fileID string) error
	// VerifyAdminCode reports whether code matches the stored secret.
	VerifyAdminCode(ctx context.Context, code string) (bool, error)
	// EnsureDefaults seeds the settings row with initialCode when missing.
	EnsureDefaults(ctx context.Context, initialCode string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.AdminSecretCode != nil {
		code := strings.TrimSpace(*req.AdminSecretCode)
		if code == "" {
			return nil, ErrCodeRequired
		}
		current.AdminSecretCode = code
	}
	if req.LogoFileID != nil {
		current.LogoFileID = req.LogoFileID
	}
	if req.BackgroundFileID != nil {
		current.BackgroundFileID = req.BackgroundFileID
	}
	if req.HomeBackgroundFileID != nil {
		current.HomeBackgroundFileID = req.HomeBackgroundFileID
	}
	if req.SiteImageFileID != nil {
		current.SiteImageFileID = req.SiteImageFileID
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *service) SetImage(ctx context.Context, slot string, fileID string) error {
	req := UpdateRequest{}
	switch slot {
	case ImageSlotLogo:
		req.LogoFileID = &fileID
	case ImageSlotBackground:
		req.BackgroundFileID = &fileID
	case ImageSlotHomeBackground:
		req.HomeBackgroundFileID = &fileID
	case ImageSlotSiteImage:
		req.SiteImageFileID = &fileID
	default:
		return ErrUnknownImageSlot
	}

	_, err := s.Update(ctx, req)
	return err
}

func (s *service) VerifyAdminCode(ctx context.Context, code string) (bool, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	ok := subtle.ConstantTimeCompare([]byte(current.AdminSecretCode), []byte(code)) == 1
	return ok, nil
}

func (s *service) EnsureDefaults(ctx context.Context, initialCode string) error {
	return s.repo.Seed(ctx, initialCode)
}
