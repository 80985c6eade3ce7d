package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	row *Settings
}

func (f *fakeRepository) Get(ctx context.Context) (*Settings, error) {
	if f.row == nil {
		return nil, ErrNotSeeded
	}
	copied := *f.row
	return &copied, nil
}

func (f *fakeRepository) Update(ctx context.Context, s *Settings) error {
	if f.row == nil {
		return ErrNotSeeded
	}
	s.UpdatedAt = time.Now()
	copied := *s
	f.row = &copied
	return nil
}

func (f *fakeRepository) Seed(ctx context.Context, initialCode string) error {
	if f.row != nil {
		return nil
	}
	f.row = &Settings{AdminSecretCode: initialCode}
	return nil
}

func newTestService(t *testing.T) Service {
	t.Helper()

	svc := NewService(&fakeRepository{})
	require.NoError(t, svc.EnsureDefaults(context.Background(), "secreto"))
	return svc
}

func TestEnsureDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secreto", s.AdminSecretCode)

	// A second run must not overwrite an existing code
	code := "nuevo"
	_, err = svc.Update(ctx, UpdateRequest{AdminSecretCode: &code})
	require.NoError(t, err)

	require.NoError(t, svc.EnsureDefaults(ctx, "secreto"))

	s, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "nuevo", s.AdminSecretCode)
}

func TestGetBeforeSeed(t *testing.T) {
	svc := NewService(&fakeRepository{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotSeeded)
}

func TestVerifyAdminCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	ok, err := svc.VerifyAdminCode(ctx, "secreto")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyAdminCode(ctx, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.VerifyAdminCode(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("empty code rejected", func(t *testing.T) {
		blank := "  "
		_, err := svc.Update(ctx, UpdateRequest{AdminSecretCode: &blank})
		assert.ErrorIs(t, err, ErrCodeRequired)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		logo := "file-logo"
		s, err := svc.Update(ctx, UpdateRequest{LogoFileID: &logo})
		require.NoError(t, err)

		require.NotNil(t, s.LogoFileID)
		assert.Equal(t, "file-logo", *s.LogoFileID)
		assert.Equal(t, "secreto", s.AdminSecretCode)

		bg := "file-bg"
		s, err = svc.Update(ctx, UpdateRequest{BackgroundFileID: &bg})
		require.NoError(t, err)

		require.NotNil(t, s.LogoFileID)
		assert.Equal(t, "file-logo", *s.LogoFileID)
	})
}

func TestSetImage(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	slots := []string{
		ImageSlotLogo,
		ImageSlotBackground,
		ImageSlotHomeBackground,
		ImageSlotSiteImage,
	}
	for _, slot := range slots {
		require.NoError(t, svc.SetImage(ctx, slot, "file-"+slot))
	}

	s, err := svc.Get(ctx)
	require.NoError(t, err)

	require.NotNil(t, s.LogoFileID)
	assert.Equal(t, "file-logo", *s.LogoFileID)
	require.NotNil(t, s.BackgroundFileID)
	assert.Equal(t, "file-background", *s.BackgroundFileID)
	require.NotNil(t, s.HomeBackgroundFileID)
	assert.Equal(t, "file-home-background", *s.HomeBackgroundFileID)
	require.NotNil(t, s.SiteImageFileID)
	assert.Equal(t, "file-site-image", *s.SiteImageFileID)

	assert.ErrorIs(t, svc.SetImage(ctx, "favicon", "file-x"), ErrUnknownImageSlot)
}
