package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
	// Seed inserts the singleton row with the given admin code if it does
	// not exist yet. Idempotent.
	Seed(ctx context.Context, initialCode string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// The table is constrained to a single row via a constant primary key.
func (r *pgxRepository) Get(ctx context.Context) (*Settings, error) {
	const query = `
		SELECT admin_secret_code, logo_file_id, background_file_id,
		       home_background_file_id, site_image_file_id, updated_at
		FROM public.settings
		WHERE id = true
	`

	var s Settings
	if err := r.pool.QueryRow(ctx, query).Scan(
		&s.AdminSecretCode, &s.LogoFileID, &s.BackgroundFileID,
		&s.HomeBackgroundFileID, &s.SiteImageFileID, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotSeeded
		}
		return nil, fmt.Errorf("get settings failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Settings) error {
	const query = `
		UPDATE public.settings
		SET admin_secret_code = $1,
		    logo_file_id = $2,
		    background_file_id = $3,
		    home_background_file_id = $4,
		    site_image_file_id = $5,
		    updated_at = now()
		WHERE id = true
		RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		s.AdminSecretCode, s.LogoFileID, s.BackgroundFileID,
		s.HomeBackgroundFileID, s.SiteImageFileID,
	).Scan(&s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotSeeded
		}
		return fmt.Errorf("update settings failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Seed(ctx context.Context, initialCode string) error {
	const query = `
		INSERT INTO public.settings (id, admin_secret_code)
		VALUES (true, $1)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, initialCode); err != nil {
		return fmt.Errorf("seed settings failed: %w", err)
	}
	return nil
}
