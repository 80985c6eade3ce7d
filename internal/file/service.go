package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/reservalasala/room-booking-backend/internal/pkg/storage"
)

// UploadInput carries the uploaded file plus the constraints the endpoint
// wants enforced.
type UploadInput struct {
	FileHeader   *multipart.FileHeader
	UserID       string
	MaxSizeBytes int64    // 0 = no limit
	AllowedTypes []string // empty = allow all
	// ResizeImage re-encodes the upload as JPEG bounded to 1600x1600 before
	// storing it. Branding images do not need print resolution.
	ResizeImage bool
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*File, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*File, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *File, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *File, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*File, error) {
	header := in.FileHeader

	if in.MaxSizeBytes > 0 && header.Size > in.MaxSizeBytes {
		return nil, ErrTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if len(in.AllowedTypes) > 0 && !slices.Contains(in.AllowedTypes, contentType) {
		return nil, ErrUnsupportedType
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the content so it can be read more than once. Uploads here are
	// branding-sized images, not arbitrary blobs.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	filename := header.Filename
	size := header.Size
	ext := ".bin"
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	}

	if in.ResizeImage {
		normalized, err := s.imgProc.Normalize(bytes.NewReader(fileBytes), 1600, 1600)
		if err != nil {
			return nil, ErrNotAnImage
		}
		fileBytes, err = io.ReadAll(normalized)
		if err != nil {
			return nil, fmt.Errorf("failed to read normalized image: %w", err)
		}
		contentType = "image/jpeg"
		ext = ".jpg"
		size = int64(len(fileBytes))
	}

	fileID := uuid.New().String()

	// Sharding path: upload/ab/UUID.ext
	shard := fileID[:2]
	storagePath := fmt.Sprintf("upload/%s/%s%s", shard, fileID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save file to storage: %w", err)
	}

	var thumbnailPath *string
	if isImage(contentType) {
		// A failed thumbnail must not fail the upload.
		thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), 200, 200)
		if err == nil {
			tPath := fmt.Sprintf("upload/%s/%s_thumb.jpg", shard, fileID)
			if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
				thumbnailPath = &tPath
			}
		}
	}

	f := &File{
		ID:            fileID,
		UserID:        in.UserID,
		Filename:      filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          size,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		// Cleanup storage if db fails
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best effort cleanup; the record is the source of truth.
	_ = s.storage.Delete(ctx, f.StoragePath)
	if f.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *f.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) Get(ctx context.Context, id string) (*File, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, f.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve file from storage: %w", err)
	}

	return stream, f, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if f.ThumbnailPath == nil {
		return nil, nil, ErrNotFound
	}

	stream, err := s.storage.Get(ctx, *f.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, f, nil
}

func isImage(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif":
		return true
	}
	return false
}
