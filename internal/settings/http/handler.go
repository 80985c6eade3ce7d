package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	filehttp "github.com/reservalasala/room-booking-backend/internal/file/http"
	"github.com/reservalasala/room-booking-backend/internal/pkg/response"
	"github.com/reservalasala/room-booking-backend/internal/settings"
)

// BrandingResponse is the public subset of settings: the image ids every
// client needs before sign-in. The admin secret code never leaves the admin
// endpoint.
type BrandingResponse struct {
	LogoFileID           *string `json:"logo_file_id"`
	BackgroundFileID     *string `json:"background_file_id"`
	HomeBackgroundFileID *string `json:"home_background_file_id"`
	SiteImageFileID      *string `json:"site_image_file_id"`
}

type SettingsResponse struct {
	BrandingResponse
	AdminSecretCode string    `json:"admin_secret_code"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateSettingsRequest struct {
	AdminSecretCode      *string `json:"admin_secret_code"`
	LogoFileID           *string `json:"logo_file_id"`
	BackgroundFileID     *string `json:"background_file_id"`
	HomeBackgroundFileID *string `json:"home_background_file_id"`
	SiteImageFileID      *string `json:"site_image_file_id"`
}

func newBranding(s *settings.Settings) BrandingResponse {
	return BrandingResponse{
		LogoFileID:           s.LogoFileID,
		BackgroundFileID:     s.BackgroundFileID,
		HomeBackgroundFileID: s.HomeBackgroundFileID,
		SiteImageFileID:      s.SiteImageFileID,
	}
}

type Handler struct {
	service     settings.Service
	fileHandler *filehttp.Handler
}

func NewHandler(service settings.Service, fileHandler *filehttp.Handler) *Handler {
	return &Handler{
		service:     service,
		fileHandler: fileHandler,
	}
}

// Branding is public: the login screen needs the images before any token
// exists.
func (h *Handler) Branding(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, newBranding(s))
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, SettingsResponse{
		BrandingResponse: newBranding(s),
		AdminSecretCode:  s.AdminSecretCode,
		UpdatedAt:        s.UpdatedAt,
	})
}

// UploadImage replaces one branding image. The slot path parameter names
// which image; the old file stays in storage until replaced references are
// cleaned up manually.
func (h *Handler) UploadImage(c *gin.Context) {
	slot := c.Param("slot")

	h.fileHandler.HandleFileUpload(c, filehttp.FileUploadConfig{
		MaxSizeBytes: 5 * 1024 * 1024, // 5MB
		AllowedTypes: []string{"image/jpeg", "image/png"},
		ResizeImage:  true,
		AfterUpload: func(ctx context.Context, fileID string) error {
			return h.service.SetImage(ctx, slot, fileID)
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateSettingsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Update(c.Request.Context(), settings.UpdateRequest{
		AdminSecretCode:      body.AdminSecretCode,
		LogoFileID:           body.LogoFileID,
		BackgroundFileID:     body.BackgroundFileID,
		HomeBackgroundFileID: body.HomeBackgroundFileID,
		SiteImageFileID:      body.SiteImageFileID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{
		BrandingResponse: newBranding(s),
		AdminSecretCode:  s.AdminSecretCode,
		UpdatedAt:        s.UpdatedAt,
	})
}
