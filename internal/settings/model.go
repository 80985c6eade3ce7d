package settings

import (
	"net/http"
	"time"

	"github.com/reservalasala/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotSeeded        = apperror.New(http.StatusInternalServerError, "settings not initialized")
	ErrCodeRequired     = apperror.New(http.StatusBadRequest, "admin secret code cannot be empty")
	ErrUnknownImageSlot = apperror.New(http.StatusBadRequest, "unknown image slot")
)

// Branding image slots addressable by the upload endpoint.
const (
	ImageSlotLogo           = "logo"
	ImageSlotBackground     = "background"
	ImageSlotHomeBackground = "home-background"
	ImageSlotSiteImage      = "site-image"
)

// Settings is the single application-wide configuration row: the secret code
// required to register an administrator account, plus the uploaded branding
// images shown by the client.
type Settings struct {
	AdminSecretCode      string
	LogoFileID           *string
	BackgroundFileID     *string
	HomeBackgroundFileID *string
	SiteImageFileID      *string
	UpdatedAt            time.Time
}
