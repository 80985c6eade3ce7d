package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/reservalasala/room-booking-backend/internal/auth"
	"github.com/reservalasala/room-booking-backend/internal/booking"
	bookingHttp "github.com/reservalasala/room-booking-backend/internal/booking/http"
	"github.com/reservalasala/room-booking-backend/internal/file"
	fileHttp "github.com/reservalasala/room-booking-backend/internal/file/http"
	"github.com/reservalasala/room-booking-backend/internal/role"
	roleHttp "github.com/reservalasala/room-booking-backend/internal/role/http"
	"github.com/reservalasala/room-booking-backend/internal/room"
	roomHttp "github.com/reservalasala/room-booking-backend/internal/room/http"
	"github.com/reservalasala/room-booking-backend/internal/sector"
	sectorHttp "github.com/reservalasala/room-booking-backend/internal/sector/http"
	"github.com/reservalasala/room-booking-backend/internal/settings"
	settingsHttp "github.com/reservalasala/room-booking-backend/internal/settings/http"
	"github.com/reservalasala/room-booking-backend/internal/user"
	userHttp "github.com/reservalasala/room-booking-backend/internal/user/http"
)

// Config bundles the services the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string // comma-separated allowed origins for production

	UserService     user.Service
	RoomService     room.Service
	SectorService   sector.Service
	RoleService     role.Service
	BookingService  booking.Service
	SettingsService settings.Service
	FileService     file.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Web client dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated user is an administrator.
	adminMiddleware := RequireAdministrador(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	sectorHandler := sectorHttp.NewHandler(cfg.SectorService)
	roleHandler := roleHttp.NewHandler(cfg.RoleService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)
	settingsHandler := settingsHttp.NewHandler(cfg.SettingsService, fileHandler)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		sectorHttp.RegisterRoutes(v1, sectorHandler, authMiddleware, adminMiddleware)
		roleHttp.RegisterRoutes(v1, roleHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		settingsHttp.RegisterRoutes(v1, settingsHandler, authMiddleware, adminMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler)
	}

	return r
}
