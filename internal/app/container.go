package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reservalasala/room-booking-backend/internal/api"
	"github.com/reservalasala/room-booking-backend/internal/auth"
	"github.com/reservalasala/room-booking-backend/internal/booking"
	"github.com/reservalasala/room-booking-backend/internal/file"
	"github.com/reservalasala/room-booking-backend/internal/pkg/storage"
	"github.com/reservalasala/room-booking-backend/internal/role"
	"github.com/reservalasala/room-booking-backend/internal/room"
	"github.com/reservalasala/room-booking-backend/internal/sector"
	"github.com/reservalasala/room-booking-backend/internal/settings"
	"github.com/reservalasala/room-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	DBPool           *pgxpool.Pool
	JWTSecret        string
	JWTTTL           time.Duration
	BcryptCost       int
	UploadDir        string
	InitialAdminCode string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager

	settingsService settings.Service
	sectorService   sector.Service
	roleService     role.Service
	initialCode     string
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload storage: %w", err)
	}

	// Sector Module
	sectorRepo := sector.NewPgxRepository(cfg.DBPool)
	sectorService := sector.NewService(sectorRepo)

	// Role Module
	roleRepo := role.NewPgxRepository(cfg.DBPool)
	roleService := role.NewService(roleRepo)

	// Settings Module
	settingsRepo := settings.NewPgxRepository(cfg.DBPool)
	settingsService := settings.NewService(settingsRepo)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher, roleService, sectorService, settingsService)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService)

	// File Module
	fileRepo := file.NewRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, store)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		RoomService:     roomService,
		SectorService:   sectorService,
		RoleService:     roleService,
		BookingService:  bookingService,
		SettingsService: settingsService,
		FileService:     fileService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:          router,
		JWTManager:      jwtManager,
		settingsService: settingsService,
		sectorService:   sectorService,
		roleService:     roleService,
		initialCode:     cfg.InitialAdminCode,
	}, nil
}

// Seed writes the catalog defaults and the initial settings row when they are
// missing. Safe to run on every start.
func (c *Container) Seed(ctx context.Context) error {
	if err := c.settingsService.EnsureDefaults(ctx, c.initialCode); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	if err := c.roleService.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	if err := c.sectorService.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed sectors: %w", err)
	}
	return nil
}
