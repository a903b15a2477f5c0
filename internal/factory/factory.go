package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/raceleague/steward/internal/dependencies/clock"
	"github.com/raceleague/steward/internal/services/auth"
	"github.com/raceleague/steward/internal/services/ban"
	"github.com/raceleague/steward/internal/services/penalty"
	"github.com/raceleague/steward/internal/services/roster"
	"github.com/raceleague/steward/internal/services/steward"
	"github.com/raceleague/steward/internal/storage"
	"github.com/raceleague/steward/internal/storage/memory"
	redisstorage "github.com/raceleague/steward/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	RosterService  *roster.Service
	PenaltyService *penalty.Service
	BanService     *ban.Service
	Controller     *steward.Controller
	AuthService    *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// BanConfig holds the ban thresholds (optional)
	// If zero value, defaults to ban.DefaultConfig()
	BanConfig ban.Config
	// StewardConfig holds the ban retention window (optional)
	// If zero value, defaults to steward.DefaultConfig()
	StewardConfig steward.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	banCfg := cfg.BanConfig
	if banCfg.QualiThreshold == 0 && banCfg.RaceThreshold == 0 {
		banCfg = ban.DefaultConfig()
	}

	stewardCfg := cfg.StewardConfig
	if stewardCfg.BanRetention == 0 {
		stewardCfg = steward.DefaultConfig()
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, banCfg, stewardCfg, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	banCfg ban.Config,
	stewardCfg steward.Config,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	rosterService := roster.New(store, clk, logger)
	penaltyService := penalty.New(store, clk, logger)
	banService := ban.New(store, clk, banCfg, logger)
	controller := steward.NewController(rosterService, penaltyService, banService, stewardCfg, logger)
	authService := auth.New(store, clk, authCfg)

	return &App{
		Storage:        store,
		Clock:          clk,
		RosterService:  rosterService,
		PenaltyService: penaltyService,
		BanService:     banService,
		Controller:     controller,
		AuthService:    authService,
	}
}
