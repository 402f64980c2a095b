package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/engine"
	"github.com/mcoot/tictactoe-go/internal/services/auth"
	"github.com/mcoot/tictactoe-go/internal/services/bot"
	"github.com/mcoot/tictactoe-go/internal/services/game"
	"github.com/mcoot/tictactoe-go/internal/storage"
	"github.com/mcoot/tictactoe-go/internal/storage/memory"
	redisstorage "github.com/mcoot/tictactoe-go/internal/storage/redis"
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
	Clock  clock.Clock
	Random random.Random

	// Engine and its shared score cache
	Cache  *engine.Cache
	Engine *engine.Service

	// Services
	Strategies     bot.Registry
	GameController *game.Controller
	AuthService    *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// EngineConfig holds engine tuning (optional)
	// If zero value, defaults to engine.DefaultConfig()
	EngineConfig engine.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
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

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default configs if not provided
	engineCfg := cfg.EngineConfig
	if engineCfg.WinThreshold == 0 {
		engineCfg = engine.DefaultConfig()
	}
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, engineCfg, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, engineCfg engine.Config, authCfg auth.Config, logger *slog.Logger) *App {
	// The cache is shared by every game so positions scored in one
	// session benefit all later sessions
	cache := engine.NewCache()
	eng := engine.New(cache, engineCfg, logger)

	strategies := bot.Registry{
		bot.StrategyMinimax: bot.NewMinimaxStrategy(eng),
		bot.StrategyRandom:  bot.NewRandomStrategy(rnd),
	}

	gameController := game.NewController(store, eng, strategies, clk, rnd, logger)
	authService := auth.New(store, clk, rnd, authCfg)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Cache:          cache,
		Engine:         eng,
		Strategies:     strategies,
		GameController: gameController,
		AuthService:    authService,
	}
}
