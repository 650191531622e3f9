package storage

import (
	"context"
	"log/slog"

	"pos/config"
	"pos/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderFile   = "file"
	ProviderRedis  = "redis"
	ProviderMemory = "memory"
)

// StoreParams holds dependencies for the key-value store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore creates the store selected by storage.provider
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var store repository.KeyValueStore

	switch cfg.Provider {
	case ProviderFile, "":
		fileStore, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("Using file token storage", slog.String("path", cfg.Path))
		store = fileStore

	case ProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using redis token storage",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("prefix", cfg.Redis.Prefix),
		)
		store = NewRedisStore(cfg.Redis, logger)

	case ProviderMemory:
		logger.Info("Using in-memory token storage, sessions will not survive a restart")
		store = NewMemoryStore()

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing token storage")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewKeyValueStore,
		NewTokenRepository,
		NewPreferenceRepository,
	),
)
