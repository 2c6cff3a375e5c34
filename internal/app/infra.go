package app

import (
	"context"
	"fmt"

	"sessions-service/internal/config"
	"sessions-service/internal/logger"
	"sessions-service/internal/redis"
	"sessions-service/internal/store"
)

// setupStore picks the configured store backend. The returned cleanup
// may be nil.
func setupStore(ctx context.Context, cfg config.Config) (store.Store, func() error, error) {
	switch cfg.StoreBackend {

	case config.BackendFile:
		logger.Info("file store ready", map[string]any{
			"path": cfg.StorePath,
		})
		return store.NewFileStore(cfg.StorePath), nil, nil

	case config.BackendRedis:
		client, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("redis ready", map[string]any{
			"addr": cfg.RedisAddr,
		})
		return store.NewRedisStore(client.Client, cfg.RedisStoreKey), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
