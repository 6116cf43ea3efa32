// Package localstore is the durable key-value storage behind the wishlist:
// one opaque value per namespaced key, the server-side analog of browser
// local storage. Implementations must tolerate concurrent callers.
package localstore

import (
	"context"
	"fmt"

	"novacore/backend/internal/config"
)

// Store loads and saves opaque values under namespaced keys.
type Store interface {
	// Load returns the value stored under key. The second result is false
	// when no value exists, which is not an error.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error
}

// Open builds the store selected by the configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "sqlite", "":
		return OpenSQLite(cfg.StoragePath)
	case "postgres":
		return OpenPostgres(cfg.StorageDSN)
	case "redis":
		return OpenRedis(cfg.RedisAddr, cfg.RedisPassword), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
