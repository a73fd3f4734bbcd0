package persistence

import (
	"context"
	"fmt"

	"github.com/isp/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Open selects and initializes the storage backend named by the
// configuration and wraps it into a CollectionStore.
func Open(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (*CollectionStore, error) {
	var (
		kv  KV
		err error
	)
	switch cfg.Storage.Driver {
	case "file":
		kv, err = NewFileKV(cfg.Storage.DataDir)
	case "redis":
		kv, err = NewRedisKV(ctx, cfg.Redis)
	case "postgres":
		kv, err = NewPostgresKV(cfg.Database, zapLogger, cfg.Log.Level)
	case "sqlite":
		kv, err = NewSQLiteKV(cfg.Storage.DBPath, zapLogger, cfg.Log.Level)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}
	return NewCollectionStore(kv), nil
}
