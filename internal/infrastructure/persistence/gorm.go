package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/isp/backend/internal/infrastructure/config"
	"github.com/isp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRecord is the single-table layout for relational backends.
// Each collection lives in one row, mirroring the other KV backends.
type collectionRecord struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"type:bytes"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the GORM default
func (collectionRecord) TableName() string {
	return "collections"
}

// GormKV stores collections in a relational database through GORM
type GormKV struct {
	db *gorm.DB
}

// NewPostgresKV opens a PostgreSQL backed KV
func NewPostgresKV(cfg config.DatabaseConfig, zapLogger *zap.Logger, level string) (*GormKV, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.NewGormLogger(zapLogger, logger.MapGormLogLevel(level)),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	return newGormKV(db)
}

// NewSQLiteKV opens a SQLite backed KV at the given path
func NewSQLiteKV(path string, zapLogger *zap.Logger, level string) (*GormKV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.NewGormLogger(zapLogger, logger.MapGormLogLevel(level)),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return newGormKV(db)
}

func newGormKV(db *gorm.DB) (*GormKV, error) {
	if err := db.AutoMigrate(&collectionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &GormKV{db: db}, nil
}

// Get implements KV
func (g *GormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var record collectionRecord
	err := g.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.Value, nil
}

// Set implements KV
func (g *GormKV) Set(ctx context.Context, key string, value []byte) error {
	record := collectionRecord{Key: key, Value: value}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
}

// Delete implements KV
func (g *GormKV) Delete(ctx context.Context, keys ...string) error {
	return g.db.WithContext(ctx).Delete(&collectionRecord{}, "key IN ?", keys).Error
}

// Close implements KV
func (g *GormKV) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
