package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm builds a gorm handle on top of the shared pgx pool so both access paths use the
// same connections.
func OpenGorm(pg *Postgres, logger *zap.Logger) (*gorm.DB, error) {
	if !pg.Enabled() {
		return nil, errors.New("postgres not configured")
	}

	sqlDB := stdlib.OpenDBFromPool(pg.Pool)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger.Info("gorm attached to postgres pool")
	return db, nil
}
