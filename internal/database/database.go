package database

import (
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soez-labs/blogforge/internal/config"
	"github.com/soez-labs/blogforge/internal/models"
)

// Connect opens a MySQL connection and optionally runs auto-migration.
// The DSN is validated up front so a malformed one fails with a clear
// error instead of a connect timeout.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	if _, err := mysqldrv.ParseDSN(cfg.DSN); err != nil {
		return nil, fmt.Errorf("invalid database dsn: %w", err)
	}

	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return db, nil
}

// migrate runs GORM auto-migration for all models.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.UserSession{},
		&models.BlogModel{},
	)
}
