package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mapca-proposal/logs"
	"mapca-proposal/vars"
)

// DSN builds the connection string from the PG* settings.
func DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		vars.PGHOST, vars.PGUSER, vars.PGPWD, vars.PGDB, vars.PGPORT)
}

// InitDB opens the pool and migrates the hand-off table.
// dsn: "host=localhost user=postgres password=root dbname=mapca port=5432 sslmode=disable"
func InitDB(dsn string) (*gorm.DB, error) {
	level := logger.Warn
	if vars.LOG_DEBUG {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect db failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&HandOff{}); err != nil {
		return nil, fmt.Errorf("migrate hand-off table: %w", err)
	}

	logs.L().Info("PostgreSQL connected successfully")
	return db, nil
}
