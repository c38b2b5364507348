package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/seerwright/daggle/models"
)

var DB *gorm.DB

// Connect opens the Postgres connection and tunes the pool.
func Connect(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// Expire pooled connections before the server-side idle timeout can.
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

// MigrateTables creates or updates the schema for every model.
func MigrateTables() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Competition{},
		&models.CompetitionFile{},
		&models.RuleTemplate{},
		&models.CompetitionRule{},
		&models.FAQ{},
		&models.Enrollment{},
		&models.Submission{},
		&models.LeaderboardEntry{},
	)
}
