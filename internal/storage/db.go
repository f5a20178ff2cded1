package storage

import (
	"fmt"
	"log"
	"time"

	"odyssey-voice/internal/config"
	"odyssey-voice/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	// DB is the global database connection
	DB *gorm.DB
)

// Initialize sets up the database connection based on configuration
func Initialize(cfg *config.Config) error {
	var dialector gorm.Dialector

	switch cfg.Database.Driver {
	case "sqlite":
		log.Printf("Opening sqlite database: %s", cfg.Database.Path)
		dialector = sqlite.Open(cfg.Database.Path)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
			cfg.Database.Charset,
		)
		log.Printf("Connecting to database: %s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		dialector = mysql.Open(dsn)
	default:
		return fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(cfg.Logger.Level),
		// Map driver-specific uniqueness violations onto gorm.ErrDuplicatedKey
		// so claim races classify the same way on mysql and sqlite.
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to configure connection pool
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get SQL DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Printf("Database connection established successfully")
	return nil
}

// Migrate ensures all tables exist with the current schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.BaseChannel{},
		&models.TempChannel{},
		&models.ChannelBan{},
		&models.WhitelistEntry{},
		&models.AdminRole{},
	)
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}
