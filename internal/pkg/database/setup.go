package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/enternet/portal/app/models"
	"github.com/enternet/portal/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// DB is the shared GORM handle; nil while the portal runs on the in-memory store
var DB *gorm.DB

// GetDB returns the shared GORM handle
func GetDB() *gorm.DB {
	return DB
}

// UsesDatabase reports whether the record store is configured to live in MySQL
func UsesDatabase() bool {
	return env.GetEnv("RECORD_STORE", "memory") == "mysql"
}

// SetupDatabase connects to MySQL, migrates the record tables and seeds them
func SetupDatabase() {
	var err error
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), &gorm.Config{})
		if err == nil {
			if err = Migrate(DB); err == nil {
				return
			}
		}

		slog.Warn("Failed to set up database", "try", i+1, "max", maxRetries, "error", err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// Migrate creates the record tables and inserts the sample data when they are empty
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Invoice{}, &models.Ticket{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return Seed(db)
}
