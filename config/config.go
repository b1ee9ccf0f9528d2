package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the postgres connection named by DB_URL. An empty DB_URL
// means the caller should fall back to the in-memory store.
func ConnectDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		return nil, nil
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
