package database

import (
	"fmt"
	"log"
	"strings"

	"starwars/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL when DATABASE_URL is set, otherwise to the SQLite file at SQLITE_PATH.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if cfg.DatabaseURL != "" {
		dsn := strings.Replace(cfg.DatabaseURL, "postgres://", "postgresql://", 1)
		db, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Println("Connected to PostgreSQL")
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLitePath)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", cfg.SQLitePath, err)
	}
	log.Printf("Connected to SQLite at %s", cfg.SQLitePath)
	return db, nil
}

// SQLite leaves foreign keys off unless asked, and favorites rely on them.
func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
