package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// DatabaseURL selects PostgreSQL; when empty the service falls back to SQLite at SQLitePath.
	DatabaseURL string
	SQLitePath  string
	CORSOrigins []string
	LogDir      string
	// Administrative user inserted by the seeder when the usuario table is empty
	SeedUserEmail    string
	SeedUserPassword string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		Port:             getenvOrDefault("PORT", "3000"),
		GinMode:          os.Getenv("GIN_MODE"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SQLitePath:       getenvOrDefault("SQLITE_PATH", "/tmp/test.db"),
		CORSOrigins:      splitList(getenvOrDefault("CORS_ORIGINS", "*")),
		LogDir:           getenvOrDefault("LOG_DIR", "logs"),
		SeedUserEmail:    os.Getenv("SEED_USER_EMAIL"),
		SeedUserPassword: os.Getenv("SEED_USER_PASSWORD"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
