package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/DaveedGangi/taskmanagerBackend/internal/constants"
)

type Config struct {
	Port       string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	GinMode    string
}

func Load() *Config {
	// Missing .env is fine; the environment may already be populated.
	godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "5000"),
		DBPath:     getEnv("DB_PATH", "dataStorage.db"),
		JWTSecret:  getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:   time.Duration(getEnvInt("TOKEN_TTL_HOURS", constants.DefaultTokenTTLHours)) * time.Hour,
		BcryptCost: getEnvInt("BCRYPT_COST", constants.DefaultBcryptCost),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
