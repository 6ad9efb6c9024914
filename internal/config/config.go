package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/adityagv/homework-hub/internal/constants"
)

type Config struct {
	Addr          string
	GinMode       string
	SessionSecret string
	DBDriver      string
	DBPath        string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SlotKey       string
}

func Load() *Config {
	// Optional; running without a .env file is the normal case.
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("HUB_ADDR", ":8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBPath:        getEnv("DB_PATH", "homework_hub.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "hubuser"),
		DBPassword:    getEnv("DB_PASSWORD", "hubpassword"),
		DBName:        getEnv("DB_NAME", "homework_hub"),
		SlotKey:       getEnv("SLOT_KEY", constants.DefaultSlotKey),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
