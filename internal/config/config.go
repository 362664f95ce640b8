package config

import (
	"os"
)

type Config struct {
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	GinMode      string
	OpenAIAPIKey string
	CORSOrigin   string
	Port         string
}

func Load() *Config {
	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "mysql"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBUser:       getEnv("DB_USER", "planner"),
		DBPassword:   getEnv("DB_PASSWORD", "plannerpassword"),
		DBName:       getEnv("DB_NAME", "study_planner"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key-change-me"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
		Port:         getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
