package config

import (
	"os"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MongoURL    string
	DBName      string
	JWTSecret   string
	CORSOrigins []string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "therapycare"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
