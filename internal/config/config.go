package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	AllowedOrigins []string
	SwaggerHost    string

	// AllowPublicStatusFilter restores the legacy behavior where any caller
	// may filter the public post listing by moderation status. When false,
	// non-approved filters require an admin token.
	AllowPublicStatusFilter bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		MySQLDSN:                getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/alumnihub?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:                 getEnvInt("REDIS_DB", 0),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		JWTSecret:               getEnv("JWT_SECRET", "change-me"),
		AllowedOrigins:          getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		SwaggerHost:             os.Getenv("SWAGGER_HOST"),
		AllowPublicStatusFilter: getEnvBool("ALLOW_PUBLIC_STATUS_FILTER", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return def
}
