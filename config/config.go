package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string // "development" or "production", affects CORS
	DBUrl       string
	FrontendURL string
	// Identity provider (Clerk-compatible backend API)
	ClerkAPIURL    string
	ClerkSecretKey string
	ClerkJWKSURL   string
	ClerkJWTSecret string // HS256 fallback for local development
	// Redis
	RedisURL      string
	RedisPassword string
	// Rate limiting
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	// Background expiry sweep
	ExpirySweepSpec string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		ClerkAPIURL:    strings.TrimRight(getEnv("CLERK_API_URL", "https://api.clerk.com"), "/"),
		ClerkSecretKey: getEnv("CLERK_SECRET_KEY", ""),
		ClerkJWKSURL:   getEnv("CLERK_JWKS_URL", ""),
		ClerkJWTSecret: getEnv("CLERK_JWT_SECRET", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		// 100 requests per 15 minutes per IP
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),

		ExpirySweepSpec: getEnv("EXPIRY_SWEEP_SPEC", "@every 1h"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.ClerkSecretKey == "" {
		log.Println("WARNING: CLERK_SECRET_KEY not configured. Identity proxy endpoints will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
