package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and handed to the pieces that need it.
type Config struct {
	Port        string
	Environment string

	MongoURI string
	MongoDB  string

	JWTSecret string
	JWTTTL    time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	CacheTTL      time.Duration

	RateLimitEnabled bool
	RateLimitMax     int

	SentryDSN string

	UploadDir    string
	AllowOrigins string
}

// Load reads a .env file if present and builds the Config from the
// environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("APP_ENV", "development"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "devfolio"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key"),
		JWTTTL:    getDuration("JWT_TTL_HOURS", 24) * time.Hour,

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      getDuration("CACHE_TTL_SECONDS", 600) * time.Second,

		RateLimitEnabled: getBool("RATE_LIMIT_ENABLED", false),
		RateLimitMax:     getInt("RATE_LIMIT_MAX", 100),

		SentryDSN: getEnv("SENTRY_DSN", ""),

		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "http://localhost:5173"),
	}
}

// IsProduction reports whether the process runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback int) time.Duration {
	return time.Duration(getInt(key, fallback))
}
