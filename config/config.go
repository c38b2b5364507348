package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file in the working directory.
type Config struct {
	ListenAddr  string
	DatabaseDSN string
	RedisAddr   string
	RedisDB     int

	JWTSecret   string
	TokenExpiry time.Duration

	UploadDir        string
	MaxThumbnailSize int64
	MaxDataFileSize  int64

	LeaderboardCacheTTL time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win because godotenv does
// not overwrite existing keys.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:  getEnv("DAGGLE_LISTEN_ADDR", ":8080"),
		DatabaseDSN: getEnv("DAGGLE_DATABASE_DSN", "host=localhost user=daggle password=daggle dbname=daggle port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:   getEnv("DAGGLE_REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("DAGGLE_REDIS_DB", 0),

		JWTSecret:   getEnv("DAGGLE_JWT_SECRET", "dev-only-secret-change-me"),
		TokenExpiry: getEnvDuration("DAGGLE_TOKEN_EXPIRY", 7*24*time.Hour),

		UploadDir:        getEnv("DAGGLE_UPLOAD_DIR", "./uploads"),
		MaxThumbnailSize: getEnvInt64("DAGGLE_MAX_THUMBNAIL_SIZE", 5<<20),
		MaxDataFileSize:  getEnvInt64("DAGGLE_MAX_DATA_FILE_SIZE", 100<<20),

		LeaderboardCacheTTL: getEnvDuration("DAGGLE_LEADERBOARD_CACHE_TTL", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
