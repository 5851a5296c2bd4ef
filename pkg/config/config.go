package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Artifact sources.
const (
	SourceDir      = "dir"
	SourcePostgres = "postgres"
	SourceHTTP     = "http"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	// Where the vectorizer, classifier and label encoder are loaded from.
	ArtifactsSource string
	ArtifactsDir    string
	ArtifactsURL    string
	ArtifactsToken  string
	DatabaseURL     string

	MaxUploadBytes     int64
	ReadTimeoutSeconds int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
		ArtifactsSource:    strings.ToLower(getEnv("ARTIFACTS_SOURCE", SourceDir)),
		ArtifactsDir:       getEnv("ARTIFACTS_DIR", "artifacts"),
		ArtifactsURL:       os.Getenv("ARTIFACTS_URL"),
		ArtifactsToken:     os.Getenv("ARTIFACTS_TOKEN"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_BYTES", 15<<20)),
		ReadTimeoutSeconds: getEnvInt("READ_TIMEOUT_SECONDS", 30),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
