package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                     string
	StorageBackend           string
	DatabaseURL              string
	JWTSecret                string
	GoogleAudience           string
	AllowOrigins             []string
	MinIOEndpoint            string
	MinIOAccessKey           string
	MinIOSecretKey           string
	MinIOUseSSL              bool
	MinIOBucketDestinations  string
	MinIOPublicURL           string
	SessionTTL               string
	FrontendBaseURL          string
	FFMPEGPath               string
	DestinationImageMaxBytes int64
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	backend := strings.ToLower(getenv("STORAGE_BACKEND", "postgres"))

	imageMax := int64(5 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("DESTINATION_IMAGE_MAX_BYTES", "5242880"), 10, 64); err == nil && v > 0 {
		imageMax = v
	}

	cfg := Config{
		Port:                     getenv("PORT", "8080"),
		StorageBackend:           backend,
		JWTSecret:                must("JWT_SECRET"),
		GoogleAudience:           getenv("GOOGLE_AUDIENCE", ""),
		MinIOEndpoint:            getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:           getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:           getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:              getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketDestinations:  getenv("MINIO_BUCKET_DESTINATIONS", "fortis-destinations"),
		MinIOPublicURL:           getenv("MINIO_PUBLIC_URL", ""),
		SessionTTL:               getenv("SESSION_TTL", "24h"),
		FrontendBaseURL:          getenv("FRONTEND_BASE_URL", ""),
		FFMPEGPath:               getenv("FFMPEG_PATH", "ffmpeg"),
		AllowOrigins:             splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		DestinationImageMaxBytes: imageMax,
	}

	// The memory backend needs no connection string; postgres does.
	if backend == "memory" {
		cfg.DatabaseURL = getenv("DATABASE_URL", "")
	} else {
		cfg.DatabaseURL = must("DATABASE_URL")
	}

	return cfg
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
