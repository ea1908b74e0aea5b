package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr         string
	ConfigPath   string
	PublicDir    string
	HistoryDir   string
	SaveDebounce time.Duration
	CORSOrigin   string
	// Redis - snapshot fallback disabled when empty
	RedisURL string
	// MinIO - upload mirror disabled unless endpoint and bucket are set
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func Load() Config {
	return Config{
		Addr:         getenv("SITE_ADDR", ":8787"),
		ConfigPath:   getenv("SITE_CONFIG_PATH", "./data/site-config.json"),
		PublicDir:    getenv("SITE_PUBLIC_DIR", "./public"),
		HistoryDir:   getenv("SITE_HISTORY_DIR", ""),
		SaveDebounce: time.Duration(getenvInt("SITE_SAVE_DEBOUNCE_MS", 1000)) * time.Millisecond,
		CORSOrigin:   getenv("SITE_CORS_ORIGIN", "*"),
		RedisURL:     getenv("REDIS_URL", ""),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", ""),
		MinioUseSSL:    getenvBool("MINIO_USE_SSL", false),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
