package cachewall

import (
	"fmt"
	"os"
	"strconv"
)

// StoreKind selects which object-store backend to wire up.
type StoreKind string

const (
	StoreMemory     StoreKind = "memory"
	StoreFileSystem StoreKind = "filesystem"
	StoreSQLite     StoreKind = "sqlite"
	StoreRedis      StoreKind = "redis"
	StoreS3         StoreKind = "s3"
)

// Config is the ambient, deployment-level configuration the CLI
// entrypoint assembles from environment variables. None of these fields
// participate in the fingerprint; they only wire the process together.
type Config struct {
	Port int

	StoreKind     StoreKind
	FileSystemDir string
	SQLitePath    string
	RedisAddr     string
	S3BucketName  string

	DefaultTTLSeconds int64
	MaxBodyBytes      int64

	LogLevel  string
	LogPretty bool
	LogFile   string
}

// ConfigFromEnv reads the ambient environment variables named in
// SPEC_FULL.md §6, falling back to sensible local-dev defaults.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Port:              getEnvInt("CACHEWALL_PORT", 8080),
		StoreKind:         StoreKind(getEnv("CACHEWALL_STORE", string(StoreMemory))),
		FileSystemDir:     getEnv("CACHEWALL_FS_DIR", "./cachewall-data"),
		SQLitePath:        getEnv("CACHEWALL_SQLITE_PATH", "./cache.db"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		S3BucketName:      os.Getenv("S3_BUCKET_NAME"),
		DefaultTTLSeconds: getEnvInt64("CACHE_TTL_SECONDS", 3600),
		MaxBodyBytes:      getEnvInt64("CACHEWALL_MAX_BODY_BYTES", DefaultMaxBodyBytes),
		LogLevel:          getEnv("CACHEWALL_LOG_LEVEL", "info"),
		LogPretty:         getEnv("CACHEWALL_LOG_PRETTY", "") == "1",
		LogFile:           os.Getenv("CACHEWALL_LOG_FILE"),
	}

	if cfg.StoreKind == StoreS3 && cfg.S3BucketName == "" {
		return cfg, fmt.Errorf("cachewall: S3_BUCKET_NAME is required when CACHEWALL_STORE=s3")
	}
	return cfg, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(name string, fallback int64) int64 {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
