package cachewall

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig holds the subset of configuration that is more natural to
// express as a static file than as environment variables, following the
// teacher's own yaml-backed Config/getConfig pattern.
type FileConfig struct {
	StoreKind     StoreKind `yaml:"store"`
	FileSystemDir string    `yaml:"fileSystemDir"`
	SQLitePath    string    `yaml:"sqlitePath"`
	RedisAddr     string    `yaml:"redisAddr"`
	S3BucketName  string    `yaml:"s3BucketName"`
	DefaultTTL    string    `yaml:"defaultTTL"`
}

// LoadFileConfig reads a YAML config file. A missing file is not an
// error: callers fall back to ConfigFromEnv entirely in that case.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, err
	}
	err = yaml.Unmarshal(raw, &fc)
	return fc, err
}

// ApplyFileConfig overlays non-empty FileConfig fields onto cfg. Each
// non-empty field in the file replaces the value in cfg, whether that
// value came from an environment variable or from a default; empty fields
// leave cfg unchanged.
func ApplyFileConfig(cfg Config, fc FileConfig) Config {
	if fc.StoreKind != "" {
		cfg.StoreKind = fc.StoreKind
	}
	if fc.FileSystemDir != "" {
		cfg.FileSystemDir = fc.FileSystemDir
	}
	if fc.SQLitePath != "" {
		cfg.SQLitePath = fc.SQLitePath
	}
	if fc.RedisAddr != "" {
		cfg.RedisAddr = fc.RedisAddr
	}
	if fc.S3BucketName != "" {
		cfg.S3BucketName = fc.S3BucketName
	}
	if fc.DefaultTTL != "" {
		cfg.DefaultTTLSeconds = ParseTTL(fc.DefaultTTL, cfg.DefaultTTLSeconds)
	}
	return cfg
}
