package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cachewall/cachewall"
	"github.com/cachewall/cachewall/store"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func main() {
	cfg, err := cachewall.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if configFile := os.Getenv("CACHEWALL_CONFIG_FILE"); configFile != "" {
		fc, err := cachewall.LoadFileConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot read config file: %v\n", err)
			os.Exit(1)
		}
		cfg = cachewall.ApplyFileConfig(cfg, fc)
	}

	logOutputs := make([]io.Writer, 0, 1)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
			os.Exit(1)
		}
		logOutputs = append(logOutputs, f)
	}

	logger := cachewall.SetupLogging(cachewall.LogConfig{
		Level:        cfg.LogLevel,
		Pretty:       cfg.LogPretty,
		Output:       os.Stdout,
		ExtraOutputs: logOutputs,
	})

	backend, err := newStoreBackend(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not initialize object store")
	}

	fetcher := cachewall.NewFetcher()
	fetcher.MaxBodyBytes = cfg.MaxBodyBytes

	engine := cachewall.NewEngine(backend, fetcher, cfg.DefaultTTLSeconds, logger)
	handler := cachewall.NewHandler(engine, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Handle("/*", handler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info().Str("addr", addr).Str("store", string(cfg.StoreKind)).Msg("cachewall listening")
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func newStoreBackend(cfg cachewall.Config, logger zerolog.Logger) (store.Store, error) {
	switch cfg.StoreKind {
	case cachewall.StoreMemory, "":
		return store.NewMemory(), nil
	case cachewall.StoreFileSystem:
		return store.NewFileSystem(cfg.FileSystemDir)
	case cachewall.StoreSQLite:
		return store.NewSQLite(cfg.SQLitePath)
	case cachewall.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("cannot reach redis at %s: %w", cfg.RedisAddr, err)
		}
		return store.NewRedis(client, time.Duration(cfg.DefaultTTLSeconds)*time.Second*2), nil
	case cachewall.StoreS3:
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return store.NewS3(s3.NewFromConfig(awsCfg), cfg.S3BucketName), nil
	default:
		return nil, fmt.Errorf("unknown CACHEWALL_STORE %q", cfg.StoreKind)
	}
}
