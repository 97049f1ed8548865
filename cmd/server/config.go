package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iudanet/bookkeeper/internal/server"
	"github.com/iudanet/bookkeeper/internal/server/storage"
	"github.com/iudanet/bookkeeper/internal/server/storage/postgres"
	"github.com/iudanet/bookkeeper/internal/server/storage/sqlite"
)

const (
	cfgKeyAddr        = "addr"
	cfgKeyDBDriver    = "db_driver"
	cfgKeyDBPath      = "db_path"
	cfgKeyDBDSN       = "db_dsn"
	cfgKeyDBTimeout   = "db_timeout"
	cfgKeyJWTSecret   = "jwt_secret"
	cfgKeyTokenTTL    = "token_ttl"
	cfgKeyRequireAuth = "require_auth"
	cfgKeyRateLimit   = "rate_limit"
	cfgKeyRateBurst   = "rate_burst"
	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFormat   = "log_format"

	driverSQLite   = "sqlite"
	driverPostgres = "postgres"

	// devSecret подписывает токены, если jwt_secret не задан
	devSecret = "bookkeeper-dev-secret"
)

// loadConfig читает .env (если есть) и переменные окружения BOOKKEEPER_*
func loadConfig(envFile string) (*viper.Viper, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault(cfgKeyAddr, ":3000")
	v.SetDefault(cfgKeyDBDriver, driverSQLite)
	v.SetDefault(cfgKeyDBPath, "bookkeeper-server.db")
	v.SetDefault(cfgKeyDBDSN, "")
	v.SetDefault(cfgKeyDBTimeout, postgres.DefaultQueryTimeout)
	v.SetDefault(cfgKeyJWTSecret, "")
	v.SetDefault(cfgKeyTokenTTL, 24*time.Hour)
	v.SetDefault(cfgKeyRequireAuth, false)
	v.SetDefault(cfgKeyRateLimit, 0)
	v.SetDefault(cfgKeyRateBurst, 20)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "text")

	v.SetEnvPrefix("BOOKKEEPER")
	v.AutomaticEnv()

	return v, nil
}

func serverConfig(v *viper.Viper) server.Config {
	return server.Config{
		Addr:        v.GetString(cfgKeyAddr),
		Version:     Version,
		RequireAuth: v.GetBool(cfgKeyRequireAuth),
		RateLimit:   v.GetFloat64(cfgKeyRateLimit),
		RateBurst:   v.GetInt(cfgKeyRateBurst),
	}
}

// jwtSecret возвращает секрет подписи. Без секрета допустим только режим без авторизации.
func jwtSecret(v *viper.Viper, logger *slog.Logger) (string, error) {
	secret := v.GetString(cfgKeyJWTSecret)
	if secret != "" {
		return secret, nil
	}
	if v.GetBool(cfgKeyRequireAuth) {
		return "", errors.New("BOOKKEEPER_JWT_SECRET is required when require_auth is enabled")
	}
	logger.Warn("jwt_secret is not set, using development secret")
	return devSecret, nil
}

// openStorage открывает хранилище, выбранное db_driver
func openStorage(ctx context.Context, v *viper.Viper, logger *slog.Logger) (storage.BookStorage, error) {
	switch driver := strings.ToLower(v.GetString(cfgKeyDBDriver)); driver {
	case driverSQLite:
		path := v.GetString(cfgKeyDBPath)
		logger.Info("Opening SQLite storage", "path", path)
		s, err := sqlite.New(ctx, path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case driverPostgres:
		dsn := v.GetString(cfgKeyDBDSN)
		if dsn == "" {
			return nil, errors.New("BOOKKEEPER_DB_DSN is required for the postgres driver")
		}
		logger.Info("Opening PostgreSQL storage", "dsn", redactDSN(dsn))
		s, err := postgres.New(ctx, dsn, v.GetDuration(cfgKeyDBTimeout))
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown db_driver %q (want %s or %s)", driver, driverSQLite, driverPostgres)
	}
}

func newLogger(v *viper.Viper, out io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch v.GetString(cfgKeyLogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(out, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", v.GetString(cfgKeyLogFormat))
	}
}

// redactDSN скрывает учетные данные в строке подключения
func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
