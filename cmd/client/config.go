package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iudanet/bookkeeper/internal/client/session"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyServer      = "server"
	cfgKeyDB          = "db"
	cfgKeyState       = "state"
	cfgKeyConcurrency = "concurrency"
	cfgKeyTimeout     = "timeout"
	cfgKeyRateLimit   = "rate_limit"
	cfgKeyLogFile     = "log_file"
	cfgKeyLogLevel    = "log_level"

	defaultServer = "http://localhost:3000"
)

// loadConfig читает config.yaml из каталога конфигурации.
// Отсутствие файла не ошибка: используются значения по умолчанию.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyServer, defaultServer)
	v.SetDefault(cfgKeyDB, filepath.Join(configDir, "books.db"))
	v.SetDefault(cfgKeyState, filepath.Join(configDir, "state.db"))
	v.SetDefault(cfgKeyConcurrency, 4)
	v.SetDefault(cfgKeyTimeout, 30*time.Second)
	v.SetDefault(cfgKeyRateLimit, 0)
	v.SetDefault(cfgKeyLogLevel, "warn")

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("BOOKKEEPER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveConfigDir --config > $BOOKKEEPER_CONFIG_DIR > <user config dir>/bookkeeper
func resolveConfigDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("BOOKKEEPER_CONFIG_DIR"); env != "" {
		return env, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "bookkeeper"), nil
}

func sessionConfig(v *viper.Viper) session.Config {
	return session.Config{
		ServerURL:   v.GetString(cfgKeyServer),
		CachePath:   v.GetString(cfgKeyDB),
		StatePath:   v.GetString(cfgKeyState),
		Timeout:     v.GetDuration(cfgKeyTimeout),
		Concurrency: v.GetInt(cfgKeyConcurrency),
		RateLimit:   v.GetFloat64(cfgKeyRateLimit),
	}
}

// newLogger пишет в stderr или в ротируемый файл log_file.
// closer равен nil, если файл не используется.
func newLogger(v *viper.Viper) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer
	)
	if path := v.GetString(cfgKeyLogFile); path != "" {
		rotating := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out, closer = rotating, rotating
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}
