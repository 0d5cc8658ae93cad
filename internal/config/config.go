// Package config собирает конфигурацию сервера из значений по умолчанию,
// YAML файла, .env файла, переменных окружения UNIPRESS_* и флагов.
// Каждый следующий источник перекрывает предыдущий.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "UNIPRESS_"

// minSecretLen минимальная длина секрета подписи JWT
const minSecretLen = 16

// Config конфигурация сервера
type Config struct {
	Server struct {
		Addr            string        `yaml:"addr"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Storage struct {
		DBPath               string        `yaml:"db_path"`
		TokenCleanupInterval time.Duration `yaml:"token_cleanup_interval"`
	} `yaml:"storage"`
	Auth struct {
		JWTSecret       string        `yaml:"jwt_secret"`
		AccessTokenTTL  time.Duration `yaml:"access_token_ttl"`
		RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl"`
	} `yaml:"auth"`
	RateLimit struct {
		Requests     int           `yaml:"requests"`
		Window       time.Duration `yaml:"window"`
		AuthRequests int           `yaml:"auth_requests"`
	} `yaml:"rate_limit"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text|json
	} `yaml:"logging"`

	// ShowVersion выставляется флагом --version
	ShowVersion bool `yaml:"-"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Storage.DBPath = "unipress.db"
	cfg.Storage.TokenCleanupInterval = time.Hour
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTL = 30 * 24 * time.Hour
	cfg.RateLimit.Requests = 300
	cfg.RateLimit.Window = time.Minute
	cfg.RateLimit.AuthRequests = 10
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	return cfg
}

// Load читает конфигурацию; args без имени программы (os.Args[1:])
func Load(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("unipress-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", "", "Path to YAML config file")
	envFile := fs.String("env-file", ".env", "Path to .env file")
	addr := fs.String("addr", cfg.Server.Addr, "HTTP listen address")
	dbPath := fs.String("db", cfg.Storage.DBPath, "SQLite database path")
	logLevel := fs.String("log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	setFlags := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	// .env не перекрывает уже заданные переменные окружения
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %s: %w", *envFile, err)
	}

	path := *configPath
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// явно заданные флаги важнее остальных источников
	if setFlags["addr"] {
		cfg.Server.Addr = *addr
	}
	if setFlags["db"] {
		cfg.Storage.DBPath = *dbPath
	}
	if setFlags["log-level"] {
		cfg.Logging.Level = *logLevel
	}

	if cfg.ShowVersion {
		return cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv применяет переменные окружения UNIPRESS_*
func (c *Config) applyEnv() error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) error {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
		}
		*dst = d
		return nil
	}
	num := func(name string, dst *int) error {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
		return nil
	}

	str("ADDR", &c.Server.Addr)
	str("DB_PATH", &c.Storage.DBPath)
	str("JWT_SECRET", &c.Auth.JWTSecret)
	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)

	return errors.Join(
		dur("SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout),
		dur("TOKEN_CLEANUP_INTERVAL", &c.Storage.TokenCleanupInterval),
		dur("ACCESS_TOKEN_TTL", &c.Auth.AccessTokenTTL),
		dur("REFRESH_TOKEN_TTL", &c.Auth.RefreshTokenTTL),
		dur("RATE_LIMIT_WINDOW", &c.RateLimit.Window),
		num("RATE_LIMIT_REQUESTS", &c.RateLimit.Requests),
		num("RATE_LIMIT_AUTH_REQUESTS", &c.RateLimit.AuthRequests),
	)
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server address is required"))
	}
	if c.Storage.DBPath == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if len(c.Auth.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("jwt secret must be at least %d characters (set %sJWT_SECRET)", minSecretLen, EnvPrefix))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("access token ttl must be positive"))
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		errs = append(errs, errors.New("refresh token ttl must be longer than access token ttl"))
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.AuthRequests <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate limit values must be positive"))
	}
	if c.Storage.TokenCleanupInterval <= 0 {
		errs = append(errs, errors.New("token cleanup interval must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel переводит уровень логирования в slog.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return level, nil
}

// NewLogger создает логгер сервера по настройкам
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
