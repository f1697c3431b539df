package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable the application reads.
const EnvPrefix = "SMARTANKI"

// Config holds application settings resolved from defaults, an optional
// YAML file and SMARTANKI_* environment variables (highest priority).
type Config struct {
	DB     string       `mapstructure:"db"`
	Server ServerConfig `mapstructure:"server"`
	Review ReviewConfig `mapstructure:"review"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// ReviewConfig bounds due-set requests.
type ReviewConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// RedisConfig enables the distributed per-card lock when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

// LogConfig selects the logger mode: "development" or "production".
type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8000",
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:8000",
			},
		},
		Review: ReviewConfig{
			DefaultLimit: 20,
			MaxLimit:     200,
		},
		Redis: RedisConfig{
			LockTTL: 5 * time.Second,
		},
		Log: LogConfig{
			Mode: "development",
		},
	}
}

// Load resolves the configuration. When path is empty, smartanki.yaml is
// looked up in the working directory and $XDG_CONFIG_HOME/smartanki; a
// missing file is not an error. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("smartanki")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.Review.DefaultLimit < 0 {
		return fmt.Errorf("review.default_limit must be >= 0, got %d", c.Review.DefaultLimit)
	}
	if c.Review.MaxLimit < c.Review.DefaultLimit {
		return fmt.Errorf("review.max_limit (%d) must be >= review.default_limit (%d)",
			c.Review.MaxLimit, c.Review.DefaultLimit)
	}
	if c.Redis.Addr != "" && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("redis.lock_ttl must be positive when redis.addr is set")
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can bind it on Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("db", d.DB)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("review.default_limit", d.Review.DefaultLimit)
	v.SetDefault("review.max_limit", d.Review.MaxLimit)
	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("redis.lock_ttl", d.Redis.LockTTL)
	v.SetDefault("log.mode", d.Log.Mode)
}

func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "smartanki"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "smartanki"), nil
}
