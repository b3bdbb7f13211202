package config

import (
	"fmt"
	"net"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	AppHost                string        `mapstructure:"app_host" validate:"required"`
	AppPort                string        `mapstructure:"app_port" validate:"required,numeric"`
	DatabaseDriver         string        `mapstructure:"database_driver" validate:"oneof=sqlite postgres"`
	DatabaseDSN            string        `mapstructure:"database_dsn" validate:"required"`
	RedisHost              string        `mapstructure:"redis_host" validate:"required"`
	RedisPort              string        `mapstructure:"redis_port" validate:"required,numeric"`
	RedisPassword          string        `mapstructure:"redis_password"`
	RedisDB                int           `mapstructure:"redis_db" validate:"gte=0"`
	CacheTTL               time.Duration `mapstructure:"cache_ttl" validate:"gte=1s"`
	RateLimit              int           `mapstructure:"rate_limit_per_minute" validate:"gt=0"`
	ShutdownTimeoutSeconds int           `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	LogLevel               string        `mapstructure:"log_level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat              string        `mapstructure:"log_format" validate:"oneof=json text"`
	LogFile                string        `mapstructure:"log_file"`
}

var defaults = map[string]any{
	"app_host":                 "127.0.0.1",
	"app_port":                 "8080",
	"database_driver":          "sqlite",
	"database_dsn":             "tasks.db",
	"redis_host":               "127.0.0.1",
	"redis_port":               "6379",
	"redis_password":           "",
	"redis_db":                 0,
	"cache_ttl":                "10m",
	"rate_limit_per_minute":    60,
	"shutdown_timeout_seconds": 20,
	"log_level":                "info",
	"log_format":               "json",
	"log_file":                 "",
}

// NewViper returns a viper instance with every key defaulted and bound to
// its upper-case environment variable (app_port -> APP_PORT).
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) AppURL() string {
	return net.JoinHostPort(c.AppHost, c.AppPort)
}

func (c Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
