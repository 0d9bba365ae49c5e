// config/config.go
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the process needs at startup.
type Config struct {
	Port            string `mapstructure:"PORT"`
	Env             string `mapstructure:"ENV"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	RateLimitPerMin int    `mapstructure:"RATE_LIMIT_PER_MIN"`

	Database DatabaseConfig `mapstructure:",squash"`
}

// DatabaseConfig describes how to reach the services store.
type DatabaseConfig struct {
	URL            string        `mapstructure:"DB_URL"`
	Host           string        `mapstructure:"DB_HOST"`
	Port           string        `mapstructure:"DB_PORT"`
	User           string        `mapstructure:"DB_USER"`
	Password       string        `mapstructure:"DB_PASSWORD"`
	Name           string        `mapstructure:"DB_DATABASE"`
	SSLMode        string        `mapstructure:"DB_SSLMODE"`
	ConnectTimeout time.Duration `mapstructure:"DB_CONNECT_TIMEOUT"`
}

var defaults = map[string]any{
	"PORT":               "8080",
	"ENV":                "development",
	"LOG_LEVEL":          "info",
	"RATE_LIMIT_PER_MIN": 200,
	"DB_URL":             "",
	"DB_HOST":            "localhost",
	"DB_PORT":            "5432",
	"DB_USER":            "",
	"DB_PASSWORD":        "",
	"DB_DATABASE":        "",
	"DB_SSLMODE":         "disable",
	"DB_CONNECT_TIMEOUT": 10 * time.Second,
}

// LoadConfig reads .env (if any) and the process environment into a Config.
func LoadConfig(envFiles ...string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether ENV is set to production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN returns the postgres connection string. DB_URL wins when set.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	if d.User != "" {
		u.User = url.UserPassword(d.User, d.Password)
	}

	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	if d.ConnectTimeout > 0 {
		q.Set("connect_timeout", fmt.Sprintf("%d", int(d.ConnectTimeout.Seconds())))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Redacted is DSN with the password masked, for logs.
func (d DatabaseConfig) Redacted() string {
	u, err := url.Parse(d.DSN())
	if err != nil {
		return "<unparseable dsn>"
	}
	return u.Redacted()
}
