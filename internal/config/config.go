// Package config assembles process configuration from the environment.
// The resulting struct is built once at startup and handed to the
// components that need it; nothing reads ambient state afterwards.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config is the full process configuration.
type Config struct {
	Server ServerConfig
	Tron   TronConfig
	DB     DBConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string
}

// TronConfig configures the TRON node client.
type TronConfig struct {
	NodeURL string
	APIKey  string
}

// DBConfig configures the PostgreSQL connection.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DSN renders the config as a postgres connection URL.
func (c DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Load builds a Config from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: getEnv("LISTEN_ADDR", ":8000"),
		},
		Tron: TronConfig{
			NodeURL: getEnv("TRON_NODE", "https://api.trongrid.io"),
			APIKey:  getEnv("API_KEY_TRON", ""),
		},
		DB: DBConfig{
			Host:     getEnv("POSTGRES_HOST", "127.0.0.1"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "myuser"),
			Password: getEnv("POSTGRES_PASSWORD", "mypassword"),
			Name:     getEnv("POSTGRES_DB", "scalper"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
