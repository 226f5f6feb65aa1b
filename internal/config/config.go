// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept in the file; secrets such as the keyring
// file password come from the environment. Environment variables override the
// file, and command-line flags override both.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"portal/cli/internal/xdg"
)

// Store backends.
const (
	StoreKeychain = "keychain"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

// Config holds CLI settings.
type Config struct {
	LogLevel string      `json:"log_level" env:"PORTAL_LOG_LEVEL, overwrite"`
	API      APIConfig   `json:"api"`
	Store    StoreConfig `json:"store"`
}

// APIConfig locates the backend.
type APIConfig struct {
	BaseURL   string        `json:"base_url" env:"PORTAL_API_URL, overwrite"`
	Timeout   time.Duration `json:"timeout" env:"PORTAL_TIMEOUT, overwrite"`
	Endpoints Endpoints     `json:"endpoints"`
}

// Endpoints contains REST API endpoint paths.
type Endpoints struct {
	Login    string `json:"login" env:"PORTAL_ENDPOINT_LOGIN, overwrite"`       // e.g., "/api/auth/login"
	Register string `json:"register" env:"PORTAL_ENDPOINT_REGISTER, overwrite"` // e.g., "/api/auth/register"
	Users    string `json:"users" env:"PORTAL_ENDPOINT_USERS, overwrite"`       // e.g., "/api/usuarios"
	Version  string `json:"version" env:"PORTAL_ENDPOINT_VERSION, overwrite"`   // e.g., "/api/version"
}

// UserPath returns the per-user resource path, e.g. "/api/usuarios/42".
func (e Endpoints) UserPath(id string) string {
	return strings.TrimRight(e.Users, "/") + "/" + url.PathEscape(id)
}

// StoreConfig selects and configures the session store.
type StoreConfig struct {
	Backend string      `json:"backend" env:"PORTAL_STORE, overwrite"`
	Redis   RedisConfig `json:"redis"`
	// KeyringPassword unlocks the encrypted file keyring. Never written to disk.
	KeyringPassword string `json:"-" env:"PORTAL_KEYRING_PASSWORD, overwrite"`
}

// RedisConfig holds redis session store settings.
type RedisConfig struct {
	Addr       string        `json:"addr" env:"PORTAL_REDIS_ADDR, overwrite"`
	Password   string        `json:"-" env:"PORTAL_REDIS_PASSWORD, overwrite"`
	DB         int           `json:"db" env:"PORTAL_REDIS_DB, overwrite"`
	Prefix     string        `json:"prefix" env:"PORTAL_REDIS_PREFIX, overwrite"`
	SessionTTL time.Duration `json:"session_ttl" env:"PORTAL_SESSION_TTL, overwrite"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
		API: APIConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 10 * time.Second,
			Endpoints: Endpoints{
				Login:    "/api/auth/login",
				Register: "/api/auth/register",
				Users:    "/api/usuarios",
				Version:  "/api/version",
			},
		},
		Store: StoreConfig{
			Backend: StoreKeychain,
			Redis: RedisConfig{
				Addr:       "localhost:6379",
				Prefix:     "portal:session:",
				SessionTTL: 12 * time.Hour,
			},
		},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file over the defaults, then applies the environment.
// A missing file is not an error.
func Load(ctx context.Context) (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(ctx, p)
}

// LoadFile is Load with an explicit file path.
func LoadFile(ctx context.Context, p string) (Config, error) {
	c, err := ReadFile(p)
	if err != nil {
		return c, err
	}
	if err := envconfig.Process(ctx, &c); err != nil {
		return c, fmt.Errorf("environment: %w", err)
	}
	return c, nil
}

// ReadFile reads the config file over the defaults without consulting the
// environment. A missing file yields the defaults.
func ReadFile(p string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", p, err)
		}
	}
	return c, nil
}

// Validate reports settings that would make every request fail.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base url %q", c.API.BaseURL)
	}
	switch c.Store.Backend {
	case StoreKeychain, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("unknown store backend %q (want %s, %s or %s)", c.Store.Backend, StoreKeychain, StoreRedis, StoreMemory)
	}
	return nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
