// Package xdg provides helpers to resolve XDG Base Directory paths for portal.
// It falls back to the traditional ~/.config and ~/.local/state locations when
// the XDG environment variables are unset and creates directories with private
// permissions since they hold session-related files.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under each XDG base directory.
const AppName = "portal"

// ConfigDir returns the XDG config directory for portal.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/portal when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for portal.
// The encrypted keyring file fallback lives here.
// It falls back to ~/.local/state/portal when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func ensure(env, homeRel string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
