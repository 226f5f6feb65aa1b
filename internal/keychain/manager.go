// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides a thread-safe session store backed by the OS
// keychain/credential store.
//
// The Manager implements store.Store so the session holder can persist its user
// and token entries in macOS Keychain, Windows Credential Manager, the Secret
// Service, pass, or an encrypted file when nothing else is available.
package keychain

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
	"github.com/rs/zerolog"

	"portal/cli/internal/store"
)

// DefaultServiceName identifies our keychain/credential store namespace.
const DefaultServiceName = "portal"

// Config selects how the OS keyring is opened.
type Config struct {
	ServiceName string
	// FileDir is the directory for the encrypted file fallback.
	FileDir string
	// FilePassword unlocks the encrypted file fallback. When empty the file
	// backend is not offered.
	FilePassword string
	// PreferNative uses the macOS `security` command instead of the keyring
	// library on darwin.
	PreferNative bool
}

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
	log     zerolog.Logger
}

var _ store.Store = (*Manager)(nil)

// keychainBackend defines the interface for native keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// NewManager creates a keychain manager with the OS keyring initialized.
func NewManager(cfg Config, log zerolog.Logger) (*Manager, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	if cfg.PreferNative && runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend(cfg.ServiceName, log)
		if err == nil {
			return &Manager{backend: backend, log: log}, nil
		}
		log.Debug().Err(err).Msg("native keychain unavailable, using keyring library")
	}

	ring, err := openRing(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithKeyring(ring, log), nil
}

// NewWithKeyring wraps an already opened keyring.
func NewWithKeyring(ring keyring.Keyring, log zerolog.Logger) *Manager {
	return &Manager{ring: ring, log: log}
}

// openRing opens the OS keyring preferring native platform backends.
func openRing(cfg Config) (keyring.Keyring, error) {
	var allowed []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowed = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowed = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowed = []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	}
	if cfg.FilePassword != "" && cfg.FileDir != "" {
		allowed = append(allowed, keyring.FileBackend)
	}

	kc := keyring.Config{
		ServiceName:      cfg.ServiceName,
		AllowedBackends:  allowed,
		PassPrefix:       cfg.ServiceName,
		WinCredPrefix:    cfg.ServiceName,
		FileDir:          cfg.FileDir,
		FilePasswordFunc: keyring.FixedStringPrompt(cfg.FilePassword),
	}

	ring, err := keyring.Open(kc)
	if err != nil {
		if errors.Is(err, keyring.ErrNoAvailImpl) {
			return nil, errors.New("no secure storage available; set PORTAL_KEYRING_PASSWORD to use the encrypted file store, or choose --store=redis")
		}
		return nil, err
	}
	return ring, nil
}

// Get retrieves a value from the keychain.
// This method is thread-safe.
func (m *Manager) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		return m.backend.Get(key)
	}

	it, err := m.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(it.Data), nil
}

// Set stores a value in the keychain, replacing any previous one.
// This method is thread-safe.
func (m *Manager) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(key, value)
	}

	return m.ring.Set(keyring.Item{
		Key:         key,
		Data:        []byte(value),
		Label:       DefaultServiceName + " " + key,
		Description: "portal session entry",
	})
}

// Remove deletes a key. Missing keys are not an error.
// This method is thread-safe.
func (m *Manager) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Delete(key)
	}

	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
