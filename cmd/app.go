// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"portal/cli/internal/auth"
	"portal/cli/internal/backend"
	"portal/cli/internal/config"
	"portal/cli/internal/keychain"
	"portal/cli/internal/logging"
	"portal/cli/internal/store"
	"portal/cli/internal/xdg"
)

// app bundles everything a command needs. Build it with loadApp and release
// it with close.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	store   store.Store
	api     backend.API
	session *auth.Session
	closers []func() error
}

// loadApp resolves configuration (file, environment, flags), opens the session
// store and seeds the session from it.
func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}
	if flagStore != "" {
		cfg.Store.Backend = flagStore
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{
		cfg: cfg,
		log: logging.New(logging.Options{Level: cfg.LogLevel, Pretty: true}),
	}

	st, closeStore, err := openStore(ctx, cfg, a.log)
	if err != nil {
		return nil, err
	}
	a.store = st
	if closeStore != nil {
		a.closers = append(a.closers, closeStore)
	}

	a.api = backend.New(cfg.API,
		backend.WithTokenSource(bearerFromStore(st)),
		backend.WithUserAgent("portal-cli/"+Version),
	)
	a.session = auth.New(ctx, st, a.api,
		auth.WithLogger(a.log),
		auth.WithEndpoints(cfg.API.Endpoints),
	)
	return a, nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c()
	}
}

// openStore opens the configured session store.
func openStore(ctx context.Context, cfg config.Config, log zerolog.Logger) (store.Store, func() error, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		return store.NewMemory(), nil, nil
	case config.StoreRedis:
		r, err := store.ConnectRedis(ctx, store.RedisConfig{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
			Prefix:   cfg.Store.Redis.Prefix,
			TTL:      cfg.Store.Redis.SessionTTL,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	default:
		stateDir, err := xdg.StateDir()
		if err != nil {
			return nil, nil, err
		}
		m, err := keychain.NewManager(keychain.Config{
			ServiceName:  keychain.DefaultServiceName,
			FileDir:      filepath.Join(stateDir, "keyring"),
			FilePassword: cfg.Store.KeyringPassword,
			PreferNative: true,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		return m, nil, nil
	}
}

// bearerFromStore reads the token the backend expects, preferring the
// "authToken" entry and falling back to "token".
func bearerFromStore(st store.Store) backend.TokenSource {
	return func(ctx context.Context) string {
		for _, k := range []string{store.KeyAuthToken, store.KeyToken} {
			if v, ok, _ := store.Lookup(ctx, st, k); ok && v != "" {
				return v
			}
		}
		return ""
	}
}
