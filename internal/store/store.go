// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package store defines the session store: a small key-value text store that
// survives between CLI invocations and holds the serialized user and token.
//
// Implementations live here (Memory, Redis) and in internal/keychain (the OS
// credential store used by default).
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Keys used for the session entries.
const (
	KeyUser  = "user"
	KeyToken = "token"
	// KeyAuthToken mirrors KeyToken for consumers that read the older name,
	// including the backend client's bearer token source.
	KeyAuthToken = "authToken"
)

// Store is a session-scoped key-value text store.
// Remove must succeed when the key does not exist.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Lookup is a convenience wrapper that folds ErrNotFound into ok=false.
func Lookup(ctx context.Context, s Store, key string) (value string, ok bool, err error) {
	v, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}
