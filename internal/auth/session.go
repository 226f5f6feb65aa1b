// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth holds the client-side authentication session: the current user,
// the token, and whether the session counts as authenticated.
//
// A Session is seeded once from the session store when it is created, mutated by
// Login, Register, UpdateProfile and SetAuthData, and cleared by Logout. Every
// mutation writes memory first and then the store; there is no transaction
// spanning the two.
package auth

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"portal/cli/internal/backend"
	"portal/cli/internal/config"
	"portal/cli/internal/logging"
	"portal/cli/internal/store"
)

// State is a point-in-time copy of the session.
type State struct {
	User            User
	Token           string
	IsAuthenticated bool
}

// Session is the authentication session state holder.
// It is safe for concurrent use; concurrent operations are last-write-wins.
type Session struct {
	store     store.Store
	api       backend.API
	endpoints config.Endpoints
	log       zerolog.Logger
	validate  *validator.Validate

	mu            sync.RWMutex
	user          User
	token         string
	authenticated bool
	listeners     []func(State)
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the operator-facing logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithEndpoints overrides the backend endpoint paths.
func WithEndpoints(e config.Endpoints) Option {
	return func(s *Session) { s.endpoints = e }
}

// New creates a Session and seeds it from st.
//
// A stored user is restored only if it parses as a JSON object with a role
// identifier; anything else is logged and ignored, leaving the entry in the
// store. A stored token is restored whenever present.
func New(ctx context.Context, st store.Store, api backend.API, opts ...Option) *Session {
	s := &Session{
		store:     st,
		api:       api,
		endpoints: config.Default().API.Endpoints,
		log:       zerolog.Nop(),
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed(ctx)
	return s
}

func (s *Session) seed(ctx context.Context) {
	raw, ok, err := store.Lookup(ctx, s.store, store.KeyUser)
	if err != nil {
		s.log.Error().Err(err).Str("key", store.KeyUser).Msg("read stored user")
	}
	if ok && raw != "" {
		var parsed User
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			s.log.Error().Err(err).Msg("stored user is not valid JSON")
		} else if !parsed.HasRole() {
			s.log.Error().Str("user", logging.Mask(raw)).Msg("stored user has no valid role")
		} else {
			s.user = parsed
			s.authenticated = true
		}
	}

	token, ok, err := store.Lookup(ctx, s.store, store.KeyToken)
	if err != nil {
		s.log.Error().Err(err).Str("key", store.KeyToken).Msg("read stored token")
	}
	if ok && token != "" {
		s.token = token
	}
}

// User returns a copy of the current user, nil when there is none.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// Token returns the current token, "" when there is none.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Snapshot returns the whole state at once.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	return State{User: s.user.Clone(), Token: s.token, IsAuthenticated: s.authenticated}
}

// OnChange registers fn to be called with the new state after every mutation.
// Callbacks run synchronously on the goroutine that performed the mutation.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// mutate applies fn under the lock and then notifies listeners.
func (s *Session) mutate(fn func()) {
	s.mu.Lock()
	fn()
	st := s.snapshotLocked()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(st)
	}
}
