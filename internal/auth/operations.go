// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"encoding/json"

	apperrors "portal/cli/internal/errors"
	"portal/cli/internal/logging"
	"portal/cli/internal/store"
)

type loginRequest struct {
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password.
//
// On success the returned user becomes the session user and is persisted.
// Login does not set or persist a token; the login endpoint is not expected
// to return one. A reply without "rol" still authenticates this process, but
// the stored user will not be restored by the next New.
func (s *Session) Login(ctx context.Context, email, password string) error {
	const op = "login"
	if e := s.checkInput(loginInput{Email: email, Password: password}); e != nil {
		return s.fail(op, e)
	}

	resp, err := s.api.PostData(ctx, s.endpoints.Login, loginRequest{Email: email, Contrasena: password})
	if err != nil {
		return s.fail(op, apperrors.Wrap(apperrors.RequestFailed, "login request", err))
	}
	s.log.Debug().Str("op", op).Int("fields", len(resp.Data)).Msg("login response")
	if resp.Data == nil {
		return s.fail(op, apperrors.New(apperrors.MissingUser, "login response has no user"))
	}

	u := userFromResponse(resp.Data)
	s.mutate(func() {
		s.user = u
		s.authenticated = true
	})

	if e := s.persistUser(ctx, u); e != nil {
		return s.fail(op, e)
	}
	s.log.Info().Str("op", op).Str("user", u.ID()).Msg("logged in")
	return nil
}

// Register creates an account and signs in with the returned user and token.
// A response without a token fails before anything is written. The token is
// stored under both "token" and "authToken" so an older "authToken" cannot
// outlive it. A numeric token is accepted and stored in decimal form.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	const op = "register"
	if e := s.checkInput(registerInput{Name: name, Email: email, Password: password}); e != nil {
		return s.fail(op, e)
	}

	resp, err := s.api.PostData(ctx, s.endpoints.Register, registerRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return s.fail(op, apperrors.Wrap(apperrors.RequestFailed, "register request", err))
	}
	if resp.Data == nil {
		return s.fail(op, apperrors.New(apperrors.MissingUser, "register response has no body"))
	}
	token := tokenString(resp.Data[FieldToken])
	if token == "" {
		return s.fail(op, apperrors.New(apperrors.MissingToken, "token missing from server response"))
	}

	u := userFromResponse(resp.Data)
	s.mutate(func() {
		s.user = u
		s.token = token
		s.authenticated = true
	})

	if e := s.persistUser(ctx, u); e != nil {
		return s.fail(op, e)
	}
	if e := s.persistToken(ctx, token); e != nil {
		return s.fail(op, e)
	}
	s.log.Info().Str("op", op).Str("user", u.ID()).Msg("registered")
	return nil
}

// UpdateProfile sends updated to the backend and replaces the session user
// with the server's reply. Nothing changes locally unless the request succeeds.
func (s *Session) UpdateProfile(ctx context.Context, updated User) error {
	const op = "update_profile"
	id := updated.ID()
	if id == "" {
		return s.fail(op, apperrors.New(apperrors.InvalidUser, "user record has no id"))
	}

	resp, err := s.api.PutData(ctx, s.endpoints.UserPath(id), updated)
	if err != nil {
		return s.fail(op, apperrors.Wrap(apperrors.RequestFailed, "update profile request", err))
	}
	if resp.Data == nil {
		return s.fail(op, apperrors.New(apperrors.MissingUser, "update response has no user"))
	}

	u := User(resp.Data).Clone()
	s.mutate(func() { s.user = u })

	if e := s.persistUser(ctx, u); e != nil {
		return s.fail(op, e)
	}
	s.log.Info().Str("op", op).Str("user", id).Msg("profile updated")
	return nil
}

// SetAuthData installs a user and token obtained elsewhere. Both are required;
// when either is missing nothing is changed. The token is also written under
// the legacy "authToken" key. The user's role is not checked, so a user without
// "rol_id" is authenticated here but not restored by the next New.
func (s *Session) SetAuthData(ctx context.Context, u User, token string) error {
	const op = "set_auth_data"
	if len(u) == 0 || token == "" {
		return s.fail(op, apperrors.New(apperrors.InvalidAuthData, "user and token are both required"))
	}

	u = u.Clone()
	s.mutate(func() {
		s.user = u
		s.token = token
		s.authenticated = true
	})

	if e := s.persistUser(ctx, u); e != nil {
		return s.fail(op, e)
	}
	if e := s.persistToken(ctx, token); e != nil {
		return s.fail(op, e)
	}
	s.log.Debug().Str("op", op).Str("user", u.ID()).Msg("auth data saved")
	return nil
}

// Logout clears the session in memory and in the store. It is idempotent.
// Memory is always cleared; an error only reports entries the store failed to remove.
func (s *Session) Logout(ctx context.Context) error {
	const op = "logout"
	s.mutate(func() {
		s.user = nil
		s.token = ""
		s.authenticated = false
	})

	var firstErr error
	for _, k := range []string{store.KeyUser, store.KeyToken, store.KeyAuthToken} {
		if err := s.store.Remove(ctx, k); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return s.fail(op, apperrors.Wrap(apperrors.StoreFailed, "remove session entries", firstErr))
	}
	return nil
}

// ClearAuthData is Logout under its older name.
func (s *Session) ClearAuthData(ctx context.Context) error { return s.Logout(ctx) }

func (s *Session) persistUser(ctx context.Context, u User) *apperrors.E {
	b, err := json.Marshal(u)
	if err != nil {
		return apperrors.Wrap(apperrors.StoreFailed, "encode user", err)
	}
	if err := s.store.Set(ctx, store.KeyUser, string(b)); err != nil {
		return apperrors.Wrap(apperrors.StoreFailed, "persist user", err)
	}
	return nil
}

// persistToken writes token under "token" and its "authToken" alias.
func (s *Session) persistToken(ctx context.Context, token string) *apperrors.E {
	var firstErr error
	for _, k := range []string{store.KeyToken, store.KeyAuthToken} {
		if err := s.store.Set(ctx, k, token); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return apperrors.Wrap(apperrors.StoreFailed, "persist token", firstErr)
	}
	return nil
}

// fail logs a caught failure and returns it.
func (s *Session) fail(op string, e *apperrors.E) error {
	s.log.Error().
		Str("op", op).
		Str("kind", string(e.Kind)).
		Msg(logging.Mask(e.Error()))
	return e
}
