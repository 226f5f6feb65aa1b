// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// Every session operation reports failure through an *E so callers can tell a
// rejected request from a malformed response or a storage problem without parsing
// messages.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// RequestFailed indicates the API client call was rejected (network or non-2xx).
	RequestFailed Kind = "request_failed"
	// MissingUser indicates the backend answered without a user record.
	MissingUser Kind = "missing_user"
	// MissingToken indicates a registration response without a token.
	MissingToken Kind = "missing_token"
	// InvalidUser indicates a user record that cannot be sent (e.g. no id).
	InvalidUser Kind = "invalid_user"
	// InvalidAuthData indicates SetAuthData was called with an empty user or token.
	InvalidAuthData Kind = "invalid_auth_data"
	// InvalidInput indicates credentials that failed validation before any request.
	InvalidInput Kind = "invalid_input"
	// StoreFailed indicates the session store rejected a write or removal.
	StoreFailed Kind = "store_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Is matches another *E with the same Kind, so errors.Is(err, errors.New(k, ""))
// works as a kind check.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
