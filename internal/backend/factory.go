// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"

	"portal/cli/internal/config"
)

// TokenSource yields the bearer token to attach to requests, or "" for none.
type TokenSource func(ctx context.Context) string

// Option customizes the HTTP client.
type Option func(*HTTP)

// WithTokenSource attaches "Authorization: Bearer <token>" when src yields one.
func WithTokenSource(src TokenSource) Option {
	return func(h *HTTP) { h.tokens = src }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) { h.userAgent = ua }
}

// New creates a backend API implementation for the configured base URL.
func New(cfg config.APIConfig, opts ...Option) API {
	h := newHTTP(cfg)
	for _, opt := range opts {
		opt(h)
	}
	return h
}
