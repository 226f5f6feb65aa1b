// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the API client the session holder talks to.
// It defines the API contract (JSON POST/PUT returning an open-ended record)
// and an HTTP implementation of it.
package backend

import "context"

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
// A rejected call (network failure or non-2xx status) is returned as an error.
type API interface {
	// PostData sends body as JSON to path with POST.
	PostData(ctx context.Context, path string, body any) (*Response, error)
	// PutData sends body as JSON to path with PUT.
	PutData(ctx context.Context, path string, body any) (*Response, error)
	// GetVersion returns the backend version string, "unknown" when not reported.
	GetVersion(ctx context.Context) (string, error)
}

// Response is a successful backend reply.
type Response struct {
	StatusCode int
	// Data is the decoded JSON object body. It is nil when the body was empty
	// or the JSON literal null.
	Data map[string]any
}
