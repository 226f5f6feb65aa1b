// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"portal/cli/internal/config"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "portal-cli"
	// maxErrorBody bounds how much of a failed response is kept in StatusError.
	maxErrorBody = 2048
)

// HTTP implements API over REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://portal.example")
	baseURL string
	// versionPath is the endpoint queried by GetVersion
	versionPath string
	// client is the underlying HTTP client with configured timeout
	client    *http.Client
	userAgent string
	tokens    TokenSource
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
func newHTTP(cfg config.APIConfig) *HTTP {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTP{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		versionPath: cfg.Endpoints.Version,
		client:      &http.Client{Timeout: timeout},
		userAgent:   defaultUserAgent,
	}
}

// setStandardHeaders applies headers shared by every request.
func (h *HTTP) setStandardHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if h.tokens != nil {
		if token := h.tokens(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// send issues a JSON request and decodes the JSON object reply.
func (h *HTTP) send(ctx context.Context, method, path string, body any) (*Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(ctx, req)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}

	data, err := decodeObject(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return &Response{StatusCode: resp.StatusCode, Data: data}, nil
}

// decodeObject decodes a JSON object body. Empty bodies and null decode to nil.
func decodeObject(r io.Reader) (map[string]any, error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("expected JSON object, got %T", raw)
	}
}

// PostData calls POST <path> with a JSON body.
func (h *HTTP) PostData(ctx context.Context, path string, body any) (*Response, error) {
	return h.send(ctx, http.MethodPost, path, body)
}

// PutData calls PUT <path> with a JSON body.
func (h *HTTP) PutData(ctx context.Context, path string, body any) (*Response, error) {
	return h.send(ctx, http.MethodPut, path, body)
}

// GetVersion calls GET /api/version and returns the version string when available.
// No authentication required. This can be used to check connectivity to the backend service.
func (h *HTTP) GetVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+h.versionPath, nil)
	if err != nil {
		return "", err
	}
	h.setStandardHeaders(ctx, req)
	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "unknown", nil
	}
	var out struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Version == "" {
		return "unknown", nil
	}
	return out.Version, nil
}
