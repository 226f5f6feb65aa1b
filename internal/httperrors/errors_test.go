// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/pterm/pterm"

	"portal/cli/internal/backend"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{name: "unauthorized", err: &backend.StatusError{Code: 401}, want: CategoryUnauthorized},
		{name: "wrapped unauthorized", err: fmt.Errorf("login: %w", &backend.StatusError{Code: 401}), want: CategoryUnauthorized},
		{name: "conflict", err: &backend.StatusError{Code: 409, Body: "email taken"}, want: CategoryRejected},
		{name: "bad gateway", err: &backend.StatusError{Code: 502}, want: CategoryServer},
		{name: "deadline", err: context.DeadlineExceeded, want: CategoryTimeout},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "api.invalid"}, want: CategoryDNS},
		{name: "refused", err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), want: CategoryConnectionRefused},
		{name: "tls", err: errors.New("x509: certificate signed by unknown authority"), want: CategoryTLS},
		{name: "other", err: errors.New("boom"), want: CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatNetworkErrorWraps(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	if FormatNetworkError(nil, "logging in") != nil {
		t.Error("expected nil for nil error")
	}

	cause := &backend.StatusError{Code: 401}
	err := FormatNetworkError(cause, "logging in")
	if !errors.Is(err, backend.ErrUnauthorized) {
		t.Errorf("expected wrapped error to keep its cause, got %v", err)
	}
}

func TestExtractHostFromURL(t *testing.T) {
	if got := ExtractHostFromURL("https://api.example.com/api"); got != "api.example.com" {
		t.Errorf("ExtractHostFromURL() = %q", got)
	}
	if got := ExtractHostFromURL("::"); got != "server" {
		t.Errorf("ExtractHostFromURL(invalid) = %q, want server", got)
	}
}
