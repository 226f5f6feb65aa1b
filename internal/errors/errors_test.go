// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	base := stderrors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: base, want: ""},
		{name: "direct", err: New(MissingToken, "no token"), want: MissingToken},
		{name: "wrapped cause", err: Wrap(RequestFailed, "login", base), want: RequestFailed},
		{name: "behind fmt wrap", err: fmt.Errorf("register: %w", New(StoreFailed, "set")), want: StoreFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("op: %w", Wrap(RequestFailed, "login", stderrors.New("boom")))
	if !stderrors.Is(err, New(RequestFailed, "")) {
		t.Error("expected errors.Is to match on kind")
	}
	if stderrors.Is(err, New(MissingUser, "")) {
		t.Error("expected errors.Is not to match a different kind")
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(StoreFailed, "persist user", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
	if got, want := err.Error(), "store_failed: persist user: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
