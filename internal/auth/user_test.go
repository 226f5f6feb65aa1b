// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import "testing"

func TestUserHasRole(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "nil user", user: nil, want: false},
		{name: "missing", user: User{"name": "Ana"}, want: false},
		{name: "null", user: User{"rol_id": nil}, want: false},
		{name: "zero", user: User{"rol_id": float64(0)}, want: false},
		{name: "empty string", user: User{"rol_id": ""}, want: false},
		{name: "false", user: User{"rol_id": false}, want: false},
		{name: "number", user: User{"rol_id": float64(2)}, want: true},
		{name: "go int", user: User{"rol_id": 1}, want: true},
		{name: "string", user: User{"rol_id": "admin"}, want: true},
		{name: "object", user: User{"rol_id": map[string]any{}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.HasRole(); got != tt.want {
				t.Errorf("HasRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserID(t *testing.T) {
	tests := []struct {
		user User
		want string
	}{
		{user: User{"id": float64(42)}, want: "42"},
		{user: User{"id": "abc"}, want: "abc"},
		{user: User{"id": float64(1.5)}, want: "1.5"},
		{user: User{}, want: ""},
	}
	for _, tt := range tests {
		if got := tt.user.ID(); got != tt.want {
			t.Errorf("ID() of %v = %q, want %q", tt.user, got, tt.want)
		}
	}
}

func TestUserFromResponseDoesNotAliasInput(t *testing.T) {
	data := map[string]any{"id": "1", "rol": "admin"}
	u := userFromResponse(data)
	u["name"] = "changed"

	if _, ok := data["name"]; ok {
		t.Error("userFromResponse must copy the response")
	}
	if _, ok := data["rol_id"]; ok {
		t.Error("response must not gain rol_id")
	}
	if u.Role() != "admin" {
		t.Errorf("Role() = %q, want admin", u.Role())
	}
}
