// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"fmt"
	"math"
	"strconv"
)

// Field names the session holder relies on. Everything else in a user record is
// opaque and passed through untouched.
const (
	FieldID     = "id"
	FieldRole   = "rol"
	FieldRoleID = "rol_id"
	FieldToken  = "token"
	FieldEmail  = "email"
	FieldName   = "name"
)

// User is an open-ended user record as returned by the backend.
// A usable session user carries a role identifier under "rol_id".
type User map[string]any

// Clone returns a shallow copy of u. Nil stays nil.
func (u User) Clone() User {
	if u == nil {
		return nil
	}
	c := make(User, len(u))
	for k, v := range u {
		c[k] = v
	}
	return c
}

// ID returns the record's "id" rendered as a string, or "" when absent.
func (u User) ID() string {
	return scalarString(u[FieldID])
}

// Role returns the role identifier rendered as a string, or "" when absent.
func (u User) Role() string {
	return scalarString(u[FieldRoleID])
}

// HasRole reports whether the record carries a usable role identifier:
// present and not false, zero, or the empty string.
func (u User) HasRole() bool {
	if u == nil {
		return false
	}
	return truthy(u[FieldRoleID])
}

// userFromResponse copies a login/register response into a user record,
// taking the role identifier from the backend's "rol" field.
func userFromResponse(data map[string]any) User {
	u := User(data).Clone()
	if rol, ok := data[FieldRole]; ok {
		u[FieldRoleID] = rol
	} else {
		delete(u, FieldRoleID)
	}
	return u
}

// tokenString returns a usable token from a response field: a non-empty
// string or a non-zero number. Anything else yields "".
func tokenString(v any) string {
	switch v.(type) {
	case string, float64:
		if truthy(v) {
			return scalarString(v)
		}
	}
	return ""
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case int32:
		return t != 0
	case uint:
		return t != 0
	case uint64:
		return t != 0
	default:
		return true
	}
}
