// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the operator-facing logger and utilities for keeping
// credentials out of it.
//
// Session operations log every caught failure with zerolog. Anything that may
// echo a request or response body goes through Mask first so passwords and
// tokens never reach the log.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)((?:password|contrasena)=)([^\s;&]+)`)
	reToken    = regexp.MustCompile(`(?i)((?:auth)?token=|bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reJSONKey  = regexp.MustCompile(`(?i)("(?:password|contrasena|token|authToken)"\s*:\s*")([^"]*)(")`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;&]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// It understands key=value pairs, bearer headers and flat JSON string fields.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reJSONKey.ReplaceAllString(out, "$1***$3")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	return out
}
