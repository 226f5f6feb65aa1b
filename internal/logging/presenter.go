// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"strings"
)

// PresentError renders err for the terminal as "action: message", masking
// secrets. When the error wraps a cause whose text is not already part of the
// message, the innermost cause is appended in parentheses. Line breaks from
// backend bodies are collapsed onto one line.
func PresentError(action string, err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	root := err
	for next := errors.Unwrap(root); next != nil; next = errors.Unwrap(root) {
		root = next
	}
	if cause := root.Error(); root != err && cause != "" && !strings.Contains(msg, cause) {
		msg += " (" + cause + ")"
	}
	msg = strings.Join(strings.Fields(msg), " ")
	return action + ": " + Mask(msg)
}
