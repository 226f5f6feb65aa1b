// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"portal/cli/internal/auth"
	apperrors "portal/cli/internal/errors"
	"portal/cli/internal/httperrors"
	"portal/cli/internal/logging"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line until the returned stop function is called, which also clears
// the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
		})
	}
}

// displayName picks the friendliest identifier a user record offers.
func displayName(u auth.User) string {
	for _, k := range []string{auth.FieldName, auth.FieldEmail} {
		if v, ok := u[k].(string); ok && v != "" {
			return v
		}
	}
	if id := u.ID(); id != "" {
		return id
	}
	return "user"
}

// reportSessionError prints a user-facing explanation of a failed session
// operation and returns the error for the exit status. action describes what
// was being attempted, e.g. "logging in".
func reportSessionError(err error, action string) error {
	switch apperrors.KindOf(err) {
	case apperrors.RequestFailed:
		return httperrors.FormatNetworkError(err, action)
	case apperrors.InvalidInput, apperrors.InvalidUser, apperrors.InvalidAuthData:
		var e *apperrors.E
		if errors.As(err, &e) {
			pterm.Error.Println(e.Message)
		}
	case apperrors.MissingUser, apperrors.MissingToken:
		pterm.Error.Printf("The server sent an incomplete response while %s\n", action)
	case apperrors.StoreFailed:
		pterm.Warning.Println("Your session could not be saved; it will not survive this command.")
	default:
		pterm.Error.Println(logging.PresentError("Failed while "+action, err))
	}
	return err
}

func notLoggedIn() {
	fmt.Println("🔒 You're not logged in yet!")
	fmt.Println("   Run 'portal login' to get started.")
}
