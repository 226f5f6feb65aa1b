// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"portal/cli/internal/auth"
)

// profileCmd groups profile operations.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

// profileSetCmd updates fields of the signed-in user on the backend.
var profileSetCmd = &cobra.Command{
	Use:   "set key=value [key=value...]",
	Short: "Update profile fields",
	Long: `The profile set command changes fields of your user record and sends the whole
record to the backend. Values that parse as JSON (numbers, booleans, null,
objects) are sent as such; anything else is sent as a string.

Example: portal profile set name="Ana María" telefono=5551234`,
	Args: cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if !a.session.IsAuthenticated() {
			notLoggedIn()
			return nil
		}

		updated, err := applyAssignments(a.session.User(), args)
		if err != nil {
			return err
		}
		if err := a.session.UpdateProfile(ctx, updated); err != nil {
			return reportSessionError(err, "updating your profile")
		}

		pterm.Success.Println("Profile updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
}

// applyAssignments returns a copy of u with each key=value assignment applied.
func applyAssignments(u auth.User, assignments []string) (auth.User, error) {
	out := u.Clone()
	if out == nil {
		out = auth.User{}
	}
	for _, as := range assignments {
		key, raw, ok := strings.Cut(as, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", as)
		}
		if key == auth.FieldID {
			return nil, fmt.Errorf("the %q field cannot be changed", auth.FieldID)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		out[key] = v
	}
	return out, nil
}
