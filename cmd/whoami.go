// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"portal/cli/internal/auth"
)

var whoamiJSON bool

// whoamiCmd shows the session restored from the session store.
// It does not contact the backend.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show current authenticated account",
	Long: `The whoami command displays the user saved in the session store, its role,
and a summary of the saved token. Token claims are decoded for display only and
are not verified; the backend remains the authority on whether it is valid.

If no valid session exists, it will indicate that the user is not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		st := a.session.Snapshot()
		if !st.IsAuthenticated {
			notLoggedIn()
			return nil
		}

		if whoamiJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(st.User)
		}

		fmt.Printf("👤 Current user: %s\n", displayName(st.User))
		if role := st.User.Role(); role != "" {
			fmt.Printf("   Role: %s\n", role)
		}
		fmt.Printf("   Token: %s\n", describeToken(st.Token, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "Print the saved user record as JSON")
}

// describeToken summarizes a token without printing it.
func describeToken(token string, now time.Time) string {
	if token == "" {
		return "none"
	}
	info := auth.InspectToken(token, now)
	if !info.JWT {
		return "opaque"
	}
	switch {
	case info.ExpiresAt.IsZero():
		return "JWT, no expiry"
	case info.Expired:
		return fmt.Sprintf("JWT, expired %s", info.ExpiresAt.Local().Format(time.RFC1123))
	default:
		return fmt.Sprintf("JWT, expires %s", info.ExpiresAt.Local().Format(time.RFC1123))
	}
}
