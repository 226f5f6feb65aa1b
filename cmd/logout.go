// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved user and token",
	Long: `The logout command clears the session: the saved user, the token and its
legacy "authToken" copy are removed from the session store. Running it when
already logged out is harmless.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.session.Logout(ctx); err != nil {
			return reportSessionError(err, "logging out")
		}

		fmt.Println("✅ You have been logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
