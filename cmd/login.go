// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"portal/cli/internal/terminal"
)

var (
	loginEmail string
	loginForce bool
)

// loginCmd signs in with email and password.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in with email and password",
	Long: `The login command asks for your email and password, signs in against the
backend and saves the returned user in the session store.

If a session already exists it is kept unless --force is given. When stdin is
not a terminal the email and password are read as lines from stdin.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if a.session.IsAuthenticated() && !loginForce {
			pterm.Info.Printf("Already logged in as %s\n", displayName(a.session.User()))
			return nil
		}

		p := terminal.Stdio()
		email := loginEmail
		if email == "" {
			if email, err = p.Line("Email: "); err != nil {
				return err
			}
		}
		password, err := p.Secret("Password: ")
		if err != nil {
			return err
		}

		stop := func() {}
		if p.Interactive() {
			stop = startInlineSpinner(os.Stderr, "Signing in", spinnerFrames, 120*time.Millisecond)
		}
		err = a.session.Login(ctx, email, password)
		stop()
		if err != nil {
			return reportSessionError(err, "logging in")
		}

		pterm.Success.Printf("Welcome back, %s!\n", displayName(a.session.User()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().BoolVar(&loginForce, "force", false, "Sign in again even if a session exists")
}
