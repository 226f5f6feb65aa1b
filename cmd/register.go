// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"portal/cli/internal/terminal"
)

var (
	registerName  string
	registerEmail string
)

// registerCmd creates an account and signs in with it.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create an account and sign in",
	Long: `The register command creates an account with a name, email and password.
The backend answers with the new user and a token, both of which are saved in
the session store so you are signed in right away.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		p := terminal.Stdio()
		name, email := registerName, registerEmail
		if name == "" {
			if name, err = p.Line("Name: "); err != nil {
				return err
			}
		}
		if email == "" {
			if email, err = p.Line("Email: "); err != nil {
				return err
			}
		}
		password, err := p.Secret("Password: ")
		if err != nil {
			return err
		}
		if p.Interactive() {
			confirm, err := p.Secret("Confirm password: ")
			if err != nil {
				return err
			}
			if confirm != password {
				pterm.Error.Println("Passwords do not match")
				return errors.New("passwords do not match")
			}
		}

		stop := func() {}
		if p.Interactive() {
			stop = startInlineSpinner(os.Stderr, "Creating account", spinnerFrames, 120*time.Millisecond)
		}
		err = a.session.Register(ctx, name, email, password)
		stop()
		if err != nil {
			return reportSessionError(err, "registering")
		}

		pterm.Success.Printf("Account created. Welcome, %s!\n", displayName(a.session.User()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Display name")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email")
}
