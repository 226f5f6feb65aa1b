// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"portal/cli/internal/auth"
)

var (
	importUserFile string
	importToken    string
)

// importCmd installs a user and token obtained outside the CLI, for example
// from the web front-end or an administrator.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Save a user record and token obtained elsewhere",
	Long: `The import command stores a user record (JSON object) and a token as the
current session, without contacting the backend. Both are required.

The token is taken from --token, or from the PORTAL_TOKEN environment variable.
Use --user-file - to read the user record from stdin.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		u, err := readUserFile(importUserFile)
		if err != nil {
			return err
		}
		token := importToken
		if token == "" {
			token = strings.TrimSpace(os.Getenv("PORTAL_TOKEN"))
		}

		if err := a.session.SetAuthData(ctx, u, token); err != nil {
			return reportSessionError(err, "saving the session")
		}
		pterm.Success.Printf("Session saved for %s\n", displayName(u))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importUserFile, "user-file", "", "Path to the user record JSON, or - for stdin")
	importCmd.Flags().StringVar(&importToken, "token", "", "Session token")
	_ = importCmd.MarkFlagRequired("user-file")
}

func readUserFile(path string) (auth.User, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var u auth.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("user record must be a JSON object: %w", err)
	}
	return u, nil
}
