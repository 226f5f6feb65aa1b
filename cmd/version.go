// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"portal/cli/internal/backend"
	"portal/cli/internal/config"
	"portal/cli/internal/httperrors"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI and backend version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersion reports the CLI version and, when reachable, the backend's.
// It needs no session store.
func printVersion(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}

	be := backend.New(cfg.API, backend.WithUserAgent("portal-cli/"+Version))
	backendVersion, err := be.GetVersion(ctx)
	if err != nil {
		backendVersion = fmt.Sprintf("unknown (%s unreachable)", httperrors.ExtractHostFromURL(cfg.API.BaseURL))
	}
	fmt.Printf("portal %s\nbackend %s\n", Version, backendVersion)
	return nil
}
