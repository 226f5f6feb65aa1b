// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"portal/cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the config file and PORTAL_* environment
variables have been applied. Passwords are never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		p, _ := config.Path()
		fmt.Fprintf(os.Stderr, "# %s\n", p)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting in the config file",
	Long: `Writes one setting to the config file. Keys:
  api-url, timeout, log-level, store, redis-addr, redis-db, session-ttl

Durations use Go syntax, e.g. 30s or 12h.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return err
		}
		cfg, err := config.ReadFile(p)
		if err != nil {
			return err
		}
		if err := applySetting(&cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		pterm.Success.Printf("%s set to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}

func applySetting(cfg *config.Config, key, value string) error {
	var err error
	switch key {
	case "api-url":
		cfg.API.BaseURL = value
	case "timeout":
		cfg.API.Timeout, err = time.ParseDuration(value)
	case "log-level":
		cfg.LogLevel = value
	case "store":
		cfg.Store.Backend = value
	case "redis-addr":
		cfg.Store.Redis.Addr = value
	case "redis-db":
		cfg.Store.Redis.DB, err = strconv.Atoi(value)
	case "session-ttl":
		cfg.Store.Redis.SessionTTL, err = time.ParseDuration(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}
