// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the seesaw CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seesaw",
		Short: "Seesaw - user identity and vocabulary post backend",
		Long: `Seesaw is the backend for the seesaw vocabulary service: user
registration with personality classification and character profiles,
JWT authentication, and vocabulary post management on PostgreSQL.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}
