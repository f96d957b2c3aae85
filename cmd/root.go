/*
Copyright © 2026 Mats Funke (matsjfunke)
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE loads configuration once and stores it in a
// package variable for subcommands. Configuration is optional; a missing
// file yields the defaults, so every command works in a bare checkout.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matsjfunke/website/internal/config"
	"github.com/matsjfunke/website/internal/log"
)

// cfg is the loaded configuration, available to all subcommands after
// PersistentPreRunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "website",
	Short: "Personal website toolkit for matsjfunke.com",
	Long:  `Generates content tables from markdown, serves the website with its JSON-RPC search endpoint, and searches content from the terminal.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits 1 on error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
