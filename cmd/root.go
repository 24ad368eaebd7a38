// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quillbox/cli/internal/backend"
	"quillbox/cli/internal/manifest"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the Quillbox CLI application.
var rootCmd = &cobra.Command{
	Use:           "quillbox",
	Short:         "Quillbox CLI for managing your session with the Quillbox service",
	Long:          `Quillbox is a command-line client for the Quillbox service. It manages your authentication session: signing in, signing out, and checking whether your session is still valid.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			ctx := context.Background()
			// Fetch manifest from server
			m, err := manifest.GetEndpoints(ctx)
			if err != nil {
				return err
			}

			be := backend.New(m.HTTPBaseURL(), m.HTTP)
			backendVersion, err := be.GetVersion(ctx)
			if err != nil {
				backendVersion = "unknown"
			}

			fmt.Printf("quillbox %s\nbackend %s\n", Version, backendVersion)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and backend version information")
}
