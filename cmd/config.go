// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quillbox/cli/internal/config"
)

var (
	configBaseURL string
	configReset   bool
)

// configCmd shows and changes the non-secret CLI settings. Credentials never
// live in the config file; they stay in the OS keychain.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI configuration",
	Long: `The config command prints the current CLI configuration. With --base-url it
stores a service origin override, useful for self-hosted deployments and local
testing; --reset removes the override so the signed endpoint manifest decides
again.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if configReset {
			c.BaseURL = ""
			changed = true
		}
		if configBaseURL != "" {
			c.BaseURL = configBaseURL
			changed = true
		}
		if changed {
			if err := config.Save(c); err != nil {
				return fmt.Errorf("save configuration: %w", err)
			}
			fmt.Println("✅ Configuration saved.")
		}

		fmt.Printf("Log level: %s\n", c.LogLevel)
		if c.BaseURL != "" {
			fmt.Printf("Base URL:  %s (override)\n", c.BaseURL)
		} else {
			fmt.Println("Base URL:  from service manifest")
		}
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configBaseURL, "base-url", "", "override the service origin (e.g. https://quillbox.app)")
	configCmd.Flags().BoolVar(&configReset, "reset", false, "remove the service origin override")
	rootCmd.AddCommand(configCmd)
}
