// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"quillbox/cli/internal/secure"
	"quillbox/cli/internal/session"
)

// whoamiCmd represents the whoami command for displaying current session state.
// It validates the stored session token with the service and shows the
// account identifier when the session is valid.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"status"},
	Short:   "Show current session status",
	Long: `The whoami command displays information about the current Quillbox session.
It validates the stored session token with the service and shows the account
identifier if the session is still valid.

When the service is unreachable, the last known local session state is shown
instead. This command is useful for verifying your session before running
other commands that require authentication.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		snapshot, _ := session.LoadSnapshot()

		ctl, boot, err := sessionRuntime(ctx)
		if err != nil {
			// Offline: fall back to the last known local state.
			printSnapshot(snapshot)
			return nil
		}

		// One-shot process init: ambient-credential login check.
		_ = boot.ServerInit(ctx)

		token, err := secure.Token()
		if err != nil {
			return err
		}

		if token != "" {
			reply, err := ctl.LoginCheck(ctx, session.CheckPayload{Token: token})
			if err != nil {
				printSnapshot(snapshot)
				return nil
			}
			if reply.LoggedIn {
				if snapshot.Account != "" {
					fmt.Printf("✅ Signed in as %s\n", snapshot.Account)
				} else {
					fmt.Println("✅ Your session is valid.")
				}
				return nil
			}
		}

		if ctl.State().IsAuthenticated() {
			// Ambient credential carried the session without a stored token.
			fmt.Println("✅ Your session is valid.")
			return nil
		}

		fmt.Println("🔒 You're not signed in.")
		fmt.Println("   Run 'quillbox login' to get started.")
		return nil
	},
}

// printSnapshot renders the last known local session state for offline use.
func printSnapshot(s session.Snapshot) {
	if s.LoggedIn && s.Account != "" {
		fmt.Printf("📡 Service unreachable; last known state: signed in as %s\n", s.Account)
		return
	}
	fmt.Println("🔒 You're not signed in.")
	fmt.Println("   Run 'quillbox login' to get started.")
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
