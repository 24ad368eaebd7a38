// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"quillbox/cli/internal/httperrors"
	"quillbox/cli/internal/secure"
	"quillbox/cli/internal/session"
)

// logoutCmd represents the logout command for ending the current session.
// It submits the stored session token to the service for invalidation and,
// once a response arrives, removes the credential from the OS keychain.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the saved session token",
	Long: `The logout command ends your Quillbox session. It asks the service to
invalidate the current session token and then removes the token from the OS
keychain.

The stored credential is cleared only after the service responds; if the
request fails the token is kept so you can retry.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		token, err := secure.Token()
		if err != nil {
			return err
		}
		if token == "" {
			fmt.Println("🔒 You're not signed in.")
			return nil
		}

		ctl, _, err := sessionRuntime(ctx)
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing out", spinnerFrames, 120*time.Millisecond)
		_, ok, err := ctl.Logout(ctx, session.LogoutPayload{Token: token})
		stopSpinner()

		if err != nil {
			return httperrors.FormatNetworkError(err, "signing out")
		}
		if !ok {
			fmt.Println("A sign-out is already in progress.")
			return nil
		}

		_ = session.ClearSnapshot()
		fmt.Println("✅ Signed out. The saved session token has been removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
