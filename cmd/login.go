// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quillbox/cli/internal/httperrors"
	"quillbox/cli/internal/logging"
	"quillbox/cli/internal/session"
	"quillbox/cli/internal/terminal"
)

// loginCmd represents the login command for password authentication.
// It prompts for the account credentials, submits them to the service, and
// stores the issued session token securely in the OS keychain.
// If the session is already valid, the sign-in is skipped.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to Quillbox",
	Long: `The login command signs you in to the Quillbox service with your username and
password. On success the issued session token is stored securely in the OS
keychain and used by later commands.

Credentials are read interactively; the password is never echoed and both
prompt lines are cleared from the terminal afterwards. If your session is
already valid, the command reports so and skips the sign-in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		ctl, boot, err := sessionRuntime(ctx)
		if err != nil {
			return err
		}

		// Establish initial session validity from any ambient credential.
		// Offline here is fine; the login attempt itself will surface errors.
		_ = boot.ServerInit(ctx)
		boot.ClientInit()

		if ctl.State().IsAuthenticated() {
			fmt.Println("✅ You're already signed in.")
			return nil
		}

		username, password, err := promptCredentials()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", spinnerFrames, 120*time.Millisecond)
		user, ok, err := ctl.Login(ctx, session.LoginPayload{Username: username, Password: password})
		stopSpinner()

		if err != nil {
			return httperrors.FormatNetworkError(errors.New(logging.Mask(err.Error())), "signing in")
		}
		if !ok {
			// Guard suppression: a concurrent login settled first.
			fmt.Println("✅ You're already signed in.")
			return nil
		}

		_ = session.SaveSnapshot(session.Snapshot{LoggedIn: true, Account: user.Username})
		fmt.Println(loginGreeting(user.Username))
		return nil
	},
}

// promptCredentials reads the username and password interactively.
// The password is read without echo and both prompt lines are cleared from
// the terminal once entered.
func promptCredentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	usernamePrompt := "Username: "
	fmt.Print(usernamePrompt)
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		return "", "", errors.New("username is required")
	}

	passwordPrompt := "Password: "
	fmt.Print(passwordPrompt)
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimSpace(string(passwordBytes))
	if password == "" {
		return "", "", errors.New("password is required")
	}

	// Remove the credential prompts from the terminal
	terminal.ClearPreviousLines(len(usernamePrompt) + len(username) + len(passwordPrompt))

	return username, password, nil
}

// loginGreeting returns a random greeting phrase with the user's identifier.
func loginGreeting(identifier string) string {
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"👋 Hello %s! You're signed in.",
		"✅ Signed in as %s",
		"🔓 Access granted! Welcome %s!",
	}

	idx := rand.Intn(len(greetings))
	return fmt.Sprintf(greetings[idx], identifier)
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
