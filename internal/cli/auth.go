package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/wire"
)

var loginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Log in and start a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, ok, err := wire.AuthService().Login(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if !ok {
			// Uniform failure: no hint whether email or password was wrong.
			return fmt.Errorf("invalid credentials")
		}

		fmt.Printf("✓ Logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.AuthService().Logout(ctx); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}

		fmt.Println("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		user, err := wire.AuthService().CurrentUser(ctx)
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Println("Not logged in")
			return nil
		}

		fmt.Printf("%s <%s> - %s\n", user.Name, user.Email, user.Role)
		return nil
	},
}

// LoginCmd returns the login command.
func LoginCmd() *cobra.Command { return loginCmd }

// LogoutCmd returns the logout command.
func LogoutCmd() *cobra.Command { return logoutCmd }

// WhoamiCmd returns the whoami command.
func WhoamiCmd() *cobra.Command { return whoamiCmd }
