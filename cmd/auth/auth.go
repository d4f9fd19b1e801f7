// Package auth implements the login, logout, profile and register commands.
package auth

import (
	"context"
	"fmt"
	"io"

	"fjacquet/creditlens/cmd/common"
	"fjacquet/creditlens/cmd/root"
	"fjacquet/creditlens/internal/container"
	"fjacquet/creditlens/internal/models"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string

	registerEmail    string
	registerPassword string
	registerConfirm  string
)

// LoginCmd represents the login command
var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	Long: `Login authenticates against the API and stores the issued token in the
session file (session.token_file) for later commands.

The password is read from --password or, when omitted, from the
CREDITLENS_PASSWORD environment variable.

Example:
  CREDITLENS_PASSWORD=secret creditlens login -u jane`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return RunLogin(contextOf(cmd), c, loginUsername, common.PasswordFromEnv(loginPassword), cmd.OutOrStdout())
	},
}

// LogoutCmd represents the logout command
var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return RunLogout(c, cmd.OutOrStdout())
	},
}

// ProfileCmd represents the profile command
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return RunProfile(contextOf(cmd), c, cmd.OutOrStdout())
	},
}

// RegisterCmd represents the register command
var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Register creates an account with the auth API. The password must be
given twice; mismatches are rejected before anything is sent.

Example:
  creditlens register --email jane@example.com --password s3cret --confirm s3cret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		password := common.PasswordFromEnv(registerPassword)
		confirm := registerConfirm
		if confirm == "" && registerPassword == "" {
			confirm = password
		}
		return RunRegister(contextOf(cmd), c, registerEmail, password, confirm, cmd.OutOrStdout())
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	LoginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (default $CREDITLENS_PASSWORD)")
	_ = LoginCmd.MarkFlagRequired("username")

	RegisterCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	RegisterCmd.Flags().StringVar(&registerPassword, "password", "", "Password (default $CREDITLENS_PASSWORD)")
	RegisterCmd.Flags().StringVar(&registerConfirm, "confirm", "", "Password confirmation")
	_ = RegisterCmd.MarkFlagRequired("email")
}

// Commands returns every command of this package.
func Commands() []*cobra.Command {
	return []*cobra.Command{LoginCmd, LogoutCmd, ProfileCmd, RegisterCmd}
}

// RunLogin logs username in and reports the resulting profile.
func RunLogin(ctx context.Context, c *container.Container, username, password string, stdout io.Writer) error {
	if password == "" {
		return fmt.Errorf("a password is required (--password or CREDITLENS_PASSWORD)")
	}
	state, err := c.GetAuthService().Login(ctx, username, password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Logged in as %s\n", displayName(state.User, username))
	return err
}

// RunLogout clears the stored session.
func RunLogout(c *container.Container, stdout io.Writer) error {
	if err := c.GetAuthService().Logout(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(stdout, "Logged out")
	return err
}

// RunProfile restores the stored session and prints the user.
func RunProfile(ctx context.Context, c *container.Container, stdout io.Writer) error {
	state, err := c.GetAuthService().Restore(ctx)
	if err != nil {
		return err
	}
	u := state.User
	if _, err := fmt.Fprintf(stdout, "Username: %s\n", displayName(u, state.Session.Username)); err != nil {
		return err
	}
	if u.Email != "" {
		if _, err := fmt.Fprintf(stdout, "Email:    %s\n", u.Email); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(stdout, "User ID:  %d\n", u.UserID)
	return err
}

// RunRegister creates an account.
func RunRegister(ctx context.Context, c *container.Container, email, password, confirm string, stdout io.Writer) error {
	if err := c.GetAuthService().Register(ctx, email, password, confirm); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout, "Registered %s. You can now log in.\n", email)
	return err
}

func displayName(u models.UserProfile, fallback string) string {
	if u.Username != "" {
		return u.Username
	}
	return fallback
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
