package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alphadesk/alphadesk/internal/auth"
	"github.com/alphadesk/alphadesk/internal/models"
)

func newLoginCmd(getApp appFunc) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the AlphaDesk backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}

			if username == "" {
				username, err = prompt("Username: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = prompt("Password: ")
				if err != nil {
					return err
				}
			}

			user, err := a.Session.Login(cmd.Context(), models.Credentials{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")

	return cmd
}

func newLogoutCmd(getApp appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear stored tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			if err := a.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newRegisterCmd(getApp appFunc) *cobra.Command {
	var reg models.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account (does not log in)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			if err := a.Session.Register(cmd.Context(), reg); err != nil {
				return err
			}
			fmt.Println("Account created, run 'alphadesk login' to sign in")
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Username, "username", "", "Username")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Password")
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "Last name")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newWhoamiCmd(getApp appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}

			if err := a.Session.Init(cmd.Context()); err != nil {
				return err
			}

			snap := a.Session.Snapshot()
			if snap.State != auth.StateAuthenticated {
				fmt.Println("Not logged in")
				return nil
			}

			fmt.Printf("User:  %s <%s>\n", snap.User.Username, snap.User.Email)
			fmt.Printf("Role:  %s\n", snap.User.Role)

			// Token expiry is display-only; the backend is the authority.
			if claims, err := a.Session.Claims(); err == nil && !claims.ExpiresAt.IsZero() {
				fmt.Printf("Token: expires %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
