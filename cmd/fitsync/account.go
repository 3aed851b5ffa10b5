package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const passwordEnvVar = "FITSYNC_PASSWORD"

// readPassword takes the password from the environment, or else reads one line from in.
func readPassword(in io.Reader, out io.Writer) (string, error) {
	if pw := os.Getenv(passwordEnvVar); pw != "" {
		return pw, nil
	}

	fmt.Fprint(out, "password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and store the session locally",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return withEngine(cmd.Context(), func(e *engine) error {
			if err := e.session.Login(cmd.Context(), args[0], password); err != nil {
				return err
			}
			identity, _ := e.session.Identity()
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", identity.Email)
			return nil
		})
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return withEngine(cmd.Context(), func(e *engine) error {
			if err := e.session.Register(cmd.Context(), args[0], password, password); err != nil {
				return err
			}
			identity, _ := e.session.Identity()
			fmt.Fprintf(cmd.OutOrStdout(), "registered and signed in as %s\n", identity.Email)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			if err := e.session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed in user and the state of the token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			out := cmd.OutOrStdout()
			identity, ok := e.session.Identity()
			if !ok {
				fmt.Fprintln(out, "not signed in")
				return nil
			}

			info := e.session.CheckExpiry()
			fmt.Fprintf(out, "%s (%s)\n", identity.Email, identity.Login)
			fmt.Fprintf(out, "token: %s", info.Status)
			if !info.ExpiresAt.IsZero() {
				fmt.Fprintf(out, ", expires %s", info.ExpiresAt.Format(time.RFC3339))
			}
			if info.ExpiringSoon {
				fmt.Fprint(out, " (sign in again soon)")
			}
			fmt.Fprintln(out)

			if !e.session.IsAuthenticated() {
				return nil
			}
			ids, err := e.courses.EnrolledCourseIDs(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "enrolled in %d course(s)\n", len(ids))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
