package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shramikadmin/internal/forms"
	"shramikadmin/internal/navigation"
	"shramikadmin/internal/session"
)

func loginCmd() *cobra.Command {
	var form forms.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Router.Open(navigation.ScreenLogin)

			s, err := form.Submit(cmd.Context(), appCtx.Auth, appCtx.Session)
			if err != nil {
				return err
			}
			appCtx.Router.Navigate(navigation.RouteDashboard)

			fmt.Fprintf(cmd.OutOrStdout(), "Login successful! Signed in as %s <%s>\n", s.User.Name, s.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "administrator email")
	cmd.Flags().StringVar(&form.Password, "password", "", "administrator password")
	cmd.Flags().BoolVar(&form.Agree, "agree", true, "accept the Terms of Use and Privacy Policy")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Annotations: map[string]string{localOnly: "true"},
		Short:       "Drop the stored session",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Session.Logout(); err != nil {
				return err
			}
			appCtx.Router.Open(navigation.ScreenLogin)
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "whoami",
		Annotations: map[string]string{localOnly: "true"},
		Short:       "Show the signed-in administrator",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Session.Current()
			if errors.Is(err, session.ErrNoSession) {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:  %s\n", s.User.Name)
			fmt.Fprintf(out, "Email: %s\n", s.User.Email)
			if s.User.Role != "" {
				fmt.Fprintf(out, "Role:  %s\n", s.User.Role)
			}
			fmt.Fprintf(out, "Token: %s\n", session.Fingerprint(s.Token))
			if exp, ok := session.TokenExpiry(s.Token); ok {
				state := "expires"
				if time.Now().After(exp) {
					state = "expired"
				}
				fmt.Fprintf(out, "Token %s %s\n", state, exp.Local().Format(time.RFC1123))
			}
			return nil
		},
	}
}
