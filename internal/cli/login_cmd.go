package cli

import (
	"fmt"

	"github.com/fcosta/horas/internal/cli/formatter"
	"github.com/fcosta/horas/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() && (email == "" || password == "") {
				if err := loginForm(&email, &password).Run(); err != nil {
					return err
				}
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required (use --email and --password)")
			}

			session, err := app.Identity.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.SessionStateIndicator(session.State()))
			fmt.Fprintf(out, "Signed in as %s\n", formatter.Bold(session.Account.Email))
			if session.State() == domain.SessionPendingPasswordChange {
				fmt.Fprintln(out, formatter.Dim("Change your temporary password before continuing: horas passwd"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Identity.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.SessionStateIndicator(domain.SessionAnonymous))
			return nil
		},
	}
}

func newPasswdCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the signed-in account's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Identity.Session().State() == domain.SessionAnonymous {
				return fmt.Errorf("not signed in (run: horas login)")
			}

			if app.interactive() && password == "" {
				var confirm string
				if err := newPasswordForm(&password, &confirm).Run(); err != nil {
					return err
				}
				if password != confirm {
					return fmt.Errorf("passwords do not match")
				}
			}
			if password == "" {
				return fmt.Errorf("a new password is required (use --password)")
			}

			if err := app.Identity.UpdateCredential(cmd.Context(), password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "new password")
	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := app.Identity.Session()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.SessionStateIndicator(session.State()))
			if session.State() != domain.SessionAnonymous {
				fmt.Fprintf(out, "%s (%s)\n", formatter.Bold(session.Account.Email), session.Account.Role)
			}
			return nil
		},
	}
}
