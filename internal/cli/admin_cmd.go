package cli

import (
	"fmt"

	"github.com/fcosta/horas/internal/cli/formatter"
	"github.com/fcosta/horas/internal/timeutil"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage staff accounts and view earnings",
	}

	accounts := &cobra.Command{
		Use:   "accounts",
		Short: "Manage staff accounts",
	}
	accounts.AddCommand(
		newAccountsListCmd(app),
		newAccountsCreateCmd(app),
		newAccountsDeleteCmd(app),
	)

	cmd.AddCommand(accounts, newEarningsCmd(app))
	return cmd
}

func newAccountsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List staff accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireActive(app); err != nil {
				return err
			}
			accounts, err := app.Identity.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.AccountsTable(accounts))
			return nil
		},
	}
}

func newAccountsCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <email>",
		Short: "Create a staff account and send its temporary password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireActive(app); err != nil {
				return err
			}
			account, err := app.Identity.CreateAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (%s).\n",
				formatter.Bold(account.Email), account.ID)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("A temporary password was sent by email."))
			return nil
		},
	}
}

func newAccountsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a staff account and its logged history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireActive(app); err != nil {
				return err
			}
			if err := app.Identity.DeleteAccount(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account deleted.")
			return nil
		},
	}
}

func newEarningsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "earnings <account-id>",
		Short: "Show an account's earnings for the current month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireActive(app); err != nil {
				return err
			}
			total, err := app.Identity.ComputeMonthlyEarnings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sessions, err := app.Identity.WorkSessionsFor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.SessionsTable(sessions))
			fmt.Fprintf(out, "%s %s\n", formatter.Bold("This month:"),
				formatter.StyleGreen.Render(timeutil.FormatCurrency(total)))
			return nil
		},
	}
}
