package cli

import (
	"github.com/fcosta/horas/internal/records"
	"github.com/fcosta/horas/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and stores used by CLI commands.
type App struct {
	Identity service.IdentityService

	// OpenRecords constructs the record store scoped to an account, loaded
	// and ready to read.
	OpenRecords func(userID string) *records.Store

	// IsInteractive reports whether stdin is a terminal, enabling prompt
	// forms instead of flag-only input.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "horas" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "horas",
		Short:         "Studio work-hours and earnings tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newPasswdCmd(app),
		newStatusCmd(app),
		newLogCmd(app),
		newTrialCmd(app),
		newReportCmd(app),
		newAdminCmd(app),
	)

	return root
}
