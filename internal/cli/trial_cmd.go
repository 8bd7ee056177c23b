package cli

import (
	"fmt"

	"github.com/fcosta/horas/internal/cli/formatter"
	"github.com/fcosta/horas/internal/domain"
	"github.com/spf13/cobra"
)

func newTrialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Record prospective-client trial visits",
	}

	cmd.AddCommand(
		newTrialAddCmd(app),
		newTrialListCmd(app),
	)

	return cmd
}

func newTrialAddCmd(app *App) *cobra.Command {
	var date, clock, patient string
	var closed bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a trial visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openOwnRecords(app)
			if err != nil {
				return err
			}

			if app.interactive() && (date == "" || clock == "" || patient == "") {
				if err := trialVisitForm(&date, &clock, &patient, &closed).Run(); err != nil {
					return err
				}
			}

			day, err := parseDate(date)
			if err != nil {
				return err
			}
			at, err := parseClockOn(day, clock)
			if err != nil {
				return err
			}

			visit, err := store.AddTrialVisit(domain.TrialVisit{
				Date:          day,
				Time:          at,
				PatientName:   patient,
				ClosedPackage: closed,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded trial visit for %s.\n", visit.PatientName)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "visit date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "", "visit time (HH:MM)")
	cmd.Flags().StringVar(&patient, "patient", "", "patient name")
	cmd.Flags().BoolVar(&closed, "closed", false, "the visit converted to a package sale")
	return cmd
}

func newTrialListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded trial visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openOwnRecords(app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.VisitsTable(store.TrialVisits()))
			return nil
		},
	}
}
