package cli

import (
	"fmt"

	"github.com/fcosta/horas/internal/cli/formatter"
	"github.com/fcosta/horas/internal/domain"
	"github.com/fcosta/horas/internal/timeutil"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage logged work sessions",
	}

	cmd.AddCommand(
		newLogAddCmd(app),
		newLogListCmd(app),
		newLogEditCmd(app),
		newLogRemoveCmd(app),
	)

	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var date, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openOwnRecords(app)
			if err != nil {
				return err
			}

			if app.interactive() && (date == "" || start == "" || end == "") {
				if err := workSessionForm(&date, &start, &end).Run(); err != nil {
					return err
				}
			}

			session, err := buildWorkSession(date, start, end)
			if err != nil {
				return err
			}

			created, err := store.AddWorkSession(session)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.2fh, %s\n",
				timeutil.FormatDate(created.Date),
				created.Hours,
				timeutil.FormatCurrency(created.Earnings),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "end time (HH:MM)")
	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged work sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openOwnRecords(app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.SessionsTable(store.WorkSessions()))
			return nil
		},
	}
}

func newLogEditCmd(app *App) *cobra.Command {
	var date, start, end string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a logged work session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openOwnRecords(app)
			if err != nil {
				return err
			}

			existing, err := findSession(store.WorkSessions(), args[0])
			if err != nil {
				return err
			}

			// Unset flags keep the existing values.
			if date == "" {
				date = existing.Date.Format("2006-01-02")
			}
			if start == "" {
				start = existing.StartTime.Format("15:04")
			}
			if end == "" {
				end = existing.EndTime.Format("15:04")
			}

			session, err := buildWorkSession(date, start, end)
			if err != nil {
				return err
			}
			session.ID = existing.ID

			updated, err := store.UpdateWorkSession(session)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %.2fh, %s\n",
				timeutil.FormatDate(updated.Date),
				updated.Hours,
				timeutil.FormatCurrency(updated.Earnings),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "end time (HH:MM)")
	return cmd
}

func newLogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a logged work session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openOwnRecords(app)
			if err != nil {
				return err
			}
			session, err := findSession(store.WorkSessions(), args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteWorkSession(session.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session on %s.\n", timeutil.FormatDate(session.Date))
			return nil
		},
	}
}

// buildWorkSession assembles a session from date and clock-time strings.
func buildWorkSession(date, start, end string) (domain.WorkSession, error) {
	day, err := parseDate(date)
	if err != nil {
		return domain.WorkSession{}, err
	}
	startAt, err := parseClockOn(day, start)
	if err != nil {
		return domain.WorkSession{}, err
	}
	endAt, err := parseClockOn(day, end)
	if err != nil {
		return domain.WorkSession{}, err
	}
	return domain.WorkSession{Date: day, StartTime: startAt, EndTime: endAt}, nil
}

// findSession resolves a full or prefix session ID.
func findSession(sessions []domain.WorkSession, id string) (domain.WorkSession, error) {
	var matches []domain.WorkSession
	for _, s := range sessions {
		if s.ID == id {
			return s, nil
		}
		if len(id) >= 4 && len(s.ID) >= len(id) && s.ID[:len(id)] == id {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.WorkSession{}, fmt.Errorf("work session %s: %w", id, domain.ErrNotFound)
	default:
		return domain.WorkSession{}, fmt.Errorf("session id %q is ambiguous (%d matches)", id, len(matches))
	}
}
