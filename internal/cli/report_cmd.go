package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fcosta/horas/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var from, to, outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export an hours report for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openOwnRecords(app)
			if err != nil {
				return err
			}
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to are required")
			}
			fromDate, err := parseDate(from)
			if err != nil {
				return err
			}
			toDate, err := parseDate(to)
			if err != nil {
				return err
			}

			doc, err := report.Build(store.WorkSessions(), store.TrialVisits(), fromDate, toDate)
			if err != nil {
				return err
			}

			rendered := renderDocument(doc)
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d pages).\n", outPath, len(doc.Pages))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	addRangeFlags(cmd.Flags(), &from, &to)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report to a file instead of stdout")
	return cmd
}

func renderDocument(doc *report.Document) string {
	var b strings.Builder
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\n--- page %d of %d ---\n", page.Number, len(doc.Pages))
	}
	return b.String()
}
