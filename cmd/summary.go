package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
)

// summaryCmd is the cobra command for displaying a high-level snapshot overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the snapshot",
	Long: `Display aggregate statistics about the stored snapshot: when it was
imported, seasons, matches, teams, runs, wickets, the highest individual and
team scores, and the title winners.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	addSeasonFlag(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	db, err := openStore()
	if err != nil {
		return err
	}
	info, err := db.SnapshotInfo()
	db.Close()
	if err != nil {
		return fmt.Errorf("snapshot info: %w", err)
	}

	w := cmd.OutOrStdout()
	if info.Matches == 0 {
		fmt.Fprintln(w, "No matches stored yet. Run 'iplstats import <matches.csv> <deliveries.csv>' to add them.")
		return nil
	}

	fmt.Fprintf(w, "\n=== Snapshot ===\n\n")
	fmt.Fprintf(w, "  Database      : %s\n", dbPath)
	fmt.Fprintf(w, "  Source        : %s\n", info.Source)
	if !info.ImportedAt.IsZero() {
		fmt.Fprintf(w, "  Imported      : %s (%s)\n", info.ImportedAt.Format("2006-01-02 15:04"), humanize.Time(info.ImportedAt))
	}
	fmt.Fprintf(w, "  Seasons       : %d\n", info.Seasons)
	fmt.Fprintf(w, "  Matches       : %s\n", humanize.Comma(int64(info.Matches)))
	fmt.Fprintf(w, "  Deliveries    : %s\n", humanize.Comma(int64(info.Deliveries)))

	e, err := loadEngine()
	if err != nil {
		return err
	}
	return showSummary(w, e, seasons)
}

func showSummary(w io.Writer, e *engine.Engine, seasons filter.Seasons) error {
	totals, err := e.Overview(seasons)
	if err != nil {
		return err
	}
	render(w,
		report.Overview("Overview ("+seasons.String()+")", totals),
		report.Titles(e.Titles()).Titled("Title winners"),
	)
	return nil
}
