package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the snapshot",
	Long: `Run an arbitrary SQL query against the snapshot database and print results as a table.

Schema overview:
  matches(id, season TEXT, city, match_date, match_type, player_of_match, venue,
    team1, team2, toss_winner, toss_decision, winner, result, result_margin,
    target_runs, target_overs, super_over, method, umpire1, umpire2)
  deliveries(match_id, seq, inning, batting_team, bowling_team, over_no, ball_no,
    batter, bowler, non_striker, batsman_runs, extra_runs, total_runs,
    extras_type, is_wicket, player_dismissed, dismissal_kind, fielder)
  snapshot_meta(key, value)

Note: season is stored as TEXT. Use quotes: WHERE season = '2016'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	return showQuery(cmd.OutOrStdout(), query, db.QueryRaw)
}

func showQuery(w io.Writer, query string, run func(string) ([]string, [][]string, error)) error {
	cols, rows, err := run(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return nil
	}
	t := &report.Table{Header: cols, Rows: rows}
	t.Render(w)
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
	return nil
}
