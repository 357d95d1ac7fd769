package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var (
	battingTeam     string
	battingView     string
	battingTop      int
	battingBoundary int
)

var battingViews = []string{"stats", "by-season", "strike-rate", "average", "archetypes", "scores", "run-scorers", "boundaries", "milestones"}

var battingCmd = &cobra.Command{
	Use:   "batting",
	Short: "Batting tables, leaderboards and archetypes",
	Long: fmt.Sprintf(`Aggregate batting over the selected seasons.

Views: %v
  stats        runs, balls, scoring shots, strike rate, average (default)
  by-season    the same per season
  strike-rate  top strike rates among batters with enough innings
  average      top averages among batters with enough innings
  archetypes   qualified batters classified by strike rate, average and boundary share
  scores       highest individual innings
  run-scorers  most runs
  boundaries   sixes and fours per batter (--boundary 6, 4 or 0 for both)
  milestones   centuries and fifties

The strike-rate, average and archetype views use engine.min_innings.`, battingViews),
	Args: cobra.NoArgs,
	RunE: runBatting,
}

func init() {
	addSeasonFlag(battingCmd)
	battingCmd.Flags().StringVarP(&battingTeam, "team", "t", "", "restrict to one batting side")
	battingCmd.Flags().StringVar(&battingView, "view", "stats", "table to show")
	battingCmd.Flags().IntVarP(&battingTop, "top", "n", 20, "rows to show (0 for all)")
	battingCmd.Flags().IntVar(&battingBoundary, "boundary", 0, "boundaries view: 6, 4 or 0 for both")
}

func runBatting(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	team := ""
	if battingTeam != "" {
		if team, err = resolveName(newIndex(e), battingTeam, search.Team); err != nil {
			return err
		}
	}
	t, err := battingTable(e, battingView, team, battingBoundary, battingTop, seasons)
	if err != nil {
		return err
	}
	render(cmd.OutOrStdout(), t.Limit(battingTop))
	return nil
}

// battingTable builds one batting view. Team-agnostic views ignore team.
func battingTable(e *engine.Engine, view, team string, boundary, top int, seasons filter.Seasons) (*report.Table, error) {
	switch view {
	case "stats":
		if team != "" {
			rows, err := e.TeamBattingStats(team, seasons)
			return tableOf(report.Batting, rows, err, "Batting: "+team)
		}
		rows, err := e.BattingStats(seasons)
		return tableOf(report.Batting, rows, err, "Batting")
	case "by-season":
		rows, err := e.BattingStatsBySeason(seasons)
		return tableOf(report.Batting, rows, err, "Batting by season")
	case "strike-rate":
		rows, err := e.TopStrikeRates(top, seasons)
		return tableOf(report.Batting, rows, err, fmt.Sprintf("Top strike rates (min %d innings)", e.MinInnings()))
	case "average":
		rows, err := e.TopAverages(top, seasons)
		return tableOf(report.Batting, rows, err, fmt.Sprintf("Top averages (min %d innings)", e.MinInnings()))
	case "archetypes":
		rows, err := e.BattingArchetypes(seasons)
		return tableOf(report.Batting, rows, err, "Batting archetypes")
	case "scores":
		rows, err := e.IndividualScores(team, seasons)
		return tableOf(report.Innings, rows, err, "Highest scores")
	case "run-scorers":
		rows, err := e.LeadingRunScorers(team, seasons)
		return tableOf(report.RunScorers, rows, err, "Leading run scorers")
	case "boundaries":
		rows, err := e.Boundaries(team, boundary, seasons)
		return tableOf(report.Boundaries, rows, err, "Boundaries")
	case "milestones":
		rows, err := e.Milestones(team, seasons)
		return tableOf(report.Milestones, rows, err, "Centuries and fifties")
	}
	return nil, fmt.Errorf("unknown batting view %q (want one of %v)", view, battingViews)
}

// tableOf renders rows once the query that produced them succeeded.
func tableOf[T any](fn func([]T) *report.Table, rows []T, err error, title string) (*report.Table, error) {
	if err != nil {
		return nil, err
	}
	return fn(rows).Titled(title), nil
}
