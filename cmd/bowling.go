package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var (
	bowlingTeam  string
	bowlingView  string
	bowlingTop   int
	bowlingSplit string
)

var bowlingViews = []string{"stats", "split", "economy", "strike-rate", "archetypes", "containment", "figures", "hauls", "wicket-takers", "catches", "stumpings", "run-outs"}

var bowlingCmd = &cobra.Command{
	Use:   "bowling",
	Short: "Bowling and fielding tables, leaderboards and archetypes",
	Long: fmt.Sprintf(`Aggregate bowling over the selected seasons.

Views: %v
  stats          balls, runs, wickets, economy, average, strike rate (default)
  split          the same rolled up by --split (%v)
  economy        best economy among bowlers with enough overs
  strike-rate    best strike rate among bowlers with enough overs
  archetypes     qualified bowlers classified by economy and strike rate
  containment    qualified bowlers classified by dot-ball and boundary share
  figures        best figures in an innings
  hauls          innings with four or more wickets
  wicket-takers  most wickets
  catches, stumpings, run-outs   fielding dismissals

Rate views use engine.min_overs.`, bowlingViews, engine.Splits),
	Args: cobra.NoArgs,
	RunE: runBowling,
}

func init() {
	addSeasonFlag(bowlingCmd)
	bowlingCmd.Flags().StringVarP(&bowlingTeam, "team", "t", "", "restrict to one bowling side")
	bowlingCmd.Flags().StringVar(&bowlingView, "view", "stats", "table to show")
	bowlingCmd.Flags().IntVarP(&bowlingTop, "top", "n", 20, "rows to show (0 for all)")
	bowlingCmd.Flags().StringVar(&bowlingSplit, "split", string(engine.SplitSeason), "split view: roll-up key")
}

func runBowling(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	team := ""
	if bowlingTeam != "" {
		if team, err = resolveName(newIndex(e), bowlingTeam, search.Team); err != nil {
			return err
		}
	}
	t, err := bowlingTable(e, bowlingView, team, engine.Split(bowlingSplit), bowlingTop, seasons)
	if err != nil {
		return err
	}
	render(cmd.OutOrStdout(), t.Limit(bowlingTop))
	return nil
}

// bowlingTable builds one bowling or fielding view. Team-agnostic views ignore team.
func bowlingTable(e *engine.Engine, view, team string, split engine.Split, top int, seasons filter.Seasons) (*report.Table, error) {
	switch view {
	case "stats":
		if team != "" {
			rows, err := e.TeamBowlingStats(team, seasons)
			return tableOf(report.Bowling, rows, err, "Bowling: "+team)
		}
		rows, err := e.BowlingStats(seasons)
		return tableOf(report.Bowling, rows, err, "Bowling")
	case "split":
		rows, err := e.BowlingSplit("", split, seasons)
		return tableOf(report.Bowling, rows, err, "Bowling by "+string(split))
	case "economy":
		rows, err := e.TopEconomy(top, seasons)
		return tableOf(report.Bowling, rows, err, fmt.Sprintf("Best economy (min %g overs)", e.MinOvers()))
	case "strike-rate":
		rows, err := e.TopBowlingStrikeRates(top, seasons)
		return tableOf(report.Bowling, rows, err, fmt.Sprintf("Best strike rate (min %g overs)", e.MinOvers()))
	case "archetypes":
		rows, err := e.BowlingArchetypes(seasons)
		return tableOf(report.Bowling, rows, err, "Bowling archetypes")
	case "containment":
		rows, err := e.ContainmentArchetypes(seasons)
		return tableOf(report.Bowling, rows, err, "Containment archetypes")
	case "figures":
		rows, err := e.BestBowlingFigures(team, seasons)
		return tableOf(report.Figures, rows, err, "Best figures")
	case "hauls":
		rows, err := e.WicketHauls(team, seasons)
		return tableOf(report.Figures, rows, err, "Four-wicket hauls")
	case "wicket-takers":
		rows, err := e.LeadingWicketTakers(team, seasons)
		return tableOf(report.WicketTakers, rows, err, "Leading wicket takers")
	case "catches":
		rows, err := e.Catches(team, seasons)
		return tableOf(fielding("CATCHES"), rows, err, "Catches")
	case "stumpings":
		rows, err := e.Stumpings(team, seasons)
		return tableOf(fielding("STUMPINGS"), rows, err, "Stumpings")
	case "run-outs":
		rows, err := e.RunOuts(team, seasons)
		return tableOf(fielding("RUN_OUTS"), rows, err, "Run outs")
	}
	return nil, fmt.Errorf("unknown bowling view %q (want one of %v)", view, bowlingViews)
}

func fielding(kind string) func([]model.FieldingRecord) *report.Table {
	return func(rows []model.FieldingRecord) *report.Table { return report.Fielding(kind, rows) }
}
