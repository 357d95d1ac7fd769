package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var bowlerCmd = &cobra.Command{
	Use:   "bowler <name>",
	Short: "Career analysis for one bowler",
	Long: `Show the teams a bowler played for and their bowling record overall,
per innings, per season and against each opponent.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBowler,
}

func init() {
	addSeasonFlag(bowlerCmd)
}

func runBowler(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	bowler, err := resolveName(newIndex(e), joinArgs(args), search.Player)
	if err != nil {
		return err
	}
	return showBowler(cmd.OutOrStdout(), e, bowler, seasons)
}

func showBowler(w io.Writer, e *engine.Engine, bowler string, seasons filter.Seasons) error {
	render(w, report.PlayerTeams(e.BowlerTeams(bowler)).Titled(bowler+": teams"))
	titles := map[engine.Split]string{
		engine.SplitBowler: "Career",
		engine.SplitInning: "By innings",
		engine.SplitSeason: "By season",
		engine.SplitRival:  "Against each team",
	}
	for _, split := range []engine.Split{engine.SplitBowler, engine.SplitInning, engine.SplitSeason, engine.SplitRival} {
		rows, err := e.BowlingSplit(bowler, split, seasons)
		if err != nil {
			return err
		}
		render(w, report.Bowling(rows).Titled(titles[split]))
	}
	return nil
}
