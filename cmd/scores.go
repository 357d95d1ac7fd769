package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "200+ team innings: when they were made and whether they won",
	Long: `List every team innings of 200 or more, split by whether it set or chased
a target, with the toss and match result, the win rate per mode and the count
per team.`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	addSeasonFlag(scoresCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	return showScores(cmd.OutOrStdout(), e, seasons)
}

func showScores(w io.Writer, e *engine.Engine, seasons filter.Seasons) error {
	innings, err := e.TwoHundredInnings(seasons)
	if err != nil {
		return err
	}
	split, err := e.TwoHundredSplit(seasons)
	if err != nil {
		return err
	}
	rates, err := e.TwoHundredWinRates(seasons)
	if err != nil {
		return err
	}
	counts, err := e.TwoHundredCounts(seasons)
	if err != nil {
		return err
	}
	render(w,
		report.BigInnings(innings).Titled("200+ innings"),
		report.BigInningsSplit(split).Titled("By mode, toss and result"),
		report.BigInningsWinRates(rates).Titled("Win rate"),
		report.BigInningsCounts(counts).Titled("Per team"),
	)
	return nil
}
