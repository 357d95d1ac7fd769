package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List every team with its seasons, matches and overall record",
	Args:  cobra.NoArgs,
	RunE:  runTeams,
}

func init() {
	addSeasonFlag(teamsCmd)
}

func runTeams(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	return showTeams(cmd.OutOrStdout(), e, seasons)
}

func showTeams(w io.Writer, e *engine.Engine, seasons filter.Seasons) error {
	records, err := e.WinLoss("", seasons)
	if err != nil {
		return err
	}
	render(w,
		report.Teams(e.Teams()).Titled("Teams"),
		report.Records(records).Titled("Win/loss ("+seasons.String()+")"),
	)
	return nil
}
