package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List seasons with their dates, match counts and champions",
	Args:  cobra.NoArgs,
	RunE:  runSeasons,
}

var seasonCmd = &cobra.Command{
	Use:   "season <season> [<season>...]",
	Short: "Overview, match types, toss impact and venues for one or more seasons",
	Long: `Show the totals, match types, average innings scores, toss decisions and
their impact, venue toss outcomes, milestones and venues for the given seasons.
Use "All" for every season.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSeason,
}

func runSeasons(cmd *cobra.Command, args []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}
	render(cmd.OutOrStdout(),
		report.Seasons(e.SeasonSummaries()).Titled("Seasons"),
		report.Titles(e.Titles()).Titled("Titles"),
	)
	return nil
}

func runSeason(cmd *cobra.Command, args []string) error {
	seasons := filter.ParseSeasons(args)
	if err := seasons.Validate(); err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	return showSeason(cmd.OutOrStdout(), e, seasons)
}

func showSeason(w io.Writer, e *engine.Engine, seasons filter.Seasons) error {
	totals, err := e.Overview(seasons)
	if err != nil {
		return err
	}
	teams, err := e.WinLoss("", seasons)
	if err != nil {
		return err
	}
	types, err := e.MatchTypeCounts(seasons)
	if err != nil {
		return err
	}
	averages, err := e.AverageInningsScores(seasons)
	if err != nil {
		return err
	}
	decisions, err := e.TossDecisions(seasons)
	if err != nil {
		return err
	}
	impact, err := e.TossImpact(seasons)
	if err != nil {
		return err
	}
	venueToss, err := e.VenueTossImpact(seasons)
	if err != nil {
		return err
	}
	milestones, err := e.SeasonMilestones(seasons)
	if err != nil {
		return err
	}
	venues, err := e.Venues(seasons)
	if err != nil {
		return err
	}
	render(w,
		report.Overview("Season "+seasons.String(), totals),
		report.Records(teams).Titled("Standings by win %"),
		report.MatchTypes(types).Titled("Match types"),
		report.InningsAverages(averages).Titled("Average innings score"),
		report.TossDecisions(decisions).Titled("Toss decisions"),
		report.TossImpact(impact).Titled("Toss impact"),
		report.VenueToss(venueToss).Titled("Toss outcome by city"),
		report.Milestones(milestones).Titled("Centuries and fifties"),
		report.Venues(venues).Titled("Venues"),
	)
	return nil
}
