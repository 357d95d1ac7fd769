package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var playoffsCmd = &cobra.Command{
	Use:   "playoffs [team]",
	Short: "Knockout progression for a team, or every season's champion",
	Long: `With a team, trace its path through each season's knockouts: the first
playoff stage, what that result led to, the qualifier 2 and final winners, and
where the team finished. Without one, list the champions.`,
	RunE: runPlayoffs,
}

func runPlayoffs(cmd *cobra.Command, args []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(args) == 0 {
		render(w, report.Titles(e.Titles()).Titled("Champions"))
		return nil
	}
	team, err := resolveName(newIndex(e), joinArgs(args), search.Team)
	if err != nil {
		return err
	}
	render(w, report.Playoffs(e.LevelHierarchy(team)).Titled(team+": playoffs"))
	return nil
}
