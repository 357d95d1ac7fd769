package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var trendCmd = &cobra.Command{
	Use:   "trend <player>",
	Short: "Season-by-season batting trend for a player",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrend,
}

func init() {
	addSeasonFlag(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	player, err := resolveName(newIndex(e), joinArgs(args), search.Player)
	if err != nil {
		return err
	}
	rows, err := e.BattingStatsBySeason(seasons)
	if err != nil {
		return err
	}
	var mine []model.BattingRecord
	for _, r := range rows {
		if r.Batter == player {
			mine = append(mine, r)
		}
	}
	render(cmd.OutOrStdout(), report.Batting(mine).Titled(player+": by season"))
	return nil
}
