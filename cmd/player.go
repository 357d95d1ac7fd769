package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var (
	playerVs        string
	playerTop       int
	playerMilestone int
)

// playerCmd is the cobra command for one batter's career analysis.
var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Career analysis for one batter",
	Long: `Show the teams a batter played for, their record per innings slot,
their highest scores, how they got out and to whom, and how often their big
innings ended in a win.

With --vs, show the batter's record against one opposing team instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlayer,
}

func init() {
	addSeasonFlag(playerCmd)
	playerCmd.Flags().StringVar(&playerVs, "vs", "", "record against this team")
	playerCmd.Flags().IntVarP(&playerTop, "top", "n", 10, "rows per leaderboard")
	playerCmd.Flags().IntVar(&playerMilestone, "milestone", 50, "minimum runs for the milestone win split")
}

// runPlayer resolves the name and prints the batter's tables.
func runPlayer(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	idx := newIndex(e)
	player, err := resolveName(idx, joinArgs(args), search.Player)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if playerVs != "" {
		rival, err := resolveName(idx, playerVs, search.Team)
		if err != nil {
			return err
		}
		v, err := e.PlayerVsTeam(player, rival, seasons)
		if err != nil {
			return err
		}
		render(w, report.VsTeam(v))
		return nil
	}
	return showPlayer(w, e, player, seasons, playerTop, playerMilestone)
}

func showPlayer(w io.Writer, e *engine.Engine, player string, seasons filter.Seasons, top, milestone int) error {
	splits, err := e.PlayerInningSplit(player, seasons)
	if err != nil {
		return err
	}
	innings, err := e.PlayerInnings(player, seasons)
	if err != nil {
		return err
	}
	kinds, err := e.PlayerDismissalKinds(player, seasons)
	if err != nil {
		return err
	}
	bowlers, err := e.PlayerDismissalBowlers(player, seasons)
	if err != nil {
		return err
	}
	render(w,
		report.PlayerTeams(e.PlayerTeams(player)).Titled(player+": teams"),
		report.InningSplits(splits).Titled("By innings"),
		report.Innings(innings).Limit(top).Titled("Highest scores"),
		report.Dismissals(kinds).Titled("How out"),
		report.Dismissals(bowlers).Limit(top).Titled("Dismissed by"),
		report.VsBowlers(e.PlayerVsBowlers(player, top)).Titled("Against the bowlers who got them most"),
		report.MilestoneSplit(e.MilestoneWins(player, milestone)).Titled(fmt.Sprintf("Innings of %d+ and the result", milestone)),
	)
	return nil
}
