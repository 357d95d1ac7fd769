package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var (
	teamRival string
	teamTop   int
)

var teamCmd = &cobra.Command{
	Use:   "team <name>",
	Short: "Records, toss, home/away and leading players for one team",
	Long: `Show a team's headline totals, win/loss by match type, home and away
record, toss conversion, rivals, leading run scorers and wicket takers.

Names are matched loosely: "mumbai" resolves to "Mumbai Indians".
With --rival, show the head-to-head record and fixtures instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTeam,
}

func init() {
	addSeasonFlag(teamCmd)
	teamCmd.Flags().StringVar(&teamRival, "rival", "", "show the head-to-head record against this team")
	teamCmd.Flags().IntVarP(&teamTop, "top", "n", 10, "rows per leaderboard")
}

func runTeam(cmd *cobra.Command, args []string) error {
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	idx := newIndex(e)
	team, err := resolveName(idx, joinArgs(args), search.Team)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if teamRival != "" {
		rival, err := resolveName(idx, teamRival, search.Team)
		if err != nil {
			return err
		}
		return showRivalry(w, e, team, rival, seasons)
	}
	return showTeam(w, e, team, seasons, teamTop)
}

func showTeam(w io.Writer, e *engine.Engine, team string, seasons filter.Seasons, top int) error {
	h, err := e.TeamHighlights(team, seasons)
	if err != nil {
		return err
	}
	types, err := e.MatchTypeRecord(team, seasons)
	if err != nil {
		return err
	}
	homeAway, err := e.HomeAway(team, seasons)
	if err != nil {
		return err
	}
	toss, err := e.TossDistribution(team, seasons)
	if err != nil {
		return err
	}
	cause, err := e.TossWinningCause(team, seasons)
	if err != nil {
		return err
	}
	rivals, err := e.RivalRecord(team, seasons)
	if err != nil {
		return err
	}
	runs, err := e.LeadingRunScorers(team, seasons)
	if err != nil {
		return err
	}
	wickets, err := e.LeadingWicketTakers(team, seasons)
	if err != nil {
		return err
	}
	awards, err := e.PlayerOfMatchAwards(team, seasons)
	if err != nil {
		return err
	}
	scores, err := e.TeamScores(team, seasons)
	if err != nil {
		return err
	}
	render(w,
		report.Highlights(h),
		report.SeasonCounts(e.SeasonMatchCounts(team)).Titled("Matches per season"),
		report.Records(types).Titled("By match type"),
		report.Records(homeAway).Titled("Home / away"),
		report.Toss(toss, cause).Titled("Toss"),
		report.Records(rivals).Titled("Against each rival"),
		report.RunScorers(runs).Limit(top).Titled("Leading run scorers"),
		report.WicketTakers(wickets).Limit(top).Titled("Leading wicket takers"),
		report.Awards(awards).Limit(top).Titled("Player of the match"),
		report.TeamScores(scores).Limit(top).Titled("Highest totals"),
	)
	return nil
}

func showRivalry(w io.Writer, e *engine.Engine, team, rival string, seasons filter.Seasons) error {
	record, err := e.RivalMatchTypeRecord(team, rival, seasons)
	if err != nil {
		return err
	}
	fixtures, err := e.RivalMatches(team, rival, seasons)
	if err != nil {
		return err
	}
	render(w,
		report.Records(record).Titled(team+" v "+rival),
		report.Matches(fixtures).Titled("Fixtures"),
	)
	return nil
}
