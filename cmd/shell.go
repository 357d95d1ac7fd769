package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Load the snapshot once and query it interactively. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

// session is the REPL's loaded state.
type session struct {
	e       *engine.Engine
	idx     *search.Index
	db      *storage.DB
	seasons filter.Seasons
}

func runShell(_ *cobra.Command, _ []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	s := &session{e: e, idx: newIndex(e), db: db, seasons: filter.All()}

	cGreeting.Println("iplstats shell")
	cMuted.Printf("%d matches, %d deliveries; type 'help' or 'exit'\n", e.MatchCount(), e.DeliveryCount())
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("iplstats")
		cMuted.Printf("[%s]> ", s.seasons)
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		if name == "exit" || name == "quit" {
			return nil
		}
		if err := s.run(name, rest); err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	return nil
}

func (s *session) run(name, rest string) error {
	w := os.Stdout
	need := func(what string) error {
		if rest == "" {
			return fmt.Errorf("usage: %s <%s>", name, what)
		}
		return nil
	}
	switch name {
	case "help":
		shellHelp()
	case "use":
		seasons := filter.ParseSeasons(strings.Fields(rest))
		if err := seasons.Validate(); err != nil {
			return err
		}
		s.seasons = seasons
	case "summary":
		return showSummary(w, s.e, s.seasons)
	case "seasons":
		render(w, report.Seasons(s.e.SeasonSummaries()), report.Titles(s.e.Titles()).Titled("Titles"))
	case "season":
		return showSeason(w, s.e, s.seasons)
	case "teams":
		return showTeams(w, s.e, s.seasons)
	case "team":
		if err := need("name"); err != nil {
			return err
		}
		team, err := resolveName(s.idx, rest, search.Team)
		if err != nil {
			return err
		}
		return showTeam(w, s.e, team, s.seasons, 10)
	case "playoffs":
		if err := need("team"); err != nil {
			return err
		}
		team, err := resolveName(s.idx, rest, search.Team)
		if err != nil {
			return err
		}
		render(w, report.Playoffs(s.e.LevelHierarchy(team)).Titled(team+": playoffs"))
	case "player":
		if err := need("name"); err != nil {
			return err
		}
		player, err := resolveName(s.idx, rest, search.Player)
		if err != nil {
			return err
		}
		return showPlayer(w, s.e, player, s.seasons, 10, 50)
	case "bowler":
		if err := need("name"); err != nil {
			return err
		}
		bowler, err := resolveName(s.idx, rest, search.Player)
		if err != nil {
			return err
		}
		return showBowler(w, s.e, bowler, s.seasons)
	case "batting", "bowling":
		view := rest
		if view == "" {
			view = "stats"
		}
		var t *report.Table
		var err error
		if name == "batting" {
			t, err = battingTable(s.e, view, "", 0, 20, s.seasons)
		} else {
			t, err = bowlingTable(s.e, view, "", engine.SplitSeason, 20, s.seasons)
		}
		if err != nil {
			return err
		}
		render(w, t.Limit(20))
	case "scores":
		return showScores(w, s.e, s.seasons)
	case "search":
		if err := need("query"); err != nil {
			return err
		}
		render(w, report.SearchResults(s.idx.Find(rest, "", 10)))
	case "sql":
		if err := need("query"); err != nil {
			return err
		}
		return showQuery(w, rest, s.db.QueryRaw)
	default:
		cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", name)
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"use <season> [...]", "filter every following command (\"All\" resets)"},
		{"summary", "overview and title winners"},
		{"seasons", "list seasons"},
		{"season", "season views for the current filter"},
		{"teams", "teams and win/loss"},
		{"team <name>", "one team's records and leaders"},
		{"playoffs <team>", "knockout progression"},
		{"player <name>", "one batter's career"},
		{"bowler <name>", "one bowler's career"},
		{"batting [view]", "batting table (see 'iplstats batting --help')"},
		{"bowling [view]", "bowling table (see 'iplstats bowling --help')"},
		{"scores", "200+ innings"},
		{"search <query>", "fuzzy-find names"},
		{"sql <query>", "raw SQL against the snapshot"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-24s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}
