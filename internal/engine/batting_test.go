package engine

import (
	"errors"
	"testing"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
)

func TestBatterRecordFromFiveBalls(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BattingStats(filter.Season("2008"))
	if err != nil {
		t.Fatalf("BattingStats: %v", err)
	}
	a := findBatter(t, rows, "A")
	if a.Runs != 15 || a.Balls != 5 || a.Dismissals != 1 || a.Innings != 1 {
		t.Fatalf("A = %+v", a.BattingCounts)
	}
	if a.Sixes != 1 || a.Fours != 2 || a.Ones != 1 || a.Dots != 1 {
		t.Errorf("A scoring shots = %+v", a.BattingCounts)
	}
	if !approx(a.StrikeRate, 300) {
		t.Errorf("strike rate = %v, want 300", a.StrikeRate)
	}
	if !approx(a.Average, 15) {
		t.Errorf("average = %v, want 15", a.Average)
	}
	if !approx(a.BoundaryDominance, 1400.0/15) {
		t.Errorf("boundary dominance = %v", a.BoundaryDominance)
	}
	if !approx(a.DotBallReliance, 20) {
		t.Errorf("dot ball reliance = %v, want 20", a.DotBallReliance)
	}
	if rows[0].Batter != "A" {
		t.Errorf("rows should sort by runs, got %q first", rows[0].Batter)
	}
}

func TestBattingStatsBySeasonKeepsSeasonsApart(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BattingStatsBySeason(filter.All())
	if err != nil {
		t.Fatalf("BattingStatsBySeason: %v", err)
	}
	seen := map[string]int{}
	for _, r := range rows {
		if r.Batter == "A" {
			seen[r.Season] = r.Runs
		}
	}
	if seen["2008"] != 15 || seen["2009"] != 2 {
		t.Errorf("A per season = %v", seen)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Season > rows[i].Season {
			t.Fatalf("rows out of season order at %d", i)
		}
	}
}

func TestTeamBattingStatsOnlyCountsThatSide(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.TeamBattingStats("Bravo", filter.All())
	if err != nil {
		t.Fatalf("TeamBattingStats: %v", err)
	}
	for _, r := range rows {
		if r.Batter == "A" || r.Batter == "C" {
			t.Errorf("Alpha batter %q in Bravo table", r.Batter)
		}
		if r.Team != "Bravo" {
			t.Errorf("row team = %q", r.Team)
		}
	}
	x := findBatter(t, rows, "X")
	if x.Runs != 8 || x.Innings != 2 {
		t.Errorf("X = %+v", x.BattingCounts)
	}
}

func TestQualifiedBattersUseInningsThreshold(t *testing.T) {
	e := newFixtureEngine(t, WithMinInnings(2))
	rows, err := e.TopStrikeRates(5, filter.All())
	if err != nil {
		t.Fatalf("TopStrikeRates: %v", err)
	}
	for _, r := range rows {
		if r.Innings < 2 {
			t.Errorf("%s qualified with %d innings", r.Batter, r.Innings)
		}
	}
	arch, err := e.BattingArchetypes(filter.All())
	if err != nil {
		t.Fatalf("BattingArchetypes: %v", err)
	}
	for _, r := range arch {
		if r.Category == "" {
			t.Errorf("%s has no category", r.Batter)
		}
	}
}

func TestBoundaries(t *testing.T) {
	e := newFixtureEngine(t)
	cases := []struct {
		boundary int
		batter   string
		want     int
	}{
		{6, "A", 1},
		{4, "A", 2},
		{0, "A", 3},
		{6, "X", 1},
	}
	for _, c := range cases {
		rows, err := e.Boundaries("", c.boundary, filter.All())
		if err != nil {
			t.Fatalf("Boundaries(%d): %v", c.boundary, err)
		}
		got := 0
		for _, r := range rows {
			if r.Batter == c.batter {
				got = r.Count
			}
		}
		if got != c.want {
			t.Errorf("Boundaries(%d)[%s] = %d, want %d", c.boundary, c.batter, got, c.want)
		}
	}
	if _, err := e.Boundaries("", 5, filter.All()); !errors.Is(err, ErrInvalidBoundary) {
		t.Errorf("boundary 5: got %v, want ErrInvalidBoundary", err)
	}
}

func TestIndividualScoresAndMilestoneWins(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.IndividualScores("Alpha", filter.All())
	if err != nil {
		t.Fatalf("IndividualScores: %v", err)
	}
	if len(rows) == 0 || rows[0].Batter != "A" || rows[0].Runs != 15 || !rows[0].Won {
		t.Fatalf("top score = %+v", rows[0])
	}
	split := e.MilestoneWins("A", 10)
	if len(split.Innings) != 1 || split.Won != 1 || split.Lost != 0 {
		t.Errorf("MilestoneWins = %+v", split)
	}
}

func TestLeadingRunScorersForTeam(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.LeadingRunScorers("Bravo", filter.All())
	if err != nil {
		t.Fatalf("LeadingRunScorers: %v", err)
	}
	if len(rows) == 0 || rows[0].Player != "X" || rows[0].Runs != 8 {
		t.Errorf("leader = %+v", rows)
	}
}
