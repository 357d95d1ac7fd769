package engine

import (
	"testing"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
)

func TestTwoHundredFirstInningsUsesTarget(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.TwoHundredInnings(filter.All())
	if err != nil {
		t.Fatalf("TwoHundredInnings: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %+v", rows)
	}
	r := rows[0]
	// Target 221 off a single recorded ball: the total is read from the target.
	if r.MatchID != 2 || r.Team != "Alpha" || r.Runs != 220 || r.Mode != SetTarget {
		t.Errorf("row = %+v", r)
	}
	if r.TossWon || r.MatchWon {
		t.Errorf("Alpha lost both toss and match, got %+v", r)
	}

	split, err := e.TwoHundredSplit(filter.All())
	if err != nil {
		t.Fatalf("TwoHundredSplit: %v", err)
	}
	if len(split) != 1 || split[0].Mode != SetTarget || split[0].MatchWon || split[0].Count != 1 {
		t.Errorf("split = %+v", split)
	}
}

func TestTwoHundredSkipsMatchesWithoutTarget(t *testing.T) {
	ms := fixtureMatches()
	ms[2].TargetRuns = 0
	ms[1].TargetRuns = 0
	e, err := New(ms, fixtureDeliveries())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rows, err := e.TwoHundredInnings(filter.All())
	if err != nil {
		t.Fatalf("TwoHundredInnings: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("want no 200+ innings without targets, got %+v", rows)
	}
}

func TestTwoHundredCountsZeroFill(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.TwoHundredCounts(filter.All())
	if err != nil {
		t.Fatalf("TwoHundredCounts: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("every team should appear, got %+v", rows)
	}
	if rows[0].Team != "Alpha" || rows[0].SetTarget != 1 || rows[0].Total != 1 {
		t.Errorf("Alpha = %+v", rows[0])
	}
	for _, r := range rows[1:] {
		if r.Total != 0 {
			t.Errorf("%s = %+v", r.Team, r)
		}
	}

	rates, err := e.TwoHundredWinRates(filter.All())
	if err != nil {
		t.Fatalf("TwoHundredWinRates: %v", err)
	}
	if len(rates) != 1 || rates[0].Innings != 1 || rates[0].Won != 0 || !approx(rates[0].WinPct, 0) {
		t.Errorf("rates = %+v", rates)
	}
}

func TestTwoHundredChaseSumsDeliveries(t *testing.T) {
	ms := fixtureMatches()
	ds := fixtureDeliveries()
	chase := &innings{match: 2, inning: 2, bat: "Bravo", bwl: "Alpha"}
	for i := 0; i < 34; i++ {
		chase.ball("X", "A2", "Y", 6)
	}
	e, err := New(ms, append(ds, chase.balls...))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rows, err := e.TwoHundredInnings(filter.Season("2009"))
	if err != nil {
		t.Fatalf("TwoHundredInnings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	c := rows[1]
	if c.Team != "Bravo" || c.Mode != Chased || c.Runs != 210 || !c.MatchWon || !c.TossWon {
		t.Errorf("chase = %+v", c)
	}
}

func TestSeasonViews(t *testing.T) {
	e := newFixtureEngine(t)
	sums := e.SeasonSummaries()
	if len(sums) != 2 {
		t.Fatalf("summaries = %+v", sums)
	}
	if sums[1].Season != "2009" || sums[1].Matches != 2 || sums[1].Teams != 3 {
		t.Errorf("2009 = %+v", sums[1])
	}
	if len(sums[0].Months) != 1 || sums[0].Months[0] != "April" {
		t.Errorf("2008 months = %v", sums[0].Months)
	}

	titles := e.Titles()
	if len(titles) != 1 || titles[0].Team != "Bravo" || titles[0].Trophies != 1 {
		t.Errorf("titles = %+v", titles)
	}

	avg, err := e.AverageInningsScores(filter.All())
	if err != nil {
		t.Fatalf("AverageInningsScores: %v", err)
	}
	// The washed-out match 3 is excluded.
	if len(avg) != 4 || avg[0].Season != "2008" || avg[0].Inning != 1 || !approx(avg[0].Average, 15) {
		t.Errorf("averages = %+v", avg)
	}

	types, err := e.MatchTypeCounts(filter.All())
	if err != nil {
		t.Fatalf("MatchTypeCounts: %v", err)
	}
	if len(types) != 2 || types[0].MatchType != "League" || types[0].Matches != 2 {
		t.Errorf("types = %+v", types)
	}
}

func TestOverview(t *testing.T) {
	e := newFixtureEngine(t)
	o, err := e.Overview(filter.All())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if o.Seasons != 2 || o.Matches != 3 || o.Teams != 3 || o.Overs != 2 || o.Wickets != 3 {
		t.Errorf("overview = %+v", o)
	}
	if o.HighestScore == nil || o.HighestScore.Batter != "A" || o.HighestScore.Runs != 15 {
		t.Errorf("highest score = %+v", o.HighestScore)
	}
	if o.HighestTeamScore == nil || o.HighestTeamScore.Runs != 15 {
		t.Errorf("highest team score = %+v", o.HighestTeamScore)
	}
}

func TestTossImpactExcludesNoResult(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.TossImpact(filter.All())
	if err != nil {
		t.Fatalf("TossImpact: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	for _, r := range rows {
		if r.Matches != 1 || r.TossWinWon != 1 || r.TossWinLost != 0 {
			t.Errorf("row = %+v", r)
		}
	}

	decisions, err := e.TossDecisions(filter.All())
	if err != nil {
		t.Fatalf("TossDecisions: %v", err)
	}
	if len(decisions) != 2 || decisions[0].Season != "2008" || decisions[0].Decision != "bat" {
		t.Errorf("decisions = %+v", decisions)
	}

	venues, err := e.VenueTossImpact(filter.All())
	if err != nil {
		t.Fatalf("VenueTossImpact: %v", err)
	}
	if len(venues) != 2 || venues[0].City != "Delhi" || venues[0].FieldWon != 1 || venues[1].BatWon != 1 {
		t.Errorf("venues = %+v", venues)
	}
}

func TestVenuesPerCity(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.Venues(filter.All())
	if err != nil {
		t.Fatalf("Venues: %v", err)
	}
	if len(rows) != 3 || rows[0].City != "Delhi" || rows[2].City != "Pune" {
		t.Fatalf("rows = %+v", rows)
	}
	if len(rows[1].Stadiums) != 1 || rows[1].Stadiums[0] != "Wankhede" {
		t.Errorf("Mumbai stadiums = %v", rows[1].Stadiums)
	}
}
