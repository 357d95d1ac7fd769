package engine

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

func findBowler(t *testing.T, rows []model.BowlingRecord, name string) model.BowlingRecord {
	t.Helper()
	for _, r := range rows {
		if r.Bowler == name {
			return r
		}
	}
	t.Fatalf("bowler %q missing from %d rows", name, len(rows))
	return model.BowlingRecord{}
}

func TestBowlingStats(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BowlingStats(filter.Season("2008"))
	if err != nil {
		t.Fatalf("BowlingStats: %v", err)
	}
	b1 := findBowler(t, rows, "B1")
	if b1.Balls != 5 || b1.Runs != 15 || b1.Wickets != 1 || b1.Dots != 1 || b1.Matches != 1 {
		t.Errorf("B1 = %+v", b1.BowlingCounts)
	}
	if !approx(b1.Economy, 18) {
		t.Errorf("B1 economy = %v, want 18", b1.Economy)
	}
	if !approx(b1.BoundaryBallPct, 60) {
		t.Errorf("B1 boundary pct = %v, want 60", b1.BoundaryBallPct)
	}
	a2 := findBowler(t, rows, "A2")
	if a2.Extras != 1 || a2.Runs != 3 {
		t.Errorf("A2 = %+v", a2.BowlingCounts)
	}

	buf, err := json.Marshal(b1)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(buf), `"boundary_ball_pct":60`) {
		t.Errorf("B1 json = %s", buf)
	}
}

func TestOnlyBowlerCreditedDismissalsCount(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BowlingStats(filter.Season("2008"))
	if err != nil {
		t.Fatalf("BowlingStats: %v", err)
	}
	// A2 was on for a run-out and a bowled; only the bowled is theirs.
	if a2 := findBowler(t, rows, "A2"); a2.Wickets != 1 {
		t.Errorf("A2 wickets = %d, want 1", a2.Wickets)
	}
	for _, kind := range []string{model.RunOut, model.RetiredHurt, model.Obstructing} {
		d := model.Delivery{IsWicket: true, DismissalKind: kind}
		if d.BowlerWicket() {
			t.Errorf("%q credited to the bowler", kind)
		}
	}
	for _, kind := range []string{model.Bowled, model.Caught, model.CaughtAndBowled, model.LBW, model.Stumped, model.HitWicket} {
		d := model.Delivery{IsWicket: true, DismissalKind: kind}
		if !d.BowlerWicket() {
			t.Errorf("%q not credited to the bowler", kind)
		}
	}
}

func TestBowlingSplits(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BowlingSplit("A2", SplitRival, filter.All())
	if err != nil {
		t.Fatalf("BowlingSplit: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want rows for Bravo and Charlie, got %d", len(rows))
	}
	if rows[0].Rival != "Bravo" || rows[0].Matches != 2 || rows[1].Rival != "Charlie" {
		t.Errorf("rival split = %+v", rows)
	}
	for _, split := range Splits {
		if _, err := e.BowlingSplit("", split, filter.All()); err != nil {
			t.Errorf("split %s: %v", split, err)
		}
	}
	if _, err := e.BowlingSplit("", "over", filter.All()); !errors.Is(err, ErrInvalidSplit) {
		t.Errorf("unknown split: got %v", err)
	}
}

func TestBestBowlingFiguresOrder(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BestBowlingFigures("", filter.Season("2008"))
	if err != nil {
		t.Fatalf("BestBowlingFigures: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d figures", len(rows))
	}
	if rows[0].Bowler != "A2" || rows[0].Figures() != "1/3" {
		t.Errorf("best = %s %s, want A2 1/3", rows[0].Bowler, rows[0].Figures())
	}
	if rows[1].Figures() != "1/15" {
		t.Errorf("second = %s", rows[1].Figures())
	}
}

func TestCountHauls(t *testing.T) {
	fs := []BowlingFigure{{Wickets: 4}, {Wickets: 5}, {Wickets: 6}, {Wickets: 3}, {Wickets: 4}}
	four, five := countHauls(fs)
	if four != 2 || five != 2 {
		t.Errorf("hauls = %d/%d, want 2/2", four, five)
	}
}

func TestFieldingJoinSumsCatchKinds(t *testing.T) {
	caught := aggregator.NewTally[string]()
	caught.Add("keeper", 3)
	caught.Add("slip", 1)
	returned := aggregator.NewTally[string]()
	returned.Add("slip", 2)
	returned.Add("bowler", 1)

	rows := fieldingTable(caught, returned)
	want := []model.FieldingRecord{{Fielder: "keeper", Count: 3}, {Fielder: "slip", Count: 3}, {Fielder: "bowler", Count: 1}}
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v", rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestFieldingFromFixture(t *testing.T) {
	e := newFixtureEngine(t)
	catches, err := e.Catches("", filter.All())
	if err != nil {
		t.Fatalf("Catches: %v", err)
	}
	if len(catches) != 1 || catches[0].Fielder != "F1" {
		t.Errorf("catches = %+v", catches)
	}
	runouts, err := e.RunOuts("Alpha", filter.All())
	if err != nil {
		t.Fatalf("RunOuts: %v", err)
	}
	if len(runouts) != 1 || runouts[0].Fielder != "A" {
		t.Errorf("run outs = %+v", runouts)
	}
	stumpings, err := e.Stumpings("", filter.All())
	if err != nil {
		t.Fatalf("Stumpings: %v", err)
	}
	if len(stumpings) != 0 {
		t.Errorf("stumpings = %+v", stumpings)
	}
}
