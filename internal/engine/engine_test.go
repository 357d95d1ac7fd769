package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// ---- fixture builders ----

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

type ballOpt func(*model.Delivery)

func out(player, kind, fielder string) ballOpt {
	return func(d *model.Delivery) {
		d.IsWicket = true
		d.PlayerDismissed = player
		d.DismissalKind = kind
		d.Fielder = fielder
	}
}

func extras(n int, kind string) ballOpt {
	return func(d *model.Delivery) {
		d.ExtraRuns = n
		d.ExtrasType = kind
		d.TotalRuns += n
	}
}

// innings builds deliveries for one side batting in one match.
type innings struct {
	match    int64
	inning   int
	bat, bwl string
	balls    []model.Delivery
}

func (in *innings) ball(batter, bowler, nonStriker string, runs int, opts ...ballOpt) *innings {
	d := model.Delivery{
		MatchID:     in.match,
		Inning:      in.inning,
		BattingTeam: in.bat,
		BowlingTeam: in.bwl,
		Over:        len(in.balls) / 6,
		Ball:        len(in.balls)%6 + 1,
		Batter:      batter,
		Bowler:      bowler,
		NonStriker:  nonStriker,
		BatsmanRuns: runs,
		TotalRuns:   runs,
	}
	for _, o := range opts {
		o(&d)
	}
	in.balls = append(in.balls, d)
	return in
}

// fixtureMatches is a three-match, three-team dataset:
//
//	1  2008 League  Alpha v Bravo   Mumbai  Alpha won, target 20
//	2  2009 Final   Alpha v Bravo   Delhi   Bravo won, target 221
//	3  2009 League  Charlie v Alpha Pune    no result, no target
func fixtureMatches() []model.Match {
	return []model.Match{
		{
			ID: 1, Season: "2008", City: "Mumbai", Date: date("2008-04-18"), MatchType: model.League,
			PlayerOfMatch: "A", Venue: "Wankhede", Team1: "Alpha", Team2: "Bravo",
			TossWinner: "Alpha", TossDecision: model.TossBat, Winner: "Alpha", Result: "runs",
			ResultMargin: 17, TargetRuns: 20, TargetOvers: 20,
		},
		{
			ID: 2, Season: "2009", City: "Delhi", Date: date("2009-05-24"), MatchType: model.Final,
			PlayerOfMatch: "X", Venue: "Kotla", Team1: "Alpha", Team2: "Bravo",
			TossWinner: "Bravo", TossDecision: model.TossField, Winner: "Bravo", Result: "wickets",
			ResultMargin: 6, TargetRuns: 221, TargetOvers: 20,
		},
		{
			ID: 3, Season: "2009", City: "Pune", Date: date("2009-05-01"), MatchType: model.League,
			Venue: "MCA", Team1: "Charlie", Team2: "Alpha",
			TossWinner: "Charlie", TossDecision: model.TossBat, Result: "no result",
		},
	}
}

func fixtureDeliveries() []model.Delivery {
	var out1 []model.Delivery

	// Match 1, Alpha bat: A scores 4 6 1 0 4 off B1 and is caught on the dot
	// ball. C never faces.
	a1 := &innings{match: 1, inning: 1, bat: "Alpha", bwl: "Bravo"}
	a1.ball("A", "B1", "C", 4).
		ball("A", "B1", "C", 6).
		ball("A", "B1", "C", 1).
		ball("A", "B1", "C", 0, out("A", model.Caught, "F1")).
		ball("A", "B1", "C", 4)
	out1 = append(out1, a1.balls...)

	// Match 1, Bravo chase: Y is run out at the non-striker's end, X bowled.
	b1 := &innings{match: 1, inning: 2, bat: "Bravo", bwl: "Alpha"}
	b1.ball("X", "A2", "Y", 1).
		ball("X", "A2", "Y", 1).
		ball("X", "A2", "Y", 0, out("Y", model.RunOut, "A")).
		ball("X", "A2", "Z", 0, out("X", model.Bowled, "")).
		ball("Z", "A2", "W", 0, extras(1, "wides"))
	out1 = append(out1, b1.balls...)

	// Match 2: one ball each. The first-innings total comes from the target.
	a2 := &innings{match: 2, inning: 1, bat: "Alpha", bwl: "Bravo"}
	a2.ball("A", "X", "C", 2)
	b2 := &innings{match: 2, inning: 2, bat: "Bravo", bwl: "Alpha"}
	b2.ball("X", "A2", "Y", 6)
	out1 = append(out1, a2.balls...)
	out1 = append(out1, b2.balls...)

	// Match 3 is washed out after one ball.
	c3 := &innings{match: 3, inning: 1, bat: "Charlie", bwl: "Alpha"}
	c3.ball("P", "A2", "Q", 1)
	return append(out1, c3.balls...)
}

func newFixtureEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithHomeCities(map[string]string{"Alpha": "Mumbai"})}, opts...)
	e, err := New(fixtureMatches(), fixtureDeliveries(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func findBatter(t *testing.T, rows []model.BattingRecord, name string) model.BattingRecord {
	t.Helper()
	for _, r := range rows {
		if r.Batter == name {
			return r
		}
	}
	t.Fatalf("batter %q missing from %d rows", name, len(rows))
	return model.BattingRecord{}
}

func approx(a model.Rate, b float64) bool {
	return math.Abs(float64(a)-b) < 1e-9
}

// ---- construction ----

func TestNewRejectsBadSnapshots(t *testing.T) {
	ms := fixtureMatches()

	orphan := append(fixtureDeliveries(), model.Delivery{MatchID: 99, Inning: 1, Batter: "A"})
	if _, err := New(ms, orphan); !errors.Is(err, ErrOrphanDelivery) {
		t.Errorf("orphan delivery: got %v, want ErrOrphanDelivery", err)
	}

	same := fixtureMatches()
	same[0].Team2 = same[0].Team1
	if _, err := New(same, nil); !errors.Is(err, ErrSameTeams) {
		t.Errorf("same teams: got %v, want ErrSameTeams", err)
	}

	dup := append(fixtureMatches(), fixtureMatches()[0])
	if _, err := New(dup, nil); !errors.Is(err, ErrDuplicateMatch) {
		t.Errorf("duplicate id: got %v, want ErrDuplicateMatch", err)
	}
}

func TestNewNormalizesMatches(t *testing.T) {
	ms := fixtureMatches()
	ms[1].MatchType = model.EliminatorV1
	e, err := New(ms, fixtureDeliveries())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, ok := e.Match(3)
	if !ok {
		t.Fatal("match 3 missing")
	}
	if m.Winner != model.NoResult {
		t.Errorf("blank winner: got %q, want %q", m.Winner, model.NoResult)
	}
	if m2, _ := e.Match(2); m2.MatchType != model.Eliminator {
		t.Errorf("legacy eliminator: got %q", m2.MatchType)
	}
}

func TestEngineOrdersMatchesByDate(t *testing.T) {
	e := newFixtureEngine(t)
	if got := e.Seasons(); len(got) != 2 || got[0] != "2008" || got[1] != "2009" {
		t.Errorf("Seasons = %v", got)
	}
	ms := e.selectMatches()
	if ms[1].ID != 3 || ms[2].ID != 2 {
		t.Errorf("expected match 3 before the final, got %d then %d", ms[1].ID, ms[2].ID)
	}
	if e.MatchCount() != 3 || e.DeliveryCount() != 13 {
		t.Errorf("counts: %d matches, %d deliveries", e.MatchCount(), e.DeliveryCount())
	}
}

func TestEveryDeliveryJoinsItsMatch(t *testing.T) {
	e := newFixtureEngine(t)
	if len(e.balls) != e.DeliveryCount() {
		t.Fatalf("join dropped rows: %d of %d", len(e.balls), e.DeliveryCount())
	}
	for _, b := range e.balls {
		if b.Match == nil || b.Match.ID != b.MatchID {
			t.Fatalf("delivery of match %d joined to %+v", b.MatchID, b.Match)
		}
	}
}

// ---- cross-cutting properties ----

func TestNonStrikerOnlyBattersAppear(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BattingStats(filter.Season("2008"))
	if err != nil {
		t.Fatalf("BattingStats: %v", err)
	}
	c := findBatter(t, rows, "C")
	if c.Innings != 1 || c.Runs != 0 || c.Balls != 0 || c.NotOuts != 1 {
		t.Errorf("C = %+v, want one innings and no balls", c.BattingCounts)
	}
	if c.StrikeRate.Finite() {
		t.Errorf("C strike rate should be undefined, got %v", c.StrikeRate)
	}
	y := findBatter(t, rows, "Y")
	if y.Dismissals != 1 || y.NotOuts != 0 || !approx(y.Average, 0) {
		t.Errorf("Y = %+v avg %v, want a run-out with zero average", y.BattingCounts, y.Average)
	}
	// W was at the other end of a wide, never dismissed and never on strike.
	findBatter(t, rows, "W")
}

func TestInningsCountsDistinctMatches(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BattingStats(filter.All())
	if err != nil {
		t.Fatalf("BattingStats: %v", err)
	}
	a := findBatter(t, rows, "A")
	if a.Innings != 2 {
		t.Errorf("A innings = %d, want 2 (five balls in one match, one in another)", a.Innings)
	}
	if a.Runs != 17 || a.Balls != 6 {
		t.Errorf("A = %d off %d, want 17 off 6", a.Runs, a.Balls)
	}
}

func TestEmptySeasonListIsRejected(t *testing.T) {
	e := newFixtureEngine(t)
	none := filter.SeasonList()
	calls := map[string]func() error{
		"BattingStats":       func() error { _, err := e.BattingStats(none); return err },
		"BowlingStats":       func() error { _, err := e.BowlingStats(none); return err },
		"Catches":            func() error { _, err := e.Catches("", none); return err },
		"TeamHighlights":     func() error { _, err := e.TeamHighlights("Alpha", none); return err },
		"WinLoss":            func() error { _, err := e.WinLoss("", none); return err },
		"HomeAway":           func() error { _, err := e.HomeAway("Alpha", none); return err },
		"TwoHundredInnings":  func() error { _, err := e.TwoHundredInnings(none); return err },
		"Overview":           func() error { _, err := e.Overview(none); return err },
		"PlayerInnings":      func() error { _, err := e.PlayerInnings("A", none); return err },
		"BoundariesValidArg": func() error { _, err := e.Boundaries("", 6, none); return err },
	}
	for name, call := range calls {
		if err := call(); !errors.Is(err, filter.ErrNoSelection) {
			t.Errorf("%s: got %v, want ErrNoSelection", name, err)
		}
	}
}

func TestUnknownSeasonYieldsEmptyResults(t *testing.T) {
	e := newFixtureEngine(t)
	rows, err := e.BattingStats(filter.Season("1999"))
	if err != nil {
		t.Fatalf("BattingStats: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", rows)
	}
	scores, err := e.TeamScores("Nobody", filter.All())
	if err != nil {
		t.Fatalf("TeamScores: %v", err)
	}
	if scores == nil || len(scores) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", scores)
	}
}

func TestHomeCityFallsBackToUnknown(t *testing.T) {
	e := newFixtureEngine(t)
	if got := e.HomeCity("Alpha"); got != "Mumbai" {
		t.Errorf("Alpha home = %q", got)
	}
	if got := e.HomeCity("Bravo"); got != UnknownCity {
		t.Errorf("Bravo home = %q, want %q", got, UnknownCity)
	}
}

func TestPlayersIncludesEveryRole(t *testing.T) {
	e := newFixtureEngine(t)
	want := map[string]bool{"A": true, "C": true, "B1": true, "W": true, "Q": true}
	for _, p := range e.Players() {
		delete(want, p)
	}
	if len(want) != 0 {
		t.Errorf("missing players: %v", want)
	}
}

func TestByRateRanksNonFiniteValues(t *testing.T) {
	nan, inf := model.Rate(math.NaN()), model.Rate(math.Inf(1))
	rows := []model.BattingRecord{
		{Batter: "D", Average: nan},
		{Batter: "C", Average: 30},
		{Batter: "A", Average: nan},
		{Batter: "B", Average: inf},
		{Batter: "E", Average: 30},
		{Batter: "F", Average: 45},
	}
	byRate(rows, true, func(r model.BattingRecord) model.Rate { return r.Average }, battingName)
	want := []string{"B", "F", "C", "E", "A", "D"}
	for i, w := range want {
		if rows[i].Batter != w {
			t.Fatalf("descending order = %v, want %v", batterNames(rows), want)
		}
	}

	byRate(rows, false, func(r model.BattingRecord) model.Rate { return r.Average }, battingName)
	want = []string{"C", "E", "F", "B", "A", "D"}
	for i, w := range want {
		if rows[i].Batter != w {
			t.Fatalf("ascending order = %v, want %v", batterNames(rows), want)
		}
	}
}

func batterNames(rows []model.BattingRecord) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Batter
	}
	return out
}
