package engine

import (
	"sort"
	"strconv"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/classify"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// Split selects how bowling spells are rolled up.
type Split string

// Bowling splits.
const (
	SplitBowler       Split = "bowler"
	SplitInning       Split = "inning"
	SplitSeason       Split = "season"
	SplitSeasonInning Split = "season-inning"
	SplitRival        Split = "rival"
	SplitRivalSeason  Split = "rival-season"
	SplitTeam         Split = "team"
)

// Splits lists every valid split.
var Splits = []Split{SplitBowler, SplitInning, SplitSeason, SplitSeasonInning, SplitRival, SplitRivalSeason, SplitTeam}

// spellKey identifies one bowler's work in one innings of one match.
type spellKey struct {
	Bowler      string
	Season      string
	Match       int64
	Inning      int
	BowlingTeam string
	BattingTeam string
}

func spellOf(b model.Ball) spellKey {
	return spellKey{b.Bowler, b.Match.Season, b.MatchID, b.Inning, b.BowlingTeam, b.BattingTeam}
}

type spell struct {
	key spellKey
	model.BowlingCounts
}

func spellWhere(cond func(model.Ball) bool) func(model.Ball) (spellKey, bool) {
	return func(b model.Ball) (spellKey, bool) { return spellOf(b), b.Bowler != "" && cond(b) }
}

func always(model.Ball) bool { return true }

func concededRuns(runs int) func(model.Ball) bool {
	return func(b model.Ball) bool { return b.BatsmanRuns == runs }
}

// spells joins the per-spell partials: wickets, economy inputs, dots,
// scoring shots conceded and extras.
func spells(balls []model.Ball) []spell {
	wickets := aggregator.Count(balls, spellWhere(func(b model.Ball) bool { return b.BowlerWicket() }))
	count := aggregator.Count(balls, spellWhere(always))
	runs := aggregator.Sum(balls, spellWhere(always), func(b model.Ball) int { return b.TotalRuns })
	dots := aggregator.Count(balls, spellWhere(func(b model.Ball) bool { return b.IsDot() }))
	sixes := aggregator.Count(balls, spellWhere(concededRuns(6)))
	fours := aggregator.Count(balls, spellWhere(concededRuns(4)))
	threes := aggregator.Count(balls, spellWhere(concededRuns(3)))
	twos := aggregator.Count(balls, spellWhere(concededRuns(2)))
	ones := aggregator.Count(balls, spellWhere(concededRuns(1)))
	extras := aggregator.Sum(balls, spellWhere(func(b model.Ball) bool { return b.ExtraRuns > 0 }),
		func(b model.Ball) int { return b.ExtraRuns })

	return aggregator.JoinFill(func(k spellKey) spell {
		return spell{key: k, BowlingCounts: model.BowlingCounts{
			Matches:        1,
			Balls:          count.Get(k),
			Runs:           runs.Get(k),
			Wickets:        wickets.Get(k),
			Dots:           dots.Get(k),
			SixesConceded:  sixes.Get(k),
			FoursConceded:  fours.Get(k),
			ThreesConceded: threes.Get(k),
			TwosConceded:   twos.Get(k),
			OnesConceded:   ones.Get(k),
			Extras:         extras.Get(k),
		}}
	}, wickets, count, dots, sixes, fours, threes, twos, ones, extras)
}

// rollKey is the grouping key of a spell rollup.
type rollKey struct {
	Bowler string
	Season string
	Inning int
	Team   string
	Rival  string
}

func rollKeyFor(split Split) (func(spellKey) rollKey, error) {
	switch split {
	case SplitBowler:
		return func(k spellKey) rollKey { return rollKey{Bowler: k.Bowler} }, nil
	case SplitInning:
		return func(k spellKey) rollKey { return rollKey{Bowler: k.Bowler, Inning: k.Inning} }, nil
	case SplitSeason:
		return func(k spellKey) rollKey { return rollKey{Bowler: k.Bowler, Season: k.Season} }, nil
	case SplitSeasonInning:
		return func(k spellKey) rollKey { return rollKey{Bowler: k.Bowler, Season: k.Season, Inning: k.Inning} }, nil
	case SplitRival:
		return func(k spellKey) rollKey { return rollKey{Bowler: k.Bowler, Rival: k.BattingTeam} }, nil
	case SplitRivalSeason:
		return func(k spellKey) rollKey { return rollKey{Bowler: k.Bowler, Season: k.Season, Rival: k.BattingTeam} }, nil
	case SplitTeam:
		return func(k spellKey) rollKey { return rollKey{Bowler: k.Bowler, Team: k.BowlingTeam} }, nil
	}
	return nil, ErrInvalidSplit
}

// rollup sums spells per key; matches are distinct match ids.
func rollup(ss []spell, key func(spellKey) rollKey) []model.BowlingRecord {
	order := make([]rollKey, 0)
	sums := map[rollKey]*model.BowlingCounts{}
	matches := aggregator.NewDistinct[rollKey, int64]()
	for _, s := range ss {
		k := key(s.key)
		c, ok := sums[k]
		if !ok {
			c = &model.BowlingCounts{}
			sums[k] = c
			order = append(order, k)
		}
		matches.Add(k, s.key.Match)
		c.Balls += s.Balls
		c.Runs += s.Runs
		c.Wickets += s.Wickets
		c.Dots += s.Dots
		c.SixesConceded += s.SixesConceded
		c.FoursConceded += s.FoursConceded
		c.ThreesConceded += s.ThreesConceded
		c.TwosConceded += s.TwosConceded
		c.OnesConceded += s.OnesConceded
		c.Extras += s.Extras
	}
	rows := make([]model.BowlingRecord, 0, len(order))
	for _, k := range order {
		c := *sums[k]
		c.Matches = matches.Count(k)
		rows = append(rows, bowlingRecord(k, c))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.Bowler != b.Bowler:
			return a.Bowler < b.Bowler
		case a.Rival != b.Rival:
			return a.Rival < b.Rival
		case a.Season != b.Season:
			return a.Season < b.Season
		}
		return a.Inning < b.Inning
	})
	return rows
}

func bowlingRecord(k rollKey, c model.BowlingCounts) model.BowlingRecord {
	return model.BowlingRecord{
		Bowler:          k.Bowler,
		Season:          k.Season,
		Inning:          k.Inning,
		Team:            k.Team,
		Rival:           k.Rival,
		BowlingCounts:   c,
		Overs:           model.Rate(aggregator.Overs(c.Balls)),
		Economy:         aggregator.PerOver(c.Runs, c.Balls),
		Average:         aggregator.Ratio(c.Runs, c.Wickets),
		StrikeRate:      aggregator.Ratio(c.Balls, c.Wickets),
		DotBallPct:      aggregator.Percent(c.Dots, c.Balls),
		BoundaryBallPct: aggregator.Percent(c.SixesConceded+c.FoursConceded, c.Balls),
		WicketsPerMatch: aggregator.Ratio(c.Wickets, c.Matches),
	}
}

// BowlingStats aggregates every bowler, sorted by wickets.
func (e *Engine) BowlingStats(seasons filter.Seasons) ([]model.BowlingRecord, error) {
	return e.BowlingSplit("", SplitBowler, seasons)
}

// BowlingSplit rolls a bowler's spells up by split. An empty bowler covers everyone.
func (e *Engine) BowlingSplit(bowler string, split Split, seasons filter.Seasons) ([]model.BowlingRecord, error) {
	key, err := rollKeyFor(split)
	if err != nil {
		return nil, err
	}
	balls, err := e.scoped(seasons, filter.Bowler(bowler))
	if err != nil {
		return nil, err
	}
	rows := rollup(spells(balls), key)
	if split == SplitBowler {
		byDesc(rows, func(r model.BowlingRecord) int { return r.Wickets })
	}
	return rows, nil
}

// TeamBowlingStats aggregates bowlers while bowling for team.
func (e *Engine) TeamBowlingStats(team string, seasons filter.Seasons) ([]model.BowlingRecord, error) {
	balls, err := e.scoped(seasons, filter.BowlingTeam(team))
	if err != nil {
		return nil, err
	}
	rows := rollup(spells(balls), func(k spellKey) rollKey { return rollKey{Bowler: k.Bowler, Team: team} })
	byDesc(rows, func(r model.BowlingRecord) int { return r.Wickets })
	return rows, nil
}

func (e *Engine) qualifiedBowlers(seasons filter.Seasons) ([]model.BowlingRecord, error) {
	rows, err := e.BowlingStats(seasons)
	if err != nil {
		return nil, err
	}
	return filter.Where(rows, func(r model.BowlingRecord) bool { return float64(r.Overs) >= e.minOvers }), nil
}

func bowlingName(r model.BowlingRecord) string { return r.Bowler }

// TopEconomy returns the n most economical qualified bowlers.
func (e *Engine) TopEconomy(n int, seasons filter.Seasons) ([]model.BowlingRecord, error) {
	rows, err := e.qualifiedBowlers(seasons)
	if err != nil {
		return nil, err
	}
	byRate(rows, false, func(r model.BowlingRecord) model.Rate { return r.Economy }, bowlingName)
	return topN(rows, n), nil
}

// TopBowlingStrikeRates returns the n qualified bowlers needing the fewest balls per wicket.
func (e *Engine) TopBowlingStrikeRates(n int, seasons filter.Seasons) ([]model.BowlingRecord, error) {
	rows, err := e.qualifiedBowlers(seasons)
	if err != nil {
		return nil, err
	}
	byRate(rows, false, func(r model.BowlingRecord) model.Rate { return r.StrikeRate }, bowlingName)
	return topN(rows, n), nil
}

// BowlingArchetypes labels qualified bowlers by strike rate and economy.
func (e *Engine) BowlingArchetypes(seasons filter.Seasons) ([]model.BowlingRecord, error) {
	rows, err := e.qualifiedBowlers(seasons)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Category = classify.BowlerArchetype(rows[i])
	}
	return rows, nil
}

// ContainmentArchetypes labels qualified bowlers by dot-ball pressure.
func (e *Engine) ContainmentArchetypes(seasons filter.Seasons) ([]model.BowlingRecord, error) {
	rows, err := e.qualifiedBowlers(seasons)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Category = classify.ContainmentArchetype(rows[i])
	}
	byDesc(rows, func(r model.BowlingRecord) int { return r.Dots })
	return rows, nil
}

// ---- Wicket tables ----

// PlayerWickets is a bowler's wicket total.
type PlayerWickets struct {
	Player  string `json:"player"`
	Wickets int    `json:"wickets"`
}

// LeadingWicketTakers counts bowler-credited wickets, optionally while bowling for team.
func (e *Engine) LeadingWicketTakers(team string, seasons filter.Seasons) ([]PlayerWickets, error) {
	balls, err := e.scoped(seasons, filter.BallInvolving(team), filter.BowlingTeam(team))
	if err != nil {
		return nil, err
	}
	wkts := aggregator.Count(balls, func(b model.Ball) (string, bool) { return b.Bowler, b.BowlerWicket() })
	rows := aggregator.JoinFill(func(p string) PlayerWickets { return PlayerWickets{p, wkts.Get(p)} }, wkts)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Player < rows[j].Player })
	byDesc(rows, func(r PlayerWickets) int { return r.Wickets })
	return rows, nil
}

// BowlingFigure is a bowler's wickets and runs in one match.
type BowlingFigure struct {
	MatchID     int64  `json:"match_id"`
	Season      string `json:"season"`
	Bowler      string `json:"bowler"`
	BowlingTeam string `json:"bowling_team"`
	BattingTeam string `json:"batting_team"`
	Wickets     int    `json:"wickets"`
	Runs        int    `json:"runs"`
}

// Figures renders the figure as wickets/runs.
func (f BowlingFigure) Figures() string {
	return strconv.Itoa(f.Wickets) + "/" + strconv.Itoa(f.Runs)
}

type figureKey struct {
	match  int64
	bowler string
}

// figures builds per-match figures for every bowler who took a wicket.
// Runs are summed over the bowler's non-wicket deliveries in that match.
func figures(balls []model.Ball) []BowlingFigure {
	meta := map[figureKey]model.Ball{}
	key := func(cond func(model.Ball) bool) func(model.Ball) (figureKey, bool) {
		return func(b model.Ball) (figureKey, bool) {
			k := figureKey{b.MatchID, b.Bowler}
			if _, ok := meta[k]; !ok {
				meta[k] = b
			}
			return k, b.Bowler != "" && cond(b)
		}
	}
	wkts := aggregator.Count(balls, key(func(b model.Ball) bool { return b.BowlerWicket() }))
	runs := aggregator.Sum(balls, key(func(b model.Ball) bool { return !b.IsWicket }),
		func(b model.Ball) int { return b.TotalRuns })

	rows := aggregator.JoinFill(func(k figureKey) BowlingFigure {
		b := meta[k]
		return BowlingFigure{
			MatchID:     k.match,
			Season:      b.Match.Season,
			Bowler:      k.bowler,
			BowlingTeam: b.BowlingTeam,
			BattingTeam: b.BattingTeam,
			Wickets:     wkts.Get(k),
			Runs:        runs.Get(k),
		}
	}, wkts)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wickets != rows[j].Wickets {
			return rows[i].Wickets > rows[j].Wickets
		}
		return rows[i].Runs < rows[j].Runs
	})
	return rows
}

// BestBowlingFigures ranks match figures by wickets, then fewest runs.
func (e *Engine) BestBowlingFigures(team string, seasons filter.Seasons) ([]BowlingFigure, error) {
	balls, err := e.scoped(seasons, filter.BallInvolving(team), filter.BowlingTeam(team))
	if err != nil {
		return nil, err
	}
	return figures(balls), nil
}

// WicketHauls lists match figures of four or more wickets.
func (e *Engine) WicketHauls(team string, seasons filter.Seasons) ([]BowlingFigure, error) {
	rows, err := e.BestBowlingFigures(team, seasons)
	if err != nil {
		return nil, err
	}
	return filter.Where(rows, func(f BowlingFigure) bool { return f.Wickets >= 4 }), nil
}

// countHauls splits figures into exactly-four and five-plus wicket hauls.
func countHauls(fs []BowlingFigure) (four, fivePlus int) {
	for _, f := range fs {
		switch {
		case f.Wickets == 4:
			four++
		case f.Wickets >= 5:
			fivePlus++
		}
	}
	return four, fivePlus
}
