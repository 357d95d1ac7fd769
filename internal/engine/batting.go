package engine

import (
	"sort"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/classify"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// batKey scopes a batting aggregate. Unused parts stay empty.
type batKey struct {
	Season string
	Team   string
	Batter string
}

type keyFunc func(b model.Ball, player string) batKey

func byBatter(_ model.Ball, p string) batKey { return batKey{Batter: p} }

func bySeasonBatter(b model.Ball, p string) batKey {
	return batKey{Season: b.Match.Season, Batter: p}
}

// battingPartials are the independent partial aggregates a batting record
// is joined from.
type battingPartials struct {
	runs, balls                *aggregator.Tally[batKey]
	sixes, fours, threes, twos *aggregator.Tally[batKey]
	ones, dots                 *aggregator.Tally[batKey]
	dismissals                 *aggregator.Tally[batKey]
	innings                    *aggregator.Distinct[batKey, int64]
	nonStrikers                aggregator.KeyList[batKey]
}

func faced(key keyFunc) func(model.Ball) (batKey, bool) {
	return func(b model.Ball) (batKey, bool) { return key(b, b.Batter), b.Batter != "" }
}

func facedRuns(key keyFunc, runs int) func(model.Ball) (batKey, bool) {
	return func(b model.Ball) (batKey, bool) {
		return key(b, b.Batter), b.Batter != "" && b.BatsmanRuns == runs
	}
}

func collectBatting(balls []model.Ball, key keyFunc) battingPartials {
	p := battingPartials{
		runs:   aggregator.Sum(balls, faced(key), func(b model.Ball) int { return b.BatsmanRuns }),
		balls:  aggregator.Count(balls, faced(key)),
		sixes:  aggregator.Count(balls, facedRuns(key, 6)),
		fours:  aggregator.Count(balls, facedRuns(key, 4)),
		threes: aggregator.Count(balls, facedRuns(key, 3)),
		twos:   aggregator.Count(balls, facedRuns(key, 2)),
		ones:   aggregator.Count(balls, facedRuns(key, 1)),
		dots:   aggregator.Count(balls, facedRuns(key, 0)),
		dismissals: aggregator.Sum(balls,
			func(b model.Ball) (batKey, bool) { return key(b, b.PlayerDismissed), b.PlayerDismissed != "" },
			func(b model.Ball) int { return boolInt(b.IsWicket) }),
		innings: aggregator.Nunique(balls, faced(key), func(b model.Ball) int64 { return b.MatchID }),
	}

	// Players who only ever stood at the non-striker's end of this slice.
	seen := map[batKey]bool{}
	for _, b := range balls {
		k := key(b, b.NonStriker)
		if b.NonStriker == "" || seen[k] || p.balls.Has(k) {
			continue
		}
		seen[k] = true
		p.nonStrikers = append(p.nonStrikers, k)
	}
	return p
}

func (p battingPartials) record(k batKey) model.BattingRecord {
	innings := p.innings.Count(k)
	if innings == 0 {
		innings = 1
	}
	c := model.BattingCounts{
		Innings:    innings,
		Runs:       p.runs.Get(k),
		Balls:      p.balls.Get(k),
		Sixes:      p.sixes.Get(k),
		Fours:      p.fours.Get(k),
		Threes:     p.threes.Get(k),
		Twos:       p.twos.Get(k),
		Ones:       p.ones.Get(k),
		Dots:       p.dots.Get(k),
		Dismissals: p.dismissals.Get(k),
	}
	c.NotOuts = c.Innings - c.Dismissals
	return battingRecord(k, c)
}

func battingRecord(k batKey, c model.BattingCounts) model.BattingRecord {
	return model.BattingRecord{
		Batter:            k.Batter,
		Season:            k.Season,
		Team:              k.Team,
		BattingCounts:     c,
		StrikeRate:        aggregator.Percent(c.Runs, c.Balls),
		Average:           aggregator.Ratio(c.Runs, c.Dismissals),
		BoundaryDominance: aggregator.Percent(c.BoundaryRuns(), c.Runs),
		DotBallReliance:   aggregator.Percent(c.Dots, c.Balls),
	}
}

// battingTable joins every batting partial for the slice and sorts by runs,
// ties in key order.
func battingTable(balls []model.Ball, key keyFunc) []model.BattingRecord {
	p := collectBatting(balls, key)
	rows := aggregator.JoinFill(p.record, p.runs, p.nonStrikers, p.dismissals, p.innings)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Season != rows[j].Season {
			return rows[i].Season < rows[j].Season
		}
		return rows[i].Batter < rows[j].Batter
	})
	byDesc(rows, func(r model.BattingRecord) int { return r.Runs })
	return rows
}

// BattingStats aggregates every batter over the selected seasons.
func (e *Engine) BattingStats(seasons filter.Seasons) ([]model.BattingRecord, error) {
	balls, err := e.scoped(seasons)
	if err != nil {
		return nil, err
	}
	return battingTable(balls, byBatter), nil
}

// BattingStatsBySeason aggregates every batter per season.
func (e *Engine) BattingStatsBySeason(seasons filter.Seasons) ([]model.BattingRecord, error) {
	balls, err := e.scoped(seasons)
	if err != nil {
		return nil, err
	}
	rows := battingTable(balls, bySeasonBatter)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Season < rows[j].Season })
	return rows, nil
}

// TeamBattingStats aggregates batters while batting for team.
func (e *Engine) TeamBattingStats(team string, seasons filter.Seasons) ([]model.BattingRecord, error) {
	balls, err := e.scoped(seasons, filter.BattingTeam(team))
	if err != nil {
		return nil, err
	}
	rows := battingTable(balls, func(_ model.Ball, p string) batKey { return batKey{Team: team, Batter: p} })
	return rows, nil
}

// qualifiedBatters returns batting records meeting the innings threshold.
func (e *Engine) qualifiedBatters(seasons filter.Seasons) ([]model.BattingRecord, error) {
	rows, err := e.BattingStats(seasons)
	if err != nil {
		return nil, err
	}
	return filter.Where(rows, func(r model.BattingRecord) bool { return r.Innings >= e.minInnings }), nil
}

func battingName(r model.BattingRecord) string { return r.Batter }

// TopStrikeRates returns the n best strike rates among qualified batters.
func (e *Engine) TopStrikeRates(n int, seasons filter.Seasons) ([]model.BattingRecord, error) {
	rows, err := e.qualifiedBatters(seasons)
	if err != nil {
		return nil, err
	}
	byRate(rows, true, func(r model.BattingRecord) model.Rate { return r.StrikeRate }, battingName)
	return topN(rows, n), nil
}

// TopAverages returns the n best batting averages among qualified batters.
// Batters never dismissed have an infinite average and sort first; batters
// with no balls faced have no average and sort last.
func (e *Engine) TopAverages(n int, seasons filter.Seasons) ([]model.BattingRecord, error) {
	rows, err := e.qualifiedBatters(seasons)
	if err != nil {
		return nil, err
	}
	byRate(rows, true, func(r model.BattingRecord) model.Rate { return r.Average }, battingName)
	return topN(rows, n), nil
}

// BattingArchetypes labels every qualified batter by strike rate and average.
func (e *Engine) BattingArchetypes(seasons filter.Seasons) ([]model.BattingRecord, error) {
	rows, err := e.qualifiedBatters(seasons)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Category = classify.BatterArchetype(rows[i])
	}
	return rows, nil
}

// ---- Run tables ----

// PlayerRuns is a player's run total.
type PlayerRuns struct {
	Player string `json:"player"`
	Runs   int    `json:"runs"`
}

// LeadingRunScorers sums runs per batter, optionally while batting for team.
func (e *Engine) LeadingRunScorers(team string, seasons filter.Seasons) ([]PlayerRuns, error) {
	balls, err := e.scoped(seasons, filter.BallInvolving(team), filter.BattingTeam(team))
	if err != nil {
		return nil, err
	}
	runs := aggregator.Sum(balls, batterKey, func(b model.Ball) int { return b.BatsmanRuns })
	rows := aggregator.JoinFill(func(p string) PlayerRuns { return PlayerRuns{p, runs.Get(p)} }, runs)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Player < rows[j].Player })
	byDesc(rows, func(r PlayerRuns) int { return r.Runs })
	return rows, nil
}

// InningsScore is one batter's score in one match.
type InningsScore struct {
	MatchID     int64  `json:"match_id"`
	Season      string `json:"season"`
	Batter      string `json:"batter"`
	BattingTeam string `json:"batting_team"`
	BowlingTeam string `json:"bowling_team"`
	Inning      int    `json:"inning"`
	Runs        int    `json:"runs"`
	Balls       int    `json:"balls"`
	Sixes       int    `json:"sixes"`
	Fours       int    `json:"fours"`
	Threes      int    `json:"threes"`
	Twos        int    `json:"twos"`
	Ones        int    `json:"ones"`
	Dots        int    `json:"dots"`
	Century     bool   `json:"century"`
	HalfCentury bool   `json:"half_century"`
	Won         bool   `json:"won"`
}

type inningsKey struct {
	match  int64
	batter string
}

// inningsScores builds one row per (match, batter) in date order.
func inningsScores(balls []model.Ball) []InningsScore {
	idx := map[inningsKey]int{}
	rows := make([]InningsScore, 0)
	for _, b := range balls {
		if b.Batter == "" {
			continue
		}
		k := inningsKey{b.MatchID, b.Batter}
		i, ok := idx[k]
		if !ok {
			i = len(rows)
			idx[k] = i
			rows = append(rows, InningsScore{
				MatchID:     b.MatchID,
				Season:      b.Match.Season,
				Batter:      b.Batter,
				BattingTeam: b.BattingTeam,
				BowlingTeam: b.BowlingTeam,
				Inning:      b.Inning,
				Won:         b.Match.Winner == b.BattingTeam,
			})
		}
		r := &rows[i]
		r.Runs += b.BatsmanRuns
		r.Balls++
		switch b.BatsmanRuns {
		case 6:
			r.Sixes++
		case 4:
			r.Fours++
		case 3:
			r.Threes++
		case 2:
			r.Twos++
		case 1:
			r.Ones++
		case 0:
			r.Dots++
		}
	}
	for i := range rows {
		rows[i].Century = rows[i].Runs >= 100
		rows[i].HalfCentury = rows[i].Runs >= 50 && rows[i].Runs < 100
	}
	return rows
}

// IndividualScores lists every innings by runs, optionally for team's batters.
func (e *Engine) IndividualScores(team string, seasons filter.Seasons) ([]InningsScore, error) {
	balls, err := e.scoped(seasons, filter.BallInvolving(team), filter.BattingTeam(team))
	if err != nil {
		return nil, err
	}
	rows := inningsScores(balls)
	byDesc(rows, func(r InningsScore) int { return r.Runs })
	return rows, nil
}

// BoundaryCount is a batter's count of boundaries.
type BoundaryCount struct {
	Batter string `json:"batter"`
	Count  int    `json:"count"`
}

// Boundaries counts sixes (boundary 6), fours (4) or both (0) per batter.
func (e *Engine) Boundaries(team string, boundary int, seasons filter.Seasons) ([]BoundaryCount, error) {
	var hit func(int) bool
	switch boundary {
	case 4, 6:
		hit = func(r int) bool { return r == boundary }
	case 0:
		hit = func(r int) bool { return r == 4 || r == 6 }
	default:
		return nil, ErrInvalidBoundary
	}
	balls, err := e.scoped(seasons, filter.BallInvolving(team), filter.BattingTeam(team))
	if err != nil {
		return nil, err
	}
	counts := aggregator.Count(balls, func(b model.Ball) (string, bool) {
		return b.Batter, b.Batter != "" && hit(b.BatsmanRuns)
	})
	rows := aggregator.JoinFill(func(p string) BoundaryCount { return BoundaryCount{p, counts.Get(p)} }, counts)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Batter < rows[j].Batter })
	byDesc(rows, func(r BoundaryCount) int { return r.Count })
	return rows, nil
}

// Milestone counts a batter's centuries and half-centuries.
type Milestone struct {
	Batter        string `json:"batter"`
	Season        string `json:"season,omitempty"`
	Team          string `json:"team,omitempty"`
	Centuries     int    `json:"centuries"`
	HalfCenturies int    `json:"half_centuries"`
}

// Milestones counts 100s and 50s per batter, optionally for team's batters.
// Only batters with at least one milestone appear.
func (e *Engine) Milestones(team string, seasons filter.Seasons) ([]Milestone, error) {
	balls, err := e.scoped(seasons, filter.BallInvolving(team), filter.BattingTeam(team))
	if err != nil {
		return nil, err
	}
	scores := inningsScores(balls)
	hundreds := aggregator.Count(scores, func(s InningsScore) (string, bool) { return s.Batter, s.Century })
	fifties := aggregator.Count(scores, func(s InningsScore) (string, bool) { return s.Batter, s.HalfCentury })
	rows := aggregator.JoinFill(func(p string) Milestone {
		return Milestone{Batter: p, Team: team, Centuries: hundreds.Get(p), HalfCenturies: fifties.Get(p)}
	}, hundreds, fifties)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Batter < rows[j].Batter })
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Centuries != rows[j].Centuries {
			return rows[i].Centuries > rows[j].Centuries
		}
		return rows[i].HalfCenturies > rows[j].HalfCenturies
	})
	return rows, nil
}

// SeasonMilestones counts 100s and 50s per (season, team, batter).
func (e *Engine) SeasonMilestones(seasons filter.Seasons) ([]Milestone, error) {
	balls, err := e.scoped(seasons)
	if err != nil {
		return nil, err
	}
	type k struct{ season, team, batter string }
	scores := inningsScores(balls)
	key := func(s InningsScore) k { return k{s.Season, s.BattingTeam, s.Batter} }
	hundreds := aggregator.Count(scores, func(s InningsScore) (k, bool) { return key(s), s.Century })
	fifties := aggregator.Count(scores, func(s InningsScore) (k, bool) { return key(s), s.HalfCentury })
	rows := aggregator.JoinFill(func(x k) Milestone {
		return Milestone{Batter: x.batter, Season: x.season, Team: x.team,
			Centuries: hundreds.Get(x), HalfCenturies: fifties.Get(x)}
	}, hundreds, fifties)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Season < rows[j].Season })
	return rows, nil
}

func batterKey(b model.Ball) (string, bool) { return b.Batter, b.Batter != "" }

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
