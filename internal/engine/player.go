package engine

import (
	"slices"
	"sort"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// DefaultRivalBowlers is the number of bowlers PlayerVsBowlers reports when
// n is not positive.
const DefaultRivalBowlers = 10

// PlayerTeam lists the seasons a player turned out for one team.
type PlayerTeam struct {
	Team    string   `json:"team"`
	Seasons []string `json:"seasons"`
	Count   int      `json:"count"`
}

func playerTeams(balls []model.Ball, team func(model.Ball) string) []PlayerTeam {
	seasons := aggregator.Nunique(balls,
		func(b model.Ball) (string, bool) { return team(b), true },
		func(b model.Ball) string { return b.Match.Season })
	rows := aggregator.JoinFill(func(t string) PlayerTeam {
		return PlayerTeam{Team: t, Seasons: seasons.Values(t), Count: seasons.Count(t)}
	}, seasons)
	return rows
}

// PlayerTeams lists the teams a batter played for, counting innings spent
// only at the non-striker's end.
func (e *Engine) PlayerTeams(player string) []PlayerTeam {
	balls := e.selectBalls(func(b model.Ball) bool { return b.Batter == player || b.NonStriker == player })
	return playerTeams(balls, func(b model.Ball) string { return b.BattingTeam })
}

// BowlerTeams lists the teams a bowler bowled for.
func (e *Engine) BowlerTeams(bowler string) []PlayerTeam {
	if bowler == "" {
		return []PlayerTeam{}
	}
	return playerTeams(e.selectBalls(filter.Bowler(bowler)), func(b model.Ball) string { return b.BowlingTeam })
}

// PlayerInnings lists every innings the player batted in, in date order.
func (e *Engine) PlayerInnings(player string, seasons filter.Seasons) ([]InningsScore, error) {
	balls, err := e.scoped(seasons, filter.Batter(player))
	if err != nil {
		return nil, err
	}
	return inningsScores(balls), nil
}

// InningSplit is a batter's record in one inning number.
type InningSplit struct {
	Inning        int `json:"inning"`
	Matches       int `json:"matches"`
	Centuries     int `json:"centuries"`
	HalfCenturies int `json:"half_centuries"`
	model.BattingCounts

	StrikeRate        model.Rate `json:"strike_rate"`
	BoundaryDominance model.Rate `json:"boundary_dominance"`
	DotBallReliance   model.Rate `json:"dot_ball_reliance"`
}

// PlayerInningSplit aggregates the player's innings by inning number.
func (e *Engine) PlayerInningSplit(player string, seasons filter.Seasons) ([]InningSplit, error) {
	scores, err := e.PlayerInnings(player, seasons)
	if err != nil {
		return nil, err
	}
	idx := map[int]int{}
	rows := make([]InningSplit, 0)
	for _, s := range scores {
		i, ok := idx[s.Inning]
		if !ok {
			i = len(rows)
			idx[s.Inning] = i
			rows = append(rows, InningSplit{Inning: s.Inning})
		}
		r := &rows[i]
		r.Matches++
		r.Innings++
		r.Centuries += boolInt(s.Century)
		r.HalfCenturies += boolInt(s.HalfCentury)
		r.Runs += s.Runs
		r.Balls += s.Balls
		r.Sixes += s.Sixes
		r.Fours += s.Fours
		r.Threes += s.Threes
		r.Twos += s.Twos
		r.Ones += s.Ones
		r.Dots += s.Dots
	}
	for i := range rows {
		c := rows[i].BattingCounts
		rows[i].StrikeRate = aggregator.Percent(c.Runs, c.Balls)
		rows[i].BoundaryDominance = aggregator.Percent(c.BoundaryRuns(), c.Runs)
		rows[i].DotBallReliance = aggregator.Percent(c.Dots, c.Balls)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Inning < rows[j].Inning })
	return rows, nil
}

// Dismissal counts how a batter got out, optionally to one bowler.
type Dismissal struct {
	Bowler string `json:"bowler,omitempty"`
	Kind   string `json:"kind"`
	Count  int    `json:"count"`
}

func (e *Engine) dismissed(player string, seasons filter.Seasons) ([]model.Ball, error) {
	return e.scoped(seasons, func(b model.Ball) bool { return b.IsWicket && b.PlayerDismissed == player })
}

// PlayerDismissalKinds counts the player's dismissals by kind, most first.
func (e *Engine) PlayerDismissalKinds(player string, seasons filter.Seasons) ([]Dismissal, error) {
	balls, err := e.dismissed(player, seasons)
	if err != nil {
		return nil, err
	}
	kinds := aggregator.Count(balls, func(b model.Ball) (string, bool) { return b.DismissalKind, true })
	rows := aggregator.JoinFill(func(k string) Dismissal { return Dismissal{Kind: k, Count: kinds.Get(k)} }, kinds)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Kind < rows[j].Kind })
	byDesc(rows, func(d Dismissal) int { return d.Count })
	return rows, nil
}

// PlayerDismissalBowlers counts the player's dismissals per bowler and kind.
// Run-outs are not credited to a bowler and are left out.
func (e *Engine) PlayerDismissalBowlers(player string, seasons filter.Seasons) ([]Dismissal, error) {
	balls, err := e.dismissed(player, seasons)
	if err != nil {
		return nil, err
	}
	type k struct{ bowler, kind string }
	counts := aggregator.Count(balls, func(b model.Ball) (k, bool) {
		return k{b.Bowler, b.DismissalKind}, b.DismissalKind != model.RunOut
	})
	rows := aggregator.JoinFill(func(x k) Dismissal {
		return Dismissal{Bowler: x.bowler, Kind: x.kind, Count: counts.Get(x)}
	}, counts)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Bowler < rows[j].Bowler })
	byDesc(rows, func(d Dismissal) int { return d.Count })
	return rows, nil
}

// VsBowler is a batter's record against one bowler.
type VsBowler struct {
	Bowler     string `json:"bowler"`
	Dismissals int    `json:"dismissals"`
	Balls      int    `json:"balls"`
	Runs       int    `json:"runs"`
	Sixes      int    `json:"sixes"`
	Fours      int    `json:"fours"`
	Threes     int    `json:"threes"`
	Twos       int    `json:"twos"`
	Ones       int    `json:"ones"`
	Dots       int    `json:"dots"`

	StrikeRate model.Rate `json:"strike_rate"`
	Average    model.Rate `json:"average"`
	DotPct     model.Rate `json:"dot_pct"`
}

// PlayerVsBowlers reports the player's record against the n bowlers who
// dismissed them most, most dismissals first.
func (e *Engine) PlayerVsBowlers(player string, n int) []VsBowler {
	if n <= 0 {
		n = DefaultRivalBowlers
	}
	outs := aggregator.Count(e.selectBalls(), func(b model.Ball) (string, bool) {
		return b.Bowler, b.IsWicket && b.PlayerDismissed == player && b.DismissalKind != model.RunOut
	})
	top := slices.Clone(outs.Keys())
	sort.SliceStable(top, func(i, j int) bool { return top[i] < top[j] })
	sort.SliceStable(top, func(i, j int) bool { return outs.Get(top[i]) > outs.Get(top[j]) })
	top = topN(top, n)

	idx := make(map[string]int, len(top))
	rows := make([]VsBowler, len(top))
	for i, bowler := range top {
		idx[bowler] = i
		rows[i] = VsBowler{Bowler: bowler, Dismissals: outs.Get(bowler)}
	}
	for _, b := range e.selectBalls(filter.Batter(player)) {
		i, ok := idx[b.Bowler]
		if !ok {
			continue
		}
		r := &rows[i]
		r.Balls++
		r.Runs += b.BatsmanRuns
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
		r := &rows[i]
		r.StrikeRate = aggregator.Percent(r.Runs, r.Balls)
		r.Average = aggregator.Ratio(r.Runs, r.Dismissals)
		r.DotPct = aggregator.Percent(r.Dots, r.Balls)
	}
	return rows
}

// VsTeam is a batter's record against one opponent.
type VsTeam struct {
	model.BattingRecord
	Rival         string `json:"rival"`
	Centuries     int    `json:"centuries"`
	HalfCenturies int    `json:"half_centuries"`
}

// PlayerVsTeam aggregates the player's batting against rival. Dismissals
// count only balls the player faced.
func (e *Engine) PlayerVsTeam(player, rival string, seasons filter.Seasons) (VsTeam, error) {
	balls, err := e.scoped(seasons, filter.Batter(player), filter.BowlingTeam(rival))
	if err != nil {
		return VsTeam{}, err
	}
	v := VsTeam{Rival: rival}
	var c model.BattingCounts
	for _, s := range inningsScores(balls) {
		c.Innings++
		c.Runs += s.Runs
		c.Balls += s.Balls
		c.Sixes += s.Sixes
		c.Fours += s.Fours
		c.Threes += s.Threes
		c.Twos += s.Twos
		c.Ones += s.Ones
		c.Dots += s.Dots
		v.Centuries += boolInt(s.Century)
		v.HalfCenturies += boolInt(s.HalfCentury)
	}
	for _, b := range balls {
		if b.IsWicket && b.PlayerDismissed == player {
			c.Dismissals++
		}
	}
	c.NotOuts = c.Innings - c.Dismissals
	v.BattingRecord = battingRecord(batKey{Batter: player, Team: rival}, c)
	return v, nil
}

// MilestoneSplit splits a batter's innings of at least MinRuns by result.
type MilestoneSplit struct {
	Player  string         `json:"player"`
	MinRuns int            `json:"min_runs"`
	Won     int            `json:"won"`
	Lost    int            `json:"lost"`
	Innings []InningsScore `json:"innings"`
}

// MilestoneWins lists the player's innings of at least minRuns and how many
// of them ended in a win for the player's team.
func (e *Engine) MilestoneWins(player string, minRuns int) MilestoneSplit {
	out := MilestoneSplit{Player: player, MinRuns: minRuns, Innings: []InningsScore{}}
	for _, s := range inningsScores(e.selectBalls(filter.Batter(player))) {
		if s.Runs < minRuns {
			continue
		}
		out.Innings = append(out.Innings, s)
		if s.Won {
			out.Won++
		} else {
			out.Lost++
		}
	}
	return out
}
