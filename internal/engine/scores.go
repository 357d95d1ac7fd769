package engine

import (
	"sort"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// BigTotal is the innings total counted as a 200+ score.
const BigTotal = 200

// Innings modes.
const (
	SetTarget = "Set Target"
	Chased    = "Chasing"
)

// BigInnings is one 200+ innings.
type BigInnings struct {
	MatchID  int64  `json:"match_id"`
	Season   string `json:"season"`
	Team     string `json:"team"`
	Rival    string `json:"rival"`
	Inning   int    `json:"inning"`
	Runs     int    `json:"runs"`
	Mode     string `json:"mode"`
	TossWon  bool   `json:"toss_won"`
	MatchWon bool   `json:"match_won"`
}

// TwoHundredInnings lists every 200+ innings in date order. A first-innings
// total is read from the match target (target - 1) and matches without a
// target contribute none; a second-innings total sums its deliveries.
func (e *Engine) TwoHundredInnings(seasons filter.Seasons) ([]BigInnings, error) {
	balls, err := e.scoped(seasons, func(b model.Ball) bool { return b.Inning == 1 || b.Inning == 2 })
	if err != nil {
		return nil, err
	}
	type side struct {
		match  *model.Match
		inning int
		team   string
		rival  string
	}
	var order []side
	seen := map[scoreKey]bool{}
	chase := aggregator.NewTally[scoreKey]()
	for _, b := range balls {
		k := scoreKey{b.MatchID, b.BattingTeam}
		if !seen[k] {
			seen[k] = true
			order = append(order, side{b.Match, b.Inning, b.BattingTeam, b.BowlingTeam})
		}
		if b.Inning == 2 {
			chase.Add(k, b.TotalRuns)
		}
	}

	rows := make([]BigInnings, 0)
	for _, s := range order {
		var runs int
		switch {
		case s.inning == 1 && s.match.HasTarget():
			runs = s.match.TargetRuns - 1
		case s.inning == 2:
			runs = chase.Get(scoreKey{s.match.ID, s.team})
		default:
			continue
		}
		if runs < BigTotal {
			continue
		}
		mode := SetTarget
		if s.inning == 2 {
			mode = Chased
		}
		rows = append(rows, BigInnings{
			MatchID:  s.match.ID,
			Season:   s.match.Season,
			Team:     s.team,
			Rival:    s.rival,
			Inning:   s.inning,
			Runs:     runs,
			Mode:     mode,
			TossWon:  s.match.TossWinner == s.team,
			MatchWon: s.match.Winner == s.team,
		})
	}
	return rows, nil
}

// BigInningsGroup counts 200+ innings sharing a mode and toss/match outcome.
type BigInningsGroup struct {
	Team     string `json:"team"`
	Mode     string `json:"mode"`
	TossWon  bool   `json:"toss_won"`
	MatchWon bool   `json:"match_won"`
	Count    int    `json:"count"`
}

// TwoHundredSplit groups 200+ innings by team, mode, toss won and match won.
func (e *Engine) TwoHundredSplit(seasons filter.Seasons) ([]BigInningsGroup, error) {
	innings, err := e.TwoHundredInnings(seasons)
	if err != nil {
		return nil, err
	}
	type k struct {
		team, mode string
		toss, won  bool
	}
	counts := aggregator.Count(innings, func(b BigInnings) (k, bool) {
		return k{b.Team, b.Mode, b.TossWon, b.MatchWon}, true
	})
	rows := aggregator.JoinFill(func(x k) BigInningsGroup {
		return BigInningsGroup{x.team, x.mode, x.toss, x.won, counts.Get(x)}
	}, counts)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Mode != b.Mode {
			return a.Mode == SetTarget
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.TossWon != b.TossWon {
			return !a.TossWon
		}
		return !a.MatchWon && b.MatchWon
	})
	return rows, nil
}

// BigInningsWinRate is a team's win rate when posting or chasing 200+.
type BigInningsWinRate struct {
	Team    string     `json:"team"`
	Mode    string     `json:"mode"`
	Innings int        `json:"innings"`
	Won     int        `json:"won"`
	WinPct  model.Rate `json:"win_pct"`
}

// TwoHundredWinRates returns per team and mode win rates, setting first, each
// mode by win rate.
func (e *Engine) TwoHundredWinRates(seasons filter.Seasons) ([]BigInningsWinRate, error) {
	innings, err := e.TwoHundredInnings(seasons)
	if err != nil {
		return nil, err
	}
	type k struct{ team, mode string }
	key := func(b BigInnings) k { return k{b.Team, b.Mode} }
	played := aggregator.Count(innings, func(b BigInnings) (k, bool) { return key(b), true })
	won := aggregator.Count(innings, func(b BigInnings) (k, bool) { return key(b), b.MatchWon })
	rows := aggregator.JoinFill(func(x k) BigInningsWinRate {
		return BigInningsWinRate{
			Team:    x.team,
			Mode:    x.mode,
			Innings: played.Get(x),
			Won:     won.Get(x),
			WinPct:  aggregator.Percent(won.Get(x), played.Get(x)),
		}
	}, played)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].WinPct > rows[j].WinPct })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Mode == SetTarget && rows[j].Mode != SetTarget })
	return rows, nil
}

// BigInningsCount is a team's number of 200+ innings.
type BigInningsCount struct {
	Team      string `json:"team"`
	SetTarget int    `json:"set_target"`
	Chasing   int    `json:"chasing"`
	Total     int    `json:"total"`
}

// TwoHundredCounts counts 200+ innings for every team, including teams with
// none, most first.
func (e *Engine) TwoHundredCounts(seasons filter.Seasons) ([]BigInningsCount, error) {
	innings, err := e.TwoHundredInnings(seasons)
	if err != nil {
		return nil, err
	}
	set := aggregator.Count(innings, func(b BigInnings) (string, bool) { return b.Team, b.Mode == SetTarget })
	chased := aggregator.Count(innings, func(b BigInnings) (string, bool) { return b.Team, b.Mode == Chased })
	rows := aggregator.JoinFill(func(t string) BigInningsCount {
		c := BigInningsCount{Team: t, SetTarget: set.Get(t), Chasing: chased.Get(t)}
		c.Total = c.SetTarget + c.Chasing
		return c
	}, aggregator.KeyList[string](e.TeamNames()), set, chased)
	byDesc(rows, func(c BigInningsCount) int { return c.Total })
	return rows, nil
}
