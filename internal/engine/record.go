package engine

import (
	"sort"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// Scopes for HomeAway.
const (
	Home = "Home"
	Away = "Away"
)

type recKey struct {
	rival string
	scope string
}

// teamRecords groups team's matches by key and tallies wins per group, in
// first-seen order.
func teamRecords(team string, ms []*model.Match, key func(*model.Match, filter.Seats) recKey) []model.TeamRecord {
	keyOf := func(m *model.Match) (recKey, bool) {
		seats, err := filter.Relabel(m, team)
		if err != nil {
			return recKey{}, false
		}
		return key(m, seats), true
	}
	played := aggregator.Count(ms, keyOf)
	won := aggregator.Count(ms, func(m *model.Match) (recKey, bool) {
		k, ok := keyOf(m)
		return k, ok && m.Winner == team
	})
	return aggregator.JoinFill(func(k recKey) model.TeamRecord {
		r := model.TeamRecord{
			Team:    team,
			Rival:   k.rival,
			Scope:   k.scope,
			Matches: played.Get(k),
			Won:     won.Get(k),
		}
		r.Lost = r.Matches - r.Won
		r.WinPct = aggregator.Percent(r.Won, r.Matches)
		return r
	}, played)
}

func overall(*model.Match, filter.Seats) recKey { return recKey{} }

func byMatchType(m *model.Match, _ filter.Seats) recKey { return recKey{scope: m.MatchType} }

func byRival(_ *model.Match, s filter.Seats) recKey { return recKey{rival: s.Rival} }

func byWinPct(rows []model.TeamRecord) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].WinPct > rows[j].WinPct })
}

// WinLoss returns the overall record of team, or of every team by win rate
// when team is empty. Teams without a match in scope are omitted.
func (e *Engine) WinLoss(team string, seasons filter.Seasons) ([]model.TeamRecord, error) {
	if err := seasons.Validate(); err != nil {
		return nil, err
	}
	teams := []string{team}
	if team == "" {
		teams = e.TeamNames()
	}
	rows := make([]model.TeamRecord, 0, len(teams))
	for _, t := range teams {
		ms := e.selectMatches(filter.Involving(t), filter.MatchSeasons(seasons))
		rows = append(rows, teamRecords(t, ms, overall)...)
	}
	byWinPct(rows)
	return rows, nil
}

// SeasonCount is the number of matches in one season.
type SeasonCount struct {
	Season  string `json:"season"`
	Matches int    `json:"matches"`
}

// SeasonMatchCounts counts team's matches per season in chronological order.
func (e *Engine) SeasonMatchCounts(team string) []SeasonCount {
	ms := e.selectMatches(filter.Involving(team))
	counts := aggregator.Count(ms, func(m *model.Match) (string, bool) { return m.Season, true })
	return aggregator.JoinFill(func(s string) SeasonCount { return SeasonCount{s, counts.Get(s)} }, counts)
}

// MatchTypeRecord returns team's record per match type, league first.
func (e *Engine) MatchTypeRecord(team string, seasons filter.Seasons) ([]model.TeamRecord, error) {
	ms, err := e.scopedMatches(seasons, filter.Involving(team))
	if err != nil {
		return nil, err
	}
	rows := teamRecords(team, ms, byMatchType)
	sortByStage(rows, func(r model.TeamRecord) string { return r.Scope })
	return rows, nil
}

// RivalRecord returns team's record against each opponent by win rate, ties
// in rival order.
func (e *Engine) RivalRecord(team string, seasons filter.Seasons) ([]model.TeamRecord, error) {
	ms, err := e.scopedMatches(seasons, filter.Involving(team))
	if err != nil {
		return nil, err
	}
	rows := teamRecords(team, ms, byRival)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Rival < rows[j].Rival })
	byWinPct(rows)
	return rows, nil
}

// RivalMatchTypeRecord returns team's record against rival per match type.
func (e *Engine) RivalMatchTypeRecord(team, rival string, seasons filter.Seasons) ([]model.TeamRecord, error) {
	ms, err := e.scopedMatches(seasons, filter.Between(team, rival))
	if err != nil {
		return nil, err
	}
	rows := teamRecords(team, ms, func(m *model.Match, s filter.Seats) recKey {
		return recKey{rival: s.Rival, scope: m.MatchType}
	})
	sortByStage(rows, func(r model.TeamRecord) string { return r.Scope })
	return rows, nil
}

// RivalMatches lists every fixture between team and rival in date order.
func (e *Engine) RivalMatches(team, rival string, seasons filter.Seasons) ([]model.Match, error) {
	ms, err := e.scopedMatches(seasons, filter.Between(team, rival))
	if err != nil {
		return nil, err
	}
	out := make([]model.Match, 0, len(ms))
	for _, m := range ms {
		out = append(out, *m)
	}
	return out, nil
}

// TossSplit counts tosses won and lost by a team.
type TossSplit struct {
	Team string `json:"team"`
	Won  int    `json:"toss_won"`
	Lost int    `json:"toss_lost"`
}

// TossDistribution counts team's toss wins and losses.
func (e *Engine) TossDistribution(team string, seasons filter.Seasons) (TossSplit, error) {
	ms, err := e.scopedMatches(seasons, filter.Involving(team))
	if err != nil {
		return TossSplit{}, err
	}
	s := TossSplit{Team: team}
	for _, m := range ms {
		if m.TossWinner == team {
			s.Won++
		} else {
			s.Lost++
		}
	}
	return s, nil
}

// TossCause splits a team's match wins by toss outcome.
type TossCause struct {
	Team          string `json:"team"`
	WonAfterWin   int    `json:"won_after_toss_won"`
	WonAfterLoss  int    `json:"won_after_toss_lost"`
	MatchesPlayed int    `json:"matches"`
}

// TossWinningCause counts team's wins after winning and after losing the toss.
func (e *Engine) TossWinningCause(team string, seasons filter.Seasons) (TossCause, error) {
	ms, err := e.scopedMatches(seasons, filter.Involving(team))
	if err != nil {
		return TossCause{}, err
	}
	c := TossCause{Team: team, MatchesPlayed: len(ms)}
	for _, m := range ms {
		if m.Winner != team {
			continue
		}
		if m.TossWinner == team {
			c.WonAfterWin++
		} else {
			c.WonAfterLoss++
		}
	}
	return c, nil
}

// HomeAway splits team's record by whether the match city is its home city.
// A team missing from the home-city table gets a single UnknownCity scope.
func (e *Engine) HomeAway(team string, seasons filter.Seasons) ([]model.TeamRecord, error) {
	ms, err := e.scopedMatches(seasons, filter.Involving(team))
	if err != nil {
		return nil, err
	}
	home, mapped := e.homeCities[team]
	rows := teamRecords(team, ms, func(m *model.Match, _ filter.Seats) recKey {
		switch {
		case !mapped:
			return recKey{scope: UnknownCity}
		case m.City == home:
			return recKey{scope: Home}
		default:
			return recKey{scope: Away}
		}
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Scope > rows[j].Scope })
	return rows, nil
}
