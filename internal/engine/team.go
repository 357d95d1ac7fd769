package engine

import (
	"sort"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// TeamSummary lists the seasons a franchise played.
type TeamSummary struct {
	Team       string   `json:"team"`
	Seasons    int      `json:"seasons"`
	SeasonList []string `json:"season_list"`
	Matches    int      `json:"matches"`
}

// Teams summarizes every franchise, sorted by name. A match counts for both
// of its seats.
func (e *Engine) Teams() []TeamSummary {
	seasons := aggregator.NewDistinct[string, string]()
	matches := aggregator.NewTally[string]()
	for _, m := range e.matches {
		for _, t := range []string{m.Team1, m.Team2} {
			seasons.Add(t, m.Season)
			matches.Inc(t)
		}
	}
	rows := aggregator.JoinFill(func(t string) TeamSummary {
		return TeamSummary{
			Team:       t,
			Seasons:    seasons.Count(t),
			SeasonList: seasons.Values(t),
			Matches:    matches.Get(t),
		}
	}, seasons)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	return rows
}

// Highlights are headline totals for a team over the selected seasons.
type Highlights struct {
	Team       string `json:"team"`
	Matches    int    `json:"matches"`
	SuperOvers int    `json:"super_overs"`
	Cities     int    `json:"cities"`
	Venues     int    `json:"venues"`

	Runs          int `json:"runs"`
	Extras        int `json:"extras"`
	Sixes         int `json:"sixes"`
	Fours         int `json:"fours"`
	Centuries     int `json:"centuries"`
	HalfCenturies int `json:"half_centuries"`
	Batters       int `json:"batters"`

	Bowlers      int `json:"bowlers"`
	BallsBowled  int `json:"balls_bowled"`
	Wickets      int `json:"wickets"`
	FourWickets  int `json:"four_wicket_hauls"`
	FivePlusWkts int `json:"five_plus_wicket_hauls"`
}

// TeamHighlights computes the general, batting and bowling headline figures.
// Wickets counts every dismissal while bowling, hauls only bowler-credited ones.
func (e *Engine) TeamHighlights(team string, seasons filter.Seasons) (Highlights, error) {
	ms, err := e.scopedMatches(seasons, filter.Involving(team))
	if err != nil {
		return Highlights{}, err
	}
	h := Highlights{Team: team, Matches: len(ms)}
	cities, venues := map[string]bool{}, map[string]bool{}
	for _, m := range ms {
		if m.IsSuperOver() {
			h.SuperOvers++
		}
		cities[m.City] = true
		venues[m.Venue] = true
	}
	h.Cities, h.Venues = len(cities), len(venues)

	batting := e.selectBalls(filter.BallSeasons(seasons), filter.BattingTeam(team))
	batters := map[string]bool{}
	for _, b := range batting {
		h.Runs += b.BatsmanRuns
		h.Extras += b.ExtraRuns
		switch b.BatsmanRuns {
		case 6:
			h.Sixes++
		case 4:
			h.Fours++
		}
		batters[b.Batter] = true
		batters[b.NonStriker] = true
	}
	delete(batters, "")
	h.Batters = len(batters)
	for _, s := range inningsScores(batting) {
		h.Centuries += boolInt(s.Century)
		h.HalfCenturies += boolInt(s.HalfCentury)
	}

	bowling := e.selectBalls(filter.BallSeasons(seasons), filter.BowlingTeam(team))
	bowlers := map[string]bool{}
	for _, b := range bowling {
		bowlers[b.Bowler] = true
		h.Wickets += boolInt(b.IsWicket)
	}
	h.Bowlers = len(bowlers)
	h.BallsBowled = len(bowling)
	h.FourWickets, h.FivePlusWkts = countHauls(figures(bowling))
	return h, nil
}

// Award is a player-of-the-match tally.
type Award struct {
	Player string `json:"player"`
	Awards int    `json:"awards"`
}

// PlayerOfMatchAwards counts awards per player. With a team, only matches the
// team won are counted.
func (e *Engine) PlayerOfMatchAwards(team string, seasons filter.Seasons) ([]Award, error) {
	var won filter.Predicate[*model.Match]
	if team != "" {
		won = func(m *model.Match) bool { return m.Winner == team }
	}
	ms, err := e.scopedMatches(seasons, won)
	if err != nil {
		return nil, err
	}
	awards := aggregator.Count(ms, func(m *model.Match) (string, bool) {
		return m.PlayerOfMatch, m.PlayerOfMatch != ""
	})
	rows := aggregator.JoinFill(func(p string) Award { return Award{p, awards.Get(p)} }, awards)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Player < rows[j].Player })
	byDesc(rows, func(a Award) int { return a.Awards })
	return rows, nil
}

// TeamScore is one side's total in one match.
type TeamScore struct {
	MatchID     int64  `json:"match_id"`
	Season      string `json:"season"`
	Inning      int    `json:"inning"`
	BattingTeam string `json:"batting_team"`
	BowlingTeam string `json:"bowling_team"`
	Runs        int    `json:"runs"`
	Wickets     int    `json:"wickets"`
	Balls       int    `json:"balls"`
	Won         bool   `json:"won"`
}

type scoreKey struct {
	match int64
	team  string
}

// teamScores sums total_runs per (match, batting team) in first-seen order.
// Super-over deliveries are folded into their side's total.
func teamScores(balls []model.Ball) []TeamScore {
	idx := map[scoreKey]int{}
	rows := make([]TeamScore, 0)
	for _, b := range balls {
		k := scoreKey{b.MatchID, b.BattingTeam}
		i, ok := idx[k]
		if !ok {
			i = len(rows)
			idx[k] = i
			rows = append(rows, TeamScore{
				MatchID:     b.MatchID,
				Season:      b.Match.Season,
				Inning:      b.Inning,
				BattingTeam: b.BattingTeam,
				BowlingTeam: b.BowlingTeam,
				Won:         b.Match.Winner == b.BattingTeam,
			})
		}
		r := &rows[i]
		r.Runs += b.TotalRuns
		r.Wickets += boolInt(b.IsWicket)
		r.Balls++
	}
	return rows
}

// TeamScores lists innings totals by runs, optionally for team's innings only.
func (e *Engine) TeamScores(team string, seasons filter.Seasons) ([]TeamScore, error) {
	balls, err := e.scoped(seasons, filter.BattingTeam(team))
	if err != nil {
		return nil, err
	}
	rows := teamScores(balls)
	byDesc(rows, func(s TeamScore) int { return s.Runs })
	return rows, nil
}
