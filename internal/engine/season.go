package engine

import (
	"sort"
	"time"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// SeasonSummary describes one season's calendar and field.
type SeasonSummary struct {
	Season  string    `json:"season"`
	Matches int       `json:"matches"`
	Teams   int       `json:"teams"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Months  []string  `json:"months"`
}

// SeasonSummaries describes every season in chronological order.
func (e *Engine) SeasonSummaries() []SeasonSummary {
	idx := map[string]int{}
	teams := aggregator.NewDistinct[string, string]()
	months := aggregator.NewDistinct[string, string]()
	rows := make([]SeasonSummary, 0)
	for _, m := range e.matches {
		i, ok := idx[m.Season]
		if !ok {
			i = len(rows)
			idx[m.Season] = i
			rows = append(rows, SeasonSummary{Season: m.Season, Start: m.Date})
		}
		r := &rows[i]
		r.Matches++
		if m.Date.After(r.End) {
			r.End = m.Date
		}
		teams.Add(m.Season, m.Team1)
		teams.Add(m.Season, m.Team2)
		if !m.Date.IsZero() {
			months.Add(m.Season, m.Date.Month().String())
		}
	}
	for i := range rows {
		rows[i].Teams = teams.Count(rows[i].Season)
		rows[i].Months = months.Values(rows[i].Season)
		if rows[i].Months == nil {
			rows[i].Months = []string{}
		}
	}
	return rows
}

func (e *Engine) seasonRank() map[string]int {
	rank := map[string]int{}
	for i, s := range e.Seasons() {
		rank[s] = i
	}
	return rank
}

// SeasonTeams lists the teams that played in the selected seasons, sorted.
func (e *Engine) SeasonTeams(seasons filter.Seasons) ([]string, error) {
	ms, err := e.scopedMatches(seasons)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, m := range ms {
		seen[m.Team1] = true
		seen[m.Team2] = true
	}
	return sortedKeys(seen), nil
}

// MatchTypeCount is the number of matches of one type.
type MatchTypeCount struct {
	MatchType string `json:"match_type"`
	Matches   int    `json:"matches"`
}

// MatchTypeCounts counts matches per type, most first.
func (e *Engine) MatchTypeCounts(seasons filter.Seasons) ([]MatchTypeCount, error) {
	ms, err := e.scopedMatches(seasons)
	if err != nil {
		return nil, err
	}
	counts := aggregator.Count(ms, func(m *model.Match) (string, bool) { return m.MatchType, true })
	rows := aggregator.JoinFill(func(t string) MatchTypeCount { return MatchTypeCount{t, counts.Get(t)} }, counts)
	sortByStage(rows, func(r MatchTypeCount) string { return r.MatchType })
	byDesc(rows, func(r MatchTypeCount) int { return r.Matches })
	return rows, nil
}

// InningsAverage is the mean team total for an inning number in a season.
type InningsAverage struct {
	Season  string     `json:"season"`
	Inning  int        `json:"inning"`
	Innings int        `json:"innings"`
	Average model.Rate `json:"average"`
}

func decided(m *model.Match) bool { return m.Winner != model.NoResult }

// AverageInningsScores averages first and second innings totals per season.
// No-result matches are excluded.
func (e *Engine) AverageInningsScores(seasons filter.Seasons) ([]InningsAverage, error) {
	balls, err := e.scoped(seasons, func(b model.Ball) bool {
		return decided(b.Match) && (b.Inning == 1 || b.Inning == 2)
	})
	if err != nil {
		return nil, err
	}
	type k struct {
		season string
		inning int
	}
	totals := map[k][]int{}
	var keys aggregator.KeyList[k]
	for _, s := range teamScores(balls) {
		x := k{s.Season, s.Inning}
		if _, ok := totals[x]; !ok {
			keys = append(keys, x)
		}
		totals[x] = append(totals[x], s.Runs)
	}
	rows := aggregator.JoinFill(func(x k) InningsAverage {
		return InningsAverage{
			Season:  x.season,
			Inning:  x.inning,
			Innings: len(totals[x]),
			Average: aggregator.Round2(aggregator.Mean(totals[x])),
		}
	}, keys)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Inning < rows[j].Inning })
	return rows, nil
}

// TossDecisionCount counts toss decisions in one season.
type TossDecisionCount struct {
	Season   string `json:"season"`
	Decision string `json:"decision"`
	Count    int    `json:"count"`
}

// TossDecisions counts bat/field decisions per season, excluding no-result
// matches.
func (e *Engine) TossDecisions(seasons filter.Seasons) ([]TossDecisionCount, error) {
	ms, err := e.scopedMatches(seasons, decided)
	if err != nil {
		return nil, err
	}
	type k struct{ season, decision string }
	counts := aggregator.Count(ms, func(m *model.Match) (k, bool) { return k{m.Season, m.TossDecision}, true })
	rows := aggregator.JoinFill(func(x k) TossDecisionCount {
		return TossDecisionCount{x.season, x.decision, counts.Get(x)}
	}, counts)
	rank := e.seasonRank()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Season != rows[j].Season {
			return rank[rows[i].Season] < rank[rows[j].Season]
		}
		return rows[i].Decision < rows[j].Decision
	})
	return rows, nil
}

// TossImpactRow splits a season's decided matches by toss decision and
// whether the toss winner went on to win.
type TossImpactRow struct {
	Season      string `json:"season"`
	Decision    string `json:"decision"`
	Matches     int    `json:"matches"`
	TossWinWon  int    `json:"toss_winner_won"`
	TossWinLost int    `json:"toss_winner_lost"`
}

// TossImpact reports, per season and decision, how often the toss winner won.
func (e *Engine) TossImpact(seasons filter.Seasons) ([]TossImpactRow, error) {
	ms, err := e.scopedMatches(seasons, decided)
	if err != nil {
		return nil, err
	}
	type k struct{ season, decision string }
	key := func(m *model.Match) k { return k{m.Season, m.TossDecision} }
	played := aggregator.Count(ms, func(m *model.Match) (k, bool) { return key(m), true })
	won := aggregator.Count(ms, func(m *model.Match) (k, bool) { return key(m), m.TossWinner == m.Winner })
	rows := aggregator.JoinFill(func(x k) TossImpactRow {
		r := TossImpactRow{Season: x.season, Decision: x.decision, Matches: played.Get(x), TossWinWon: won.Get(x)}
		r.TossWinLost = r.Matches - r.TossWinWon
		return r
	}, played)
	return rows, nil
}

// VenueToss is the toss winner's record at one city, with the bat/field split.
type VenueToss struct {
	City         string     `json:"city"`
	Matches      int        `json:"matches"`
	Won          int        `json:"won_toss_and_match"`
	WinPct       model.Rate `json:"win_pct"`
	BatMatches   int        `json:"bat_matches"`
	BatWon       int        `json:"bat_won"`
	FieldMatches int        `json:"field_matches"`
	FieldWon     int        `json:"field_won"`
}

// VenueTossImpact reports per city how often winning the toss meant winning
// the match, best first. No-result matches are excluded.
func (e *Engine) VenueTossImpact(seasons filter.Seasons) ([]VenueToss, error) {
	ms, err := e.scopedMatches(seasons, decided)
	if err != nil {
		return nil, err
	}
	type k struct{ city, decision string }
	played := aggregator.Count(ms, func(m *model.Match) (k, bool) { return k{m.City, m.TossDecision}, true })
	won := aggregator.Count(ms, func(m *model.Match) (k, bool) {
		return k{m.City, m.TossDecision}, m.TossWinner == m.Winner
	})
	cities := aggregator.Count(ms, func(m *model.Match) (string, bool) { return m.City, true })
	cityWon := aggregator.Count(ms, func(m *model.Match) (string, bool) { return m.City, m.TossWinner == m.Winner })
	rows := aggregator.JoinFill(func(c string) VenueToss {
		v := VenueToss{
			City:         c,
			BatMatches:   played.Get(k{c, model.TossBat}),
			BatWon:       won.Get(k{c, model.TossBat}),
			FieldMatches: played.Get(k{c, model.TossField}),
			FieldWon:     won.Get(k{c, model.TossField}),
		}
		v.Matches, v.Won = cities.Get(c), cityWon.Get(c)
		v.WinPct = aggregator.Percent(v.Won, v.Matches)
		return v
	}, cities)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].City < rows[j].City })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].WinPct > rows[j].WinPct })
	return rows, nil
}

// Title lists the seasons a team won the final.
type Title struct {
	Team     string   `json:"team"`
	Seasons  []string `json:"seasons"`
	Trophies int      `json:"trophies"`
}

// Titles counts final wins per team, most first.
func (e *Engine) Titles() []Title {
	finals := e.selectMatches(func(m *model.Match) bool { return m.MatchType == model.Final && decided(m) })
	won := aggregator.Nunique(finals,
		func(m *model.Match) (string, bool) { return m.Winner, true },
		func(m *model.Match) string { return m.Season })
	rows := aggregator.JoinFill(func(t string) Title {
		return Title{Team: t, Seasons: won.Values(t), Trophies: won.Count(t)}
	}, won)
	byDesc(rows, func(t Title) int { return t.Trophies })
	return rows
}

// CityVenues counts matches and stadiums in one city.
type CityVenues struct {
	City     string   `json:"city"`
	Matches  int      `json:"matches"`
	Stadiums []string `json:"stadiums"`
}

// Venues counts matches per city with the stadiums used there, most first.
func (e *Engine) Venues(seasons filter.Seasons) ([]CityVenues, error) {
	ms, err := e.scopedMatches(seasons)
	if err != nil {
		return nil, err
	}
	stadiums := aggregator.Nunique(ms,
		func(m *model.Match) (string, bool) { return m.City, true },
		func(m *model.Match) string { return m.Venue })
	counts := aggregator.Count(ms, func(m *model.Match) (string, bool) { return m.City, true })
	rows := aggregator.JoinFill(func(c string) CityVenues {
		s := stadiums.Values(c)
		sort.Strings(s)
		return CityVenues{City: c, Matches: counts.Get(c), Stadiums: s}
	}, counts)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].City < rows[j].City })
	byDesc(rows, func(c CityVenues) int { return c.Matches })
	return rows, nil
}

// Totals are headline figures for a set of seasons.
type Totals struct {
	Seasons       int `json:"seasons"`
	Matches       int `json:"matches"`
	Teams         int `json:"teams"`
	SuperOvers    int `json:"super_overs"`
	Venues        int `json:"venues"`
	Cities        int `json:"cities"`
	Batters       int `json:"batters"`
	Runs          int `json:"runs"`
	BatsmanRuns   int `json:"batsman_runs"`
	Extras        int `json:"extras"`
	Sixes         int `json:"sixes"`
	Fours         int `json:"fours"`
	Centuries     int `json:"centuries"`
	HalfCenturies int `json:"half_centuries"`
	Bowlers       int `json:"bowlers"`
	Overs         int `json:"overs"`
	Wickets       int `json:"wickets"`

	HighestScore     *InningsScore `json:"highest_score,omitempty"`
	HighestTeamScore *TeamScore    `json:"highest_team_score,omitempty"`
}

// Overview computes dataset totals over the selected seasons. Overs counts
// complete six-ball overs of all deliveries.
func (e *Engine) Overview(seasons filter.Seasons) (Totals, error) {
	ms, err := e.scopedMatches(seasons)
	if err != nil {
		return Totals{}, err
	}
	balls := e.selectBalls(filter.BallSeasons(seasons))

	t := Totals{Matches: len(ms)}
	seasonSet, teams, venues, cities := map[string]bool{}, map[string]bool{}, map[string]bool{}, map[string]bool{}
	for _, m := range ms {
		seasonSet[m.Season] = true
		teams[m.Team1] = true
		teams[m.Team2] = true
		venues[m.Venue] = true
		cities[m.City] = true
		if m.IsSuperOver() {
			t.SuperOvers++
		}
	}
	t.Seasons, t.Teams, t.Venues, t.Cities = len(seasonSet), len(teams), len(venues), len(cities)

	batters, bowlers := map[string]bool{}, map[string]bool{}
	for _, b := range balls {
		t.Runs += b.TotalRuns
		t.BatsmanRuns += b.BatsmanRuns
		t.Extras += b.ExtraRuns
		switch b.BatsmanRuns {
		case 6:
			t.Sixes++
		case 4:
			t.Fours++
		}
		t.Wickets += boolInt(b.IsWicket)
		batters[b.Batter] = true
		batters[b.NonStriker] = true
		bowlers[b.Bowler] = true
	}
	delete(batters, "")
	delete(bowlers, "")
	t.Batters, t.Bowlers = len(batters), len(bowlers)
	t.Overs = len(balls) / 6

	scores := inningsScores(balls)
	for i := range scores {
		s := &scores[i]
		t.Centuries += boolInt(s.Century)
		t.HalfCenturies += boolInt(s.HalfCentury)
		if t.HighestScore == nil || s.Runs > t.HighestScore.Runs {
			t.HighestScore = s
		}
	}
	totals := teamScores(balls)
	for i := range totals {
		if t.HighestTeamScore == nil || totals[i].Runs > t.HighestTeamScore.Runs {
			t.HighestTeamScore = &totals[i]
		}
	}
	return t, nil
}
