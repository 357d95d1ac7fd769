package report

import (
	"github.com/dustin/go-humanize"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
)

// Seasons renders the season calendar.
func Seasons(rows []engine.SeasonSummary) *Table {
	type r = engine.SeasonSummary
	return build(rows,
		col("SEASON", func(s r) string { return s.Season }),
		col("MATCHES", func(s r) string { return itoa(s.Matches) }),
		col("TEAMS", func(s r) string { return itoa(s.Teams) }),
		col("START", func(s r) string { return s.Start.Format("2006-01-02") }),
		col("END", func(s r) string { return s.End.Format("2006-01-02") }),
		col("MONTHS", func(s r) string { return list(s.Months) }),
	)
}

// MatchTypes renders match counts per type.
func MatchTypes(rows []engine.MatchTypeCount) *Table {
	return build(rows,
		col("TYPE", func(m engine.MatchTypeCount) string { return m.MatchType }),
		col("MATCHES", func(m engine.MatchTypeCount) string { return itoa(m.Matches) }),
	)
}

// InningsAverages renders mean team totals per season and inning.
func InningsAverages(rows []engine.InningsAverage) *Table {
	type r = engine.InningsAverage
	return build(rows,
		col("SEASON", func(a r) string { return a.Season }),
		col("INN", func(a r) string { return itoa(a.Inning) }),
		col("INNINGS", func(a r) string { return itoa(a.Innings) }),
		col("AVG", func(a r) string { return rate(a.Average) }),
	)
}

// TossDecisions renders toss decisions per season.
func TossDecisions(rows []engine.TossDecisionCount) *Table {
	type r = engine.TossDecisionCount
	return build(rows,
		col("SEASON", func(t r) string { return t.Season }),
		col("DECISION", func(t r) string { return t.Decision }),
		col("COUNT", func(t r) string { return itoa(t.Count) }),
	)
}

// TossImpact renders how often toss winners won per season and decision.
func TossImpact(rows []engine.TossImpactRow) *Table {
	type r = engine.TossImpactRow
	return build(rows,
		col("SEASON", func(t r) string { return t.Season }),
		col("DECISION", func(t r) string { return t.Decision }),
		col("MATCHES", func(t r) string { return itoa(t.Matches) }),
		col("TOSS_WIN_WON", func(t r) string { return itoa(t.TossWinWon) }),
		col("TOSS_WIN_LOST", func(t r) string { return itoa(t.TossWinLost) }),
	)
}

// VenueToss renders toss conversion per city.
func VenueToss(rows []engine.VenueToss) *Table {
	type r = engine.VenueToss
	return build(rows,
		col("CITY", func(v r) string { return v.City }),
		col("MATCHES", func(v r) string { return itoa(v.Matches) }),
		col("WON", func(v r) string { return itoa(v.Won) }),
		col("WIN%", func(v r) string { return rate(v.WinPct) }),
		col("BAT", func(v r) string { return itoa(v.BatWon) + "/" + itoa(v.BatMatches) }),
		col("FIELD", func(v r) string { return itoa(v.FieldWon) + "/" + itoa(v.FieldMatches) }),
	)
}

// Titles renders championship counts.
func Titles(rows []engine.Title) *Table {
	return build(rows,
		col("TEAM", func(t engine.Title) string { return t.Team }),
		col("TITLES", func(t engine.Title) string { return itoa(t.Trophies) }),
		col("SEASONS", func(t engine.Title) string { return list(t.Seasons) }),
	)
}

// Venues renders matches and stadiums per city.
func Venues(rows []engine.CityVenues) *Table {
	return build(rows,
		col("CITY", func(c engine.CityVenues) string { return c.City }),
		col("MATCHES", func(c engine.CityVenues) string { return itoa(c.Matches) }),
		col("STADIUMS", func(c engine.CityVenues) string { return list(c.Stadiums) }),
	)
}

// Overview renders dataset headline totals with thousands separators.
func Overview(title string, t engine.Totals) *Table {
	n := func(v int) string { return humanize.Comma(int64(v)) }
	kv := keyValues(title,
		"SEASONS", n(t.Seasons),
		"MATCHES", n(t.Matches),
		"TEAMS", n(t.Teams),
		"SUPER_OVERS", n(t.SuperOvers),
		"VENUES", n(t.Venues),
		"CITIES", n(t.Cities),
		"BATTERS", n(t.Batters),
		"BOWLERS", n(t.Bowlers),
		"RUNS", n(t.Runs),
		"BATSMAN_RUNS", n(t.BatsmanRuns),
		"EXTRAS", n(t.Extras),
		"SIXES", n(t.Sixes),
		"FOURS", n(t.Fours),
		"100s", n(t.Centuries),
		"50s", n(t.HalfCenturies),
		"OVERS", n(t.Overs),
		"WICKETS", n(t.Wickets),
	)
	if s := t.HighestScore; s != nil {
		kv.Rows = append(kv.Rows, []string{"HIGHEST_SCORE", s.Batter + " " + itoa(s.Runs) + " (" + s.Season + ")"})
	}
	if s := t.HighestTeamScore; s != nil {
		kv.Rows = append(kv.Rows, []string{"HIGHEST_TOTAL", s.BattingTeam + " " + itoa(s.Runs) + " (" + s.Season + ")"})
	}
	return kv
}

// ---- 200+ scores ----

// BigInnings renders 200+ innings.
func BigInnings(rows []engine.BigInnings) *Table {
	type r = engine.BigInnings
	return build(rows,
		col("MATCH", func(b r) string { return itoa64(b.MatchID) }),
		col("SEASON", func(b r) string { return b.Season }),
		col("TEAM", func(b r) string { return b.Team }),
		col("VS", func(b r) string { return b.Rival }),
		col("RUNS", func(b r) string { return itoa(b.Runs) }),
		col("MODE", func(b r) string { return b.Mode }),
		col("TOSS_WON", func(b r) string { return yesNo(b.TossWon) }),
		col("MATCH_WON", func(b r) string { return yesNo(b.MatchWon) }),
	)
}

// BigInningsSplit renders grouped 200+ innings.
func BigInningsSplit(rows []engine.BigInningsGroup) *Table {
	type r = engine.BigInningsGroup
	return build(rows,
		col("TEAM", func(g r) string { return g.Team }),
		col("MODE", func(g r) string { return g.Mode }),
		col("TOSS_WON", func(g r) string { return yesNo(g.TossWon) }),
		col("MATCH_WON", func(g r) string { return yesNo(g.MatchWon) }),
		col("COUNT", func(g r) string { return itoa(g.Count) }),
	)
}

// BigInningsWinRates renders 200+ win rates.
func BigInningsWinRates(rows []engine.BigInningsWinRate) *Table {
	type r = engine.BigInningsWinRate
	return build(rows,
		col("TEAM", func(w r) string { return w.Team }),
		col("MODE", func(w r) string { return w.Mode }),
		col("INNINGS", func(w r) string { return itoa(w.Innings) }),
		col("WON", func(w r) string { return itoa(w.Won) }),
		col("WIN%", func(w r) string { return rate(w.WinPct) }),
	)
}

// BigInningsCounts renders 200+ counts per team.
func BigInningsCounts(rows []engine.BigInningsCount) *Table {
	type r = engine.BigInningsCount
	return build(rows,
		col("TEAM", func(c r) string { return c.Team }),
		col("SET", func(c r) string { return itoa(c.SetTarget) }),
		col("CHASED", func(c r) string { return itoa(c.Chasing) }),
		col("TOTAL", func(c r) string { return itoa(c.Total) }),
	)
}
