package report

import (
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

// PlayerTeams renders the teams a player turned out for.
func PlayerTeams(rows []engine.PlayerTeam) *Table {
	type r = engine.PlayerTeam
	return build(rows,
		col("TEAM", func(p r) string { return p.Team }),
		col("SEASONS", func(p r) string { return itoa(p.Count) }),
		col("LIST", func(p r) string { return list(p.Seasons) }),
	)
}

// InningSplits renders a batter's record by inning number.
func InningSplits(rows []engine.InningSplit) *Table {
	type r = engine.InningSplit
	return build(rows,
		col("INN", func(s r) string { return itoa(s.Inning) }),
		col("MATCHES", func(s r) string { return itoa(s.Matches) }),
		col("RUNS", func(s r) string { return itoa(s.Runs) }),
		col("BALLS", func(s r) string { return itoa(s.Balls) }),
		col("100s", func(s r) string { return itoa(s.Centuries) }),
		col("50s", func(s r) string { return itoa(s.HalfCenturies) }),
		col("SR", func(s r) string { return rate(s.StrikeRate) }),
		col("BND_DOM%", func(s r) string { return rate(s.BoundaryDominance) }),
		col("DOT%", func(s r) string { return rate(s.DotBallReliance) }),
	)
}

// Dismissals renders dismissal counts, with BOWLER when attributed.
func Dismissals(rows []engine.Dismissal) *Table {
	type r = engine.Dismissal
	return build(rows,
		opt("BOWLER", func(d r) string { return d.Bowler }),
		col("KIND", func(d r) string { return d.Kind }),
		col("COUNT", func(d r) string { return itoa(d.Count) }),
	)
}

// VsBowlers renders a batter's record against the bowlers who got them out.
func VsBowlers(rows []engine.VsBowler) *Table {
	type r = engine.VsBowler
	return build(rows,
		col("BOWLER", func(v r) string { return v.Bowler }),
		col("OUTS", func(v r) string { return itoa(v.Dismissals) }),
		col("BALLS", func(v r) string { return itoa(v.Balls) }),
		col("RUNS", func(v r) string { return itoa(v.Runs) }),
		col("6s", func(v r) string { return itoa(v.Sixes) }),
		col("4s", func(v r) string { return itoa(v.Fours) }),
		col("DOTS", func(v r) string { return itoa(v.Dots) }),
		col("SR", func(v r) string { return rate(v.StrikeRate) }),
		col("AVG", func(v r) string { return rate(v.Average) }),
		col("DOT%", func(v r) string { return rate(v.DotPct) }),
	)
}

// VsTeam renders a batter's record against one team.
func VsTeam(v engine.VsTeam) *Table {
	return keyValues(v.Batter+" vs "+v.Rival,
		"INNINGS", itoa(v.Innings),
		"RUNS", itoa(v.Runs),
		"BALLS", itoa(v.Balls),
		"OUTS", itoa(v.Dismissals),
		"NOT_OUTS", itoa(v.NotOuts),
		"100s", itoa(v.Centuries),
		"50s", itoa(v.HalfCenturies),
		"SR", rate(v.StrikeRate),
		"AVG", rate(v.Average),
	)
}

// SearchResults renders fuzzy matches.
func SearchResults(rows []search.Result) *Table {
	return build(rows,
		col("NAME", func(s search.Result) string { return s.Name }),
		col("KIND", func(s search.Result) string { return string(s.Kind) }),
		col("SCORE", func(s search.Result) string { return itoa(s.Score) }),
	)
}
