package report

import (
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// Batting renders batting records. SEASON, TEAM and CATEGORY appear only
// when some row carries them.
func Batting(rows []model.BattingRecord) *Table {
	type r = model.BattingRecord
	return build(rows,
		col("BATTER", func(b r) string { return b.Batter }),
		opt("SEASON", func(b r) string { return b.Season }),
		opt("TEAM", func(b r) string { return b.Team }),
		col("INN", func(b r) string { return itoa(b.Innings) }),
		col("RUNS", func(b r) string { return itoa(b.Runs) }),
		col("BALLS", func(b r) string { return itoa(b.Balls) }),
		col("6s", func(b r) string { return itoa(b.Sixes) }),
		col("4s", func(b r) string { return itoa(b.Fours) }),
		col("DOTS", func(b r) string { return itoa(b.Dots) }),
		col("OUT", func(b r) string { return itoa(b.Dismissals) }),
		col("NO", func(b r) string { return itoa(b.NotOuts) }),
		col("SR", func(b r) string { return rate(b.StrikeRate) }),
		col("AVG", func(b r) string { return rate(b.Average) }),
		col("BND_DOM%", func(b r) string { return rate(b.BoundaryDominance) }),
		col("DOT%", func(b r) string { return rate(b.DotBallReliance) }),
		opt("CATEGORY", func(b r) string { return b.Category }),
	)
}

// RunScorers renders run totals.
func RunScorers(rows []engine.PlayerRuns) *Table {
	return build(rows,
		col("PLAYER", func(p engine.PlayerRuns) string { return p.Player }),
		col("RUNS", func(p engine.PlayerRuns) string { return itoa(p.Runs) }),
	)
}

// Boundaries renders boundary counts.
func Boundaries(rows []engine.BoundaryCount) *Table {
	return build(rows,
		col("BATTER", func(b engine.BoundaryCount) string { return b.Batter }),
		col("COUNT", func(b engine.BoundaryCount) string { return itoa(b.Count) }),
	)
}

// Milestones renders century and half-century counts.
func Milestones(rows []engine.Milestone) *Table {
	type r = engine.Milestone
	return build(rows,
		col("BATTER", func(m r) string { return m.Batter }),
		opt("SEASON", func(m r) string { return m.Season }),
		opt("TEAM", func(m r) string { return m.Team }),
		col("100s", func(m r) string { return itoa(m.Centuries) }),
		col("50s", func(m r) string { return itoa(m.HalfCenturies) }),
	)
}

// Innings renders individual innings scores.
func Innings(rows []engine.InningsScore) *Table {
	type r = engine.InningsScore
	return build(rows,
		col("MATCH", func(s r) string { return itoa64(s.MatchID) }),
		col("SEASON", func(s r) string { return s.Season }),
		col("BATTER", func(s r) string { return s.Batter }),
		col("FOR", func(s r) string { return s.BattingTeam }),
		col("VS", func(s r) string { return s.BowlingTeam }),
		col("INN", func(s r) string { return itoa(s.Inning) }),
		col("RUNS", func(s r) string { return itoa(s.Runs) }),
		col("BALLS", func(s r) string { return itoa(s.Balls) }),
		col("6s", func(s r) string { return itoa(s.Sixes) }),
		col("4s", func(s r) string { return itoa(s.Fours) }),
		col("WON", func(s r) string { return yesNo(s.Won) }),
	)
}

// MilestoneSplit renders a batter's won/lost split for big innings.
func MilestoneSplit(m engine.MilestoneSplit) *Table {
	return keyValues(m.Player,
		"MIN_RUNS", itoa(m.MinRuns),
		"INNINGS", itoa(len(m.Innings)),
		"WON", itoa(m.Won),
		"LOST", itoa(m.Lost),
	)
}
