package report

import (
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// Bowling renders bowling records. Scope columns appear only when some row
// carries them.
func Bowling(rows []model.BowlingRecord) *Table {
	type r = model.BowlingRecord
	return build(rows,
		col("BOWLER", func(b r) string { return b.Bowler }),
		opt("SEASON", func(b r) string { return b.Season }),
		opt("INNING", func(b r) string { return nonZero(b.Inning) }),
		opt("TEAM", func(b r) string { return b.Team }),
		opt("RIVAL", func(b r) string { return b.Rival }),
		col("M", func(b r) string { return itoa(b.Matches) }),
		col("OVERS", func(b r) string { return rate(b.Overs) }),
		col("RUNS", func(b r) string { return itoa(b.Runs) }),
		col("WKTS", func(b r) string { return itoa(b.Wickets) }),
		col("DOTS", func(b r) string { return itoa(b.Dots) }),
		col("EXTRAS", func(b r) string { return itoa(b.Extras) }),
		col("ECON", func(b r) string { return rate(b.Economy) }),
		col("AVG", func(b r) string { return rate(b.Average) }),
		col("SR", func(b r) string { return rate(b.StrikeRate) }),
		col("DOT%", func(b r) string { return rate(b.DotBallPct) }),
		col("BND%", func(b r) string { return rate(b.BoundaryBallPct) }),
		col("WKT/M", func(b r) string { return rate(b.WicketsPerMatch) }),
		opt("CATEGORY", func(b r) string { return b.Category }),
	)
}

// WicketTakers renders wicket totals.
func WicketTakers(rows []engine.PlayerWickets) *Table {
	return build(rows,
		col("PLAYER", func(p engine.PlayerWickets) string { return p.Player }),
		col("WKTS", func(p engine.PlayerWickets) string { return itoa(p.Wickets) }),
	)
}

// Figures renders per-match bowling figures.
func Figures(rows []engine.BowlingFigure) *Table {
	type r = engine.BowlingFigure
	return build(rows,
		col("MATCH", func(f r) string { return itoa64(f.MatchID) }),
		col("SEASON", func(f r) string { return f.Season }),
		col("BOWLER", func(f r) string { return f.Bowler }),
		col("FOR", func(f r) string { return f.BowlingTeam }),
		col("VS", func(f r) string { return f.BattingTeam }),
		col("FIGURES", func(f r) string { return f.Figures() }),
	)
}

// Fielding renders per-fielder dismissal counts under the given kind.
func Fielding(kind string, rows []model.FieldingRecord) *Table {
	return build(rows,
		col("FIELDER", func(f model.FieldingRecord) string { return f.Fielder }),
		col(kind, func(f model.FieldingRecord) string { return itoa(f.Count) }),
	)
}
