package report

import (
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// Teams renders the franchise list.
func Teams(rows []engine.TeamSummary) *Table {
	type r = engine.TeamSummary
	return build(rows,
		col("TEAM", func(t r) string { return t.Team }),
		col("SEASONS", func(t r) string { return itoa(t.Seasons) }),
		col("MATCHES", func(t r) string { return itoa(t.Matches) }),
		col("FIRST", func(t r) string { return first(t.SeasonList) }),
		col("LAST", func(t r) string { return last(t.SeasonList) }),
	)
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

func last(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[len(ss)-1]
}

// Records renders team records. RIVAL and SCOPE appear only when set.
func Records(rows []model.TeamRecord) *Table {
	type r = model.TeamRecord
	return build(rows,
		col("TEAM", func(t r) string { return t.Team }),
		opt("RIVAL", func(t r) string { return t.Rival }),
		opt("SCOPE", func(t r) string { return t.Scope }),
		col("M", func(t r) string { return itoa(t.Matches) }),
		col("W", func(t r) string { return itoa(t.Won) }),
		col("L", func(t r) string { return itoa(t.Lost) }),
		col("WIN%", func(t r) string { return rate(t.WinPct) }),
	)
}

// Highlights renders a team's headline totals.
func Highlights(h engine.Highlights) *Table {
	return keyValues(h.Team,
		"MATCHES", itoa(h.Matches),
		"SUPER_OVERS", itoa(h.SuperOvers),
		"CITIES", itoa(h.Cities),
		"VENUES", itoa(h.Venues),
		"RUNS", itoa(h.Runs),
		"EXTRAS", itoa(h.Extras),
		"SIXES", itoa(h.Sixes),
		"FOURS", itoa(h.Fours),
		"100s", itoa(h.Centuries),
		"50s", itoa(h.HalfCenturies),
		"BATTERS", itoa(h.Batters),
		"BOWLERS", itoa(h.Bowlers),
		"BALLS_BOWLED", itoa(h.BallsBowled),
		"WICKETS", itoa(h.Wickets),
		"4W_HAULS", itoa(h.FourWickets),
		"5W_HAULS", itoa(h.FivePlusWkts),
	)
}

// Awards renders player-of-the-match counts.
func Awards(rows []engine.Award) *Table {
	return build(rows,
		col("PLAYER", func(a engine.Award) string { return a.Player }),
		col("AWARDS", func(a engine.Award) string { return itoa(a.Awards) }),
	)
}

// TeamScores renders team innings totals.
func TeamScores(rows []engine.TeamScore) *Table {
	type r = engine.TeamScore
	return build(rows,
		col("MATCH", func(s r) string { return itoa64(s.MatchID) }),
		col("SEASON", func(s r) string { return s.Season }),
		col("INN", func(s r) string { return itoa(s.Inning) }),
		col("TEAM", func(s r) string { return s.BattingTeam }),
		col("VS", func(s r) string { return s.BowlingTeam }),
		col("SCORE", func(s r) string { return itoa(s.Runs) + "/" + itoa(s.Wickets) }),
		col("BALLS", func(s r) string { return itoa(s.Balls) }),
		col("WON", func(s r) string { return yesNo(s.Won) }),
	)
}

// SeasonCounts renders matches per season.
func SeasonCounts(rows []engine.SeasonCount) *Table {
	return build(rows,
		col("SEASON", func(s engine.SeasonCount) string { return s.Season }),
		col("MATCHES", func(s engine.SeasonCount) string { return itoa(s.Matches) }),
	)
}

// Toss renders a team's toss record and how it converted tosses into wins.
func Toss(s engine.TossSplit, c engine.TossCause) *Table {
	return keyValues(s.Team,
		"TOSSES_WON", itoa(s.Won),
		"TOSSES_LOST", itoa(s.Lost),
		"MATCHES", itoa(c.MatchesPlayed),
		"WON_AFTER_TOSS_WIN", itoa(c.WonAfterWin),
		"WON_AFTER_TOSS_LOSS", itoa(c.WonAfterLoss),
	)
}

// Playoffs renders knockout progression.
func Playoffs(rows []engine.PlayoffRun) *Table {
	type r = engine.PlayoffRun
	return build(rows,
		col("SEASON", func(p r) string { return p.Season }),
		col("STAGE", func(p r) string { return p.Stage }),
		col("TYPE", func(p r) string { return p.StageType }),
		col("WINNER", func(p r) string { return p.StageWinner }),
		col("NEXT", func(p r) string { return p.AfterStage }),
		col("Q2_WINNER", func(p r) string { return p.Qualifier2Winner }),
		col("AFTER_Q2", func(p r) string { return p.AfterQualifier2 }),
		col("FINAL_WINNER", func(p r) string { return p.FinalWinner }),
		col("RESULT", func(p r) string { return p.Result }),
	)
}

// Matches renders fixtures.
func Matches(rows []model.Match) *Table {
	type r = model.Match
	return build(rows,
		col("ID", func(m r) string { return itoa64(m.ID) }),
		col("SEASON", func(m r) string { return m.Season }),
		col("DATE", func(m r) string { return date(m) }),
		col("TYPE", func(m r) string { return m.MatchType }),
		col("TEAM1", func(m r) string { return m.Team1 }),
		col("TEAM2", func(m r) string { return m.Team2 }),
		col("VENUE", func(m r) string { return m.Venue }),
		col("WINNER", func(m r) string { return m.Winner }),
		col("MARGIN", func(m r) string { return margin(m) }),
	)
}

func date(m model.Match) string {
	if m.Date.IsZero() {
		return ""
	}
	return m.Date.Format("2006-01-02")
}

func margin(m model.Match) string {
	if m.ResultMargin == 0 {
		return m.Result
	}
	return itoa(m.ResultMargin) + " " + m.Result
}
