package model

import (
	"math"
	"strconv"
	"time"
)

// Sentinel values written by the loaders in place of nulls.
const (
	NoResult     = "No Result"
	SuperOverYes = "Y"
)

// Toss decisions.
const (
	TossBat   = "bat"
	TossField = "field"
)

// Match types.
const (
	League       = "League"
	Qualifier1   = "Qualifier 1"
	Qualifier2   = "Qualifier 2"
	Eliminator   = "Eliminator"
	SemiFinal    = "Semi Final"
	Final        = "Final"
	ThirdPlace   = "3rd Place Play-Off"
	EliminatorV1 = "Elimination Final" // legacy alias of Eliminator
)

// Dismissal kinds.
const (
	Bowled          = "bowled"
	LBW             = "lbw"
	Stumped         = "stumped"
	CaughtAndBowled = "caught and bowled"
	Caught          = "caught"
	HitWicket       = "hit wicket"
	RunOut          = "run out"
	RetiredHurt     = "retired hurt"
	Obstructing     = "obstructing the field"
)

var bowlerCredited = map[string]bool{
	Bowled:          true,
	LBW:             true,
	Stumped:         true,
	CaughtAndBowled: true,
	Caught:          true,
	HitWicket:       true,
}

// BowlerCredited reports whether a dismissal kind counts towards the bowler's wickets.
func BowlerCredited(kind string) bool {
	return bowlerCredited[kind]
}

// ---- Source tables ----

// Match is one row of the match-level table.
type Match struct {
	ID            int64     `json:"id"`
	Season        string    `json:"season"`
	City          string    `json:"city"`
	Date          time.Time `json:"date"`
	MatchType     string    `json:"match_type"`
	PlayerOfMatch string    `json:"player_of_match"`
	Venue         string    `json:"venue"`
	Team1         string    `json:"team1"`
	Team2         string    `json:"team2"`
	TossWinner    string    `json:"toss_winner"`
	TossDecision  string    `json:"toss_decision"`
	Winner        string    `json:"winner"`
	Result        string    `json:"result"`
	ResultMargin  int       `json:"result_margin"` // 0 when the match has no margin
	TargetRuns    int       `json:"target_runs"`   // 0 when no target was set
	TargetOvers   float64   `json:"target_overs"`
	SuperOver     string    `json:"super_over"`
	Method        string    `json:"method"`
	Umpire1       string    `json:"umpire1"`
	Umpire2       string    `json:"umpire2"`
}

// Involves reports whether team played in the match.
func (m *Match) Involves(team string) bool {
	return m.Team1 == team || m.Team2 == team
}

// Opponent returns the other side of the fixture, or "" if team did not play.
func (m *Match) Opponent(team string) string {
	switch team {
	case m.Team1:
		return m.Team2
	case m.Team2:
		return m.Team1
	}
	return ""
}

// HasTarget reports whether the match recorded a chase target.
func (m *Match) HasTarget() bool {
	return m.TargetRuns > 0
}

// IsSuperOver reports whether the match was decided by a super over.
func (m *Match) IsSuperOver() bool {
	return m.SuperOver == SuperOverYes
}

// Delivery is one ball bowled.
type Delivery struct {
	MatchID         int64  `json:"match_id"`
	Inning          int    `json:"inning"`
	BattingTeam     string `json:"batting_team"`
	BowlingTeam     string `json:"bowling_team"`
	Over            int    `json:"over"`
	Ball            int    `json:"ball"`
	Batter          string `json:"batter"`
	Bowler          string `json:"bowler"`
	NonStriker      string `json:"non_striker"`
	BatsmanRuns     int    `json:"batsman_runs"`
	ExtraRuns       int    `json:"extra_runs"`
	TotalRuns       int    `json:"total_runs"`
	ExtrasType      string `json:"extras_type"`
	IsWicket        bool   `json:"is_wicket"`
	PlayerDismissed string `json:"player_dismissed"`
	DismissalKind   string `json:"dismissal_kind"`
	Fielder         string `json:"fielder"`
}

// BowlerWicket reports whether the delivery took a wicket credited to the bowler.
func (d *Delivery) BowlerWicket() bool {
	return d.IsWicket && BowlerCredited(d.DismissalKind)
}

// IsDot reports whether the delivery yielded no runs at all.
func (d *Delivery) IsDot() bool {
	return d.TotalRuns == 0
}

// Ball is a delivery joined with its match.
type Ball struct {
	*Delivery
	Match *Match
}

// Season is a shortcut for the joined match's season.
func (b Ball) Season() string {
	return b.Match.Season
}

// ---- Derived ratios ----

// Rate is a derived ratio. Zero denominators give +Inf or NaN and are kept
// as such; callers filter by sample thresholds instead.
type Rate float64

// Finite reports whether the rate has a defined value.
func (r Rate) Finite() bool {
	f := float64(r)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String formats the rate with two decimals, or "-" when undefined.
func (r Rate) String() string {
	if !r.Finite() {
		return "-"
	}
	return strconv.FormatFloat(float64(r), 'f', 2, 64)
}

// MarshalJSON encodes undefined rates as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Finite() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(r), 'f', -1, 64), nil
}
