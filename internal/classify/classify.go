// Package classify assigns descriptive archetypes to batting and bowling
// records from ordered threshold rules. The first matching rule wins and
// every rule list ends in a default arm.
package classify

import "github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"

// Batting archetypes.
const (
	HighlyConsistent      = "Highly Consistent"
	ConsistentAggressive  = "Consistent & Aggressive"
	ReliablePowerHitters  = "Reliable Power Hitters"
	Anchors               = "Anchors"
	PowerHitters          = "Power Hitters"
	LowerOrderContributor = "Lower-Order Contributor"
	LowerOrderHitters     = "Lower-Order Hitters"
)

// Bowling archetypes.
const (
	MatchWinners         = "Match Winning Wicket-Takers"
	AggressiveTakers     = "Aggressive Wicket Takers"
	RestrictiveSpecs     = "Restrictive Specialists"
	ExpensiveBalanced    = "Expensive but Balanced Performer"
	ExpensiveInefficient = "Expensive & Inefficient"
	OtherBowlers         = "Others"
)

// Containment archetypes.
const (
	EliteDefenders       = "Elite Defenders"
	VolumeRestrictors    = "Volume Restrictors"
	EfficientControllers = "Efficient Controllers"
	BalancedContainment  = "Balanced Containment"
	ExpensiveAttackers   = "Expensive Attackers"
	ShortSprintBowlers   = "Impactful Short-Sprint Bowlers"
)

// Rule maps a pair of metrics to a label when When holds.
type Rule struct {
	Label string
	When  func(x, y float64) bool
}

// RuleSet is an ordered rule list with a default label.
type RuleSet struct {
	Name    string
	Rules   []Rule
	Default string
}

// Apply returns the label of the first matching rule, or the default.
// NaN fails every comparison, so undefined metrics land on the default.
func (rs RuleSet) Apply(x, y float64) string {
	for _, r := range rs.Rules {
		if r.When(x, y) {
			return r.Label
		}
	}
	return rs.Default
}

// Labels lists every label the set can produce, default last.
func (rs RuleSet) Labels() []string {
	out := make([]string, 0, len(rs.Rules)+1)
	for _, r := range rs.Rules {
		out = append(out, r.Label)
	}
	return append(out, rs.Default)
}

func between(v, lo, hi float64) bool { return v >= lo && v <= hi }

// Batting classifies on (strike rate, average).
var Batting = RuleSet{
	Name: "batting",
	Rules: []Rule{
		{HighlyConsistent, func(sr, avg float64) bool { return sr > 130 && avg > 40 }},
		{ConsistentAggressive, func(sr, avg float64) bool { return between(sr, 110, 140) && between(avg, 30, 40) }},
		{ReliablePowerHitters, func(sr, avg float64) bool { return between(sr, 140, 170) && between(avg, 30, 40) }},
		{Anchors, func(sr, avg float64) bool { return between(sr, 100, 130) && between(avg, 20, 30) }},
		{PowerHitters, func(sr, avg float64) bool { return between(sr, 130, 170) && between(avg, 20, 30) }},
		{LowerOrderContributor, func(sr, avg float64) bool { return between(sr, 30, 120) && between(avg, 0, 20) }},
	},
	Default: LowerOrderHitters,
}

// Bowling classifies on (strike rate, economy).
var Bowling = RuleSet{
	Name: "bowling",
	Rules: []Rule{
		{MatchWinners, func(sr, er float64) bool { return sr < 20 && er < 8 }},
		{AggressiveTakers, func(sr, er float64) bool { return sr < 20 && er < 12 }},
		{RestrictiveSpecs, func(sr, er float64) bool { return between(sr, 20, 35) && er <= 8 }},
		{ExpensiveBalanced, func(sr, er float64) bool { return between(sr, 20, 35) && er > 8 }},
		{ExpensiveInefficient, func(sr, er float64) bool { return sr > 35 && er > 8 }},
	},
	Default: OtherBowlers,
}

// Containment classifies on (dot balls, dot-ball percentage).
var Containment = RuleSet{
	Name: "containment",
	Rules: []Rule{
		{EliteDefenders, func(dots, pct float64) bool { return dots >= 1200 && pct >= 35 }},
		{VolumeRestrictors, func(dots, pct float64) bool { return dots >= 1200 && pct >= 30 }},
		{EfficientControllers, func(dots, pct float64) bool { return dots >= 800 && pct >= 35 }},
		{BalancedContainment, func(dots, pct float64) bool { return dots >= 800 && pct >= 30 }},
		{ExpensiveAttackers, func(dots, pct float64) bool { return dots < 800 && pct < 30 }},
	},
	Default: ShortSprintBowlers,
}

// BatterArchetype labels a batting record.
func BatterArchetype(r model.BattingRecord) string {
	return Batting.Apply(float64(r.StrikeRate), float64(r.Average))
}

// BowlerArchetype labels a bowling record by wicket-taking and economy.
func BowlerArchetype(r model.BowlingRecord) string {
	return Bowling.Apply(float64(r.StrikeRate), float64(r.Economy))
}

// ContainmentArchetype labels a bowling record by dot-ball pressure.
func ContainmentArchetype(r model.BowlingRecord) string {
	return Containment.Apply(float64(r.Dots), float64(r.DotBallPct))
}
