// Package engine is the statistics aggregation engine. An Engine is built
// once from the two source tables and answers every query from the cached
// match/delivery join; it holds no mutable state after New returns.
package engine

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

var (
	// ErrOrphanDelivery means a delivery references a match that is not loaded.
	ErrOrphanDelivery = errors.New("delivery references unknown match")
	// ErrSameTeams means a match lists the same team in both seats.
	ErrSameTeams = errors.New("match lists the same team twice")
	// ErrDuplicateMatch means two match rows share an id.
	ErrDuplicateMatch = errors.New("duplicate match id")
	// ErrInvalidBoundary means a boundary filter other than 4, 6 or 0 (both).
	ErrInvalidBoundary = errors.New("boundary must be 4, 6 or 0")
	// ErrInvalidSplit means an unknown bowling split.
	ErrInvalidSplit = errors.New("unknown split")
)

// Default sample thresholds for top-N-by-rate views.
const (
	DefaultMinOvers   = 10
	DefaultMinInnings = 10
)

// UnknownCity is the home-city bucket for teams missing from the home-city table.
const UnknownCity = "Unknown"

// DefaultHomeCities maps franchises to their home city.
var DefaultHomeCities = map[string]string{
	"Chennai Super Kings":         "Chennai",
	"Delhi Capitals":              "Delhi",
	"Gujarat Titans":              "Ahmedabad",
	"Kings XI Punjab":             "Chandigarh",
	"Kolkata Knight Riders":       "Kolkata",
	"Lucknow Super Giants":        "Lucknow",
	"Mumbai Indians":              "Mumbai",
	"Rajasthan Royals":            "Jaipur",
	"Rising Pune Supergiants":     "Pune",
	"Royal Challengers Bengaluru": "Bengaluru",
	"Sunrisers Hyderabad":         "Hyderabad",
	"Kochi Tuskers Kerala":        "Kochi",
}

// Option configures an Engine.
type Option func(*Engine)

// WithMinOvers sets the minimum overs for bowling rate views.
func WithMinOvers(overs float64) Option {
	return func(e *Engine) { e.minOvers = overs }
}

// WithMinInnings sets the minimum innings for batting rate views.
func WithMinInnings(n int) Option {
	return func(e *Engine) { e.minInnings = n }
}

// WithHomeCities replaces the home-city table.
func WithHomeCities(m map[string]string) Option {
	return func(e *Engine) {
		e.homeCities = make(map[string]string, len(m))
		for k, v := range m {
			e.homeCities[k] = v
		}
	}
}

// Engine answers statistics queries over an immutable snapshot.
type Engine struct {
	matches    []*model.Match // ordered by date, then id
	byID       map[int64]*model.Match
	deliveries []model.Delivery
	balls      []model.Ball

	minOvers   float64
	minInnings int
	homeCities map[string]string
}

// New validates the source tables and builds the match/delivery join.
// The inputs are copied; later changes by the caller are not observed.
func New(matches []model.Match, deliveries []model.Delivery, opts ...Option) (*Engine, error) {
	e := &Engine{
		byID:       make(map[int64]*model.Match, len(matches)),
		minOvers:   DefaultMinOvers,
		minInnings: DefaultMinInnings,
		homeCities: DefaultHomeCities,
	}
	for _, o := range opts {
		o(e)
	}

	e.matches = make([]*model.Match, 0, len(matches))
	for i := range matches {
		m := matches[i]
		normalizeMatch(&m)
		if m.Team1 == m.Team2 {
			return nil, fmt.Errorf("match %d: %w", m.ID, ErrSameTeams)
		}
		if _, dup := e.byID[m.ID]; dup {
			return nil, fmt.Errorf("match %d: %w", m.ID, ErrDuplicateMatch)
		}
		e.byID[m.ID] = &m
		e.matches = append(e.matches, &m)
	}
	sort.SliceStable(e.matches, func(i, j int) bool {
		a, b := e.matches[i], e.matches[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	e.deliveries = slices.Clone(deliveries)
	e.balls = make([]model.Ball, 0, len(e.deliveries))
	for i := range e.deliveries {
		d := &e.deliveries[i]
		m, ok := e.byID[d.MatchID]
		if !ok {
			return nil, fmt.Errorf("match %d: %w", d.MatchID, ErrOrphanDelivery)
		}
		e.balls = append(e.balls, model.Ball{Delivery: d, Match: m})
	}
	return e, nil
}

// normalizeMatch applies the loader's null and alias conventions in case the
// caller handed in raw rows.
func normalizeMatch(m *model.Match) {
	if m.Winner == "" {
		m.Winner = model.NoResult
	}
	if m.MatchType == model.EliminatorV1 {
		m.MatchType = model.Eliminator
	}
}

// MatchCount returns the number of loaded matches.
func (e *Engine) MatchCount() int { return len(e.matches) }

// DeliveryCount returns the number of loaded deliveries.
func (e *Engine) DeliveryCount() int { return len(e.deliveries) }

// Match returns the match with the given id.
func (e *Engine) Match(id int64) (model.Match, bool) {
	m, ok := e.byID[id]
	if !ok {
		return model.Match{}, false
	}
	return *m, true
}

// MinOvers returns the bowling sample threshold.
func (e *Engine) MinOvers() float64 { return e.minOvers }

// MinInnings returns the batting sample threshold.
func (e *Engine) MinInnings() int { return e.minInnings }

// HomeCity returns team's home city, or UnknownCity.
func (e *Engine) HomeCity(team string) string {
	if c, ok := e.homeCities[team]; ok {
		return c
	}
	return UnknownCity
}

// selectBalls returns joined deliveries passing every predicate.
func (e *Engine) selectBalls(ps ...filter.Predicate[model.Ball]) []model.Ball {
	return filter.Where(e.balls, filter.And(ps...))
}

// selectMatches returns matches passing every predicate, in date order.
func (e *Engine) selectMatches(ps ...filter.Predicate[*model.Match]) []*model.Match {
	return filter.Where(e.matches, filter.And(ps...))
}

// scoped validates seasons and returns the deliveries in scope.
func (e *Engine) scoped(seasons filter.Seasons, ps ...filter.Predicate[model.Ball]) ([]model.Ball, error) {
	if err := seasons.Validate(); err != nil {
		return nil, err
	}
	return e.selectBalls(append(ps, filter.BallSeasons(seasons))...), nil
}

// scopedMatches validates seasons and returns the matches in scope.
func (e *Engine) scopedMatches(seasons filter.Seasons, ps ...filter.Predicate[*model.Match]) ([]*model.Match, error) {
	if err := seasons.Validate(); err != nil {
		return nil, err
	}
	return e.selectMatches(append(ps, filter.MatchSeasons(seasons))...), nil
}

// Seasons lists every season in chronological order.
func (e *Engine) Seasons() []string {
	out := make([]string, 0)
	seen := map[string]bool{}
	for _, m := range e.matches {
		if !seen[m.Season] {
			seen[m.Season] = true
			out = append(out, m.Season)
		}
	}
	return out
}

// TeamNames lists every team that played, sorted.
func (e *Engine) TeamNames() []string {
	seen := map[string]bool{}
	for _, m := range e.matches {
		seen[m.Team1] = true
		seen[m.Team2] = true
	}
	return sortedKeys(seen)
}

// Players lists everyone who batted, stood non-striker or bowled, sorted.
func (e *Engine) Players() []string {
	seen := map[string]bool{}
	for _, b := range e.balls {
		seen[b.Batter] = true
		seen[b.NonStriker] = true
		seen[b.Bowler] = true
	}
	delete(seen, "")
	return sortedKeys(seen)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// byDesc stable-sorts rows descending by an integer metric.
func byDesc[T any](rows []T, metric func(T) int) {
	sort.SliceStable(rows, func(i, j int) bool { return metric(rows[i]) > metric(rows[j]) })
}

// byRate stable-sorts rows by a derived rate with ties broken by name. +Inf
// ranks as the largest value and NaN always sorts last.
func byRate[T any](rows []T, desc bool, rate func(T) model.Rate, name func(T) string) {
	sort.SliceStable(rows, func(i, j int) bool {
		if c := compareRates(rate(rows[i]), rate(rows[j]), desc); c != 0 {
			return c < 0
		}
		return name(rows[i]) < name(rows[j])
	})
}

// compareRates orders a against b, returning -1 when a ranks first.
func compareRates(a, b model.Rate, desc bool) int {
	an, bn := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	switch {
	case an && bn, a == b:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case (a > b) == desc:
		return -1
	}
	return 1
}

// topN truncates rows to n when n > 0.
func topN[T any](rows []T, n int) []T {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
