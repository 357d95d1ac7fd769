// Package filter builds typed row predicates over matches and joined deliveries.
package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// AllSeasons is the textual sentinel accepted by ParseSeasons.
const AllSeasons = "All"

// ErrNoSelection is returned for an explicit but empty season list.
var ErrNoSelection = errors.New("no season selected")

type seasonMode int

const (
	modeAll seasonMode = iota
	modeOne
	modeList
)

// Seasons selects matches by season: every season, a single one, or a list.
// The zero value selects every season.
type Seasons struct {
	mode   seasonMode
	values []string
}

// All selects every season.
func All() Seasons { return Seasons{mode: modeAll} }

// Season selects a single season.
func Season(v string) Seasons { return Seasons{mode: modeOne, values: []string{v}} }

// SeasonList selects every listed season. An empty list is invalid.
func SeasonList(vs ...string) Seasons {
	return Seasons{mode: modeList, values: slices.Clone(vs)}
}

// ParseSeasons turns command-line or query-string values into a selector.
// No values, or "All" anywhere among them, selects every season. Values that
// are all blank yield an empty list, which fails Validate.
func ParseSeasons(raw []string) Seasons {
	var vs []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if p := strings.TrimSpace(part); p != "" {
				vs = append(vs, p)
			}
		}
	}
	switch {
	case len(raw) == 0:
		return All()
	case len(vs) == 0:
		return SeasonList()
	case slices.ContainsFunc(vs, func(v string) bool { return strings.EqualFold(v, AllSeasons) }):
		return All()
	case len(vs) == 1:
		return Season(vs[0])
	}
	return SeasonList(vs...)
}

// Validate rejects an empty season list.
func (s Seasons) Validate() error {
	if s.mode == modeList && len(s.values) == 0 {
		return ErrNoSelection
	}
	return nil
}

// IsAll reports whether the selector is the identity.
func (s Seasons) IsAll() bool { return s.mode == modeAll }

// Values returns the selected seasons, or nil for All.
func (s Seasons) Values() []string { return slices.Clone(s.values) }

// Contains reports whether season passes the selector.
func (s Seasons) Contains(season string) bool {
	switch s.mode {
	case modeOne:
		return s.values[0] == season
	case modeList:
		return slices.Contains(s.values, season)
	}
	return true
}

// String renders the selector in the form ParseSeasons accepts.
func (s Seasons) String() string {
	if s.mode == modeAll {
		return AllSeasons
	}
	return strings.Join(s.values, ",")
}

// ---- Predicates ----

// Predicate is a typed row predicate.
type Predicate[T any] func(T) bool

// And combines predicates; a nil predicate is skipped.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	live := make([]Predicate[T], 0, len(ps))
	for _, p := range ps {
		if p != nil {
			live = append(live, p)
		}
	}
	return func(v T) bool {
		for _, p := range live {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Where returns the rows matching p, preserving order.
func Where[T any](rows []T, p Predicate[T]) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if p == nil || p(r) {
			out = append(out, r)
		}
	}
	return out
}

// MatchSeasons filters matches by season. The identity selector yields nil.
func MatchSeasons(s Seasons) Predicate[*model.Match] {
	if s.IsAll() {
		return nil
	}
	return func(m *model.Match) bool { return s.Contains(m.Season) }
}

// BallSeasons filters joined deliveries by their match's season.
func BallSeasons(s Seasons) Predicate[model.Ball] {
	if s.IsAll() {
		return nil
	}
	return func(b model.Ball) bool { return s.Contains(b.Match.Season) }
}

// Involving matches fixtures where team sat in either seat. Empty team is the identity.
func Involving(team string) Predicate[*model.Match] {
	if team == "" {
		return nil
	}
	return func(m *model.Match) bool { return m.Involves(team) }
}

// Between matches fixtures played by team against rival, in either seat order.
func Between(team, rival string) Predicate[*model.Match] {
	return func(m *model.Match) bool {
		return m.Involves(team) && m.Opponent(team) == rival
	}
}

// BallInvolving matches deliveries of fixtures team played in.
func BallInvolving(team string) Predicate[model.Ball] {
	if team == "" {
		return nil
	}
	return func(b model.Ball) bool { return b.Match.Involves(team) }
}

// BattingTeam matches deliveries where team was batting.
func BattingTeam(team string) Predicate[model.Ball] {
	if team == "" {
		return nil
	}
	return func(b model.Ball) bool { return b.BattingTeam == team }
}

// BowlingTeam matches deliveries where team was bowling.
func BowlingTeam(team string) Predicate[model.Ball] {
	if team == "" {
		return nil
	}
	return func(b model.Ball) bool { return b.BowlingTeam == team }
}

// Batter matches deliveries faced by player.
func Batter(player string) Predicate[model.Ball] {
	return func(b model.Ball) bool { return b.Batter == player }
}

// Bowler matches deliveries bowled by player.
func Bowler(player string) Predicate[model.Ball] {
	if player == "" {
		return nil
	}
	return func(b model.Ball) bool { return b.Bowler == player }
}

// ---- Seat relabelling ----

// Seats is a fixture seen from one team's side.
type Seats struct {
	Self  string
	Rival string
}

// Relabel places team in the self seat. It fails if team did not play m.
func Relabel(m *model.Match, team string) (Seats, error) {
	if !m.Involves(team) {
		return Seats{}, fmt.Errorf("match %d: %q did not play", m.ID, team)
	}
	return Seats{Self: team, Rival: m.Opponent(team)}, nil
}
