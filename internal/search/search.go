// Package search resolves loosely typed player and team names against the
// names present in a snapshot.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrNotFound means no name matched the query.
var ErrNotFound = errors.New("no match")

// Kind tells players from teams.
type Kind string

// Kinds.
const (
	Player Kind = "player"
	Team   Kind = "team"
)

// Result is one fuzzy match, best first.
type Result struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Score int    `json:"score"`
}

type entry struct {
	name  string
	kind  Kind
	lower string
}

// entries implements fuzzy.Source.
type entries []entry

func (e entries) Len() int            { return len(e) }
func (e entries) String(i int) string { return e[i].lower }

// Index is an immutable name index.
type Index struct {
	all entries
}

// New builds an index over the given player and team names.
func New(players, teams []string) *Index {
	x := &Index{all: make(entries, 0, len(players)+len(teams))}
	for _, p := range players {
		x.all = append(x.all, entry{p, Player, strings.ToLower(p)})
	}
	for _, t := range teams {
		x.all = append(x.all, entry{t, Team, strings.ToLower(t)})
	}
	return x
}

// Find returns up to limit matches of the given kind ("" for both). A
// non-positive limit returns every match.
func (x *Index) Find(query string, kind Kind, limit int) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Result, 0)
	if q == "" {
		return out
	}
	for _, m := range fuzzy.FindFrom(q, x.all) {
		e := x.all[m.Index]
		if kind != "" && e.kind != kind {
			continue
		}
		out = append(out, Result{Name: e.name, Kind: e.kind, Score: m.Score})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Resolve maps query to a single name of the given kind: a case-insensitive
// exact match wins, otherwise the best fuzzy match.
func (x *Index) Resolve(query string, kind Kind) (string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, e := range x.all {
		if e.kind == kind && e.lower == q {
			return e.name, nil
		}
	}
	if best := x.Find(query, kind, 1); len(best) == 1 {
		return best[0].Name, nil
	}
	return "", fmt.Errorf("%s %q: %w", kind, query, ErrNotFound)
}
