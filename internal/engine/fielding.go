package engine

import (
	"sort"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/aggregator"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

func fieldedBy(kind string) func(model.Ball) (string, bool) {
	return func(b model.Ball) (string, bool) {
		return b.Fielder, b.IsWicket && b.DismissalKind == kind && b.Fielder != ""
	}
}

func fieldingTable(parts ...*aggregator.Tally[string]) []model.FieldingRecord {
	keyed := make([]aggregator.Keyed[string], len(parts))
	for i, p := range parts {
		keyed[i] = p
	}
	rows := aggregator.JoinFill(func(p string) model.FieldingRecord {
		n := 0
		for _, t := range parts {
			n += t.Get(p)
		}
		return model.FieldingRecord{Fielder: p, Count: n}
	}, keyed...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Fielder < rows[j].Fielder })
	byDesc(rows, func(r model.FieldingRecord) int { return r.Count })
	return rows
}

func (e *Engine) fielding(team string, seasons filter.Seasons) ([]model.Ball, error) {
	return e.scoped(seasons, filter.BallInvolving(team), filter.BowlingTeam(team))
}

// Catches counts catches per fielder. A caught-and-bowled credits the bowler.
func (e *Engine) Catches(team string, seasons filter.Seasons) ([]model.FieldingRecord, error) {
	balls, err := e.fielding(team, seasons)
	if err != nil {
		return nil, err
	}
	caught := aggregator.Count(balls, fieldedBy(model.Caught))
	returned := aggregator.Count(balls, func(b model.Ball) (string, bool) {
		return b.Bowler, b.IsWicket && b.DismissalKind == model.CaughtAndBowled
	})
	return fieldingTable(caught, returned), nil
}

// Stumpings counts stumpings per wicket-keeper.
func (e *Engine) Stumpings(team string, seasons filter.Seasons) ([]model.FieldingRecord, error) {
	balls, err := e.fielding(team, seasons)
	if err != nil {
		return nil, err
	}
	return fieldingTable(aggregator.Count(balls, fieldedBy(model.Stumped))), nil
}

// RunOuts counts run-outs per credited fielder.
func (e *Engine) RunOuts(team string, seasons filter.Seasons) ([]model.FieldingRecord, error) {
	balls, err := e.fielding(team, seasons)
	if err != nil {
		return nil, err
	}
	return fieldingTable(aggregator.Count(balls, fieldedBy(model.RunOut))), nil
}
