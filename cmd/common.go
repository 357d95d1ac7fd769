package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/storage"
)

// errEmptySnapshot means the database holds no matches yet.
var errEmptySnapshot = errors.New("no matches stored; run 'iplstats import <matches.csv> <deliveries.csv>' first")

// seasonArgs backs every command's --season flag; only one command runs per process.
var seasonArgs []string

func addSeasonFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&seasonArgs, "season", "s", nil,
		"season filter, repeatable or comma separated; \"All\" for every season")
}

// seasonsFrom reads --season. An absent flag selects every season; a flag
// given only blank values is an error.
func seasonsFrom(cmd *cobra.Command) (filter.Seasons, error) {
	if !cmd.Flags().Changed("season") {
		return filter.All(), nil
	}
	s := filter.ParseSeasons(seasonArgs)
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("--season: %w", err)
	}
	return s, nil
}

func openStore() (*storage.DB, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

// loadEngine reads the snapshot and builds an engine with the configured thresholds.
func loadEngine() (*engine.Engine, error) {
	db, err := openStore()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	start := time.Now()
	ms, err := db.LoadMatches()
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	if len(ms) == 0 {
		return nil, errEmptySnapshot
	}
	ds, err := db.LoadDeliveries()
	if err != nil {
		return nil, fmt.Errorf("load deliveries: %w", err)
	}

	opts := []engine.Option{
		engine.WithMinOvers(cfg.Engine.MinOvers),
		engine.WithMinInnings(cfg.Engine.MinInnings),
	}
	if hc := cfg.Engine.HomeCityMap(); hc != nil {
		opts = append(opts, engine.WithHomeCities(hc))
	}
	e, err := engine.New(ms, ds, opts...)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	logger.Debug("snapshot loaded",
		"db", dbPath,
		"matches", e.MatchCount(),
		"deliveries", e.DeliveryCount(),
		"elapsed", time.Since(start))
	return e, nil
}

func newIndex(e *engine.Engine) *search.Index {
	return search.New(e.Players(), e.TeamNames())
}

// resolveName maps a loosely typed name to one in the snapshot and tells the
// user when a fuzzy match was taken.
func resolveName(idx *search.Index, query string, kind search.Kind) (string, error) {
	name, err := idx.Resolve(query, kind)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(name, strings.TrimSpace(query)) {
		logger.Info("resolved name", "query", query, string(kind), name)
	}
	return name, nil
}

// render writes each non-nil table in order.
func render(w io.Writer, tables ...*report.Table) {
	for _, t := range tables {
		if t != nil {
			t.Render(w)
		}
	}
}

// joinArgs treats every positional argument as one space-separated name.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
