package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/filter"
)

var exportOut string

// exportFile is the JSON envelope written by export. Derived ratios with a
// zero denominator encode as null.
type exportFile struct {
	View        string `json:"view"`
	Seasons     string `json:"seasons"`
	GeneratedAt string `json:"generated_at"`
	Matches     int    `json:"matches"`
	Rows        any    `json:"rows"`
}

// exportViews maps a view name to the engine query that fills it.
var exportViews = map[string]func(*engine.Engine, filter.Seasons) (any, error){
	"overview":           func(e *engine.Engine, s filter.Seasons) (any, error) { return e.Overview(s) },
	"batting":            func(e *engine.Engine, s filter.Seasons) (any, error) { return e.BattingStats(s) },
	"batting-by-season":  func(e *engine.Engine, s filter.Seasons) (any, error) { return e.BattingStatsBySeason(s) },
	"batting-archetypes": func(e *engine.Engine, s filter.Seasons) (any, error) { return e.BattingArchetypes(s) },
	"bowling":            func(e *engine.Engine, s filter.Seasons) (any, error) { return e.BowlingStats(s) },
	"bowling-archetypes": func(e *engine.Engine, s filter.Seasons) (any, error) { return e.BowlingArchetypes(s) },
	"containment":        func(e *engine.Engine, s filter.Seasons) (any, error) { return e.ContainmentArchetypes(s) },
	"records":            func(e *engine.Engine, s filter.Seasons) (any, error) { return e.WinLoss("", s) },
	"team-scores":        func(e *engine.Engine, s filter.Seasons) (any, error) { return e.TeamScores("", s) },
	"scores-200":         func(e *engine.Engine, s filter.Seasons) (any, error) { return e.TwoHundredInnings(s) },
	"toss-impact":        func(e *engine.Engine, s filter.Seasons) (any, error) { return e.TossImpact(s) },
	"venues":             func(e *engine.Engine, s filter.Seasons) (any, error) { return e.Venues(s) },
	"seasons":            func(e *engine.Engine, _ filter.Seasons) (any, error) { return e.SeasonSummaries(), nil },
	"titles":             func(e *engine.Engine, _ filter.Seasons) (any, error) { return e.Titles(), nil },
	"teams":              func(e *engine.Engine, _ filter.Seasons) (any, error) { return e.Teams(), nil },
}

func exportViewNames() []string {
	names := make([]string, 0, len(exportViews))
	for k := range exportViews {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var exportCmd = &cobra.Command{
	Use:   "export <view>",
	Short: "Export one result table as JSON",
	Long: fmt.Sprintf(`Compute one view over the selected seasons and write it as JSON, to
stdout or to --out.

Views: %v

Example:
  iplstats export batting --season 2016 --out batting-2016.json`, exportViewNames()),
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	addSeasonFlag(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	view := args[0]
	query, ok := exportViews[view]
	if !ok {
		return fmt.Errorf("unknown view %q (want one of %v)", view, exportViewNames())
	}
	seasons, err := seasonsFrom(cmd)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	rows, err := query(e, seasons)
	if err != nil {
		return err
	}
	doc := exportFile{
		View:        view,
		Seasons:     seasons.String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Matches:     e.MatchCount(),
		Rows:        rows,
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if exportOut != "" {
		logger.Info("exported", "view", view, "seasons", seasons.String(), "out", exportOut)
	}
	return nil
}
