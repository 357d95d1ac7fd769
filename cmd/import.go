package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/engine"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import <matches.csv> <deliveries.csv>",
	Short: "Clean the two source CSVs and store them as the snapshot",
	Long: `Read the match-level and ball-by-ball CSV files, clean them (franchise
renames, missing winners as "No Result", eliminator labels), check that every
delivery belongs to a known match, and replace the stored snapshot.

Franchise renames can be overridden with ingest.team_aliases in the config file.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cleaner := ingest.NewCleaner(cfg.Ingest.AliasMap())
	snap, err := cleaner.ReadFiles(args[0], args[1])
	if err != nil {
		return err
	}
	logger.Debug("csv read", "matches", len(snap.Matches), "deliveries", len(snap.Deliveries), "elapsed", time.Since(start))

	// Build once to reject orphan deliveries and malformed matches before writing.
	if _, err := engine.New(snap.Matches, snap.Deliveries); err != nil {
		return fmt.Errorf("validate snapshot: %w", err)
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	source := filepath.Base(args[0]) + " + " + filepath.Base(args[1])
	if err := db.ReplaceSnapshot(snap.Matches, snap.Deliveries, source); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	logger.Info("snapshot imported",
		"db", dbPath,
		"matches", len(snap.Matches),
		"deliveries", len(snap.Deliveries),
		"elapsed", time.Since(start))

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s matches and %s deliveries into %s\n",
		humanize.Comma(int64(len(snap.Matches))), humanize.Comma(int64(len(snap.Deliveries))), dbPath)
	return nil
}
