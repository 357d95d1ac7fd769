package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dropForce  bool
	dropSeason string
	dropKeep   bool
)

// dropCmd deletes stored data: one season, or the whole database file.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete one season or the whole snapshot database",
	Long: `With --season, delete that season's matches and their deliveries from the
snapshot. With --keep-file, empty every table. Otherwise permanently delete
the SQLite database file. Re-run 'iplstats import' afterwards to rebuild.`,
	Args: cobra.NoArgs,
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
	dropCmd.Flags().StringVar(&dropSeason, "season", "", "delete only this season")
	dropCmd.Flags().BoolVar(&dropKeep, "keep-file", false, "empty every table but keep the database file")
}

func runDrop(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	target := dbPath
	if dropSeason != "" {
		target = "season " + dropSeason + " from " + dbPath
	}
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", target)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}

	if dropKeep && dropSeason == "" {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Clear(); err != nil {
			return fmt.Errorf("clear snapshot: %w", err)
		}
		fmt.Fprintf(w, "Emptied: %s\n", dbPath)
		return nil
	}

	if dropSeason != "" {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()
		n, err := db.DropSeason(dropSeason)
		if err != nil {
			return fmt.Errorf("drop season %s: %w", dropSeason, err)
		}
		logger.Info("season dropped", "season", dropSeason, "matches", n)
		fmt.Fprintf(w, "Deleted %d matches from season %s\n", n, dropSeason)
		return nil
	}

	if err := os.Remove(dbPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "Database does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove database: %w", err)
	}
	// WAL side files go with the database.
	os.Remove(dbPath + "-wal")
	os.Remove(dbPath + "-shm")
	fmt.Fprintf(w, "Deleted: %s\n", dbPath)
	return nil
}
