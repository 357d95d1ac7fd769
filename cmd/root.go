package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/config"
)

var (
	dbPath     string
	configPath string

	cfg    *config.Config
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "iplstats",
	Short: "IPL match and ball-by-ball statistics",
	Long: `Import the IPL match and delivery tables into a local snapshot and
query batting, bowling, team, season and playoff statistics from it.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "path to SQLite snapshot")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .iplstats.yaml in . or $HOME)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(battingCmd)
	rootCmd.AddCommand(bowlingCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(bowlerCmd)
	rootCmd.AddCommand(playoffsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dropCmd)
}

// setup loads .env, the config file and the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load(".env")

	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	if !cmd.Flags().Changed("db") && cfg.DB != "" {
		dbPath = cfg.DB
	}

	logger, err = newLogger(cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func newLogger(lc config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}
