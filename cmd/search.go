package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/report"
	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/search"
)

var (
	searchKind  string
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-find player and team names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "kind", "k", "", "player or team (default both)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum matches")
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind := search.Kind(searchKind)
	switch kind {
	case "", search.Player, search.Team:
	default:
		return fmt.Errorf("--kind must be %q or %q, got %q", search.Player, search.Team, searchKind)
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}
	render(cmd.OutOrStdout(), report.SearchResults(newIndex(e).Find(joinArgs(args), kind, searchLimit)))
	return nil
}
