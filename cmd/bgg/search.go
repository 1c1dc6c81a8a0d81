package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	bgg "github.com/arnauldvm/boardgamegeek"
)

var (
	searchExact bool
	searchTypes []string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for games by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchExact, "exact", false, "require an exact name match")
	searchCmd.Flags().StringSliceVar(&searchTypes, "type", nil, "item types to search (boardgame, boardgameexpansion, videogame)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	opts := bgg.SearchOptions{ItemTypes: searchTypes, Exact: searchExact}

	if flagJSON {
		out, err := client.SearchGamesJSON(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	results, err := client.SearchGames(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for _, r := range results {
		year := r.Year
		if year == "" {
			year = "?"
		}
		fmt.Printf("%8d  %-50s %s  %s\n", r.ID, truncate(r.Name, 50), year, r.Type)
	}
	return nil
}

// truncate shortens s to at most n runes, ellipsized.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n-1]), " ") + "…"
}
