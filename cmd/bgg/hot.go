package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hotType string

var hotCmd = &cobra.Command{
	Use:   "hot",
	Short: "Show the current hotness list",
	Args:  cobra.NoArgs,
	RunE:  runHot,
}

func init() {
	hotCmd.Flags().StringVar(&hotType, "type", "boardgame", "hotness list type (boardgame, videogame, boardgameperson, boardgamecompany)")
}

func runHot(cmd *cobra.Command, _ []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := client.GetHotItemsJSON(cmd.Context(), hotType)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	items, err := client.GetHotItems(cmd.Context(), hotType)
	if err != nil {
		return err
	}

	for _, item := range items {
		year := item.Year
		if year == "" {
			year = "?"
		}
		fmt.Printf("%3d. %-50s %s  (id %d)\n", item.Rank, truncate(item.Name, 50), year, item.ID)
	}
	return nil
}
