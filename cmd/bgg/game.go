package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	bgg "github.com/arnauldvm/boardgamegeek"
)

var (
	gameVersions bool
	gameVideos   bool
	gameComments bool
)

var gameCmd = &cobra.Command{
	Use:   "game <id>",
	Short: "Show detailed information about a board game",
	Args:  cobra.ExactArgs(1),
	RunE:  runGame,
}

func init() {
	gameCmd.Flags().BoolVar(&gameVersions, "versions", false, "include the edition list")
	gameCmd.Flags().BoolVar(&gameVideos, "videos", false, "include attached videos")
	gameCmd.Flags().BoolVar(&gameComments, "comments", false, "include user comments (all pages)")
}

func runGame(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid game id %q", args[0])
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	opts := bgg.GameOptions{
		Versions: gameVersions,
		Videos:   gameVideos,
		Comments: gameComments,
	}

	if flagJSON {
		out, err := client.GetBoardGameJSON(cmd.Context(), id, opts)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	game, err := client.GetBoardGame(cmd.Context(), id, opts)
	if err != nil {
		return err
	}
	game.Describe(describeLogger())
	return nil
}
