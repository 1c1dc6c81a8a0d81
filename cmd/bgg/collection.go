package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	bgg "github.com/arnauldvm/boardgamegeek"
)

var (
	collectionOwned    bool
	collectionWishlist bool
	collectionNoExpans bool
	collectionVersions bool
	collectionDescribe bool
)

var collectionCmd = &cobra.Command{
	Use:   "collection [username]",
	Short: "Show a user's game collection",
	Long: `Show a user's game collection. Without a username argument the
default_username from the config file is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCollection,
}

func init() {
	collectionCmd.Flags().BoolVar(&collectionOwned, "owned", false, "owned games only")
	collectionCmd.Flags().BoolVar(&collectionWishlist, "wishlist", false, "wishlisted games only")
	collectionCmd.Flags().BoolVar(&collectionNoExpans, "no-expansions", false, "exclude expansions")
	collectionCmd.Flags().BoolVar(&collectionVersions, "versions", false, "include owned edition data")
	collectionCmd.Flags().BoolVar(&collectionDescribe, "full", false, "print the full per-game dump instead of one line each")
}

func runCollection(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	username := cfg.Collection.DefaultUsername
	if len(args) == 1 {
		username = args[0]
	}
	if username == "" {
		return fmt.Errorf("no username; pass one or set collection.default_username in the config file")
	}

	opts := bgg.CollectionOptions{
		OwnedOnly:         collectionOwned,
		WishlistOnly:      collectionWishlist,
		ExcludeExpansions: collectionNoExpans,
		IncludeVersions:   collectionVersions,
	}

	if flagJSON {
		out, err := client.GetCollectionJSON(cmd.Context(), username, opts)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	games, err := client.GetCollection(cmd.Context(), username, opts)
	if err != nil {
		return err
	}

	if collectionDescribe {
		log := describeLogger()
		for _, g := range games {
			g.Describe(log)
		}
		return nil
	}

	for _, g := range games {
		year := "?"
		if g.YearPublished != nil {
			year = fmt.Sprintf("%d", *g.YearPublished)
		}
		status := collectionStatus(g)
		fmt.Printf("%8d  %-50s %4s  plays:%-3d %s\n", g.ID, truncate(g.Name, 50), year, g.NumPlays, status)
	}
	fmt.Printf("%d games\n", len(games))
	return nil
}

// collectionStatus renders the set flags of a collection entry as a short
// comma-separated list.
func collectionStatus(g *bgg.CollectionBoardGame) string {
	var parts []string
	if g.Owned {
		parts = append(parts, "owned")
	}
	if g.PrevOwned {
		parts = append(parts, "prev-owned")
	}
	if g.Preordered {
		parts = append(parts, "preordered")
	}
	if g.ForTrade {
		parts = append(parts, "for-trade")
	}
	if g.Want {
		parts = append(parts, "want")
	}
	if g.WantToBuy {
		parts = append(parts, "want-to-buy")
	}
	if g.WantToPlay {
		parts = append(parts, "want-to-play")
	}
	if g.Wishlist {
		if g.WishlistPriority > 0 {
			parts = append(parts, fmt.Sprintf("wishlist(%d)", g.WishlistPriority))
		} else {
			parts = append(parts, "wishlist")
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
