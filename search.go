package boardgamegeek

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// SearchResult represents a game in search results.
type SearchResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Year string `json:"year"`
	Type string `json:"type"` // "boardgame", "boardgameexpansion", "videogame", ...
}

// SearchOptions narrows a search.
type SearchOptions struct {
	// ItemTypes filters by item type. Empty means boardgame plus
	// boardgameexpansion, the site's default game search.
	ItemTypes []string

	// Exact requires the name to match the query exactly.
	Exact bool
}

// SearchGames searches for games by name.
// Returns a list of matching games.
func (c *Client) SearchGames(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	if query == "" {
		return nil, newParseError("search query cannot be empty", nil)
	}

	types := opts.ItemTypes
	if len(types) == 0 {
		types = []string{"boardgame", "boardgameexpansion"}
	}
	endpoint := fmt.Sprintf("/search?query=%s&type=%s", url.QueryEscape(query), strings.Join(types, ","))
	if opts.Exact {
		endpoint += "&exact=1"
	}

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	xmlResp, err := parseXML[xmlItems](body, "failed to parse search response")
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(xmlResp.Items))
	for _, item := range xmlResp.Items {
		results = append(results, SearchResult{
			ID:   item.ID,
			Name: item.Name.Value,
			Year: item.YearValue.Value,
			Type: item.Type,
		})
	}

	return results, nil
}

// SearchGamesJSON searches for games by name and returns JSON.
func (c *Client) SearchGamesJSON(ctx context.Context, query string, opts SearchOptions) (string, error) {
	results, err := c.SearchGames(ctx, query, opts)
	if err != nil {
		return "", err
	}
	return toJSON(results)
}
