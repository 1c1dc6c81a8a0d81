package boardgamegeek

import (
	"context"
	"fmt"
	"net/url"
)

// HotItem represents an item in the site-wide hotness list.
type HotItem struct {
	ID        int    `json:"id"`
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Year      string `json:"year"`
	Thumbnail string `json:"thumbnail"`
}

// GetHotItems retrieves the current hotness list. An empty itemType means
// "boardgame"; the API also serves "videogame", "boardgameperson" and
// "boardgamecompany".
func (c *Client) GetHotItems(ctx context.Context, itemType string) ([]HotItem, error) {
	if itemType == "" {
		itemType = "boardgame"
	}
	endpoint := fmt.Sprintf("/hot?type=%s", url.QueryEscape(itemType))

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	xmlResp, err := parseXML[xmlHot](body, "failed to parse hot list response")
	if err != nil {
		return nil, err
	}

	items := make([]HotItem, 0, len(xmlResp.Items))
	for _, item := range xmlResp.Items {
		items = append(items, HotItem{
			ID:        item.ID,
			Rank:      item.Rank,
			Name:      item.Name.Value,
			Year:      item.YearValue.Value,
			Thumbnail: item.Thumbnail.Value,
		})
	}

	return items, nil
}

// GetHotItemsJSON retrieves the hotness list and returns JSON.
func (c *Client) GetHotItemsJSON(ctx context.Context, itemType string) (string, error) {
	items, err := c.GetHotItems(ctx, itemType)
	if err != nil {
		return "", err
	}
	return toJSON(items)
}
