package boardgamegeek

import (
	"context"
	"fmt"
	"net/url"
)

// CollectionOptions specifies options for fetching a user's collection.
type CollectionOptions struct {
	OwnedOnly         bool // own=1
	WishlistOnly      bool // wishlist=1
	ExcludeExpansions bool // excludesubtype=boardgameexpansion
	IncludeVersions   bool // version=1
}

// GetCollection retrieves a user's game collection. BGG prepares
// collections asynchronously, so this rides the 202-retry lane.
func (c *Client) GetCollection(ctx context.Context, username string, opts CollectionOptions) ([]*CollectionBoardGame, error) {
	if username == "" {
		return nil, newParseError("username is required", nil)
	}

	endpoint := fmt.Sprintf("/collection?username=%s&stats=1", url.QueryEscape(username))
	if opts.OwnedOnly {
		endpoint += "&own=1"
	}
	if opts.WishlistOnly {
		endpoint += "&wishlist=1"
	}
	if opts.ExcludeExpansions {
		endpoint += "&excludesubtype=boardgameexpansion"
	}
	if opts.IncludeVersions {
		endpoint += "&version=1"
	}

	body, err := c.doRequestWithRetryOn202(ctx, endpoint, collectionMaxRetries)
	if err != nil {
		return nil, err
	}

	xmlResp, err := parseXML[xmlCollection](body, "failed to parse collection response")
	if err != nil {
		return nil, err
	}

	games := make([]*CollectionBoardGame, 0, len(xmlResp.Items))
	for _, item := range xmlResp.Items {
		game, err := NewCollectionBoardGame(collectionPayload(item))
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

// GetCollectionJSON retrieves a user's game collection and returns JSON.
func (c *Client) GetCollectionJSON(ctx context.Context, username string, opts CollectionOptions) (string, error) {
	games, err := c.GetCollection(ctx, username, opts)
	if err != nil {
		return "", err
	}
	return toJSON(games)
}

// collectionPayload flattens a collection item. Status flags stay the raw
// "0"/"1" strings; the constructor coerces them.
func collectionPayload(item xmlCollectionItem) *Payload {
	p := NewPayload().
		Set("id", item.ObjectID).
		Set("name", item.Name.Value).
		Set("stats", collectionStatsPayload(item.Stats))

	if item.YearValue != "" {
		p.Set("yearpublished", item.YearValue)
	}
	if item.Thumbnail != "" {
		p.Set("thumbnail", item.Thumbnail)
	}
	if item.Image != "" {
		p.Set("image", item.Image)
	}

	p.Set("minplayers", item.Stats.MinPlayers).
		Set("maxplayers", item.Stats.MaxPlayers).
		Set("minplaytime", item.Stats.MinPlayTime).
		Set("maxplaytime", item.Stats.MaxPlayTime).
		Set("playingtime", item.Stats.PlayingTime)

	status := item.Status
	setFlag := func(key, raw string) {
		if raw != "" {
			p.Set(key, raw)
		}
	}
	setFlag("own", status.Own)
	setFlag("prevowned", status.PrevOwned)
	setFlag("fortrade", status.ForTrade)
	setFlag("want", status.Want)
	setFlag("wanttoplay", status.WantToPlay)
	setFlag("wanttobuy", status.WantToBuy)
	setFlag("wishlist", status.Wishlist)
	setFlag("wishlistpriority", status.WishlistPriority)
	setFlag("preordered", status.Preordered)
	setFlag("lastmodified", status.LastModified)

	p.Set("numplays", item.NumPlays)
	if item.Comment != "" {
		p.Set("comment", item.Comment)
	}
	if v := item.Stats.Rating.Value; v != "" {
		p.Set("rating", v)
	}

	if len(item.Version.Items) > 0 {
		var versions []any
		for _, v := range item.Version.Items {
			versions = append(versions, versionPayload(v))
		}
		p.Set("versions", versions)
	}

	return p
}

// collectionStatsPayload maps the collection rating block onto the stats
// sub-payload shape. numowned counts owning users, like the thing
// endpoint's owned aggregate.
func collectionStatsPayload(stats xmlCollectionStats) *Payload {
	r := stats.Rating
	p := NewPayload().
		Set("usersrated", r.UsersRated.Value).
		Set("average", r.Average.Value).
		Set("bayesaverage", r.BayesAverage.Value).
		Set("stddev", r.StdDev.Value).
		Set("median", r.Median.Value).
		Set("owned", stats.NumOwned)

	if len(r.Ranks.Ranks) > 0 {
		var ranks []any
		for _, rank := range r.Ranks.Ranks {
			ranks = append(ranks, rankPayload(rank))
		}
		p.Set("ranks", ranks)
	}

	return p
}
