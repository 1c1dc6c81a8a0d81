package boardgamegeek

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	// maxBatchSize is the maximum number of ids the thing endpoint accepts
	// in a single request.
	maxBatchSize = 20

	// commentsPerPage is the page size the API uses for comment blocks.
	commentsPerPage = 100
)

// GameOptions controls the optional blocks requested from the thing
// endpoint. Statistics are always requested.
type GameOptions struct {
	Versions bool // include the edition list
	Videos   bool // include attached videos
	Comments bool // include user comments, fetching every page
}

// GetBoardGame retrieves detailed information about a board game. With
// opts.Comments set, comment pages beyond the first are fetched and
// merged into the returned game.
func (c *Client) GetBoardGame(ctx context.Context, gameID int, opts GameOptions) (*BoardGame, error) {
	if gameID <= 0 {
		return nil, newNotFoundError(gameID)
	}

	endpoint := fmt.Sprintf("/thing?id=%d&stats=1", gameID)
	if opts.Versions {
		endpoint += "&versions=1"
	}
	if opts.Videos {
		endpoint += "&videos=1"
	}
	if opts.Comments {
		endpoint += "&comments=1"
	}

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	xmlResp, err := parseXML[xmlThing](body, "failed to parse thing response")
	if err != nil {
		return nil, err
	}
	if len(xmlResp.Items) == 0 {
		return nil, newNotFoundError(gameID)
	}

	item := xmlResp.Items[0]
	game, err := NewBoardGame(thingPayload(item))
	if err != nil {
		return nil, err
	}

	if opts.Comments {
		if err := c.fetchRemainingComments(ctx, gameID, item.Comments, game); err != nil {
			return nil, err
		}
	}

	return game, nil
}

// GetBoardGameJSON retrieves a board game and returns it as JSON.
func (c *Client) GetBoardGameJSON(ctx context.Context, gameID int, opts GameOptions) (string, error) {
	game, err := c.GetBoardGame(ctx, gameID, opts)
	if err != nil {
		return "", err
	}
	return toJSON(game)
}

// GetBoardGames retrieves multiple board games in a single request.
// The thing endpoint caps batches at 20 ids.
func (c *Client) GetBoardGames(ctx context.Context, gameIDs []int) ([]*BoardGame, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}
	if len(gameIDs) > maxBatchSize {
		return nil, newParseError(fmt.Sprintf("too many ids: at most %d per request", maxBatchSize), nil)
	}

	idStrs := make([]string, len(gameIDs))
	for i, id := range gameIDs {
		idStrs[i] = strconv.Itoa(id)
	}
	endpoint := fmt.Sprintf("/thing?id=%s&stats=1", strings.Join(idStrs, ","))

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	xmlResp, err := parseXML[xmlThing](body, "failed to parse thing response")
	if err != nil {
		return nil, err
	}

	games := make([]*BoardGame, 0, len(xmlResp.Items))
	for _, item := range xmlResp.Items {
		game, err := NewBoardGame(thingPayload(item))
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

// GetVideoGame retrieves detailed information about a video game.
func (c *Client) GetVideoGame(ctx context.Context, gameID int) (*VideoGame, error) {
	if gameID <= 0 {
		return nil, newNotFoundError(gameID)
	}

	endpoint := fmt.Sprintf("/thing?id=%d&stats=1&videos=1", gameID)

	body, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	xmlResp, err := parseXML[xmlThing](body, "failed to parse thing response")
	if err != nil {
		return nil, err
	}
	if len(xmlResp.Items) == 0 {
		return nil, newNotFoundError(gameID)
	}

	return NewVideoGame(thingPayload(xmlResp.Items[0]))
}

// fetchRemainingComments pulls comment pages after the embedded first one
// and appends them to the game. An empty page ends the walk early, so a
// shrinking comment count upstream cannot loop forever.
func (c *Client) fetchRemainingComments(ctx context.Context, gameID int, first xmlComments, game *BoardGame) error {
	total := first.TotalItems
	if len(first.Comments) == 0 || len(first.Comments) >= total {
		return nil
	}

	page := first.Page
	if page < 1 {
		page = 1
	}
	lastPage := (total + commentsPerPage - 1) / commentsPerPage

	for page < lastPage {
		page++
		endpoint := fmt.Sprintf("/thing?id=%d&comments=1&page=%d", gameID, page)
		body, err := c.doRequest(ctx, endpoint)
		if err != nil {
			return err
		}

		xmlResp, err := parseXML[xmlThing](body, "failed to parse thing response")
		if err != nil {
			return err
		}
		if len(xmlResp.Items) == 0 {
			return nil
		}

		comments := xmlResp.Items[0].Comments.Comments
		if len(comments) == 0 {
			return nil
		}
		for _, cm := range comments {
			game.AddComment(NewComment(commentPayload(cm)))
		}
	}

	return nil
}

// thingPayload flattens a thing response item into the payload shape the
// entity constructors consume.
func thingPayload(item xmlThingItem) *Payload {
	p := NewPayload().
		Set("id", item.ID).
		Set("stats", statsPayload(item.Statistics))

	primaryFound := false
	var alternates []any
	for _, name := range item.Names {
		switch {
		case name.Type == "primary" && !primaryFound:
			p.Set("name", name.Value)
			primaryFound = true
		case name.Type == "alternate":
			alternates = append(alternates, name.Value)
		}
	}
	if len(alternates) > 0 {
		p.Set("alternative_names", alternates)
	}

	if item.Description != "" {
		p.Set("description", item.Description)
	}
	if item.Thumbnail != "" {
		p.Set("thumbnail", item.Thumbnail)
	}
	if item.Image != "" {
		p.Set("image", item.Image)
	}
	if item.YearValue.Value != "" {
		p.Set("yearpublished", item.YearValue.Value)
	}

	p.Set("minplayers", item.MinPlayers.Value).
		Set("maxplayers", item.MaxPlayers.Value).
		Set("minplaytime", item.MinPlayTime.Value).
		Set("maxplaytime", item.MaxPlayTime.Value).
		Set("playingtime", item.PlayingTime.Value).
		Set("minage", item.MinAge.Value)

	switch item.Type {
	case "boardgameexpansion":
		p.Set("expansion", true)
	case "boardgameaccessory":
		p.Set("accessory", true)
	}

	var (
		categories, families, mechanics, implementations []any
		designers, artists, publishers, platforms        []any
		expansions, expands                              []any
	)
	for _, link := range item.Links {
		switch link.Type {
		case "boardgamecategory":
			categories = append(categories, link.Value)
		case "boardgamefamily":
			families = append(families, link.Value)
		case "boardgamemechanic":
			mechanics = append(mechanics, link.Value)
		case "boardgameimplementation":
			implementations = append(implementations, link.Value)
		case "boardgamedesigner":
			designers = append(designers, link.Value)
		case "boardgameartist":
			artists = append(artists, link.Value)
		case "boardgamepublisher":
			publishers = append(publishers, link.Value)
		case "videogameplatform":
			platforms = append(platforms, link.Value)
		case "boardgameexpansion":
			entry := NewPayload().Set("id", link.ID).Set("name", link.Value)
			if link.Inbound {
				expands = append(expands, entry)
			} else {
				expansions = append(expansions, entry)
			}
		}
	}
	setList := func(key string, vals []any) {
		if len(vals) > 0 {
			p.Set(key, vals)
		}
	}
	setList("categories", categories)
	setList("families", families)
	setList("mechanics", mechanics)
	setList("implementations", implementations)
	setList("designers", designers)
	setList("artists", artists)
	setList("publishers", publishers)
	setList("platforms", platforms)
	setList("expansions", expansions)
	setList("expands", expands)

	for _, poll := range item.Polls {
		if poll.Name != "suggested_numplayers" {
			continue
		}
		results := NewPayload()
		for _, pr := range poll.Results {
			entry := NewPayload()
			for _, r := range pr.Results {
				switch r.Value {
				case "Best":
					entry.Set("best_rating", r.NumVotes)
				case "Recommended":
					entry.Set("recommended_rating", r.NumVotes)
				case "Not Recommended":
					entry.Set("not_recommended_rating", r.NumVotes)
				}
			}
			results.Set(pr.NumPlayers, entry)
		}
		p.Set("suggested_players", NewPayload().
			Set("total_votes", poll.TotalVotes).
			Set("results", results))
		break
	}

	if len(item.Versions.Items) > 0 {
		var versions []any
		for _, v := range item.Versions.Items {
			versions = append(versions, versionPayload(v))
		}
		p.Set("versions", versions)
	}
	if len(item.Videos.Videos) > 0 {
		var videos []any
		for _, v := range item.Videos.Videos {
			videos = append(videos, videoPayload(v))
		}
		p.Set("videos", videos)
	}
	if len(item.Comments.Comments) > 0 {
		var comments []any
		for _, cm := range item.Comments.Comments {
			comments = append(comments, commentPayload(cm))
		}
		p.Set("comments", comments)
	}

	return p
}

// versionPayload flattens a version item. The single publisher, artist
// and language fields take the first matching link.
func versionPayload(item xmlVersionItem) *Payload {
	p := NewPayload().Set("id", item.ID)

	for _, name := range item.Names {
		if name.Type == "primary" {
			p.Set("name", name.Value)
			break
		}
	}

	if item.Thumbnail != "" {
		p.Set("thumbnail", item.Thumbnail)
	}
	if item.Image != "" {
		p.Set("image", item.Image)
	}
	if item.YearValue.Value != "" {
		p.Set("yearpublished", item.YearValue.Value)
	}
	if item.ProductCode.Value != "" {
		p.Set("product_code", item.ProductCode.Value)
	}
	if item.Width.Value != "" {
		p.Set("width", item.Width.Value)
	}
	if item.Length.Value != "" {
		p.Set("length", item.Length.Value)
	}
	if item.Depth.Value != "" {
		p.Set("depth", item.Depth.Value)
	}
	if item.Weight.Value != "" {
		p.Set("weight", item.Weight.Value)
	}

	for _, link := range item.Links {
		switch link.Type {
		case "boardgamepublisher":
			if !p.Has("publisher") {
				p.Set("publisher", link.Value)
			}
		case "boardgameartist":
			if !p.Has("artist") {
				p.Set("artist", link.Value)
			}
		case "language":
			if !p.Has("language") {
				p.Set("language", link.Value)
			}
		}
	}

	return p
}

// videoPayload flattens a video element. The title becomes the name.
func videoPayload(v xmlVideo) *Payload {
	p := NewPayload().
		Set("id", v.ID).
		Set("name", v.Title).
		Set("category", v.Category).
		Set("language", v.Language).
		Set("link", v.Link).
		Set("uploader", v.Username)
	if v.UserID != "" {
		p.Set("uploader_id", v.UserID)
	}
	if v.PostDate != "" {
		p.Set("post_date", v.PostDate)
	}
	return p
}

// commentPayload flattens a comment element.
func commentPayload(cm xmlComment) *Payload {
	return NewPayload().
		Set("username", cm.Username).
		Set("rating", cm.Rating).
		Set("comment", cm.Value)
}

// statsPayload flattens the ratings block into the stats sub-payload.
func statsPayload(stats xmlStatistics) *Payload {
	r := stats.Ratings
	p := NewPayload().
		Set("usersrated", r.UsersRated.Value).
		Set("average", r.Average.Value).
		Set("bayesaverage", r.BayesAverage.Value).
		Set("stddev", r.StdDev.Value).
		Set("median", r.Median.Value).
		Set("owned", r.Owned.Value).
		Set("trading", r.Trading.Value).
		Set("wanting", r.Wanting.Value).
		Set("wishing", r.Wishing.Value).
		Set("numcomments", r.NumComments.Value).
		Set("numweights", r.NumWeights.Value).
		Set("averageweight", r.AverageWeight.Value)

	if len(r.Ranks.Ranks) > 0 {
		var ranks []any
		for _, rank := range r.Ranks.Ranks {
			ranks = append(ranks, rankPayload(rank))
		}
		p.Set("ranks", ranks)
	}

	return p
}

// rankPayload flattens a rank element, keeping value and bayesaverage as
// the raw strings (unranked items carry "Not Ranked").
func rankPayload(r xmlRank) *Payload {
	return NewPayload().
		Set("id", r.ID).
		Set("type", r.Type).
		Set("name", r.Name).
		Set("friendlyname", r.FriendlyName).
		Set("value", r.Value).
		Set("bayesaverage", r.BayesAverage)
}
