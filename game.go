package boardgamegeek

import "log/slog"

// BaseGame is the common shape of a board game no matter which endpoint
// produced it: a collectible item plus player-count and playing-time
// bounds, the published year and the game's edition list.
type BaseGame struct {
	BaseItem

	// YearPublished is nil when the API omitted the year or encoded it
	// with the negative "unknown" sentinel.
	YearPublished *int `json:"year_published,omitempty"`

	MinPlayers  int `json:"min_players"`
	MaxPlayers  int `json:"max_players"`
	MinPlayTime int `json:"min_play_time"`
	MaxPlayTime int `json:"max_play_time"`
	PlayingTime int `json:"playing_time"`

	// Versions keeps the game's editions in payload order, unique by id.
	Versions []BoardGameVersion `json:"versions,omitempty"`
}

// NewBaseGame builds a BaseGame from a payload. A version entry without
// an 'id' fails construction with "invalid version data"; a duplicate
// version id is dropped before the entry is parsed, keeping the first
// occurrence. The published year goes through FixUnsignedNegative and
// ends up nil when it does not parse.
func NewBaseGame(p *Payload) (BaseGame, error) {
	var g BaseGame

	if raw, ok := p.Get("yearpublished"); ok {
		if y, err := toInt(raw); err == nil {
			if fixed, known := FixUnsignedNegative(y); known {
				g.YearPublished = &fixed
			}
		}
	}

	seen := make(map[int]struct{})
	for _, entry := range p.GetPayloadList("versions") {
		raw, err := entry.Require("id")
		if err != nil {
			return BaseGame{}, newValidationError("invalid version data", err)
		}
		if id, err := toInt(raw); err == nil {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
		}
		v, err := NewBoardGameVersion(entry)
		if err != nil {
			return BaseGame{}, err
		}
		g.Versions = append(g.Versions, v)
	}

	item, err := NewBaseItem(p)
	if err != nil {
		return BaseGame{}, err
	}
	g.BaseItem = item

	g.MinPlayers = p.GetInt("minplayers")
	g.MaxPlayers = p.GetInt("maxplayers")
	g.MinPlayTime = p.GetInt("minplaytime")
	g.MaxPlayTime = p.GetInt("maxplaytime")
	g.PlayingTime = p.GetInt("playingtime")

	return g, nil
}

// BGGRank returns the game's overall "boardgame" rank read through its
// statistics, or nil when the game is unranked.
func (g *BaseGame) BGGRank() *int {
	return g.Stats.BGGRank
}

// CollectionBoardGame is a board game as it appears in a user's
// collection: a BaseGame with less detail but user-specific state
// attached (ownership flags, play count, personal rating and comment).
type CollectionBoardGame struct {
	BaseGame

	Owned            bool `json:"owned"`
	Preordered       bool `json:"preordered"`
	PrevOwned        bool `json:"prev_owned"`
	Want             bool `json:"want"`
	WantToBuy        bool `json:"want_to_buy"`
	WantToPlay       bool `json:"want_to_play"`
	ForTrade         bool `json:"for_trade"`
	Wishlist         bool `json:"wishlist"`
	WishlistPriority int  `json:"wishlist_priority"`

	NumPlays     int     `json:"num_plays"`
	Rating       float64 `json:"rating"` // the user's own rating, 0 when unrated
	LastModified string  `json:"last_modified"`
	Comment      string  `json:"comment"`
}

// NewCollectionBoardGame builds a CollectionBoardGame from a payload.
// Status flags coerce through int, so "0"/"1" strings and numbers both
// work; anything absent or unparseable is false.
func NewCollectionBoardGame(p *Payload) (*CollectionBoardGame, error) {
	base, err := NewBaseGame(p)
	if err != nil {
		return nil, err
	}

	return &CollectionBoardGame{
		BaseGame:         base,
		Owned:            p.GetBool("own"),
		Preordered:       p.GetBool("preordered"),
		PrevOwned:        p.GetBool("prevowned"),
		Want:             p.GetBool("want"),
		WantToBuy:        p.GetBool("wanttobuy"),
		WantToPlay:       p.GetBool("wanttoplay"),
		ForTrade:         p.GetBool("fortrade"),
		Wishlist:         p.GetBool("wishlist"),
		WishlistPriority: p.GetInt("wishlistpriority"),
		NumPlays:         p.GetInt("numplays"),
		Rating:           p.GetFloat("rating"),
		LastModified:     p.GetString("lastmodified"),
		Comment:          p.GetString("comment"),
	}, nil
}

// Version returns the first version in the game's edition list as the
// singular owned edition, or nil when the list is empty.
func (g *CollectionBoardGame) Version() *BoardGameVersion {
	if len(g.Versions) == 0 {
		return nil
	}
	return &g.Versions[0]
}

// Describe writes a fixed-order summary of the collection entry to log.
func (g *CollectionBoardGame) Describe(log *slog.Logger) {
	log.Info("collection boardgame",
		slog.Int("id", g.ID),
		slog.String("name", g.Name),
		slog.Int("numplays", g.NumPlays),
		slog.String("last_modified", g.LastModified),
		slog.Float64("rating", g.Rating),
		slog.Bool("own", g.Owned),
		slog.Bool("preordered", g.Preordered),
		slog.Bool("prev_owned", g.PrevOwned),
		slog.Bool("want", g.Want),
		slog.Bool("want_to_buy", g.WantToBuy),
		slog.Bool("want_to_play", g.WantToPlay),
		slog.Bool("wishlist", g.Wishlist),
		slog.Int("wishlist_priority", g.WishlistPriority),
		slog.Bool("for_trade", g.ForTrade),
		slog.String("comment", g.Comment))
	for _, v := range g.Versions {
		v.Describe(log)
	}
}

// PlayerSuggestion is the community vote tally for playing a game at one
// specific player count. PlayerCount keeps the raw label, which may be
// open-ended ("6+").
type PlayerSuggestion struct {
	PlayerCount    string `json:"player_count"`
	Best           int    `json:"best"`
	Recommended    int    `json:"recommended"`
	NotRecommended int    `json:"not_recommended"`
}

// NumericPlayerCount converts the label to its numeric lower bound, "6+"
// meaning 7 or more.
func (s PlayerSuggestion) NumericPlayerCount() (int, error) {
	return NumericPlayerCount(s.PlayerCount)
}

// BoardGame is a fully detailed board game from the thing endpoint: a
// BaseGame with the FullItem sub-collections plus taxonomy lists, player
// suggestions and credits.
type BoardGame struct {
	BaseGame
	FullItem

	AlternateNames []string `json:"alternate_names,omitempty"`
	Description    string   `json:"description"`

	Categories      []string `json:"categories,omitempty"`
	Families        []string `json:"families,omitempty"`
	Mechanics       []string `json:"mechanics,omitempty"`
	Implementations []string `json:"implementations,omitempty"`
	Designers       []string `json:"designers,omitempty"`
	Artists         []string `json:"artists,omitempty"`
	Publishers      []string `json:"publishers,omitempty"`

	Expansion bool `json:"expansion"` // this item is itself an expansion
	Accessory bool `json:"accessory"`
	MinAge    int  `json:"min_age"`

	// PlayerSuggestions is derived from the nested suggested_players
	// results mapping, one entry per player-count label in payload order.
	PlayerSuggestions []PlayerSuggestion `json:"player_suggestions,omitempty"`
}

// NewBoardGame builds a BoardGame from a payload: player suggestions are
// derived first, then the BaseGame core (identity, stats, versions), then
// the FullItem sub-collections.
func NewBoardGame(p *Payload) (*BoardGame, error) {
	var suggestions []PlayerSuggestion
	if sp := p.GetPayload("suggested_players"); sp != nil {
		if results := sp.GetPayload("results"); results != nil {
			for _, label := range results.Keys() {
				entry := results.GetPayload(label)
				if entry == nil {
					continue
				}
				suggestions = append(suggestions, PlayerSuggestion{
					PlayerCount:    label,
					Best:           entry.GetInt("best_rating"),
					Recommended:    entry.GetInt("recommended_rating"),
					NotRecommended: entry.GetInt("not_recommended_rating"),
				})
			}
		}
	}

	base, err := NewBaseGame(p)
	if err != nil {
		return nil, err
	}
	full, err := newFullItem(p)
	if err != nil {
		return nil, err
	}

	return &BoardGame{
		BaseGame:          base,
		FullItem:          full,
		AlternateNames:    p.GetStringList("alternative_names"),
		Description:       decodeHTML(p.GetString("description")),
		Categories:        p.GetStringList("categories"),
		Families:          p.GetStringList("families"),
		Mechanics:         p.GetStringList("mechanics"),
		Implementations:   p.GetStringList("implementations"),
		Designers:         p.GetStringList("designers"),
		Artists:           p.GetStringList("artists"),
		Publishers:        p.GetStringList("publishers"),
		Expansion:         p.GetBool("expansion"),
		Accessory:         p.GetBool("accessory"),
		MinAge:            p.GetInt("minage"),
		PlayerSuggestions: suggestions,
	}, nil
}

// Describe writes a fixed-order summary of the game to log, including its
// sub-collections.
func (g *BoardGame) Describe(log *slog.Logger) {
	attrs := []any{
		slog.Int("id", g.ID),
		slog.String("name", g.Name),
		slog.Int("min_players", g.MinPlayers),
		slog.Int("max_players", g.MaxPlayers),
		slog.Int("playing_time", g.PlayingTime),
		slog.Int("min_age", g.MinAge),
		slog.Bool("expansion", g.Expansion),
		slog.Bool("accessory", g.Accessory),
		slog.Int("users_rated", g.Stats.UsersRated),
		slog.Float64("rating_average", g.Stats.Average),
	}
	if g.YearPublished != nil {
		attrs = append(attrs, slog.Int("year", *g.YearPublished))
	}
	if rank := g.BGGRank(); rank != nil {
		attrs = append(attrs, slog.Int("bgg_rank", *rank))
	}
	log.Info("boardgame", attrs...)

	for _, name := range g.AlternateNames {
		log.Info("alternate name", slog.String("name", name))
	}
	for _, t := range g.Expansions {
		log.Info("expansion", slog.Int("id", t.ID), slog.String("name", t.Name))
	}
	for _, t := range g.Expands {
		log.Info("expands", slog.Int("id", t.ID), slog.String("name", t.Name))
	}
	for _, s := range g.PlayerSuggestions {
		log.Info("player suggestion",
			slog.String("players", s.PlayerCount),
			slog.Int("best", s.Best),
			slog.Int("recommended", s.Recommended),
			slog.Int("not_recommended", s.NotRecommended))
	}
	for _, v := range g.Videos {
		v.Describe(log)
	}
	for _, v := range g.Versions {
		v.Describe(log)
	}
	for _, c := range g.Comments {
		c.Describe(log)
	}
}
