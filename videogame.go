package boardgamegeek

// VideoGame is a video game from the thing endpoint: a collectible item
// with the FullItem sub-collections and the list of platforms it was
// released on.
type VideoGame struct {
	BaseItem
	FullItem

	Platforms []string `json:"platforms,omitempty"`
}

// NewVideoGame builds a VideoGame from a payload.
func NewVideoGame(p *Payload) (*VideoGame, error) {
	base, err := NewBaseItem(p)
	if err != nil {
		return nil, err
	}
	full, err := newFullItem(p)
	if err != nil {
		return nil, err
	}

	return &VideoGame{
		BaseItem:  base,
		FullItem:  full,
		Platforms: p.GetStringList("platforms"),
	}, nil
}
