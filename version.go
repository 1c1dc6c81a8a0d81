package boardgamegeek

import "log/slog"

// BoardGameVersion is one published edition of a game: a print run in a
// given language with its own box dimensions, publisher and product code.
// Identity is required; every other field defaults to its zero value.
type BoardGameVersion struct {
	Thing
	Thumbnail     string  `json:"thumbnail,omitempty"`
	Image         string  `json:"image,omitempty"`
	Publisher     string  `json:"publisher"`
	Artist        string  `json:"artist"`
	ProductCode   string  `json:"product_code"`
	Language      string  `json:"language"`
	Width         float64 `json:"width"`
	Length        float64 `json:"length"`
	Depth         float64 `json:"depth"`
	Weight        float64 `json:"weight"`
	YearPublished int     `json:"year_published"`
}

// NewBoardGameVersion builds a BoardGameVersion from a payload, fixing
// the thumbnail and image URLs like any collectible item.
func NewBoardGameVersion(p *Payload) (BoardGameVersion, error) {
	thing, err := NewThing(p)
	if err != nil {
		return BoardGameVersion{}, err
	}

	v := BoardGameVersion{
		Thing:         thing,
		Publisher:     p.GetString("publisher"),
		Artist:        p.GetString("artist"),
		ProductCode:   p.GetString("product_code"),
		Language:      p.GetString("language"),
		Width:         p.GetFloat("width"),
		Length:        p.GetFloat("length"),
		Depth:         p.GetFloat("depth"),
		Weight:        p.GetFloat("weight"),
		YearPublished: p.GetInt("yearpublished"),
	}
	if u := p.GetString("thumbnail"); u != "" {
		v.Thumbnail = FixURL(u)
	}
	if u := p.GetString("image"); u != "" {
		v.Image = FixURL(u)
	}

	return v, nil
}

// Describe writes a fixed-order summary of the version to log.
func (v BoardGameVersion) Describe(log *slog.Logger) {
	log.Info("version",
		slog.Int("id", v.ID),
		slog.String("name", v.Name),
		slog.String("language", v.Language),
		slog.String("publisher", v.Publisher),
		slog.String("artist", v.Artist),
		slog.String("product_code", v.ProductCode),
		slog.String("size", v.FormatSize()),
		slog.Float64("weight", v.Weight),
		slog.Int("year", v.YearPublished))
}

// FormatSize renders the box dimensions as "W x L x D".
func (v BoardGameVersion) FormatSize() string {
	return formatDimensions(v.Width, v.Length, v.Depth)
}
