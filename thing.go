package boardgamegeek

import (
	"fmt"
	"log/slog"
)

// Thing is the smallest identified entity of the API: anything with an
// integer id and a display name (games, expansions, accessories, videos,
// versions all start as a Thing). Both fields are required.
type Thing struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewThing builds a Thing from a payload. Construction fails with a
// ValidationError when 'id' or 'name' is absent or when 'id' does not
// parse as an integer.
func NewThing(p *Payload) (Thing, error) {
	for _, field := range []string{"id", "name"} {
		if !p.Has(field) {
			return Thing{}, newValidationError(fmt.Sprintf("missing '%s' in thing data", field), nil)
		}
	}

	raw, _ := p.Get("id")
	id, err := toInt(raw)
	if err != nil {
		return Thing{}, newValidationError(fmt.Sprintf("id (%v) is not an int", raw), err)
	}

	return Thing{ID: id, Name: p.GetString("name")}, nil
}

// Comment is a user comment on an item. Comments carry no identity and
// are never de-duplicated.
type Comment struct {
	Username string `json:"username"`
	Rating   string `json:"rating"` // raw rating, e.g. "8" or "N/A"
	Text     string `json:"text"`
}

// NewComment builds a Comment from a payload. Every field is optional;
// absent fields default to the empty string.
func NewComment(p *Payload) Comment {
	return Comment{
		Username: p.GetString("username"),
		Rating:   p.GetString("rating"),
		Text:     p.GetString("comment"),
	}
}

// Describe writes a one-line summary of the comment to log.
func (c Comment) Describe(log *slog.Logger) {
	log.Info("comment",
		slog.String("username", c.Username),
		slog.String("rating", c.Rating),
		slog.String("text", c.Text))
}
