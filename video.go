package boardgamegeek

import (
	"log/slog"
	"time"
)

// postDateLayout matches the API's video timestamp after its numeric zone
// suffix has been dropped, e.g. "2020-05-01T10:00:00-0400" without the
// trailing "-0400".
const postDateLayout = "2006-01-02T15:04:05"

// Video is a user-submitted video attached to an item (review, playthrough,
// instructional). Identity is required; everything else is best effort.
type Video struct {
	Thing
	Category   string `json:"category"`
	Link       string `json:"link"`
	Language   string `json:"language"`
	Uploader   string `json:"uploader"`
	UploaderID int    `json:"uploader_id"`

	// PostDate is the upload timestamp. The zero time means the raw value
	// was absent or did not parse; that is never a construction error.
	PostDate time.Time `json:"post_date"`
}

// NewVideo builds a Video from a payload. Identity validation is the only
// hard failure: the uploader id coerces to 0 and the post date to the
// zero time when malformed.
func NewVideo(p *Payload) (Video, error) {
	thing, err := NewThing(p)
	if err != nil {
		return Video{}, err
	}

	v := Video{
		Thing:    thing,
		Category: p.GetString("category"),
		Link:     p.GetString("link"),
		Language: p.GetString("language"),
		Uploader: p.GetString("uploader"),
	}

	if raw, ok := p.Get("uploader_id"); ok {
		if id, err := toInt(raw); err == nil {
			v.UploaderID = id
		}
	}

	// The raw value carries a numeric zone suffix ("-0400"); drop the
	// last five characters and parse what remains.
	if raw := p.GetString("post_date"); len(raw) > 5 {
		if t, err := time.Parse(postDateLayout, raw[:len(raw)-5]); err == nil {
			v.PostDate = t
		}
	}

	return v, nil
}

// Describe writes a fixed-order summary of the video to log.
func (v Video) Describe(log *slog.Logger) {
	attrs := []any{
		slog.Int("id", v.ID),
		slog.String("name", v.Name),
		slog.String("category", v.Category),
		slog.String("language", v.Language),
		slog.String("link", v.Link),
		slog.String("uploader", v.Uploader),
		slog.Int("uploader_id", v.UploaderID),
	}
	if !v.PostDate.IsZero() {
		attrs = append(attrs, slog.Time("post_date", v.PostDate))
	}
	log.Info("video", attrs...)
}
