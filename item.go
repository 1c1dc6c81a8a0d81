package boardgamegeek

// BaseItem is an identified entity that carries parsed statistics and
// optionally normalized thumbnail/image URLs. Anything served by the
// thing or collection endpoints with stats enabled is at least a
// BaseItem. The 'stats' sub-payload is required.
type BaseItem struct {
	Thing
	Stats     Statistics `json:"stats"`
	Thumbnail string     `json:"thumbnail,omitempty"`
	Image     string     `json:"image,omitempty"`
}

// NewBaseItem builds a BaseItem from a payload. Construction fails with a
// ValidationError when the 'stats' sub-payload is absent, then validates
// identity like NewThing.
func NewBaseItem(p *Payload) (BaseItem, error) {
	if !p.Has("stats") {
		return BaseItem{}, newValidationError("'stats' missing in item data", nil)
	}

	thing, err := NewThing(p)
	if err != nil {
		return BaseItem{}, err
	}

	item := BaseItem{
		Thing: thing,
		Stats: NewStatistics(p.GetPayload("stats")),
	}
	if u := p.GetString("thumbnail"); u != "" {
		item.Thumbnail = FixURL(u)
	}
	if u := p.GetString("image"); u != "" {
		item.Image = FixURL(u)
	}

	return item, nil
}

// FullItem is the capability composed into entity types that own related
// sub-collections: comments, expansions, expanded parent games and
// videos. The three id-keyed sequences never contain two entries with
// the same id; the first occurrence in payload order wins and later
// duplicates are dropped silently. Comments are appended unconditionally.
//
// FullItem is not synchronized. The intended usage is single-writer,
// many-reader per entity instance; callers that mutate concurrently must
// provide their own locking.
type FullItem struct {
	Comments   []Comment `json:"comments,omitempty"`
	Expansions []Thing   `json:"expansions,omitempty"`
	Expands    []Thing   `json:"expands,omitempty"`
	Videos     []Video   `json:"videos,omitempty"`

	expansionIDs map[int]struct{}
	expandsIDs   map[int]struct{}
	videoIDs     map[int]struct{}
}

// newFullItem builds the sub-collections from a payload. An expansion,
// expanded-game or video entry without an 'id' is a hard construction
// failure; a duplicate id is skipped before the entry is even parsed.
func newFullItem(p *Payload) (FullItem, error) {
	var f FullItem

	for _, entry := range p.GetPayloadList("comments") {
		f.AddComment(NewComment(entry))
	}

	for _, entry := range p.GetPayloadList("expansions") {
		raw, err := entry.Require("id")
		if err != nil {
			return FullItem{}, newValidationError("invalid expansion data", err)
		}
		if f.seenID(f.expansionIDs, raw) {
			continue
		}
		t, err := NewThing(entry)
		if err != nil {
			return FullItem{}, err
		}
		f.AddExpansion(t)
	}

	for _, entry := range p.GetPayloadList("expands") {
		raw, err := entry.Require("id")
		if err != nil {
			return FullItem{}, newValidationError("invalid expanded game data", err)
		}
		if f.seenID(f.expandsIDs, raw) {
			continue
		}
		t, err := NewThing(entry)
		if err != nil {
			return FullItem{}, err
		}
		f.AddExpandedGame(t)
	}

	for _, entry := range p.GetPayloadList("videos") {
		raw, err := entry.Require("id")
		if err != nil {
			return FullItem{}, newValidationError("invalid video data", err)
		}
		if f.seenID(f.videoIDs, raw) {
			continue
		}
		v, err := NewVideo(entry)
		if err != nil {
			return FullItem{}, err
		}
		f.addVideo(v)
	}

	return f, nil
}

// seenID reports whether the raw id value is already in the identity set.
// Values that do not coerce to an int are never "seen"; the entity
// constructor reports them properly.
func (f *FullItem) seenID(set map[int]struct{}, raw any) bool {
	id, err := toInt(raw)
	if err != nil {
		return false
	}
	_, ok := set[id]
	return ok
}

// AddComment appends a comment. Comments are never de-duplicated, so this
// always grows the sequence. Used when merging additional comment pages
// into an already constructed item.
func (f *FullItem) AddComment(c Comment) {
	f.Comments = append(f.Comments, c)
}

// AddExpansion appends an expansion unless its id is already present.
// It reports whether the expansion was added, making repeated calls with
// the same id idempotent.
func (f *FullItem) AddExpansion(t Thing) bool {
	if f.expansionIDs == nil {
		f.expansionIDs = make(map[int]struct{})
	}
	if _, seen := f.expansionIDs[t.ID]; seen {
		return false
	}
	f.expansionIDs[t.ID] = struct{}{}
	f.Expansions = append(f.Expansions, t)
	return true
}

// AddExpandedGame appends a game this item expands unless its id is
// already present. It reports whether the entry was added.
func (f *FullItem) AddExpandedGame(t Thing) bool {
	if f.expandsIDs == nil {
		f.expandsIDs = make(map[int]struct{})
	}
	if _, seen := f.expandsIDs[t.ID]; seen {
		return false
	}
	f.expandsIDs[t.ID] = struct{}{}
	f.Expands = append(f.Expands, t)
	return true
}

// addVideo appends a video unless its id is already present. Videos are
// only collected at construction time; there is no public mutator.
func (f *FullItem) addVideo(v Video) bool {
	if f.videoIDs == nil {
		f.videoIDs = make(map[int]struct{})
	}
	if _, seen := f.videoIDs[v.ID]; seen {
		return false
	}
	f.videoIDs[v.ID] = struct{}{}
	f.Videos = append(f.Videos, v)
	return true
}
