package boardgamegeek

import "encoding/xml"

// XML structures for parsing BGG API responses.
// These are internal types used for XML parsing.

// xmlItems is the root element for search results.
type xmlItems struct {
	XMLName xml.Name  `xml:"items"`
	Items   []xmlItem `xml:"item"`
}

// xmlItem represents an item in search results.
type xmlItem struct {
	Type      string      `xml:"type,attr"`
	ID        int         `xml:"id,attr"`
	Name      xmlNameElem `xml:"name"`
	YearValue xmlValue    `xml:"yearpublished"`
}

// xmlNameElem represents a name element with type and value attributes.
type xmlNameElem struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// xmlValue represents an element with a value attribute.
type xmlValue struct {
	Value string `xml:"value,attr"`
}

// xmlIntValue represents an element with an integer value attribute.
type xmlIntValue struct {
	Value int `xml:"value,attr"`
}

// xmlFloatValue represents an element with a float value attribute.
type xmlFloatValue struct {
	Value float64 `xml:"value,attr"`
}

// xmlThing is the root element for thing (item detail) responses.
type xmlThing struct {
	XMLName xml.Name       `xml:"items"`
	Items   []xmlThingItem `xml:"item"`
}

// xmlThingItem represents a detailed item from the thing endpoint.
type xmlThingItem struct {
	Type        string        `xml:"type,attr"`
	ID          int           `xml:"id,attr"`
	Thumbnail   string        `xml:"thumbnail"`
	Image       string        `xml:"image"`
	Names       []xmlNameElem `xml:"name"`
	Description string        `xml:"description"`
	YearValue   xmlValue      `xml:"yearpublished"`
	MinPlayers  xmlIntValue   `xml:"minplayers"`
	MaxPlayers  xmlIntValue   `xml:"maxplayers"`
	PlayingTime xmlIntValue   `xml:"playingtime"`
	MinPlayTime xmlIntValue   `xml:"minplaytime"`
	MaxPlayTime xmlIntValue   `xml:"maxplaytime"`
	MinAge      xmlIntValue   `xml:"minage"`
	Links       []xmlLink     `xml:"link"`
	Polls       []xmlPoll     `xml:"poll"`
	Versions    xmlVersions   `xml:"versions"`
	Videos      xmlVideos     `xml:"videos"`
	Comments    xmlComments   `xml:"comments"`
	Statistics  xmlStatistics `xml:"statistics"`
}

// xmlLink represents a link element (designer, category, mechanic,
// expansion, etc.). Inbound marks an expansion link that points from the
// expansion back to the game it expands.
type xmlLink struct {
	Type    string `xml:"type,attr"`
	ID      int    `xml:"id,attr"`
	Value   string `xml:"value,attr"`
	Inbound bool   `xml:"inbound,attr"`
}

// xmlStatistics contains item statistics.
type xmlStatistics struct {
	Ratings xmlRatings `xml:"ratings"`
}

// xmlRatings contains rating information.
type xmlRatings struct {
	UsersRated    xmlIntValue   `xml:"usersrated"`
	Average       xmlFloatValue `xml:"average"`
	BayesAverage  xmlFloatValue `xml:"bayesaverage"`
	Ranks         xmlRanks      `xml:"ranks"`
	StdDev        xmlFloatValue `xml:"stddev"`
	Median        xmlFloatValue `xml:"median"`
	Owned         xmlIntValue   `xml:"owned"`
	Trading       xmlIntValue   `xml:"trading"`
	Wanting       xmlIntValue   `xml:"wanting"`
	Wishing       xmlIntValue   `xml:"wishing"`
	NumComments   xmlIntValue   `xml:"numcomments"`
	NumWeights    xmlIntValue   `xml:"numweights"`
	AverageWeight xmlFloatValue `xml:"averageweight"`
}

// xmlRanks contains rank information.
type xmlRanks struct {
	Ranks []xmlRank `xml:"rank"`
}

// xmlRank represents a single rank entry. Value stays a string because
// unranked items carry "Not Ranked" instead of a number.
type xmlRank struct {
	Type         string `xml:"type,attr"`
	ID           int    `xml:"id,attr"`
	Name         string `xml:"name,attr"`
	FriendlyName string `xml:"friendlyname,attr"`
	Value        string `xml:"value,attr"`
	BayesAverage string `xml:"bayesaverage,attr"`
}

// xmlPoll represents a poll element.
type xmlPoll struct {
	Name       string           `xml:"name,attr"`
	Title      string           `xml:"title,attr"`
	TotalVotes int              `xml:"totalvotes,attr"`
	Results    []xmlPollResults `xml:"results"`
}

// xmlPollResults represents results for a specific option (e.g. player count).
type xmlPollResults struct {
	NumPlayers string          `xml:"numplayers,attr"`
	Results    []xmlPollResult `xml:"result"`
}

// xmlPollResult represents a single result entry in a poll.
type xmlPollResult struct {
	Value    string `xml:"value,attr"`
	NumVotes int    `xml:"numvotes,attr"`
}

// xmlVersions wraps the version list of a thing response.
type xmlVersions struct {
	Items []xmlVersionItem `xml:"item"`
}

// xmlVersionItem represents one published edition of an item. Numeric
// fields stay strings; the payload layer coerces them.
type xmlVersionItem struct {
	Type        string        `xml:"type,attr"`
	ID          int           `xml:"id,attr"`
	Thumbnail   string        `xml:"thumbnail"`
	Image       string        `xml:"image"`
	Names       []xmlNameElem `xml:"name"`
	YearValue   xmlValue      `xml:"yearpublished"`
	ProductCode xmlValue      `xml:"productcode"`
	Width       xmlValue      `xml:"width"`
	Length      xmlValue      `xml:"length"`
	Depth       xmlValue      `xml:"depth"`
	Weight      xmlValue      `xml:"weight"`
	Links       []xmlLink     `xml:"link"`
}

// xmlVideos wraps the video list of a thing response.
type xmlVideos struct {
	Total  int        `xml:"total,attr"`
	Videos []xmlVideo `xml:"video"`
}

// xmlVideo represents one attached video; everything rides on attributes.
type xmlVideo struct {
	ID       int    `xml:"id,attr"`
	Title    string `xml:"title,attr"`
	Category string `xml:"category,attr"`
	Language string `xml:"language,attr"`
	Link     string `xml:"link,attr"`
	Username string `xml:"username,attr"`
	UserID   string `xml:"userid,attr"`
	PostDate string `xml:"postdate,attr"`
}

// xmlComments wraps one page of the comment list of a thing response.
type xmlComments struct {
	Page       int          `xml:"page,attr"`
	TotalItems int          `xml:"totalitems,attr"`
	Comments   []xmlComment `xml:"comment"`
}

// xmlComment represents a single user comment.
type xmlComment struct {
	Username string `xml:"username,attr"`
	Rating   string `xml:"rating,attr"`
	Value    string `xml:"value,attr"`
}

// xmlHot is the root element for hot list responses.
type xmlHot struct {
	XMLName xml.Name     `xml:"items"`
	Items   []xmlHotItem `xml:"item"`
}

// xmlHotItem represents an item in the hot list.
type xmlHotItem struct {
	ID        int      `xml:"id,attr"`
	Rank      int      `xml:"rank,attr"`
	Thumbnail xmlValue `xml:"thumbnail"`
	Name      xmlValue `xml:"name"`
	YearValue xmlValue `xml:"yearpublished"`
}

// xmlCollection is the root element for collection responses.
type xmlCollection struct {
	XMLName    xml.Name            `xml:"items"`
	TotalItems int                 `xml:"totalitems,attr"`
	Items      []xmlCollectionItem `xml:"item"`
}

// xmlCollectionItem represents an item in a user's collection.
type xmlCollectionItem struct {
	ObjectType string               `xml:"objecttype,attr"`
	ObjectID   int                  `xml:"objectid,attr"`
	Subtype    string               `xml:"subtype,attr"`
	CollID     int                  `xml:"collid,attr"`
	Name       xmlCollectionName    `xml:"name"`
	YearValue  string               `xml:"yearpublished"`
	Image      string               `xml:"image"`
	Thumbnail  string               `xml:"thumbnail"`
	Stats      xmlCollectionStats   `xml:"stats"`
	Status     xmlCollectionStatus  `xml:"status"`
	NumPlays   int                  `xml:"numplays"`
	Comment    string               `xml:"comment"`
	Version    xmlCollectionVersion `xml:"version"`
}

// xmlCollectionName represents the name element in collection.
type xmlCollectionName struct {
	SortIndex int    `xml:"sortindex,attr"`
	Value     string `xml:",chardata"`
}

// xmlCollectionStatus represents the status flags in collection. Flags
// stay strings ("0"/"1"); wishlistpriority is only present while the
// item is wishlisted.
type xmlCollectionStatus struct {
	Own              string `xml:"own,attr"`
	PrevOwned        string `xml:"prevowned,attr"`
	ForTrade         string `xml:"fortrade,attr"`
	Want             string `xml:"want,attr"`
	WantToPlay       string `xml:"wanttoplay,attr"`
	WantToBuy        string `xml:"wanttobuy,attr"`
	Wishlist         string `xml:"wishlist,attr"`
	WishlistPriority string `xml:"wishlistpriority,attr"`
	Preordered       string `xml:"preordered,attr"`
	LastModified     string `xml:"lastmodified,attr"`
}

// xmlCollectionStats contains collection item statistics.
type xmlCollectionStats struct {
	MinPlayers  int                 `xml:"minplayers,attr"`
	MaxPlayers  int                 `xml:"maxplayers,attr"`
	MinPlayTime int                 `xml:"minplaytime,attr"`
	MaxPlayTime int                 `xml:"maxplaytime,attr"`
	PlayingTime int                 `xml:"playingtime,attr"`
	NumOwned    int                 `xml:"numowned,attr"`
	Rating      xmlCollectionRating `xml:"rating"`
}

// xmlCollectionRating contains rating info for collection items. The
// value attribute is the collection owner's own rating ("N/A" when
// unrated).
type xmlCollectionRating struct {
	Value        string        `xml:"value,attr"`
	UsersRated   xmlIntValue   `xml:"usersrated"`
	Average      xmlFloatValue `xml:"average"`
	BayesAverage xmlFloatValue `xml:"bayesaverage"`
	StdDev       xmlFloatValue `xml:"stddev"`
	Median       xmlFloatValue `xml:"median"`
	Ranks        xmlRanks      `xml:"ranks"`
}

// xmlCollectionVersion wraps the version block of a collection item.
type xmlCollectionVersion struct {
	Items []xmlVersionItem `xml:"item"`
}
