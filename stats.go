package boardgamegeek

// Rank is one entry of an item's ranking list, e.g. the overall
// "boardgame" rank or a family rank such as "strategygames". Rank entries
// parse leniently: the API omits fields freely here, so nothing is
// required and Value may be a non-numeric marker like "Not Ranked".
type Rank struct {
	ID           int    `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	FriendlyName string `json:"friendly_name"`
	Value        string `json:"value"`
	BayesAverage string `json:"bayes_average"`
}

// NewRank builds a Rank from a payload. All fields are optional.
func NewRank(p *Payload) Rank {
	return Rank{
		ID:           p.GetInt("id"),
		Type:         p.GetString("type"),
		Name:         p.GetString("name"),
		FriendlyName: p.GetString("friendlyname"),
		Value:        p.GetString("value"),
		BayesAverage: p.GetString("bayesaverage"),
	}
}

// Statistics holds the aggregate rating block of an item together with
// its full ranking list. Scalar fields default to zero when the API
// omits them.
type Statistics struct {
	UsersRated    int     `json:"users_rated"`
	Average       float64 `json:"average"`
	BayesAverage  float64 `json:"bayes_average"`
	StdDev        float64 `json:"std_dev"`
	Median        float64 `json:"median"`
	Owned         int     `json:"owned"`
	Trading       int     `json:"trading"`
	Wanting       int     `json:"wanting"`
	Wishing       int     `json:"wishing"`
	NumComments   int     `json:"num_comments"`
	NumWeights    int     `json:"num_weights"`
	AverageWeight float64 `json:"average_weight"`

	// Ranks keeps every rank entry in payload order, unfiltered.
	Ranks []Rank `json:"ranks,omitempty"`

	// BGGRank is the value of the rank named "boardgame", cached during
	// construction. Nil when that rank is absent or its value does not
	// parse as an integer.
	BGGRank *int `json:"bgg_rank,omitempty"`
}

// NewStatistics builds Statistics from the 'stats' sub-payload of an
// item. This is a single linear pass over the 'ranks' list: every entry
// becomes a Rank regardless of type, and an entry named "boardgame" has
// its value int-parsed into BGGRank. Failures here never raise; they
// leave the affected field at its default.
func NewStatistics(p *Payload) Statistics {
	s := Statistics{
		UsersRated:    p.GetInt("usersrated"),
		Average:       p.GetFloat("average"),
		BayesAverage:  p.GetFloat("bayesaverage"),
		StdDev:        p.GetFloat("stddev"),
		Median:        p.GetFloat("median"),
		Owned:         p.GetInt("owned"),
		Trading:       p.GetInt("trading"),
		Wanting:       p.GetInt("wanting"),
		Wishing:       p.GetInt("wishing"),
		NumComments:   p.GetInt("numcomments"),
		NumWeights:    p.GetInt("numweights"),
		AverageWeight: p.GetFloat("averageweight"),
	}

	for _, entry := range p.GetPayloadList("ranks") {
		rank := NewRank(entry)
		if rank.Name == "boardgame" {
			s.BGGRank = nil
			if raw, ok := entry.Get("value"); ok {
				if v, err := toInt(raw); err == nil {
					s.BGGRank = &v
				}
			}
		}
		s.Ranks = append(s.Ranks, rank)
	}

	return s
}
