package boardgamegeek

import (
	"fmt"
	"strconv"
	"strings"
)

// FixURL normalizes image and link URLs returned by the API. The API
// serves scheme-relative URLs ("//cf.geekdo-images.com/...") and
// occasionally site-relative paths; both become absolute https URLs.
// Already absolute URLs pass through unchanged.
func FixURL(u string) string {
	switch {
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return "https://boardgamegeek.com" + u
	default:
		return u
	}
}

// FixUnsignedNegative corrects unsigned fields the API serializes as a
// negative sentinel for "unknown". Any negative value is treated as the
// sentinel and reported absent; non-negative values pass through.
func FixUnsignedNegative(v int) (int, bool) {
	if v < 0 {
		return 0, false
	}
	return v, true
}

// NumericPlayerCount converts a player-count label to its numeric lower
// bound. A trailing "+" means "this many or more" and parses as count+1:
// "3" gives 3, "6+" gives 7.
func NumericPlayerCount(label string) (int, error) {
	raw, open := strings.CutSuffix(label, "+")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newValidationError(fmt.Sprintf("invalid player count %q", label), err)
	}
	if open {
		n++
	}
	return n, nil
}
