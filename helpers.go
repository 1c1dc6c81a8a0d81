package boardgamegeek

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"strconv"
	"strings"
)

// toJSON marshals a value to indented JSON string.
func toJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", newParseError("failed to marshal to JSON", err)
	}
	return string(data), nil
}

// decodeHTML decodes HTML entities and replaces &#10; with newlines.
func decodeHTML(s string) string {
	decoded := html.UnescapeString(s)
	decoded = strings.ReplaceAll(decoded, "&#10;", "\n")
	return decoded
}

// parseXML unmarshals XML data into a value of type T.
func parseXML[T any](body []byte, errMsg string) (*T, error) {
	var result T
	if err := xml.Unmarshal(body, &result); err != nil {
		return nil, newParseError(errMsg, err)
	}
	return &result, nil
}

// toInt coerces a payload value to an int. Strings are parsed in base 10,
// floats are truncated, bools count as 0 or 1.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, err
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

// toFloat coerces a payload value to a float64.
func toFloat(v any) (float64, error) {
	switch f := v.(type) {
	case float64:
		return f, nil
	case int:
		return float64(f), nil
	case int64:
		return float64(f), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return 0, err
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}

// formatDimensions renders box dimensions as "W x L x D".
func formatDimensions(w, l, d float64) string {
	return fmt.Sprintf("%g x %g x %g", w, l, d)
}

// toString coerces a payload value to a string. Non-scalar values give "".
func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	default:
		return ""
	}
}
