package boardgamegeek

import "fmt"

// Payload is an ordered key/value snapshot of a decoded API response, the
// raw form every entity constructor reads from. Values are strings, ints,
// floats, bools, nested *Payload or []any sequences of those. Keys keep
// insertion order, which mirrors document order of the source XML.
//
// A Payload is read-only once it has been handed to a constructor; the
// entity mutators update parsed state only and never write back into it.
type Payload struct {
	keys   []string
	values map[string]any
}

// NewPayload creates an empty payload.
func NewPayload() *Payload {
	return &Payload{values: make(map[string]any)}
}

// Set stores a value under key, appending the key in insertion order on
// first use. It returns the payload so literals can be built by chaining.
func (p *Payload) Set(key string, value any) *Payload {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Len returns the number of keys.
func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Payload) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Has reports whether key is present.
func (p *Payload) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[key]
	return ok
}

// Get returns the raw value for key.
func (p *Payload) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Require returns the raw value for key and fails with a validation error
// when the key is absent. Constructors use this for required fields; all
// optional reads go through the zero-default getters below instead.
func (p *Payload) Require(key string) (any, error) {
	v, ok := p.Get(key)
	if !ok {
		return nil, newValidationError(fmt.Sprintf("missing '%s'", key), nil)
	}
	return v, nil
}

// GetString returns the value for key as a string, or "" when the key is
// absent or not representable as a string.
func (p *Payload) GetString(key string) string {
	v, ok := p.Get(key)
	if !ok {
		return ""
	}
	return toString(v)
}

// GetInt returns the value for key as an int, or 0 when the key is absent
// or the value does not coerce.
func (p *Payload) GetInt(key string) int {
	v, ok := p.Get(key)
	if !ok {
		return 0
	}
	n, err := toInt(v)
	if err != nil {
		return 0
	}
	return n
}

// GetFloat returns the value for key as a float64, or 0 when the key is
// absent or the value does not coerce.
func (p *Payload) GetFloat(key string) float64 {
	v, ok := p.Get(key)
	if !ok {
		return 0
	}
	f, err := toFloat(v)
	if err != nil {
		return 0
	}
	return f
}

// GetBool returns the value for key as a bool. Numeric values and numeric
// strings count as true when non-zero. Absent or unparseable values are
// false.
func (p *Payload) GetBool(key string) bool {
	v, ok := p.Get(key)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	default:
		n, err := toInt(v)
		if err != nil {
			return false
		}
		return n != 0
	}
}

// GetPayload returns the nested payload under key, or nil.
func (p *Payload) GetPayload(key string) *Payload {
	v, ok := p.Get(key)
	if !ok {
		return nil
	}
	nested, ok := v.(*Payload)
	if !ok {
		return nil
	}
	return nested
}

// GetList returns the sequence under key, or nil.
func (p *Payload) GetList(key string) []any {
	v, ok := p.Get(key)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	return list
}

// GetStringList returns the sequence under key with every element coerced
// to a string. Elements that do not coerce are dropped.
func (p *Payload) GetStringList(key string) []string {
	list := p.GetList(key)
	if list == nil {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s := toString(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// GetPayloadList returns the sequence under key keeping only the nested
// payload elements. Used for sub-entity lists (versions, videos, ranks).
func (p *Payload) GetPayloadList(key string) []*Payload {
	list := p.GetList(key)
	if list == nil {
		return nil
	}
	out := make([]*Payload, 0, len(list))
	for _, v := range list {
		if nested, ok := v.(*Payload); ok {
			out = append(out, nested)
		}
	}
	return out
}
