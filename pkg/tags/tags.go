package tags

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// DuplicateKeyError is returned when a tag key is inserted twice while
// building a Tags map from pairs that must be unique (as opposed to the
// forgiving JSON path, which silently drops the duplicate — Overpass
// occasionally returns duplicate keys in practice).
type DuplicateKeyError struct {
	Key Key
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate tag key %q", e.Key)
}

// Tags is an ordered mapping from string keys to string values. Keys are
// unique; iteration order is always sorted key order, so that two equal
// Tags values always serialize identically.
type Tags struct {
	index map[Key]string
	order []Key
}

// New returns an empty Tags map.
func New() *Tags {
	return &Tags{index: map[Key]string{}}
}

// FromPairs builds a Tags map from key/value pairs, rejecting duplicate keys.
func FromPairs(pairs [][2]string) (*Tags, error) {
	t := New()
	for _, p := range pairs {
		if err := t.Insert(K(p[0]), p[1]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromPair builds a Tags map from a single key/value pair.
func FromPair(key Key, val string) *Tags {
	t := New()
	_ = t.Insert(key, val)
	return t
}

// Insert adds key=val, returning a *DuplicateKeyError if key is already
// present.
func (t *Tags) Insert(key Key, val string) error {
	if _, ok := t.index[key]; ok {
		return &DuplicateKeyError{Key: key}
	}
	t.set(key, val)
	return nil
}

// set inserts or overwrites key=val without a duplicate check, used by the
// JSON decoder, FromPairsLoose, Subset, SubsetPrefix and Clone.
func (t *Tags) set(key Key, val string) {
	if t.index == nil {
		t.index = map[Key]string{}
	}
	if _, exists := t.index[key]; !exists {
		t.order = append(t.order, key)
	}
	t.index[key] = val
}

// Set is the public, non-duplicate-checked insert: it adds key=val, or
// overwrites the value if key is already present.
func (t *Tags) Set(key Key, val string) {
	t.set(key, val)
}

// Get returns the value for key, and whether it was present.
func (t *Tags) Get(key Key) (string, bool) {
	v, ok := t.index[key]
	return v, ok
}

// Is reports whether key is present and equals val.
func (t *Tags) Is(key Key, val string) bool {
	v, ok := t.Get(key)
	return ok && v == val
}

// IsAny reports whether key is present and its value is one of values.
func (t *Tags) IsAny(key Key, values ...string) bool {
	v, ok := t.Get(key)
	if !ok {
		return false
	}
	for _, want := range values {
		if v == want {
			return true
		}
	}
	return false
}

// Len returns the number of tags.
func (t *Tags) Len() int {
	return len(t.order)
}

// IsEmpty reports whether the map has no tags.
func (t *Tags) IsEmpty() bool {
	return len(t.order) == 0
}

// sortedKeys returns a copy of t.order sorted lexicographically.
func (t *Tags) sortedKeys() []Key {
	keys := make([]Key, len(t.order))
	copy(keys, t.order)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Pairs returns all key/value pairs in sorted key order.
func (t *Tags) Pairs() [][2]string {
	keys := t.sortedKeys()
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{string(k), t.index[k]})
	}
	return out
}

// Subset returns a new Tags containing only the given keys that are present.
func (t *Tags) Subset(keys ...Key) *Tags {
	sub := New()
	for _, k := range keys {
		if v, ok := t.Get(k); ok {
			sub.set(k, v)
		}
	}
	return sub
}

// SubsetPrefix returns a new Tags containing every tag whose key is prefix or
// a colon-delimited child of prefix ("pairs with stem").
func (t *Tags) SubsetPrefix(prefix Key) *Tags {
	sub := New()
	for _, k := range t.order {
		if k.HasPrefix(prefix) {
			sub.set(k, t.index[k])
		}
	}
	return sub
}

// String renders the tags as sorted "k=v\n" lines.
func (t *Tags) String() string {
	var b strings.Builder
	for _, p := range t.Pairs() {
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(p[1])
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseText parses newline-separated "k=v" pairs, rejecting duplicate keys.
func ParseText(text string) (*Tags, error) {
	t := New()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("tags: malformed line %q, expected k=v", line)
		}
		if err := t.Insert(K(k), v); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MarshalJSON renders the tags as a sorted JSON object.
func (t *Tags) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(t.order))
	for _, p := range t.Pairs() {
		m[p[0]] = p[1]
	}
	// goccy/go-json sorts map keys when encoding, matching the sorted
	// serialization contract; encode through an ordered buffer explicitly
	// to avoid relying on that implementation detail.
	var b strings.Builder
	b.WriteByte('{')
	keys := t.sortedKeys()
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m[string(k)])
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// UnmarshalJSON parses a JSON object of string to string. A key repeated in
// the object is not an error: the map decode keeps its last value.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = Tags{}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.set(K(k), m[k])
	}
	return nil
}

// FromJSON parses a JSON object mapping strings to strings.
func FromJSON(data []byte) (*Tags, error) {
	t := New()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// FromJSONLoose parses a JSON object the same way as FromJSON. It exists as a
// distinct entry point because Overpass's own JSON responses occasionally
// duplicate a tag key across multiple "tags" objects for the same way; the Go
// map decode step already collapses those silently, so the loose and strict
// paths only diverge once array-of-pairs input is involved (see
// FromPairsLoose).
func FromJSONLoose(data []byte) (*Tags, error) {
	return FromJSON(data)
}

// FromPairsLoose builds a Tags map from key/value pairs, silently keeping the
// last value seen for a duplicate key instead of erroring.
func FromPairsLoose(pairs [][2]string) *Tags {
	t := New()
	for _, p := range pairs {
		t.set(K(p[0]), p[1])
	}
	return t
}

// Clone returns a deep copy.
func (t *Tags) Clone() *Tags {
	c := New()
	for _, k := range t.order {
		c.set(k, t.index[k])
	}
	return c
}
