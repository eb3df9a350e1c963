// Package tags provides the ordered string-to-string tag map used throughout
// the transformation pipeline, along with the colon-joining key algebra OSM
// tag schemes are built from.
package tags

import "strings"

// Key is a typed OSM tag key. Keys compose with Plus to build hierarchical
// keys: K("cycleway").Plus(K("left")).Plus(K("oneway")) == K("cycleway:left:oneway").
type Key string

// K is shorthand for converting a plain string into a Key.
func K(s string) Key {
	return Key(s)
}

// Plus joins two keys with a colon, the OSM convention for hierarchical tags.
func (k Key) Plus(other Key) Key {
	return Key(string(k) + ":" + string(other))
}

// PlusStr is Plus taking a raw string, for call sites composing against a
// literal suffix.
func (k Key) PlusStr(suffix string) Key {
	return Key(string(k) + ":" + suffix)
}

// String returns the borrowed string form for map lookups and display.
func (k Key) String() string {
	return string(k)
}

// HasPrefix reports whether k is equal to prefix or a colon-delimited child
// of it, i.e. "cycleway:left:oneway".HasPrefix("cycleway") is true.
func (k Key) HasPrefix(prefix Key) bool {
	s, p := string(k), string(prefix)
	if s == p {
		return true
	}
	return strings.HasPrefix(s, p+":")
}
