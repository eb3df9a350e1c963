package diag

import (
	"fmt"
	"runtime"

	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// Category classifies why a Msg was raised.
type Category int

const (
	CategoryDeprecated Category = iota
	CategoryUnsupported
	CategoryUnimplemented
	CategoryAmbiguous
	CategorySeparatorLocaleUnused
	CategorySeparatorUnknown
	CategoryTagsDuplicateKey
	CategoryInternal
)

func (c Category) String() string {
	switch c {
	case CategoryDeprecated:
		return "deprecated"
	case CategoryUnsupported:
		return "unsupported"
	case CategoryUnimplemented:
		return "unimplemented"
	case CategoryAmbiguous:
		return "ambiguous"
	case CategorySeparatorLocaleUnused:
		return "separator_locale_unused"
	case CategorySeparatorUnknown:
		return "separator_unknown"
	case CategoryTagsDuplicateKey:
		return "tags_duplicate_key"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Location is a captured call-site, set by newMsg for every constructor in
// this file (and re-stamped by the shorthand constructors) so a caller never
// has to remember to stamp it.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

func captureLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "<unknown>", Line: 0}
	}
	return Location{File: file, Line: line}
}

// Msg is a single diagnostic: a warning or an error, depending on context.
// Category plus Subject (DeprecatedTags/SuggestedTags, Description+Tags, or
// InsideLane/OutsideLane for separator diagnostics) describe the cause;
// Location records where it was raised.
type Msg struct {
	Category Category
	Location Location

	Description string
	Tags        *tags.Tags

	DeprecatedTags  *tags.Tags
	SuggestedTags   *tags.Tags

	SeparatorInside  road.Lane
	SeparatorOutside road.Lane

	DuplicateKey *tags.DuplicateKeyError

	InternalMessage string
}

func newMsg(category Category) Msg {
	return Msg{Category: category, Location: captureLocation(3)}
}

// Deprecated reports deprecatedTags as a deprecated tagging scheme, optionally
// suggesting a canonical rewrite.
func Deprecated(deprecatedTags *tags.Tags, suggestedTags *tags.Tags) Msg {
	m := newMsg(CategoryDeprecated)
	m.DeprecatedTags = deprecatedTags
	m.SuggestedTags = suggestedTags
	return m
}

// DeprecatedTag is shorthand for a single deprecated key=value pair.
func DeprecatedTag(key tags.Key, value string) Msg {
	m := Deprecated(tags.FromPair(key, value), nil)
	m.Location = captureLocation(2)
	return m
}

// Unsupported reports a tag combination this implementation explicitly will
// not handle (a closed, known gap, as opposed to Unimplemented).
func Unsupported(description string, t *tags.Tags) Msg {
	m := newMsg(CategoryUnsupported)
	m.Description = description
	m.Tags = t
	return m
}

// UnsupportedTag is shorthand for a single unsupported key=value pair.
func UnsupportedTag(key tags.Key, value string) Msg {
	m := Unsupported("unsupported tag value", tags.FromPair(key, value))
	m.Location = captureLocation(2)
	return m
}

// UnsupportedTags is shorthand for an unsupported combination already
// collected into a Tags subset.
func UnsupportedTags(t *tags.Tags) Msg {
	m := Unsupported("", t)
	m.Location = captureLocation(2)
	return m
}

// UnsupportedStr is shorthand for an unsupported condition with no associated
// tags (an internal precondition, e.g. "no forward lanes for busway").
func UnsupportedStr(description string) Msg {
	m := Unsupported(description, nil)
	m.Location = captureLocation(2)
	return m
}

// Unimplemented reports a tag combination this implementation has not gotten
// around to handling yet, distinct from a deliberate Unsupported gap.
func Unimplemented(description string, t *tags.Tags) Msg {
	m := newMsg(CategoryUnimplemented)
	m.Description = description
	m.Tags = t
	return m
}

// Ambiguous reports tags whose combination has more than one plausible
// reading.
func Ambiguous(description string, t *tags.Tags) Msg {
	m := newMsg(CategoryAmbiguous)
	m.Description = description
	m.Tags = t
	return m
}

// AmbiguousTags is shorthand for an ambiguity over a tag subset with no
// further description.
func AmbiguousTags(t *tags.Tags) Msg {
	m := Ambiguous("", t)
	m.Location = captureLocation(2)
	return m
}

// AmbiguousStr is shorthand for an ambiguity with no associated tags.
func AmbiguousStr(description string) Msg {
	m := Ambiguous(description, nil)
	m.Location = captureLocation(2)
	return m
}

// SeparatorLocaleUnused reports that the locale supplied separator data that
// wasn't applicable between this pair of lanes.
func SeparatorLocaleUnused(inside, outside road.Lane) Msg {
	m := newMsg(CategorySeparatorLocaleUnused)
	m.SeparatorInside = inside
	m.SeparatorOutside = outside
	return m
}

// SeparatorUnknown reports that no separator semantic rule matched the given
// pair of lanes.
func SeparatorUnknown(inside, outside road.Lane) Msg {
	m := newMsg(CategorySeparatorUnknown)
	m.SeparatorInside = inside
	m.SeparatorOutside = outside
	return m
}

// TagsDuplicateKey wraps a *tags.DuplicateKeyError as a diagnostic.
func TagsDuplicateKey(err *tags.DuplicateKeyError) Msg {
	m := newMsg(CategoryTagsDuplicateKey)
	m.DuplicateKey = err
	return m
}

// Internal reports an impossible internal state — always a bug, never a
// reachable consequence of any input.
func Internal(message string) Msg {
	m := newMsg(CategoryInternal)
	m.InternalMessage = message
	return m
}

// String renders the message body (without location) for display/JSON.
func (m Msg) String() string {
	switch m.Category {
	case CategoryDeprecated:
		if m.SuggestedTags != nil && !m.SuggestedTags.IsEmpty() {
			return fmt.Sprintf("deprecated tags %s, suggest %s", tagsOrEmpty(m.DeprecatedTags), tagsOrEmpty(m.SuggestedTags))
		}
		return fmt.Sprintf("deprecated tags %s", tagsOrEmpty(m.DeprecatedTags))
	case CategoryUnsupported:
		return fmt.Sprintf("unsupported: %s %s", m.Description, tagsOrEmpty(m.Tags))
	case CategoryUnimplemented:
		return fmt.Sprintf("unimplemented: %s %s", m.Description, tagsOrEmpty(m.Tags))
	case CategoryAmbiguous:
		return fmt.Sprintf("ambiguous: %s %s", m.Description, tagsOrEmpty(m.Tags))
	case CategorySeparatorLocaleUnused:
		return fmt.Sprintf("separator locale data unused between %v and %v", m.SeparatorInside.Kind, m.SeparatorOutside.Kind)
	case CategorySeparatorUnknown:
		return fmt.Sprintf("no separator rule for %v -> %v", m.SeparatorInside.Kind, m.SeparatorOutside.Kind)
	case CategoryTagsDuplicateKey:
		if m.DuplicateKey != nil {
			return m.DuplicateKey.Error()
		}
		return "duplicate tag key"
	case CategoryInternal:
		return "internal: " + m.InternalMessage
	default:
		return "unknown diagnostic"
	}
}

// Error renders the message with its source location, as every warning/error
// in this package's taxonomy is displayed.
func (m Msg) Error() string {
	return fmt.Sprintf("%s: %s", m.Location, m.String())
}

func tagsOrEmpty(t *tags.Tags) string {
	if t == nil || t.IsEmpty() {
		return "{}"
	}
	return "{" + joinPairs(t) + "}"
}

func joinPairs(t *tags.Tags) string {
	pairs := t.Pairs()
	out := ""
	for i, p := range pairs {
		if i > 0 {
			out += ", "
		}
		out += p[0] + "=" + p[1]
	}
	return out
}
