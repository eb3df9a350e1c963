package diag

import (
	"strings"
	"testing"

	"github.com/azybler/osm2lanes/pkg/tags"
)

func TestDeprecatedTagCapturesLocation(t *testing.T) {
	m := DeprecatedTag(tags.K("cycleway"), "opposite_lane")
	if m.Location.File == "" || m.Location.Line == 0 {
		t.Fatalf("expected a captured location, got %+v", m.Location)
	}
	if !strings.Contains(m.Location.File, ".go") {
		t.Fatalf("expected a .go source file in location, got %s", m.Location.File)
	}
}

func TestUnsupportedStringIncludesDescription(t *testing.T) {
	m := UnsupportedStr("busway + lanes:bus both active")
	if !strings.Contains(m.String(), "busway + lanes:bus both active") {
		t.Fatalf("got %q", m.String())
	}
}

func TestErrWarningsReportsCount(t *testing.T) {
	w := NewWarnings()
	w.Push(AmbiguousStr("ambiguous oneway"))
	w.Push(UnsupportedStr("unsupported tag"))
	err := ErrWarnings(w)
	if !strings.Contains(err.Error(), "2 warning") {
		t.Fatalf("got %q", err.Error())
	}
}

func TestErrMsgWrapsSingleMessage(t *testing.T) {
	err := ErrMsg(Internal("impossible state"))
	if !strings.Contains(err.Error(), "impossible state") {
		t.Fatalf("got %q", err.Error())
	}
}
