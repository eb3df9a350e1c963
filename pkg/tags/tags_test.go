package tags

import (
	"reflect"
	"testing"
)

func TestKeyAlgebraAssociative(t *testing.T) {
	a, b, c := K("a"), K("b"), K("c")
	left := a.Plus(b).Plus(c)
	right := a.Plus(b.Plus(c))
	if left != right {
		t.Fatalf("key algebra not associative: %q != %q", left, right)
	}
	if left != "a:b:c" {
		t.Fatalf("got %q, want a:b:c", left)
	}
}

func TestInsertDuplicateKey(t *testing.T) {
	tg := New()
	if err := tg.Insert(K("highway"), "residential"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := tg.Insert(K("highway"), "primary")
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
	var dup *DuplicateKeyError
	if !asDuplicate(err, &dup) {
		t.Fatalf("expected *DuplicateKeyError, got %T", err)
	}
	if dup.Key != K("highway") {
		t.Fatalf("unexpected offending key %q", dup.Key)
	}
}

func asDuplicate(err error, target **DuplicateKeyError) bool {
	d, ok := err.(*DuplicateKeyError)
	if ok {
		*target = d
	}
	return ok
}

func TestStringIsSortedByKey(t *testing.T) {
	tg := New()
	_ = tg.Insert(K("highway"), "residential")
	_ = tg.Insert(K("access"), "yes")
	_ = tg.Insert(K("lanes"), "2")
	got := tg.String()
	want := "access=yes\nhighway=residential\nlanes=2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFromPairsRejectsDuplicates(t *testing.T) {
	_, err := FromPairs([][2]string{{"a", "1"}, {"a", "2"}})
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestParseTextRoundTrip(t *testing.T) {
	text := "highway=residential\nlanes=2\n"
	tg, err := ParseText(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tg.String() != text {
		t.Fatalf("got %q, want %q", tg.String(), text)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tg := New()
	_ = tg.Insert(K("highway"), "residential")
	_ = tg.Insert(K("lanes"), "2")
	data, err := tg.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got.Pairs(), tg.Pairs()) {
		t.Fatalf("round trip mismatch: %v != %v", got.Pairs(), tg.Pairs())
	}
}

func TestSubsetPrefix(t *testing.T) {
	tg := New()
	_ = tg.Insert(K("cycleway:left"), "lane")
	_ = tg.Insert(K("cycleway:left:oneway"), "no")
	_ = tg.Insert(K("cycleway:right"), "track")
	sub := tg.SubsetPrefix(K("cycleway:left"))
	if sub.Len() != 2 {
		t.Fatalf("expected 2 pairs, got %d: %v", sub.Len(), sub.Pairs())
	}
}

func TestDuplicateKeyInJSONLooseDropsOne(t *testing.T) {
	// Go's map-based JSON decoding naturally collapses duplicate object keys
	// to the last value; this documents that behavior for the loose path.
	tg, err := FromJSONLoose([]byte(`{"highway":"residential","highway":"primary"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := tg.Get(K("highway"))
	if !ok || v != "primary" {
		t.Fatalf("got (%q, %v), want (primary, true)", v, ok)
	}
}
