package schemes

import (
	"testing"

	"github.com/azybler/osm2lanes/pkg/tags"
)

func TestParseHighwayConstruction(t *testing.T) {
	tg := tags.New()
	_ = tg.Insert(tags.Highway, "construction")
	_ = tg.Insert(tags.Construction, "residential")
	hw, ok, err := ParseHighway(tg)
	if err != nil || !ok {
		t.Fatalf("unexpected: ok=%v err=%v", ok, err)
	}
	if hw.Lifecycle != Construction || hw.Type.Kind != KindResidential {
		t.Fatalf("got %+v", hw)
	}
}

func TestParseHighwayProposed(t *testing.T) {
	tg := tags.New()
	_ = tg.Insert(tags.Highway, "proposed")
	_ = tg.Insert(tags.Proposed, "primary")
	hw, ok, err := ParseHighway(tg)
	if err != nil || !ok {
		t.Fatalf("unexpected: ok=%v err=%v", ok, err)
	}
	if hw.Lifecycle != Proposed || hw.Type.Kind != KindClassified || hw.Type.Importance != Primary {
		t.Fatalf("got %+v", hw)
	}
}

func TestSmoothnessOrdering(t *testing.T) {
	if !Bad.Less(Good) {
		t.Fatal("bad should be less than good")
	}
	if Excellent.Less(Impassable) {
		t.Fatal("excellent should not be less than impassable")
	}
}

func TestLaneDependentAccessForwardOnly(t *testing.T) {
	tg := tags.New()
	_ = tg.Insert(tags.Key("bus:lanes:forward"), "|designated")
	got, err := ParseLaneDependentAccess(tg, tags.Key("bus:lanes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Shape != ShapeForward {
		t.Fatalf("got %+v", got)
	}
	if len(got.Forward) != 2 || got.Forward[1] != LaneAccessDesignated {
		t.Fatalf("unexpected forward split: %+v", got.Forward)
	}
}

func TestLaneDependentAccessTotalConflict(t *testing.T) {
	tg := tags.New()
	_ = tg.Insert(tags.Key("bus:lanes"), "designated|no")
	_ = tg.Insert(tags.Key("bus:lanes:forward"), "no")
	_, err := ParseLaneDependentAccess(tg, tags.Key("bus:lanes"))
	if err == nil {
		t.Fatal("expected conflict")
	}
}

func TestLaneDependentAccessAbsent(t *testing.T) {
	tg := tags.New()
	got, err := ParseLaneDependentAccess(tg, tags.Key("bus:lanes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
