package lanestotags

import (
	"testing"

	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
	"github.com/azybler/osm2lanes/pkg/tags"
	"github.com/azybler/osm2lanes/pkg/transform/tagstolanes"
)

func dirPtr(d road.Direction) *road.Direction { return &d }

func mustHighway(t *testing.T, kind string) schemes.HighwayType {
	t.Helper()
	h, err := schemes.ParseHighwayType(kind)
	if err != nil {
		t.Fatalf("ParseHighwayType: %v", err)
	}
	return h
}

func mustLocale(t *testing.T, iso string, side locale.DrivingSide) *locale.Locale {
	t.Helper()
	loc, err := locale.NewBuilder().ISO3166(iso).DrivingSide(side).Build()
	if err != nil {
		t.Fatalf("locale build: %v", err)
	}
	return loc
}

func mustTags(t *testing.T, pairs [][2]string) *tags.Tags {
	t.Helper()
	tg, err := tags.FromPairs(pairs)
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	return tg
}

// A German motorway round-trips: tags → lanes → tags (without the strict
// internal roundtrip check, which requires separator inference parity) gives
// back lanes=3, oneway=yes, shoulder=both and maxspeed=130.
func TestLanesToTagsMotorwayRoundtrip(t *testing.T) {
	loc := mustLocale(t, "DE", locale.Right)
	tg := mustTags(t, [][2]string{
		{"highway", "motorway"},
		{"lanes", "3"},
		{"oneway", "yes"},
		{"shoulder", "both"},
		{"maxspeed", "130"},
	})

	r, _, err := tagstolanes.TagsToLanes(tg, loc, tagstolanes.Config{})
	if err != nil {
		t.Fatalf("TagsToLanes: %v", err)
	}

	out, err := LanesToTags(r, loc, Config{CheckRoundtrip: false})
	if err != nil {
		t.Fatalf("LanesToTags: %v", err)
	}

	if v, ok := out.Get(tags.Lanes); !ok || v != "3" {
		t.Fatalf("expected lanes=3, got %q (ok=%v)", v, ok)
	}
	if v, ok := out.Get(tags.Oneway); !ok || v != "yes" {
		t.Fatalf("expected oneway=yes, got %q (ok=%v)", v, ok)
	}
	if v, ok := out.Get(tags.Shoulder); !ok || v != "both" {
		t.Fatalf("expected shoulder=both, got %q (ok=%v)", v, ok)
	}
	if v, ok := out.Get(tags.MaxSpeed); !ok || v != "130" {
		t.Fatalf("expected maxspeed=130, got %q (ok=%v)", v, ok)
	}
}

// A road carrying no motor or bus lanes reduces to highway=path.
func TestLanesToTagsNoTraffic(t *testing.T) {
	loc := mustLocale(t, "PL", locale.Right)
	tg := mustTags(t, [][2]string{
		{"highway", "path"},
	})

	r, _, err := tagstolanes.TagsToLanes(tg, loc, tagstolanes.Config{})
	if err != nil {
		t.Fatalf("TagsToLanes: %v", err)
	}

	out, err := LanesToTags(r, loc, Config{CheckRoundtrip: false})
	if err != nil {
		t.Fatalf("LanesToTags: %v", err)
	}
	if v, ok := out.Get(tags.Highway); !ok || v != "path" {
		t.Fatalf("expected highway=path, got %q (ok=%v)", v, ok)
	}
	if out.Len() != 1 {
		t.Fatalf("expected exactly one tag, got %d: %v", out.Len(), out.Pairs())
	}
}

// A bicycle lane sitting to the right of the motor lanes (no left-side
// counterpart) reconstructs as cycleway:right=lane.
func TestLanesToTagsCyclewayRightOnly(t *testing.T) {
	loc := mustLocale(t, "DE", locale.Right)
	r := &road.Road{
		Highway: schemes.Highway{Type: mustHighway(t, "tertiary")},
		Lanes: []road.Lane{
			road.NewTravel(dirPtr(road.Backward), road.Motor, nil, nil, nil),
			road.NewTravel(dirPtr(road.Forward), road.Motor, nil, nil, nil),
			road.NewTravel(dirPtr(road.Forward), road.Bicycle, nil, nil, nil),
		},
	}

	out, err := LanesToTags(r, loc, Config{CheckRoundtrip: false})
	if err != nil {
		t.Fatalf("LanesToTags: %v", err)
	}
	if v, ok := out.Get(tags.CyclewayRight); !ok || v != "lane" {
		t.Fatalf("expected cycleway:right=lane, got %q (ok=%v)", v, ok)
	}
	if _, ok := out.Get(tags.CyclewayLeft); ok {
		t.Fatalf("did not expect cycleway:left to be set")
	}
}

// A contraflow bus lane on the left edge of a one-way road reconstructs as
// busway:left=opposite_lane.
func TestLanesToTagsBuswayLeftOpposite(t *testing.T) {
	loc := mustLocale(t, "FR", locale.Right)
	r := &road.Road{
		Highway: schemes.Highway{Type: mustHighway(t, "primary")},
		Lanes: []road.Lane{
			road.NewTravel(dirPtr(road.Backward), road.Bus, nil, nil, nil),
			road.NewTravel(dirPtr(road.Forward), road.Motor, nil, nil, nil),
			road.NewTravel(dirPtr(road.Forward), road.Motor, nil, nil, nil),
		},
	}

	out, err := LanesToTags(r, loc, Config{CheckRoundtrip: false})
	if err != nil {
		t.Fatalf("LanesToTags: %v", err)
	}
	if v, ok := out.Get(tags.Oneway); !ok || v != "yes" {
		t.Fatalf("expected oneway=yes, got %q (ok=%v)", v, ok)
	}
	if v, ok := out.Get(tags.BuswayLeft); !ok || v != "opposite_lane" {
		t.Fatalf("expected busway:left=opposite_lane, got %q (ok=%v)", v, ok)
	}
}

// A single left-side parking lane reconstructs as parking:lane:left=parallel,
// and a red-marked edge separator adds parking:condition:both=no_stopping.
func TestLanesToTagsParkingLeftNoStopping(t *testing.T) {
	loc := mustLocale(t, "PL", locale.Right)
	red := road.Red
	r := &road.Road{
		Highway: schemes.Highway{Type: mustHighway(t, "residential")},
		Lanes: []road.Lane{
			road.NewSeparator(nil, &road.Markings{{Style: road.SolidLine, Color: &red}}),
			road.NewParking(road.Backward, road.Motor, nil),
			road.NewTravel(dirPtr(road.Backward), road.Motor, nil, nil, nil),
			road.NewTravel(dirPtr(road.Forward), road.Motor, nil, nil, nil),
		},
	}

	out, err := LanesToTags(r, loc, Config{CheckRoundtrip: false})
	if err != nil {
		t.Fatalf("LanesToTags: %v", err)
	}
	if v, ok := out.Get(tags.ParkingLaneLeft); !ok || v != "parallel" {
		t.Fatalf("expected parking:lane:left=parallel, got %q (ok=%v)", v, ok)
	}
	if _, ok := out.Get(tags.ParkingLaneRight); ok {
		t.Fatalf("did not expect parking:lane:right to be set")
	}
	if v, ok := out.Get(tags.ParkingCondBoth); !ok || v != "no_stopping" {
		t.Fatalf("expected parking:condition:both=no_stopping, got %q (ok=%v)", v, ok)
	}
}

// A per-lane maxspeed split (unrepresentable as a single maxspeed=* tag)
// makes getMaxSpeed reject the Road outright.
func TestLanesToTagsRejectsMixedMaxSpeed(t *testing.T) {
	loc := mustLocale(t, "DE", locale.Right)
	s50 := road.Speed{Unit: road.UnitKph, Value: 50}
	s100 := road.Speed{Unit: road.UnitKph, Value: 100}
	r := &road.Road{
		Highway: schemes.Highway{Type: mustHighway(t, "primary")},
		Lanes: []road.Lane{
			road.NewTravel(dirPtr(road.Backward), road.Motor, nil, &s50, nil),
			road.NewTravel(dirPtr(road.Forward), road.Motor, nil, &s100, nil),
		},
	}

	if _, err := LanesToTags(r, loc, Config{CheckRoundtrip: false}); err == nil {
		t.Fatalf("expected an error for mismatched per-lane maxspeed")
	}
}

// A bus lane with no left/right edge counterpart falls back to bus:lanes=*,
// a scheme this implementation's tags→lanes direction does not parse back —
// CheckRoundtrip must catch the resulting mismatch rather than silently
// accepting a lossy emission.
func TestLanesToTagsCheckRoundtripCatchesBusLanesFallback(t *testing.T) {
	loc := mustLocale(t, "FR", locale.Right)
	r := &road.Road{
		Highway: schemes.Highway{Type: mustHighway(t, "primary")},
		Lanes: []road.Lane{
			road.NewTravel(dirPtr(road.Forward), road.Motor, nil, nil, nil),
			road.NewTravel(dirPtr(road.Forward), road.Bus, nil, nil, nil),
			road.NewTravel(dirPtr(road.Forward), road.Motor, nil, nil, nil),
		},
	}

	if _, err := LanesToTags(r, loc, Config{CheckRoundtrip: true}); err == nil {
		t.Fatalf("expected a roundtrip mismatch error for the bus:lanes=* fallback")
	}
}
