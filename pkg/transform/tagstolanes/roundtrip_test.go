package tagstolanes_test

import (
	"testing"

	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
	"github.com/azybler/osm2lanes/pkg/transform/lanestotags"
	"github.com/azybler/osm2lanes/pkg/transform/tagstolanes"
)

// filterSeparators drops Separator lanes, mirroring is_lane_enabled/
// into_filtered_road: lanes_to_tags may not re-derive the exact separator
// markings tags_to_lanes infers, so round-trip comparisons are only made over
// the lanes both directions agree carry real tag-bearing information.
func filterSeparators(lanes []road.Lane) []road.Lane {
	out := make([]road.Lane, 0, len(lanes))
	for _, l := range lanes {
		if l.IsSeparator() {
			continue
		}
		out = append(out, l)
	}
	return out
}

// sameLaneShape compares two filtered lane lists on the fields a round trip
// can actually be expected to preserve: Kind, Direction, Designated. Widths
// and per-lane access are allowed to drop out in the tags projection, per the
// documented round-trip fixpoint.
func sameLaneShape(a, b []road.Lane) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return false
		}
		if a[i].Kind != road.KindTravel && a[i].Kind != road.KindParking {
			continue
		}
		if a[i].Designated != b[i].Designated {
			return false
		}
		switch {
		case a[i].Direction == nil && b[i].Direction == nil:
		case a[i].Direction != nil && b[i].Direction != nil:
			if *a[i].Direction != *b[i].Direction {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func roundtripLocale(t *testing.T, iso string, side locale.DrivingSide) *locale.Locale {
	t.Helper()
	loc, err := locale.NewBuilder().ISO3166(iso).DrivingSide(side).Build()
	if err != nil {
		t.Fatalf("locale build: %v", err)
	}
	return loc
}

// A motorway's travel-lane shape survives tags -> lanes -> tags -> lanes.
func TestRoundtripMotorwayShapeStable(t *testing.T) {
	loc := roundtripLocale(t, "DE", locale.Right)
	tg, err := tags.FromPairs([][2]string{
		{"highway", "motorway"},
		{"lanes", "3"},
		{"oneway", "yes"},
		{"maxspeed", "130"},
	})
	if err != nil {
		t.Fatalf("tags: %v", err)
	}

	inputRoad, _, err := tagstolanes.TagsToLanes(tg, loc, tagstolanes.Config{IncludeSeparators: true})
	if err != nil {
		t.Fatalf("TagsToLanes (input): %v", err)
	}

	outTags, err := lanestotags.LanesToTags(inputRoad, loc, lanestotags.Config{CheckRoundtrip: false})
	if err != nil {
		t.Fatalf("LanesToTags: %v", err)
	}

	outputRoad, _, err := tagstolanes.TagsToLanes(outTags, loc, tagstolanes.Config{IncludeSeparators: true})
	if err != nil {
		t.Fatalf("TagsToLanes (output): %v", err)
	}

	got := filterSeparators(outputRoad.Lanes)
	want := filterSeparators(inputRoad.Lanes)
	if !sameLaneShape(got, want) {
		t.Fatalf("roundtrip shape mismatch:\n  input:  %+v\n  output: %+v", want, got)
	}
}

// A one-way road with a bus contraflow lane keeps its bus/motor direction
// split across the round trip.
func TestRoundtripBusContraflowShapeStable(t *testing.T) {
	loc := roundtripLocale(t, "FR", locale.Right)
	tg, err := tags.FromPairs([][2]string{
		{"highway", "primary"},
		{"oneway", "yes"},
		{"lanes", "2"},
		{"busway:left", "opposite_lane"},
	})
	if err != nil {
		t.Fatalf("tags: %v", err)
	}

	inputRoad, _, err := tagstolanes.TagsToLanes(tg, loc, tagstolanes.Config{IncludeSeparators: true})
	if err != nil {
		t.Fatalf("TagsToLanes (input): %v", err)
	}

	outTags, err := lanestotags.LanesToTags(inputRoad, loc, lanestotags.Config{CheckRoundtrip: false})
	if err != nil {
		t.Fatalf("LanesToTags: %v", err)
	}

	outputRoad, _, err := tagstolanes.TagsToLanes(outTags, loc, tagstolanes.Config{IncludeSeparators: true})
	if err != nil {
		t.Fatalf("TagsToLanes (output): %v", err)
	}

	got := filterSeparators(outputRoad.Lanes)
	want := filterSeparators(inputRoad.Lanes)
	if !sameLaneShape(got, want) {
		t.Fatalf("roundtrip shape mismatch:\n  input:  %+v\n  output: %+v", want, got)
	}
}
