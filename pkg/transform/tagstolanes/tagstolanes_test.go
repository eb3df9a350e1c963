package tagstolanes

import (
	"testing"

	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
)

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

func countByDesignatedDirection(t *testing.T, lanes []road.Lane, designated road.Designated, dir road.Direction) int {
	n := 0
	for _, l := range lanes {
		if l.Kind == road.KindTravel && l.Designated == designated && l.Direction != nil && *l.Direction == dir {
			n++
		}
	}
	return n
}

// German motorway with hard shoulders: three forward motor lanes between
// two shoulders, no backward lanes, maxspeed on every motor lane.
func TestTagsToLanesMotorwayWithShoulders(t *testing.T) {
	loc := mustLocale(t, "DE", locale.Right)
	tg := mustTags(t, [][2]string{
		{"highway", "motorway"},
		{"lanes", "3"},
		{"oneway", "yes"},
		{"shoulder", "both"},
		{"maxspeed", "130"},
	})

	r, warnings, err := TagsToLanes(tg, loc, Config{})
	if err != nil {
		t.Fatalf("TagsToLanes: %v (warnings: %v)", err, warnings.Strings())
	}

	motorForward := countByDesignatedDirection(t, r.Lanes, road.Motor, road.Forward)
	if motorForward != 3 {
		t.Fatalf("expected 3 forward motor lanes, got %d (%+v)", motorForward, r.Lanes)
	}
	if n := countByDesignatedDirection(t, r.Lanes, road.Motor, road.Backward); n != 0 {
		t.Fatalf("expected no backward motor lanes, got %d", n)
	}

	shoulders := 0
	for _, l := range r.Lanes {
		if l.Kind == road.KindShoulder {
			shoulders++
		}
	}
	if shoulders != 2 {
		t.Fatalf("expected 2 shoulders, got %d", shoulders)
	}

	for _, l := range r.Lanes {
		if l.Kind == road.KindTravel && l.Designated == road.Motor {
			if l.MaxSpeed == nil {
				t.Fatalf("motor lane missing maxspeed: %+v", l)
			}
			if l.MaxSpeed.Kph() != 130 {
				t.Fatalf("expected 130kph, got %v", l.MaxSpeed.Kph())
			}
		}
	}
}

// Narrow unmarked residential alley: one bidirectional motor lane.
func TestTagsToLanesResidentialAlley(t *testing.T) {
	loc := mustLocale(t, "PL", locale.Right)
	tg := mustTags(t, [][2]string{
		{"highway", "residential"},
		{"lanes", "1"},
	})

	r, _, err := TagsToLanes(tg, loc, Config{})
	if err != nil {
		t.Fatalf("TagsToLanes: %v", err)
	}

	if n := countByDesignatedDirection(t, r.Lanes, road.Motor, road.Both); n != 1 {
		t.Fatalf("expected exactly one bidirectional motor lane, got %d (%+v)", n, r.Lanes)
	}
}

// Ambiguous centre turn lane: deprecation + ambiguity warnings, lanes:both_ways
// wins as Direct over the Calculated default.
func TestTagsToLanesAmbiguousCentreTurnLane(t *testing.T) {
	loc := mustLocale(t, "US", locale.Right)
	tg := mustTags(t, [][2]string{
		{"highway", "secondary"},
		{"lanes", "4"},
		{"centre_turn_lane", "yes"},
		{"lanes:both_ways", "0"},
	})

	r, warnings, err := TagsToLanes(tg, loc, Config{})
	if err != nil {
		t.Fatalf("TagsToLanes: %v", err)
	}
	if warnings.IsEmpty() {
		t.Fatalf("expected deprecation and ambiguity warnings, got none")
	}

	for _, l := range r.Lanes {
		if l.Direction != nil && *l.Direction == road.Both && l.Kind == road.KindTravel {
			t.Fatalf("lanes:both_ways=0 should have won over centre_turn_lane=yes, found a both-ways lane: %+v", l)
		}
	}
}

// Bus contra-flow on a one-way road.
func TestTagsToLanesBusContraflow(t *testing.T) {
	loc := mustLocale(t, "FR", locale.Right)
	tg := mustTags(t, [][2]string{
		{"highway", "primary"},
		{"oneway", "yes"},
		{"lanes", "2"},
		{"busway:left", "opposite_lane"},
	})

	r, _, err := TagsToLanes(tg, loc, Config{})
	if err != nil {
		t.Fatalf("TagsToLanes: %v", err)
	}

	var sawBusBackward, sawMotorForward bool
	for _, l := range r.Lanes {
		if l.Kind != road.KindTravel || l.Direction == nil {
			continue
		}
		if l.Designated == road.Bus && *l.Direction == road.Backward {
			sawBusBackward = true
		}
		if l.Designated == road.Motor && *l.Direction == road.Forward {
			sawMotorForward = true
		}
	}
	if !sawBusBackward {
		t.Fatalf("expected a backward bus lane, got %+v", r.Lanes)
	}
	if !sawMotorForward {
		t.Fatalf("expected a forward motor lane, got %+v", r.Lanes)
	}
	if n := countByDesignatedDirection(t, r.Lanes, road.Motor, road.Backward); n != 0 {
		t.Fatalf("expected no backward motor lanes, got %d", n)
	}
}

// busway=lane on a two-way road runs to completion and gives the same lanes
// and the same number of warnings on two runs. bus:lanes=* is not read by
// this package, so a way tagged with both busway=* and bus:lanes=* is not
// rejected.
func TestTagsToLanesBuswayLaneDeterministic(t *testing.T) {
	loc := mustLocale(t, "DE", locale.Right)
	tg := mustTags(t, [][2]string{
		{"highway", "primary"},
		{"lanes", "2"},
		{"busway", "lane"},
	})

	r1, w1, err1 := TagsToLanes(tg, loc, Config{})
	r2, w2, err2 := TagsToLanes(tg, loc, Config{})
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v / %v", err1, err2)
	}
	if len(r1.Lanes) != len(r2.Lanes) {
		t.Fatalf("non-deterministic lane count: %d vs %d", len(r1.Lanes), len(r2.Lanes))
	}
	if w1.Len() != w2.Len() {
		t.Fatalf("non-deterministic warning count: %d vs %d", w1.Len(), w2.Len())
	}
}

func TestTagsToLanesDeterministic(t *testing.T) {
	loc := mustLocale(t, "GB", locale.Left)
	tg := mustTags(t, [][2]string{
		{"highway", "tertiary"},
		{"lanes", "2"},
		{"cycleway:left", "track"},
		{"sidewalk", "both"},
	})

	r1, w1, err1 := TagsToLanes(tg, loc, Config{IncludeSeparators: true})
	if err1 != nil {
		t.Fatalf("TagsToLanes: %v", err1)
	}
	r2, w2, err2 := TagsToLanes(tg, loc, Config{IncludeSeparators: true})
	if err2 != nil {
		t.Fatalf("TagsToLanes: %v", err2)
	}

	if len(r1.Lanes) != len(r2.Lanes) {
		t.Fatalf("non-deterministic lane count: %d vs %d", len(r1.Lanes), len(r2.Lanes))
	}
	if w1.Len() != w2.Len() {
		t.Fatalf("non-deterministic warning count")
	}

	// strictly left-to-right under LHT: forward lanes (reversed) first,
	// then backward lanes.
	sawBackward := false
	for _, l := range r1.Lanes {
		if l.Direction == nil {
			continue
		}
		if *l.Direction == road.Backward {
			sawBackward = true
		}
		if *l.Direction == road.Forward && sawBackward {
			t.Fatalf("found a forward lane after a backward lane under LHT ordering")
		}
	}
}
