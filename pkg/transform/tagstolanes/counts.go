package tagstolanes

import (
	"strconv"

	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/schemes"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// BusLanesCount is how many lanes in each direction a busway scheme has
// already claimed, fed into Counts so it can fold a bus-only direction into
// the assumed travel-lane count.
type BusLanesCount struct {
	Forward  int
	Backward int
}

// Counts is the lanes=* scheme: how many travel lanes exist in total, and how
// they split forward/backward/both-ways. Excludes parking and bicycle lanes,
// which have their own schemes.
// https://wiki.openstreetmap.org/wiki/Key:lanes
type Counts struct {
	Lanes    diag.Infer[int]
	Forward  diag.Infer[int]
	Backward diag.Infer[int]
	BothWays diag.Infer[int]
}

func getParsedUint(t *tags.Tags, key tags.Key, warnings *diag.Warnings) (int, bool) {
	v, ok := t.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		warnings.Push(diag.UnsupportedTag(key, v))
		return 0, false
	}
	return n, true
}

// newCounts parses and validates the lanes scheme against centre_turn_lane=*
// and any already-claimed bus lanes.
func newCounts(
	t *tags.Tags,
	oneway Oneway,
	highway schemes.HighwayType,
	centreTurnLane *bool,
	bus BusLanesCount,
	loc *locale.Locale,
	warnings *diag.Warnings,
) Counts {
	taggedLanes, hasLanes := getParsedUint(t, tags.Lanes, warnings)
	taggedForward, hasForward := getParsedUint(t, tags.LanesForward, warnings)
	taggedBackward, hasBackward := getParsedUint(t, tags.LanesBackward, warnings)
	taggedBothways, hasBothways := getParsedUint(t, tags.LanesBothWays, warnings)

	var bothways diag.Infer[int]
	switch {
	case hasBothways:
		bothways = diag.InferDirect(taggedBothways)
	case centreTurnLane != nil && *centreTurnLane:
		bothways = diag.InferCalculated(1)
	case centreTurnLane != nil && !*centreTurnLane:
		bothways = diag.InferCalculated(0)
	default:
		bothways = diag.InferDefault(0)
	}
	bothwayLanes, _ := bothways.Some()

	if bw, ok := bothways.Some(); ok && centreTurnLane != nil {
		if (!*centreTurnLane && bw > 0) || (*centreTurnLane && bw == 0) {
			warnings.Push(diag.AmbiguousTags(t.Subset(tags.LanesBothWays, tags.CentreTurnLane)))
		}
	}

	if bool(oneway) {
		if hasBothways || hasBackward {
			warnings.Push(diag.AmbiguousTags(t.Subset(tags.Oneway, tags.LanesBothWays, tags.LanesBackward)))
		}

		switch {
		case hasLanes:
			result := Counts{
				Lanes:    diag.InferDirect(taggedLanes),
				Forward:  diag.InferCalculated(taggedLanes),
				Backward: diag.InferDefault(0),
				BothWays: bothways,
			}
			if bus.Backward > 0 {
				result.Forward = diag.InferCalculated(taggedLanes - 1)
				result.Backward = diag.InferCalculated(1)
			}
			if fwd, ok := result.Forward.Some(); ok && hasForward && taggedForward != fwd {
				warnings.Push(diag.AmbiguousTags(t.Subset(tags.Oneway, tags.Lanes, tags.LanesForward)))
			}
			return result
		case hasForward:
			return Counts{
				Lanes:    diag.InferCalculated(taggedForward),
				Forward:  diag.InferDirect(taggedForward),
				Backward: diag.InferDefault(0),
				BothWays: bothways,
			}
		default:
			assumedForward := 1
			return Counts{
				Lanes:    diag.InferDefault(assumedForward + bus.Forward),
				Forward:  diag.InferDefault(assumedForward + bus.Forward),
				Backward: diag.InferDefault(0),
				BothWays: bothways,
			}
		}
	}

	// Twoway.
	switch {
	case hasLanes && hasForward && hasBackward:
		if taggedLanes != taggedForward+taggedBackward+bothwayLanes {
			warnings.Push(diag.AmbiguousTags(t.Subset(tags.Lanes, tags.LanesForward, tags.LanesBackward, tags.LanesBothWays, tags.CentreTurnLane)))
		}
		return Counts{
			Lanes:    diag.InferDirect(taggedLanes),
			Forward:  diag.InferDirect(taggedForward),
			Backward: diag.InferDirect(taggedBackward),
			BothWays: bothways,
		}
	case !hasLanes && hasForward && hasBackward:
		return Counts{
			Lanes:    diag.InferCalculated(taggedForward + taggedBackward + bothwayLanes),
			Forward:  diag.InferDirect(taggedForward),
			Backward: diag.InferDirect(taggedBackward),
			BothWays: bothways,
		}
	case hasLanes && hasForward && !hasBackward:
		return Counts{
			Lanes:    diag.InferDirect(taggedLanes),
			Forward:  diag.InferDirect(taggedForward),
			Backward: diag.InferCalculated(taggedLanes - taggedForward - bothwayLanes),
			BothWays: bothways,
		}
	case hasLanes && !hasForward && hasBackward:
		return Counts{
			Lanes:    diag.InferDirect(taggedLanes),
			Forward:  diag.InferCalculated(taggedLanes - taggedBackward - bothwayLanes),
			Backward: diag.InferDirect(taggedBackward),
			BothWays: bothways,
		}
	case hasLanes && !hasForward && !hasBackward:
		if taggedLanes == 1 {
			return Counts{
				Lanes:    diag.InferDirect(1),
				Forward:  diag.InferDefault(0),
				Backward: diag.InferDefault(0),
				BothWays: diag.InferDefault(1),
			}
		}
		if taggedLanes%2 == 0 && !hasBothways && centreTurnLane != nil && *centreTurnLane {
			return Counts{
				Lanes:    diag.InferCalculated(taggedLanes + 1),
				Forward:  diag.InferDefault(taggedLanes / 2),
				Backward: diag.InferDefault(taggedLanes / 2),
				BothWays: diag.InferCalculated(1),
			}
		}
		remaining := taggedLanes - bothwayLanes - bus.Forward - bus.Backward
		if remaining%2 != 0 {
			warnings.Push(diag.AmbiguousStr("total lane count cannot be evenly divided between the forward and backward directions"))
		}
		half := (remaining + 1) / 2
		return Counts{
			Lanes:    diag.InferDirect(taggedLanes),
			Forward:  diag.InferDefault(half + bus.Forward),
			Backward: diag.InferDefault(remaining - half + bus.Backward),
			BothWays: bothways,
		}
	case !hasLanes && !hasForward && !hasBackward:
		if loc.HasSplitLanes(highway) || bus.Forward > 0 || bus.Backward > 0 {
			return Counts{
				Lanes:    diag.InferDefault(1 + 1 + bothwayLanes),
				Forward:  diag.InferDefault(1 + bus.Forward),
				Backward: diag.InferDefault(1 + bus.Backward),
				BothWays: bothways,
			}
		}
		return Counts{
			Lanes:    diag.InferDefault(1),
			Forward:  diag.InferDefault(0),
			Backward: diag.InferDefault(0),
			BothWays: diag.InferDefault(1),
		}
	default:
		// !hasLanes, and at least one of forward/backward is tagged.
		if loc.HasSplitLanes(highway) {
			f := taggedForward
			if !hasForward {
				f = 1 + bus.Forward
			}
			b := taggedBackward
			if !hasBackward {
				b = 1 + bus.Backward
			}
			forward := diag.InferDefault(f)
			if hasForward {
				forward = diag.InferDirect(f)
			}
			backward := diag.InferDefault(b)
			if hasBackward {
				backward = diag.InferDirect(b)
			}
			return Counts{
				Lanes:    diag.InferDefault(f + b + bothwayLanes),
				Forward:  forward,
				Backward: backward,
				BothWays: bothways,
			}
		}
		return Counts{
			Lanes:    diag.InferDefault(1),
			Forward:  diag.InferDefault(0),
			Backward: diag.InferDefault(0),
			BothWays: diag.InferDefault(1),
		}
	}
}

// parseCentreTurnLane reads the deprecated centre_turn_lane=* tag.
func parseCentreTurnLane(t *tags.Tags, warnings *diag.Warnings) *bool {
	v, ok := t.Get(tags.CentreTurnLane)
	if !ok {
		return nil
	}
	warnings.Push(diag.Deprecated(t.Subset(tags.CentreTurnLane), nil))
	switch v {
	case "yes":
		b := true
		return &b
	case "no":
		b := false
		return &b
	default:
		warnings.Push(diag.UnsupportedTags(t.Subset(tags.CentreTurnLane)))
		return nil
	}
}
