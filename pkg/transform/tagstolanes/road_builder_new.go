package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// newRoadBuilder seeds a fresh RoadBuilder from the way's tags: resolves the
// highway class, the oneway state, the lanes= scheme, and a default set of
// forward/backward/both-ways travel lanes at the locale's default width,
// speed, and seed designated use (motor, or bus where the tagging says the
// way is bus-only).
func newRoadBuilder(t *tags.Tags, loc *locale.Locale, busway BuswayScheme, warnings *diag.Warnings) (*RoadBuilder, error) {
	highway, present, err := schemes.ParseHighway(t)
	if !present {
		return nil, diag.ErrMsg(diag.UnsupportedStr("way is not a highway"))
	}
	if err != nil {
		v, _ := t.Get(tags.Highway)
		return nil, diag.ErrMsg(diag.UnsupportedTag(tags.Highway, v))
	}
	if !highway.Type.Supported() {
		return nil, diag.ErrMsg(diag.Unimplemented("unsupported highway lifecycle or class", t.Subset(tags.Highway, tags.Construction, tags.Proposed)))
	}

	oneway, err := parseOneway(t)
	if err != nil {
		return nil, err
	}

	busLaneCounts := BusLanesCount{}
	if busway.Forward() {
		busLaneCounts.Forward = 1
	}
	if busway.Backward() {
		busLaneCounts.Backward = 1
	}

	centreTurnLane := parseCentreTurnLane(t, warnings)
	counts := newCounts(t, oneway, highway.Type, centreTurnLane, busLaneCounts, loc, warnings)

	designated := road.Motor
	if (t.Is(tags.Access, "no") && (t.Is(tags.Bus, "yes") || t.Is(tags.Psv, "yes"))) ||
		(hasPrefix(t, tags.MotorVehicleConditional, "no") && t.Is(tags.Bus, "yes")) {
		designated = road.Bus
	}

	var maxSpeed *road.Speed
	if v, ok := t.Get(tags.MaxSpeed); ok {
		s, err := road.ParseSpeed(v)
		if err != nil {
			warnings.Push(diag.UnsupportedTag(tags.MaxSpeed, v))
		} else {
			maxSpeed = &s
		}
	}

	width := loc.TravelWidth(designated, highway.Type)

	rb := &RoadBuilder{Highway: highway, Oneway: oneway}

	forwardCount, _ := counts.Forward.Some()
	for i := 0; i < forwardCount; i++ {
		rb.PushForwardOutside(defaultLaneBuilder(road.Forward, designated, width, maxSpeed))
	}
	backwardCount, _ := counts.Backward.Some()
	for i := 0; i < backwardCount; i++ {
		rb.PushBackwardOutside(defaultLaneBuilder(road.Backward, designated, width, maxSpeed))
	}
	bothWaysCount, _ := counts.BothWays.Some()
	for i := 0; i < bothWaysCount; i++ {
		rb.PushForwardInside(defaultLaneBuilder(road.Both, designated, width, maxSpeed))
	}

	return rb, nil
}

func hasPrefix(t *tags.Tags, key tags.Key, prefix string) bool {
	v, ok := t.Get(key)
	if !ok {
		return false
	}
	return len(v) >= len(prefix) && v[:len(prefix)] == prefix
}
