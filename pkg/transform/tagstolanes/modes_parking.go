package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
)

var parkingLaneValues = []string{"parallel", "diagonal", "perpendicular"}

func parkingLaneBuilder(direction road.Direction) *LaneBuilder {
	return &LaneBuilder{
		Type:       diag.InferDirect(LaneTypeParking),
		Direction:  diag.InferDirect(direction),
		Designated: diag.InferDirect(road.Motor),
	}
}

// applyParking seeds street-parking lanes from parking:lane:*=* tags onto
// rb's outer edges.
func applyParking(t *tags.Tags, rb *RoadBuilder) {
	forward := t.IsAny(tags.ParkingLaneRight, parkingLaneValues...) || t.IsAny(tags.ParkingLaneBoth, parkingLaneValues...)
	backward := t.IsAny(tags.ParkingLaneLeft, parkingLaneValues...) || t.IsAny(tags.ParkingLaneBoth, parkingLaneValues...)
	if forward {
		rb.PushForwardOutside(parkingLaneBuilder(road.Forward))
	}
	if backward {
		rb.PushBackwardOutside(parkingLaneBuilder(road.Backward))
	}
}
