package tagstolanes

import (
	"strconv"

	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
	"github.com/azybler/osm2lanes/pkg/tags"
)

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// CyclewayVariant is the physical form a bicycle facility takes.
type CyclewayVariant int

const (
	CyclewayLane CyclewayVariant = iota
	CyclewayTrack
	CyclewaySharedMotor
)

type cyclewayReading struct {
	present  bool
	no       bool
	variant  CyclewayVariant
	opposite bool
}

func readCycleway(t *tags.Tags, key tags.Key, warnings *diag.Warnings) cyclewayReading {
	v, ok := t.Get(key)
	if !ok {
		return cyclewayReading{}
	}
	switch v {
	case "lane":
		return cyclewayReading{present: true, variant: CyclewayLane}
	case "track":
		return cyclewayReading{present: true, variant: CyclewayTrack}
	case "opposite_lane":
		return cyclewayReading{present: true, variant: CyclewayLane, opposite: true}
	case "opposite_track":
		return cyclewayReading{present: true, variant: CyclewayTrack, opposite: true}
	case "opposite":
		return cyclewayReading{present: true, variant: CyclewaySharedMotor, opposite: true}
	case "no":
		return cyclewayReading{no: true}
	case "shared_lane", "share_busway", "opposite_share_busway", "shared", "shoulder", "separate":
		warnings.Push(diag.Unimplemented("unimplemented cycleway variant", tags.FromPair(key, v)))
		return cyclewayReading{}
	default:
		warnings.Push(diag.UnsupportedTag(key, v))
		return cyclewayReading{}
	}
}

// CyclewayWay is a single side's resolved bicycle facility.
type CyclewayWay struct {
	Variant   CyclewayVariant
	Direction road.Direction
	Width     *road.Metre
}

// CyclewayLocation is which side(s) of the road carry a bicycle facility.
type CyclewayLocation int

const (
	CyclewayLocationNone CyclewayLocation = iota
	CyclewayLocationForward
	CyclewayLocationBackward
	CyclewayLocationBoth
)

type CyclewayScheme struct {
	Location CyclewayLocation
	Forward  CyclewayWay
	Backward CyclewayWay
}

func forwardKeyFor(loc *locale.Locale) tags.Key {
	if loc.DrivingSide == locale.Left {
		return tags.CyclewayLeft
	}
	return tags.CyclewayRight
}

func backwardKeyFor(loc *locale.Locale) tags.Key {
	if loc.DrivingSide == locale.Left {
		return tags.CyclewayRight
	}
	return tags.CyclewayLeft
}

// parseCyclewayScheme resolves OSM's several bicycle-facility tagging
// schemes into a single resolved CyclewayScheme.
func parseCyclewayScheme(t *tags.Tags, loc *locale.Locale, roadOneway Oneway, warnings *diag.Warnings) CyclewayScheme {
	// cycleway=*
	if r := readCycleway(t, tags.Cycleway, warnings); r.present {
		if bool(roadOneway) {
			if !r.opposite {
				return CyclewayScheme{Location: CyclewayLocationForward, Forward: CyclewayWay{Variant: r.variant, Direction: road.Forward}}
			}
			if r.variant == CyclewayLane || r.variant == CyclewayTrack {
				warnings.Push(diag.Deprecated(t.Subset(tags.Cycleway), nil))
			}
			return CyclewayScheme{Location: CyclewayLocationBackward, Backward: CyclewayWay{Variant: r.variant, Direction: road.Backward}}
		}
		if r.opposite {
			warnings.Push(diag.UnsupportedTags(t.Subset(tags.Oneway, tags.Cycleway)))
		}
		return CyclewayScheme{
			Location: CyclewayLocationBoth,
			Forward:  CyclewayWay{Variant: r.variant, Direction: road.Forward},
			Backward: CyclewayWay{Variant: r.variant, Direction: road.Backward},
		}
	} else if r.no {
		return CyclewayScheme{Location: CyclewayLocationNone}
	}

	// cycleway:both=*
	if r := readCycleway(t, tags.CyclewayBoth, warnings); r.present {
		if r.opposite {
			warnings.Push(diag.UnsupportedTags(t.Subset(tags.CyclewayBoth)))
		}
		return CyclewayScheme{
			Location: CyclewayLocationBoth,
			Forward:  CyclewayWay{Variant: r.variant, Direction: road.Forward},
			Backward: CyclewayWay{Variant: r.variant, Direction: road.Backward},
		}
	} else if r.no {
		return CyclewayScheme{Location: CyclewayLocationNone}
	}

	fKey := forwardKeyFor(loc)
	bKey := backwardKeyFor(loc)

	// cycleway:<forward side>=*
	if r := readCycleway(t, fKey, warnings); r.present {
		width := cyclewayWidth(t, fKey, warnings)
		direction := road.Forward
		if t.Is(fKey.Plus("oneway"), "no") || t.Is(tags.OnewayBicycleSuffix, "no") {
			direction = road.Both
		}
		return CyclewayScheme{Location: CyclewayLocationForward, Forward: CyclewayWay{Variant: r.variant, Direction: direction, Width: width}}
	}

	// cycleway:<forward side>=opposite_lane/opposite_track (deprecated)
	if t.IsAny(fKey, "opposite_lane", "opposite_track") {
		warnings.Push(diag.Deprecated(t.Subset(fKey), nil))
		return CyclewayScheme{Location: CyclewayLocationForward, Forward: CyclewayWay{Variant: CyclewayLane, Direction: road.Backward}}
	}

	// cycleway:<backward side>=*
	if r := readCycleway(t, bKey, warnings); r.present {
		width := cyclewayWidth(t, bKey, warnings)
		onewayKey := bKey.Plus("oneway")
		var direction road.Direction
		switch {
		case t.Is(onewayKey, "yes"):
			direction = road.Forward
		case t.Is(onewayKey, "-1"):
			direction = road.Backward
		case t.Is(onewayKey, "no") || t.Is(tags.OnewayBicycleSuffix, "no"):
			direction = road.Both
		case bool(roadOneway):
			direction = road.Forward
		default:
			direction = road.Backward
		}
		return CyclewayScheme{Location: CyclewayLocationBackward, Backward: CyclewayWay{Variant: r.variant, Direction: direction, Width: width}}
	}

	if t.IsAny(bKey, "opposite_lane", "opposite_track") {
		warnings.Push(diag.UnsupportedTags(t.Subset(bKey)))
	}

	return CyclewayScheme{Location: CyclewayLocationNone}
}

func cyclewayWidth(t *tags.Tags, key tags.Key, warnings *diag.Warnings) *road.Metre {
	v, ok := t.Get(key.Plus("width"))
	if !ok {
		return nil
	}
	f, ok := parseFloat(v)
	if !ok {
		warnings.Push(diag.UnsupportedTag(key.Plus("width"), v))
		return nil
	}
	m := road.Metre(f)
	return &m
}

func cycleLaneBuilder(way CyclewayWay) *LaneBuilder {
	lb := &LaneBuilder{
		Type:       diag.InferDirect(LaneTypeTravel),
		Direction:  diag.InferDirect(way.Direction),
		Designated: diag.InferDirect(road.Bicycle),
	}
	if way.Width != nil {
		lb.Width.Target = diag.InferDirect(*way.Width)
	}
	return lb
}

// applyBicycle seeds bicycle-facility lanes onto rb's outer edges per
// scheme.
func applyBicycle(rb *RoadBuilder, scheme CyclewayScheme) error {
	switch scheme.Location {
	case CyclewayLocationNone:
		return nil
	case CyclewayLocationForward:
		if scheme.Forward.Variant == CyclewayLane || scheme.Forward.Variant == CyclewayTrack {
			rb.PushForwardOutside(cycleLaneBuilder(scheme.Forward))
		}
		return nil
	case CyclewayLocationBackward:
		switch scheme.Backward.Variant {
		case CyclewayLane, CyclewayTrack:
			rb.PushBackwardOutside(cycleLaneBuilder(scheme.Backward))
		case CyclewaySharedMotor:
			lb := rb.ForwardOutside()
			if lb == nil {
				return diag.ErrMsg(diag.UnsupportedStr("no forward lanes for cycleway"))
			}
			access, _ := lb.Access.Some()
			both := road.Both
			access.Bicycle = &road.AccessAndDirection{Access: schemes.AccessYes, Direction: &both}
			_ = lb.Access.Set(diag.InferDirect(access))
		}
		return nil
	case CyclewayLocationBoth:
		rb.PushForwardOutside(cycleLaneBuilder(scheme.Forward))
		rb.PushBackwardOutside(cycleLaneBuilder(scheme.Backward))
		return nil
	default:
		return nil
	}
}
