package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// BuswayVariant is which directions busway=* (or its side-qualified forms)
// claims a dedicated bus lane.
type BuswayVariant int

const (
	BuswayNone BuswayVariant = iota
	BuswayForward
	BuswayBackward
	BuswayBoth
)

// BuswayScheme is the resolved busway=* scheme: whether the forward and/or
// backward direction gets a dedicated bus lane.
type BuswayScheme struct {
	variant BuswayVariant
}

func (s BuswayScheme) Forward() bool {
	return s.variant == BuswayForward || s.variant == BuswayBoth
}

func (s BuswayScheme) Backward() bool {
	return s.variant == BuswayBackward || s.variant == BuswayBoth
}

type buswayLane int

const (
	buswayLaneNone buswayLane = iota
	buswayLaneLane
	buswayLaneOpposite
)

func getBuswayLane(t *tags.Tags, key tags.Key, warnings *diag.Warnings) buswayLane {
	v, ok := t.Get(key)
	if !ok {
		return buswayLaneNone
	}
	switch v {
	case "lane":
		return buswayLaneLane
	case "opposite_lane":
		return buswayLaneOpposite
	default:
		warnings.Push(diag.UnsupportedTag(key, v))
		return buswayLaneNone
	}
}

// parseBuswayScheme reads busway=*, busway:both=*, busway:<side>=* against
// the road's (possibly bus-specific) oneway direction.
func parseBuswayScheme(t *tags.Tags, roadOneway Oneway, loc *locale.Locale, warnings *diag.Warnings) BuswayScheme {
	busOneway := roadOneway
	if v, ok := t.Get(tags.OnewayBus); ok {
		switch v {
		case "yes":
			busOneway = OnewayYes
		case "no":
			busOneway = OnewayNo
		default:
			warnings.Push(diag.UnsupportedTag(tags.OnewayBus, v))
		}
	}

	root := getBuswayLane(t, tags.Busway, warnings)
	var buswayRoot BuswayVariant
	switch {
	case root == buswayLaneNone:
		buswayRoot = BuswayNone
	case root == buswayLaneLane && !bool(busOneway):
		buswayRoot = BuswayBoth
	case root == buswayLaneLane && bool(busOneway):
		buswayRoot = BuswayForward
	case root == buswayLaneOpposite && !bool(busOneway):
		warnings.Push(diag.UnsupportedTags(t.Subset(tags.Busway, tags.Oneway, tags.OnewayBus)))
		buswayRoot = BuswayNone
	default: // opposite && oneway
		buswayRoot = BuswayBackward
	}

	both := getBuswayLane(t, tags.BuswayBoth, warnings)
	buswayBoth := BuswayNone
	switch both {
	case buswayLaneLane:
		buswayBoth = BuswayBoth
	case buswayLaneOpposite:
		warnings.Push(diag.UnsupportedTags(t.Subset(tags.BuswayBoth)))
	}

	forwardKey := tags.BuswayRight
	backwardKey := tags.BuswayLeft
	if loc.DrivingSide == locale.Left {
		forwardKey, backwardKey = tags.BuswayLeft, tags.BuswayRight
	}

	forward := getBuswayLane(t, forwardKey, warnings)
	if forward == buswayLaneOpposite {
		warnings.Push(diag.UnsupportedTags(t.Subset(forwardKey)))
	}
	backward := getBuswayLane(t, backwardKey, warnings)

	var forwardBackward BuswayVariant
	switch {
	case (forward == buswayLaneNone || forward == buswayLaneOpposite) && backward == buswayLaneNone:
		forwardBackward = BuswayNone
	case forward == buswayLaneLane && backward == buswayLaneNone:
		forwardBackward = BuswayForward
	case (forward == buswayLaneNone || forward == buswayLaneOpposite) && backward != buswayLaneNone:
		forwardBackward = BuswayBackward
	default:
		forwardBackward = BuswayBoth
	}

	if buswayBoth == BuswayBoth {
		if forwardBackward == BuswayForward || forwardBackward == BuswayBackward {
			warnings.Push(diag.AmbiguousTags(t.Subset(tags.BuswayBoth, forwardKey, backwardKey)))
		}
		if buswayRoot == BuswayForward || buswayRoot == BuswayBackward {
			warnings.Push(diag.AmbiguousTags(t.Subset(tags.Busway, tags.Oneway, tags.OnewayBus, tags.BuswayBoth)))
		}
		return BuswayScheme{variant: BuswayBoth}
	}

	if forwardBackward != BuswayNone {
		if buswayRoot != BuswayNone && buswayRoot != forwardBackward {
			warnings.Push(diag.AmbiguousTags(t.Subset(tags.Busway, tags.Oneway, tags.OnewayBus, forwardKey, backwardKey)))
		}
		return BuswayScheme{variant: forwardBackward}
	}

	return BuswayScheme{variant: buswayRoot}
}

func setBus(lb *LaneBuilder) {
	_ = lb.Type.Set(diag.InferDirect(LaneTypeTravel))
	_ = lb.Designated.Set(diag.InferDirect(road.Bus))
}

// applyBusway seeds dedicated bus lanes onto rb's outer edges per scheme.
func applyBusway(rb *RoadBuilder, scheme BuswayScheme) error {
	if scheme.Forward() {
		lb := rb.ForwardOutside()
		if lb == nil {
			return diag.ErrMsg(diag.UnsupportedStr("no forward lanes for busway"))
		}
		setBus(lb)
	}
	if scheme.Backward() {
		if lb := rb.BackwardOutside(); lb != nil {
			setBus(lb)
		} else {
			lb := rb.ForwardInside()
			if lb == nil {
				return diag.ErrMsg(diag.UnsupportedStr("no forward lanes for busway"))
			}
			setBus(lb)
			_ = lb.Direction.Set(diag.InferDirect(road.Backward))
		}
	}
	return nil
}
