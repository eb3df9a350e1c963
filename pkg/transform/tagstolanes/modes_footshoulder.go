package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// sidewalkState is the four-state reading of a side's sidewalk tagging. None
// means unspecified (later combined with shoulder=*), as opposed to No,
// which is explicit.
type sidewalkState int

const (
	sidewalkNone sidewalkState = iota
	sidewalkNo
	sidewalkYes
	sidewalkSeparate
)

// shoulderState is the tri-state reading of a side's shoulder tagging.
type shoulderState int

const (
	shoulderNone shoulderState = iota
	shoulderNo
	shoulderYes
)

func sideKeys(loc *locale.Locale) (forward, backward tags.Key) {
	if loc.DrivingSide == locale.Left {
		return tags.SidewalkLeft, tags.SidewalkRight
	}
	return tags.SidewalkRight, tags.SidewalkLeft
}

// parseSidewalk resolves sidewalk=*, sidewalk:both=*, and
// sidewalk:{left,right}=* into (forward, backward) states.
func parseSidewalk(t *tags.Tags, loc *locale.Locale, warnings *diag.Warnings) (fwd, bwd sidewalkState, err error) {
	unsupported := func() error {
		return diag.ErrMsg(diag.UnsupportedTags(t.Subset(tags.Sidewalk, tags.SidewalkLeft, tags.SidewalkRight)))
	}

	fKey, bKey := sideKeys(loc)
	plain, hasPlain := t.Get(tags.Sidewalk)
	both, hasBoth := t.Get(tags.SidewalkBoth)
	fVal, hasF := t.Get(fKey)
	bVal, hasB := t.Get(bKey)

	switch {
	case hasPlain && !hasBoth && !hasF && !hasB:
		switch plain {
		case "none":
			return 0, 0, diag.ErrMsg(diag.DeprecatedTag(tags.Sidewalk, "none"))
		case "no":
			return sidewalkNo, sidewalkNo, nil
		case "yes":
			warnings.Push(diag.AmbiguousTags(t.Subset(tags.Sidewalk, tags.SidewalkBoth)))
			return sidewalkYes, sidewalkYes, nil
		case "both":
			return sidewalkYes, sidewalkYes, nil
		case "separate":
			return sidewalkSeparate, sidewalkSeparate, nil
		case loc.DrivingSide.String():
			return sidewalkYes, sidewalkNo, nil
		case loc.DrivingSide.Opposite().String():
			return sidewalkNo, sidewalkYes, nil
		default:
			return 0, 0, unsupported()
		}

	case !hasPlain && hasBoth && !hasF && !hasB:
		switch both {
		case "no":
			return sidewalkNo, sidewalkNo, nil
		case "yes":
			return sidewalkYes, sidewalkYes, nil
		case "separate":
			return sidewalkSeparate, sidewalkSeparate, nil
		default:
			return 0, 0, unsupported()
		}

	case !hasPlain && !hasBoth:
		switch {
		case !hasF && !hasB:
			return sidewalkNone, sidewalkNone, nil
		case fVal == "yes" && bVal == "yes":
			return sidewalkYes, sidewalkYes, nil
		case fVal == "yes" && (!hasB || bVal == "no"):
			return sidewalkYes, sidewalkNo, nil
		case (!hasF || fVal == "no") && bVal == "yes":
			return sidewalkNo, sidewalkYes, nil
		case fVal == "separate" && !hasB:
			return sidewalkSeparate, sidewalkNo, nil
		case !hasF && bVal == "separate":
			return sidewalkNo, sidewalkSeparate, nil
		default:
			return 0, 0, unsupported()
		}

	default:
		return 0, 0, unsupported()
	}
}

// parseShoulder resolves shoulder=* into (forward, backward) states.
func parseShoulder(t *tags.Tags, loc *locale.Locale) (fwd, bwd shoulderState, err error) {
	v, ok := t.Get(tags.Shoulder)
	if !ok {
		return shoulderNone, shoulderNone, nil
	}
	switch v {
	case "no":
		return shoulderNo, shoulderNo, nil
	case "yes", "both":
		return shoulderYes, shoulderYes, nil
	case loc.DrivingSide.String():
		return shoulderYes, shoulderNo, nil
	case loc.DrivingSide.Opposite().String():
		return shoulderNo, shoulderYes, nil
	default:
		return 0, 0, diag.ErrMsg(diag.UnsupportedTag(tags.Shoulder, v))
	}
}

func footLaneBuilder() *LaneBuilder {
	return &LaneBuilder{
		Type:       diag.InferDirect(LaneTypeTravel),
		Designated: diag.InferDirect(road.Foot),
	}
}

func shoulderLaneBuilder(loc *locale.Locale) *LaneBuilder {
	lb := &LaneBuilder{Type: diag.InferDirect(LaneTypeShoulder)}
	if loc.Country.Is(locale.TheNetherlands) {
		lb.Width.Target = diag.InferDefault(road.Metre(0.6))
	}
	return lb
}

// applyFootAndShoulder adds foot-travel or shoulder lanes to either side of
// rb per sidewalk=*/shoulder=* tagging, bicycle-lane presence, and the
// locale's default-shoulder policy.
func applyFootAndShoulder(t *tags.Tags, loc *locale.Locale, rb *RoadBuilder, warnings *diag.Warnings) error {
	fSidewalk, bSidewalk, err := parseSidewalk(t, loc, warnings)
	if err != nil {
		return err
	}
	fShoulder, bShoulder, err := parseShoulder(t, loc)
	if err != nil {
		return err
	}

	if err := addSidewalkShoulder(t, loc, rb, fSidewalk, fShoulder, true); err != nil {
		return err
	}
	return addSidewalkShoulder(t, loc, rb, bSidewalk, bShoulder, false)
}

func addSidewalkShoulder(t *tags.Tags, loc *locale.Locale, rb *RoadBuilder, sidewalk sidewalkState, shoulder shoulderState, forward bool) error {
	outside := rb.ForwardOutside
	push := rb.PushForwardOutside
	if !forward {
		outside = rb.BackwardOutside
		push = rb.PushBackwardOutside
	}

	switch {
	case (sidewalk == sidewalkNo || sidewalk == sidewalkNone) && shoulder == shoulderNone:
		hasBicycleLane := false
		if lb := outside(); lb != nil {
			d, _ := lb.Designated.Some()
			hasBicycleLane = d == road.Bicycle
		}
		if !hasBicycleLane && loc.HasShoulder(rb.Highway.Type) && (forward || !bool(rb.Oneway)) && !t.Is(tags.ParkingCondBoth, "no_stopping") {
			push(shoulderLaneBuilder(loc))
		}
	case (sidewalk == sidewalkNo || sidewalk == sidewalkNone) && shoulder == shoulderNo:
		// nothing
	case sidewalk == sidewalkYes && (shoulder == shoulderNo || shoulder == shoulderNone):
		push(footLaneBuilder())
	case (sidewalk == sidewalkNo || sidewalk == sidewalkNone) && shoulder == shoulderYes:
		push(shoulderLaneBuilder(loc))
	case sidewalk == sidewalkYes && shoulder == shoulderYes:
		return diag.ErrMsg(diag.Unsupported("shoulder and sidewalk on same side", t.Subset(tags.Sidewalk, tags.Shoulder)))
	case sidewalk == sidewalkSeparate:
		return diag.ErrMsg(diag.UnsupportedTag(tags.Sidewalk, "separate"))
	}
	return nil
}
