package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
)

func buildPairSeparator(inside, outside *LaneBuilder, rb *RoadBuilder, t *tags.Tags, loc *locale.Locale, warnings *diag.Warnings) *road.Lane {
	sep := lanePairToSemanticSeparator(inside, outside, rb, warnings)
	if sep == nil {
		return nil
	}
	lane := semanticSeparatorToLane(inside, outside, sep, t, loc, warnings)
	return &lane
}

// IntoLTR finalizes the draft builder into an ordered left-to-right lane
// list, optionally interleaving inferred separator lanes between every pair
// of adjacent travel/parking/shoulder lanes.
func (r *RoadBuilder) IntoLTR(t *tags.Tags, loc *locale.Locale, includeSeparators bool, warnings *diag.Warnings) ([]road.Lane, error) {
	if !includeSeparators {
		var out []road.Lane
		for _, lb := range r.LanesLTR(loc) {
			l, err := lb.Build()
			if err != nil {
				return nil, err
			}
			out = append(out, l)
		}
		return out, nil
	}

	var forwardEdge, backwardEdge *road.Lane
	if lb := r.ForwardOutside(); lb != nil {
		if es := outerEdgeSeparator(lb, t, loc); es != nil {
			l := edgeSeparatorToLane(es)
			forwardEdge = &l
		}
	}
	if lb := r.BackwardOutside(); lb != nil {
		if es := outerEdgeSeparator(lb, t, loc); es != nil {
			l := edgeSeparatorToLane(es)
			backwardEdge = &l
		}
	}

	var middle *road.Lane
	fi, bi := r.ForwardInside(), r.BackwardInside()
	switch {
	case fi != nil && bi != nil:
		middle = buildPairSeparator(fi, bi, r, t, loc, warnings)
	case fi != nil || bi != nil:
		inner := innerEdgeSeparator()
		mirrored := inner.Mirror()
		middle = &mirrored
	default:
		return nil, diag.ErrMsg(diag.Internal("no lanes"))
	}

	buildSide := func(lanes []*LaneBuilder, edge *road.Lane) ([]*road.Lane, error) {
		var out []*road.Lane
		for i, lb := range lanes {
			l, err := lb.Build()
			if err != nil {
				return nil, err
			}
			out = append(out, &l)
			if i+1 < len(lanes) {
				out = append(out, buildPairSeparator(lanes[i], lanes[i+1], r, t, loc, warnings))
			}
		}
		out = append(out, edge)
		return out, nil
	}

	forwardSide, err := buildSide(r.forwardLanes, forwardEdge)
	if err != nil {
		return nil, err
	}
	backwardSide, err := buildSide(r.backwardLanes, backwardEdge)
	if err != nil {
		return nil, err
	}

	reversePtr := func(in []*road.Lane) []*road.Lane {
		out := make([]*road.Lane, len(in))
		for i, v := range in {
			out[len(in)-1-i] = v
		}
		return out
	}

	var ordered []*road.Lane
	if loc.DrivingSide == locale.Left {
		ordered = append(reversePtr(forwardSide), middle)
		ordered = append(ordered, backwardSide...)
	} else {
		ordered = append(reversePtr(backwardSide), middle)
		ordered = append(ordered, forwardSide...)
	}

	var out []road.Lane
	for _, l := range ordered {
		if l != nil {
			out = append(out, *l)
		}
	}
	return out, nil
}
