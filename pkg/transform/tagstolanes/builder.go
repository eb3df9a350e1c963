package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
)

// LaneType discriminates the draft shapes a LaneBuilder can finalize to.
type LaneType int

const (
	LaneTypeTravel LaneType = iota
	LaneTypeParking
	LaneTypeShoulder
)

// Width is the draft width: a target plus optional min/max bounds, asserted
// at Build time.
type Width struct {
	Min    diag.Infer[road.Metre]
	Target diag.Infer[road.Metre]
	Max    diag.Infer[road.Metre]
}

// LaneBuilder is a mutable draft lane carrying Infer-wrapped fields so later
// passes never silently clobber an earlier, more confident assignment.
type LaneBuilder struct {
	Type       diag.Infer[LaneType]
	Direction  diag.Infer[road.Direction]
	Designated diag.Infer[road.Designated]
	Width      Width
	MaxSpeed   diag.Infer[road.Speed]
	Access     diag.Infer[road.AccessByType]
}

// LaneBuilderInternalError reports an invariant violation while finalizing a
// draft lane — always a bug, never a reachable consequence of any input.
type LaneBuilderInternalError struct{ Reason string }

func (e LaneBuilderInternalError) Error() string { return e.Reason }

// Build finalizes the draft into a road.Lane.
func (b LaneBuilder) Build() (road.Lane, error) {
	var widthPtr *road.Metre
	if w, ok := b.Width.Target.Some(); ok {
		widthPtr = &w
	}

	t, ok := b.Type.Some()
	if !ok {
		return road.Lane{}, LaneBuilderInternalError{Reason: "lane has no type"}
	}
	switch t {
	case LaneTypeTravel:
		designated, ok := b.Designated.Some()
		if !ok {
			return road.Lane{}, LaneBuilderInternalError{Reason: "travel lane has no designated use"}
		}
		var direction *road.Direction
		if d, ok := b.Direction.Some(); ok {
			direction = &d
		}
		var maxSpeed *road.Speed
		if s, ok := b.MaxSpeed.Some(); ok {
			maxSpeed = &s
		}
		var access *road.AccessByType
		if a, ok := b.Access.Some(); ok {
			access = &a
		}
		return road.NewTravel(direction, designated, widthPtr, maxSpeed, access), nil
	case LaneTypeParking:
		designated, _ := b.Designated.Some()
		direction, ok := b.Direction.Some()
		if !ok {
			return road.Lane{}, LaneBuilderInternalError{Reason: "parking lane has no direction"}
		}
		return road.NewParking(direction, designated, widthPtr), nil
	case LaneTypeShoulder:
		return road.NewShoulder(widthPtr), nil
	default:
		return road.Lane{}, LaneBuilderInternalError{Reason: "unknown lane type"}
	}
}

func defaultLaneBuilder(direction road.Direction, designated road.Designated, width road.Metre, maxSpeed *road.Speed) *LaneBuilder {
	lb := &LaneBuilder{
		Type:       diag.InferDefault(LaneTypeTravel),
		Direction:  diag.InferDefault(direction),
		Designated: diag.InferDefault(designated),
		Width:      Width{Target: diag.InferDefault(width)},
	}
	if maxSpeed != nil {
		lb.MaxSpeed = diag.InferDirect(*maxSpeed)
	}
	return lb
}

// RoadBuilder is the two-deque left/right draft builder: forward_lanes and
// backward_lanes, kept in insertion order from the road centre outward.
type RoadBuilder struct {
	forwardLanes  []*LaneBuilder
	backwardLanes []*LaneBuilder
	Highway       schemes.Highway
	Oneway        Oneway
}

func (r *RoadBuilder) Len() int          { return len(r.forwardLanes) + len(r.backwardLanes) }
func (r *RoadBuilder) ForwardLen() int   { return len(r.forwardLanes) }
func (r *RoadBuilder) BackwardLen() int  { return len(r.backwardLanes) }

// ForwardInside is the motor-lane deque's innermost (road-centre) forward
// lane.
func (r *RoadBuilder) ForwardInside() *LaneBuilder {
	if len(r.forwardLanes) == 0 {
		return nil
	}
	return r.forwardLanes[0]
}

// ForwardOutside is the outermost forward lane.
func (r *RoadBuilder) ForwardOutside() *LaneBuilder {
	if len(r.forwardLanes) == 0 {
		return nil
	}
	return r.forwardLanes[len(r.forwardLanes)-1]
}

// BackwardInside is the innermost backward lane.
func (r *RoadBuilder) BackwardInside() *LaneBuilder {
	if len(r.backwardLanes) == 0 {
		return nil
	}
	return r.backwardLanes[0]
}

// BackwardOutside is the outermost backward lane.
func (r *RoadBuilder) BackwardOutside() *LaneBuilder {
	if len(r.backwardLanes) == 0 {
		return nil
	}
	return r.backwardLanes[len(r.backwardLanes)-1]
}

// PushForwardInside pushes a new innermost forward lane (toward the centre).
func (r *RoadBuilder) PushForwardInside(lb *LaneBuilder) {
	r.forwardLanes = append([]*LaneBuilder{lb}, r.forwardLanes...)
}

// PushForwardOutside pushes a new outermost forward lane.
func (r *RoadBuilder) PushForwardOutside(lb *LaneBuilder) {
	r.forwardLanes = append(r.forwardLanes, lb)
}

// PushBackwardInside pushes a new innermost backward lane.
func (r *RoadBuilder) PushBackwardInside(lb *LaneBuilder) {
	r.backwardLanes = append([]*LaneBuilder{lb}, r.backwardLanes...)
}

// PushBackwardOutside pushes a new outermost backward lane.
func (r *RoadBuilder) PushBackwardOutside(lb *LaneBuilder) {
	r.backwardLanes = append(r.backwardLanes, lb)
}

// ForwardLanes exposes the forward deque in insertion (centre-outward) order.
func (r *RoadBuilder) ForwardLanes() []*LaneBuilder { return r.forwardLanes }

// BackwardLanes exposes the backward deque in insertion (centre-outward)
// order.
func (r *RoadBuilder) BackwardLanes() []*LaneBuilder { return r.backwardLanes }

// LanesLTR iterates every lane left-to-right under loc's driving side.
func (r *RoadBuilder) LanesLTR(loc *locale.Locale) []*LaneBuilder {
	fwd := reverseLB(r.forwardLanes)
	bwd := reverseLB(r.backwardLanes)
	if loc.DrivingSide == locale.Left {
		return append(fwd, r.backwardLanes...)
	}
	return append(bwd, r.forwardLanes...)
}

func reverseLB(in []*LaneBuilder) []*LaneBuilder {
	out := make([]*LaneBuilder, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
