package schemes

import (
	"fmt"
	"strings"

	"github.com/azybler/osm2lanes/pkg/tags"
)

// LaneAccess is the per-lane access vocabulary (no, yes, designated) used by
// |-separated lane lists (bus:lanes, psv:lanes, cycleway:lanes, ...). Absent
// entries ("" between two pipes) parse as LaneAccessNone.
type LaneAccess int

const (
	LaneAccessNone LaneAccess = iota
	LaneAccessNo
	LaneAccessYes
	LaneAccessDesignated
)

func parseLaneAccess(s string) (LaneAccess, error) {
	switch s {
	case "":
		return LaneAccessNone, nil
	case "no":
		return LaneAccessNo, nil
	case "yes":
		return LaneAccessYes, nil
	case "designated":
		return LaneAccessDesignated, nil
	default:
		return 0, fmt.Errorf("unknown lane access value %q", s)
	}
}

func (a LaneAccess) String() string {
	switch a {
	case LaneAccessNo:
		return "no"
	case LaneAccessYes:
		return "yes"
	case LaneAccessDesignated:
		return "designated"
	default:
		return ""
	}
}

func splitLaneAccess(s string) ([]LaneAccess, error) {
	parts := strings.Split(s, "|")
	out := make([]LaneAccess, len(parts))
	for i, p := range parts {
		v, err := parseLaneAccess(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// LaneDependentAccessShape discriminates which of the |-separated access
// lists were actually tagged.
type LaneDependentAccessShape int

const (
	ShapeLeftToRight LaneDependentAccessShape = iota
	ShapeForward
	ShapeBackward
	ShapeForwardBackward
)

// LaneDependentAccess is the parsed form of a base key plus its :forward/
// :backward suffixes, read as |-separated per-lane access lists.
type LaneDependentAccess struct {
	Shape    LaneDependentAccessShape
	Total    []LaneAccess
	Forward  []LaneAccess
	Backward []LaneAccess
}

// LaneDependentAccessConflict reports that the base, :forward and :backward
// tags were mutually inconsistent.
type LaneDependentAccessConflict struct {
	Key tags.Key
}

func (e LaneDependentAccessConflict) Error() string {
	return fmt.Sprintf("conflicting lane-dependent access tags for %s", e.Key)
}

// LaneDependentAccessUnknown reports an unrecognized per-lane access value.
type LaneDependentAccessUnknown struct {
	Key   tags.Key
	Value string
}

func (e LaneDependentAccessUnknown) Error() string {
	return fmt.Sprintf("unknown lane access tag %s=%s", e.Key, e.Value)
}

func reverseLA(in []LaneAccess) []LaneAccess {
	out := make([]LaneAccess, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func equalLA(a, b []LaneAccess) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParseLaneDependentAccess reads key, key:forward and key:backward from t and
// combines them per the base/forward/backward reconciliation table: with no
// total and only one of forward/backward tagged, the result takes that shape
// directly; with both, it's ForwardBackward (checked against a tagged total,
// if any); with a total and at most one of forward/backward, it's
// LeftToRight (the directional list checked against the total's matching
// end). A mismatch between total and the directional split is a
// LaneDependentAccessConflict.
func ParseLaneDependentAccess(t *tags.Tags, key tags.Key) (*LaneDependentAccess, error) {
	getSplit := func(k tags.Key) ([]LaneAccess, bool, error) {
		v, ok := t.Get(k)
		if !ok {
			return nil, false, nil
		}
		la, err := splitLaneAccess(v)
		if err != nil {
			return nil, true, LaneDependentAccessUnknown{Key: k, Value: v}
		}
		return la, true, nil
	}

	total, hasTotal, err := getSplit(key)
	if err != nil {
		return nil, err
	}
	forward, hasForward, err := getSplit(key.PlusStr("forward"))
	if err != nil {
		return nil, err
	}
	backward, hasBackward, err := getSplit(key.PlusStr("backward"))
	if err != nil {
		return nil, err
	}

	switch {
	case !hasTotal && hasForward && !hasBackward:
		return &LaneDependentAccess{Shape: ShapeForward, Forward: forward}, nil
	case !hasTotal && !hasForward && hasBackward:
		return &LaneDependentAccess{Shape: ShapeBackward, Backward: backward}, nil
	case hasForward && hasBackward:
		if hasTotal {
			if len(forward)+len(backward) != len(total) {
				return nil, LaneDependentAccessConflict{Key: key}
			}
			combined := append(append([]LaneAccess{}, forward...), reverseLA(backward)...)
			if !equalLA(combined, total) {
				return nil, LaneDependentAccessConflict{Key: key}
			}
		}
		return &LaneDependentAccess{Shape: ShapeForwardBackward, Forward: forward, Backward: backward}, nil
	case hasTotal:
		if hasForward {
			n := len(forward)
			if n > len(total) || !equalLA(total[:n], forward) {
				return nil, LaneDependentAccessConflict{Key: key}
			}
		}
		if hasBackward {
			n := len(backward)
			if n > len(total) {
				return nil, LaneDependentAccessConflict{Key: key}
			}
			suffix := total[len(total)-n:]
			if !equalLA(suffix, reverseLA(backward)) {
				return nil, LaneDependentAccessConflict{Key: key}
			}
		}
		return &LaneDependentAccess{Shape: ShapeLeftToRight, Total: total}, nil
	default:
		return nil, nil
	}
}
