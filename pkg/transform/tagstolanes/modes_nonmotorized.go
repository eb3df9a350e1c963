package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// applyNonMotorized special-cases highway=path/steps: a single foot-only,
// bidirectional lane with motor traffic denied.
func applyNonMotorized(t *tags.Tags, rb *RoadBuilder, warnings *diag.Warnings) error {
	if !rb.Highway.Type.IsNonMotorized() {
		return nil
	}

	v, ok := t.Get(tags.Highway)
	if !ok || (v != "steps" && v != "path") {
		return nil
	}

	if rb.Len() != 1 {
		return diag.ErrMsg(diag.Internal("expected exactly one lane before non-motorized finalization"))
	}
	lb := rb.ForwardOutside()
	if lb == nil {
		return diag.ErrMsg(diag.Internal("expected a forward lane for a non-motorized highway"))
	}

	both := road.Both
	if err := lb.Designated.Set(diag.InferDirect(road.Foot)); err != nil {
		return err
	}
	if err := lb.Direction.Set(diag.InferDirect(both)); err != nil {
		return err
	}

	access, _ := lb.Access.Some()
	access.Foot = &road.AccessAndDirection{Access: schemes.AccessDesignated}
	access.Motor = &road.AccessAndDirection{Access: schemes.AccessNo}
	if err := lb.Access.Set(diag.InferDirect(access)); err != nil {
		return err
	}

	if v == "steps" {
		warnings.Push(diag.Unimplemented("steps becomes sidewalk", t.Subset(tags.Highway)))
	}
	return nil
}
