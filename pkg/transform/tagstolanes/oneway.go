package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// Oneway is whether the way carries travel in one direction only.
type Oneway bool

const (
	OnewayYes Oneway = true
	OnewayNo  Oneway = false
)

// parseOneway reads oneway=* and junction=roundabout, treating a roundabout
// as an implicit oneway unless oneway=no explicitly overrides it (which is
// ambiguous and reported as such).
func parseOneway(t *tags.Tags) (Oneway, error) {
	roundabout := t.Is(tags.Junction, "roundabout")
	v, ok := t.Get(tags.Oneway)
	switch {
	case ok && v == "yes":
		return OnewayYes, nil
	case ok && v == "no" && !roundabout:
		return OnewayNo, nil
	case ok && v == "no" && roundabout:
		return OnewayNo, diag.ErrMsg(diag.Ambiguous("oneway=no on a roundabout junction", t.Subset(tags.Oneway, tags.Junction)))
	case ok:
		return OnewayNo, diag.ErrMsg(diag.Unimplemented("unrecognized oneway value", tags.FromPair(tags.Oneway, v)))
	default:
		return Oneway(roundabout), nil
	}
}
