package schemes

import "github.com/azybler/osm2lanes/pkg/tags"

// ParseHighway reads highway=* from t, following the construction/proposed
// indirection: highway=construction consults construction=* for the
// underlying type, highway=proposed consults proposed=*.
func ParseHighway(t *tags.Tags) (Highway, bool, error) {
	v, ok := t.Get(tags.Highway)
	if !ok {
		return Highway{}, false, nil
	}
	switch v {
	case "construction":
		under, ok := t.Get(tags.Construction)
		if !ok {
			return Highway{}, true, nil
		}
		ty, err := ParseHighwayType(under)
		if err != nil {
			return Highway{}, true, err
		}
		return Highway{Type: ty, Lifecycle: Construction}, true, nil
	case "proposed":
		under, ok := t.Get(tags.Proposed)
		if !ok {
			return Highway{}, true, nil
		}
		ty, err := ParseHighwayType(under)
		if err != nil {
			return Highway{}, true, err
		}
		return Highway{Type: ty, Lifecycle: Proposed}, true, nil
	default:
		ty, err := ParseHighwayType(v)
		if err != nil {
			return Highway{}, true, err
		}
		return Highway{Type: ty, Lifecycle: Active}, true, nil
	}
}
