package road

import "github.com/azybler/osm2lanes/pkg/schemes"

// Road is the canonical left-to-right lane description produced by
// tags→lanes and consumed by lanes→tags.
type Road struct {
	Name       *string
	Ref        *string
	Highway    schemes.Highway
	Lit        *string
	TrackType  *schemes.TrackType
	Smoothness *schemes.Smoothness
	Lanes      []Lane
}

// Width sums the per-lane widths given locale.
func (r *Road) Width(locale TravelWidther) Metre {
	var total Metre
	for _, lane := range r.Lanes {
		total += lane.EffectiveWidth(locale, r.Highway.Type)
	}
	return total
}

// HasSeparators reports whether any lane in r is a Separator.
func (r *Road) HasSeparators() bool {
	for _, lane := range r.Lanes {
		if lane.IsSeparator() {
			return true
		}
	}
	return false
}
