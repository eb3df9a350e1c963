// Package tagstolanes implements the tags→lanes transform: turning a way's
// OSM tags into a locale-aware, left-to-right Road description.
package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// Config controls optional behavior of TagsToLanes.
type Config struct {
	// ErrorOnWarnings turns any non-empty warnings list into an error.
	ErrorOnWarnings bool
	// IncludeSeparators additionally infers and emits Separator lanes
	// between every pair of adjacent lanes.
	IncludeSeparators bool
}

// TagsToLanes converts a way's tags into a Road under the given locale.
func TagsToLanes(t *tags.Tags, loc *locale.Locale, cfg Config) (*road.Road, *diag.Warnings, error) {
	warnings := &diag.Warnings{}

	oneway, err := parseOneway(t)
	if err != nil {
		return nil, warnings, err
	}

	busway := parseBuswayScheme(t, oneway, loc, warnings)

	rb, err := newRoadBuilder(t, loc, busway, warnings)
	if err != nil {
		return nil, warnings, err
	}

	if err := applyNonMotorized(t, rb, warnings); err != nil {
		return nil, warnings, err
	}

	if err := applyBusway(rb, busway); err != nil {
		return nil, warnings, err
	}

	cycleway := parseCyclewayScheme(t, loc, oneway, warnings)
	if err := applyBicycle(rb, cycleway); err != nil {
		return nil, warnings, err
	}

	applyParking(t, rb)

	if err := applyFootAndShoulder(t, loc, rb, warnings); err != nil {
		return nil, warnings, err
	}

	checkUnsupported(t, warnings)

	lanes, err := rb.IntoLTR(t, loc, cfg.IncludeSeparators, warnings)
	if err != nil {
		return nil, warnings, err
	}

	r := &road.Road{
		Highway: rb.Highway,
		Lanes:   lanes,
	}
	if v, ok := t.Get(tags.Name); ok {
		r.Name = &v
	}
	if v, ok := t.Get(tags.Ref); ok {
		r.Ref = &v
	}
	if v, ok := t.Get(tags.Lit); ok {
		r.Lit = &v
	}
	if v, ok := t.Get(tags.TrackType); ok {
		if tt, err := schemes.ParseTrackType(v); err == nil {
			r.TrackType = &tt
		} else {
			warnings.Push(diag.UnsupportedTag(tags.TrackType, v))
		}
	}
	if v, ok := t.Get(tags.Smoothness); ok {
		if s, err := schemes.ParseSmoothness(v); err == nil {
			r.Smoothness = &s
		} else {
			warnings.Push(diag.UnsupportedTag(tags.Smoothness, v))
		}
	}

	if cfg.ErrorOnWarnings && !warnings.IsEmpty() {
		return r, warnings, diag.ErrWarnings(warnings)
	}
	return r, warnings, nil
}
