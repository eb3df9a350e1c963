// Package fixtures loads YAML test cases in the shape the original
// osm2lanes tool used for its data-driven tests, the external collaborator
// that supplies tags→lanes/lanes→tags with real-world-shaped inputs instead
// of hand-built ones.
package fixtures

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/invopop/yaml"

	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// rustOptions is the "with options" shape of the rust field: an object
// selectively overriding which aspects of a test case are checked.
type rustOptions struct {
	Separator      *bool `json:"separator,omitempty"`
	ExpectWarnings *bool `json:"expect_warnings,omitempty"`
}

// rustTesting mirrors an untagged enum: either a bare bool (shorthand for
// "enabled") or an options object.
type rustTesting struct {
	enabled *bool
	options *rustOptions
}

func (r *rustTesting) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		r.enabled = &b
		return nil
	}
	var opts rustOptions
	if err := json.Unmarshal(data, &opts); err != nil {
		return fmt.Errorf("rust: expected a bool or an options object: %w", err)
	}
	r.options = &opts
	return nil
}

func (r *rustTesting) MarshalJSON() ([]byte, error) {
	if r == nil {
		return json.Marshal(nil)
	}
	if r.enabled != nil {
		return json.Marshal(*r.enabled)
	}
	return json.Marshal(r.options)
}

// TestCase is one entry of a fixtures file: the tags/locale input alongside
// the Road or lane list it is expected to produce, plus metadata and the
// knobs controlling how strictly it is checked.
type TestCase struct {
	WayID       *int64  `json:"way_id,omitempty"`
	Link        *string `json:"link,omitempty"`
	Comment     *string `json:"comment,omitempty"`
	Description *string `json:"description,omitempty"`
	Example     *string `json:"example,omitempty"`

	DrivingSide string  `json:"driving_side"`
	ISO31662    *string `json:"ISO 3166-2,omitempty"`

	Tags tags.Tags `json:"tags"`

	// Expected output, in either its current shape (Road) or the legacy
	// bare-lane-list shape (Output).
	Road   *road.Road  `json:"road,omitempty"`
	Output []road.Lane `json:"output,omitempty"`

	Rust *rustTesting `json:"rust,omitempty"`
}

// Name renders a short human-readable label for this case, preferring its
// way id, then link, then description, matching how the original reports a
// failing case.
func (tc *TestCase) Name() string {
	if tc.WayID != nil {
		return fmt.Sprintf("way/%d", *tc.WayID)
	}
	if tc.Link != nil {
		return *tc.Link
	}
	if tc.Description != nil {
		return *tc.Description
	}
	return "<unnamed test case>"
}

// Lanes returns the expected lane list, from whichever of Road/Output is
// populated.
func (tc *TestCase) Lanes() []road.Lane {
	if tc.Road != nil {
		return tc.Road.Lanes
	}
	return tc.Output
}

// ExpectedRoad returns the expected Road, synthesizing a bare unknown-highway
// Road around Output when only the legacy lane-list shape is present.
func (tc *TestCase) ExpectedRoad() road.Road {
	if tc.Road != nil {
		return *tc.Road
	}
	return road.Road{
		Highway: schemes.Highway{Type: schemes.HighwayType{Kind: schemes.KindUnknownRoad}},
		Lanes:   tc.Output,
	}
}

// Enabled reports whether this case should run at all, true by default.
func (tc *TestCase) Enabled() bool {
	if tc.Rust != nil && tc.Rust.enabled != nil {
		return *tc.Rust.enabled
	}
	return true
}

// ExpectWarnings reports whether this case's tags→lanes run is expected to
// produce at least one warning, false by default.
func (tc *TestCase) ExpectWarnings() bool {
	if tc.Rust == nil {
		return false
	}
	if tc.Rust.enabled != nil {
		return false
	}
	if tc.Rust.options != nil && tc.Rust.options.ExpectWarnings != nil {
		return *tc.Rust.options.ExpectWarnings
	}
	return false
}

// IncludeSeparators reports whether this case's expected separator lanes
// should be checked against the transform's output, true by default.
func (tc *TestCase) IncludeSeparators() bool {
	if tc.Rust == nil {
		return true
	}
	if tc.Rust.enabled != nil {
		return *tc.Rust.enabled
	}
	if tc.Rust.options != nil && tc.Rust.options.Separator != nil {
		return *tc.Rust.options.Separator
	}
	return true
}

// ExpectedHasSeparators reports whether the expected lane list itself
// contains any Separator lane.
func (tc *TestCase) ExpectedHasSeparators() bool {
	for _, l := range tc.Lanes() {
		if l.IsSeparator() {
			return true
		}
	}
	return false
}

// IsLaneEnabled reports whether lane should be compared for this case:
// separator lanes are only compared when both IncludeSeparators and
// ExpectedHasSeparators hold, matching the original's filtering so that
// fixtures written before separator inference existed keep passing.
func (tc *TestCase) IsLaneEnabled(lane road.Lane) bool {
	if lane.IsSeparator() {
		return tc.IncludeSeparators() && tc.ExpectedHasSeparators()
	}
	return true
}

// FilterLanes drops every lane IsLaneEnabled rejects, in place order.
func (tc *TestCase) FilterLanes(lanes []road.Lane) []road.Lane {
	out := make([]road.Lane, 0, len(lanes))
	for _, l := range lanes {
		if tc.IsLaneEnabled(l) {
			out = append(out, l)
		}
	}
	return out
}

// Locale builds the locale this case's tags should be interpreted under.
func (tc *TestCase) Locale() (*locale.Locale, error) {
	side, ok := locale.ParseDrivingSide(tc.DrivingSide)
	if !ok {
		return nil, fmt.Errorf("%s: unknown driving_side %q", tc.Name(), tc.DrivingSide)
	}
	b := locale.NewBuilder().DrivingSide(side)
	if tc.ISO31662 != nil {
		b = b.ISO3166(*tc.ISO31662)
	}
	return b.Build()
}

// Load parses a YAML fixtures document (a top-level list of TestCase) and
// returns only the enabled cases, in file order.
func Load(data []byte) ([]*TestCase, error) {
	var all []*TestCase
	if err := yaml.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("fixtures: invalid yaml: %w", err)
	}
	out := make([]*TestCase, 0, len(all))
	for _, tc := range all {
		if tc.Enabled() {
			out = append(out, tc)
		}
	}
	return out, nil
}
