package fixtures

import (
	"testing"

	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/transform/tagstolanes"
)

const sampleYAML = `
- way_id: 1001
  description: two-lane two-way residential street
  driving_side: right
  tags:
    highway: residential
    lanes: "2"
  output:
    - type: travel
      direction: backward
      designated: motor_vehicle
    - type: travel
      direction: forward
      designated: motor_vehicle

- way_id: 1002
  description: oneway motorway, three lanes, disabled for now
  driving_side: right
  tags:
    highway: motorway
    oneway: "yes"
    lanes: "3"
  output:
    - type: travel
      direction: forward
      designated: motor_vehicle
  rust: false

- way_id: 1003
  description: cycleway on the right under left-hand traffic
  driving_side: left
  "ISO 3166-2": GB
  tags:
    highway: residential
    lanes: "2"
    cycleway:right: lane
  output:
    - type: travel
      direction: forward
      designated: motor_vehicle
    - type: travel
      direction: backward
      designated: motor_vehicle
    - type: travel
      direction: backward
      designated: bicycle
  rust:
    separator: false
`

// approxEqualLane compares two lanes the way the fixture format intends: a
// nil/absent field on either side matches anything, since most fixtures only
// pin down the fields they care about.
func approxEqualLane(actual, expected road.Lane) bool {
	if actual.Kind != expected.Kind {
		return false
	}
	switch actual.Kind {
	case road.KindTravel, road.KindParking:
		if actual.Designated != expected.Designated {
			return false
		}
		if actual.Direction != nil && expected.Direction != nil && *actual.Direction != *expected.Direction {
			return false
		}
		if actual.Width != nil && expected.Width != nil && *actual.Width != *expected.Width {
			return false
		}
	case road.KindSeparator:
		if actual.Semantic != nil && expected.Semantic != nil && *actual.Semantic != *expected.Semantic {
			return false
		}
	}
	return true
}

func approxEqualLanes(actual, expected []road.Lane) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if !approxEqualLane(actual[i], expected[i]) {
			return false
		}
	}
	return true
}

func TestLoadAndRunFixtures(t *testing.T) {
	cases, err := Load([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// way/1002 is disabled (rust: false) and must be filtered out.
	if len(cases) != 2 {
		t.Fatalf("expected 2 enabled cases, got %d", len(cases))
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name(), func(t *testing.T) {
			loc, err := tc.Locale()
			if err != nil {
				t.Fatalf("Locale: %v", err)
			}
			got, warnings, err := tagstolanes.TagsToLanes(&tc.Tags, loc, tagstolanes.Config{})
			if err != nil {
				t.Fatalf("TagsToLanes: %v", err)
			}
			if tc.ExpectWarnings() && warnings.Len() == 0 {
				t.Fatalf("expected at least one warning, got none")
			}

			gotLanes := tc.FilterLanes(got.Lanes)
			wantLanes := tc.FilterLanes(tc.Lanes())
			if !approxEqualLanes(gotLanes, wantLanes) {
				t.Fatalf("lane mismatch:\n got:  %+v\n want: %+v", gotLanes, wantLanes)
			}
		})
	}
}

func TestDisabledCaseIsExcluded(t *testing.T) {
	cases, err := Load([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, tc := range cases {
		if tc.WayID != nil && *tc.WayID == 1002 {
			t.Fatalf("way/1002 should have been filtered out by Enabled()")
		}
	}
}
