package road

import (
	"testing"

	"github.com/azybler/osm2lanes/pkg/schemes"
)

type fixedWidthLocale struct{ w Metre }

func (f fixedWidthLocale) TravelWidth(Designated, schemes.HighwayType) Metre { return f.w }

func TestRoadWidthSumsLanes(t *testing.T) {
	locale := fixedWidthLocale{w: 3}
	r := &Road{
		Highway: schemes.Highway{Type: schemes.HighwayType{Kind: schemes.KindResidential}},
		Lanes: []Lane{
			NewTravel(nil, Motor, nil, nil, nil),
			NewTravel(nil, Motor, nil, nil, nil),
			NewShoulder(nil),
		},
	}
	got := r.Width(locale)
	want := Metre(3 + 3 + DefaultLaneWidth)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMarkingsFlipInvertsKerb(t *testing.T) {
	m := Markings{{Style: KerbUp}, {Style: SolidLine}}
	flipped := m.Flip()
	if len(flipped) != 2 {
		t.Fatalf("expected 2, got %d", len(flipped))
	}
	if flipped[0].Style != SolidLine || flipped[1].Style != KerbDown {
		t.Fatalf("unexpected flip result: %+v", flipped)
	}
}

func TestLaneMarshalTravel(t *testing.T) {
	width := Metre(3.5)
	lane := NewTravel(nil, Motor, &width, nil, nil)
	data, err := lane.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	if want := `"type":"travel"`; !contains(s, want) {
		t.Fatalf("missing %q in %s", want, s)
	}
	if want := `"designated":"motor_vehicle"`; !contains(s, want) {
		t.Fatalf("missing %q in %s", want, s)
	}
}

func contains(s, sub string) bool {
	return len(s) >= len(sub) && (func() bool {
		for i := 0; i+len(sub) <= len(s); i++ {
			if s[i:i+len(sub)] == sub {
				return true
			}
		}
		return false
	})()
}
