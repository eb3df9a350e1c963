package locale

import (
	"testing"

	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
)

func TestBuilderResolvesSubdivision(t *testing.T) {
	l, err := NewBuilder().DrivingSide(Right).ISO3166("DE-NW").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.DrivingSide != Right {
		t.Fatalf("expected Right, got %v", l.DrivingSide)
	}
	if l.Country == nil || l.Country.Alpha2 != "DE" {
		t.Fatalf("expected DE, got %+v", l.Country)
	}
	if l.Subdivision != "NW" {
		t.Fatalf("expected NW, got %q", l.Subdivision)
	}
}

func TestBuilderUnknownCodeIsError(t *testing.T) {
	_, err := NewBuilder().ISO3166("ZZ").Build()
	if err == nil {
		t.Fatal("expected an error, not a panic, for an unresolvable code")
	}
}

func TestTravelWidthUKMotor(t *testing.T) {
	l, _ := NewBuilder().ISO3166("GB").Build()
	got := l.TravelWidth(road.Motor, schemes.HighwayType{Kind: schemes.KindResidential})
	if got != 3.0 {
		t.Fatalf("expected 3.0, got %v", got)
	}
}

func TestHasShoulderExcludesTrunkLink(t *testing.T) {
	l, _ := NewBuilder().Build()
	trunkLink := schemes.HighwayType{Kind: schemes.KindLink, Importance: schemes.Trunk}
	if l.HasShoulder(trunkLink) {
		t.Fatal("trunk_link must not default to having a shoulder")
	}
	trunk := schemes.HighwayType{Kind: schemes.KindClassified, Importance: schemes.Trunk}
	if !l.HasShoulder(trunk) {
		t.Fatal("trunk should default to having a shoulder")
	}
}

func TestSeparatorMotorColorAmericas(t *testing.T) {
	l, _ := NewBuilder().ISO3166("US").Build()
	if got := l.SeparatorMotorColor(); got != road.Yellow {
		t.Fatalf("expected yellow, got %v", got)
	}
}
