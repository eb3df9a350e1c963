package locale

import (
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
)

// DrivingSide is which side of the road vehicles travel on.
type DrivingSide int

const (
	Right DrivingSide = iota
	Left
)

// Opposite returns the other driving side.
func (d DrivingSide) Opposite() DrivingSide {
	if d == Right {
		return Left
	}
	return Right
}

func (d DrivingSide) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// ParseDrivingSide parses driving_side=*.
func ParseDrivingSide(s string) (DrivingSide, bool) {
	switch s {
	case "right":
		return Right, true
	case "left":
		return Left, true
	default:
		return 0, false
	}
}

// Locale carries context about the place where an OSM way exists: its
// country, subdivision, and driving side. Shared by reference across a
// single transform call.
type Locale struct {
	Country       *Country
	Subdivision   string
	DrivingSide   DrivingSide
}

// TravelWidth returns the default lane width for designated on highway,
// given this locale's country.
func (l *Locale) TravelWidth(designated road.Designated, highway schemes.HighwayType) road.Metre {
	switch designated {
	case road.Motor, road.Bus:
		switch {
		case l.Country.Is(UnitedKingdom):
			return 3.0
		case l.Country.Is(TheNetherlands):
			// https://puc.overheid.nl/rijkswaterstaat/doc/PUC_125514_31/ section 4.2.5
			return 3.35
		default:
			return 3.5
		}
	case road.Foot:
		return 2.5
	case road.Bicycle:
		return 2.0
	default:
		return road.DefaultLaneWidth
	}
}

// SeparatorMotorColor is the paint color separating opposite directions of
// motor traffic: yellow in the Americas, white elsewhere.
func (l *Locale) SeparatorMotorColor() road.Color {
	if l.Country != nil && l.Country.Region == RegionAmericas {
		return road.Yellow
	}
	return road.White
}

// SeparatorMotorWidth is the road-marking width separating opposite
// directions of motor traffic.
func (l *Locale) SeparatorMotorWidth() road.Metre {
	if l.Country.Is(UnitedKingdom) {
		// https://en.wikisource.org/wiki/Traffic_Signs_Manual/Chapter_5/2009/4
		return 0.1
	}
	return 0.2
}

// HasSplitLanes reports whether a highway with no lanes=* tag defaults to two
// opposite-direction lanes (true) rather than one shared both-ways lane
// (false).
func (l *Locale) HasSplitLanes(highway schemes.HighwayType) bool {
	switch highway.Kind {
	case schemes.KindClassified, schemes.KindLink:
		return true
	case schemes.KindResidential:
		return true
	default:
		return false
	}
}

// HasShoulder reports whether this highway class gets a default shoulder,
// absent explicit shoulder=* tagging. Restrictive variant: excludes
// trunk_link (resolved Open Question — see DESIGN.md).
func (l *Locale) HasShoulder(highway schemes.HighwayType) bool {
	switch highway.Kind {
	case schemes.KindClassified:
		switch highway.Importance {
		case schemes.Motorway, schemes.Trunk, schemes.Primary, schemes.Secondary:
			return true
		}
		return false
	case schemes.KindLink:
		switch highway.Importance {
		case schemes.Motorway, schemes.Primary, schemes.Secondary:
			return true
		}
		return false
	default:
		return false
	}
}
