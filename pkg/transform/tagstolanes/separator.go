package tagstolanes

import (
	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/tags"
)

// SpeedClass buckets a max-speed reading into the class that actually drives
// separator choice; the exact kph rarely matters, the bucket does.
type SpeedClass int

const (
	SpeedWalking SpeedClass = iota
	SpeedLiving
	SpeedIntra
	SpeedInter
	SpeedMax
)

func speedClassFromSpeed(s road.Speed) SpeedClass {
	kph := s.Kph()
	switch {
	case kph < 15:
		return SpeedWalking
	case kph < 40:
		return SpeedLiving
	case kph < 70:
		return SpeedIntra
	case kph < 100:
		return SpeedInter
	default:
		return SpeedMax
	}
}

// ParkingCondition narrows a Kerb/Hard edge separator's meaning.
type ParkingCondition int

const (
	ParkingConditionNone ParkingCondition = iota
	ParkingConditionNoStopping
)

// SeparatorKind discriminates the semantic separator sum type.
type SeparatorKind int

const (
	SeparatorShoulder SeparatorKind = iota
	SeparatorLane
	SeparatorCentre
	SeparatorModal
	SeparatorKerb
)

// SemanticSeparator is the inferred meaning of the paint or kerb between two
// adjacent lanes, before it is rendered into concrete road.Markings.
type SemanticSeparator struct {
	Kind             SeparatorKind
	Speed            *SpeedClass
	MoreThanTwoLanes bool
	Inside           road.Designated
	Outside          road.Designated
	ParkingCondition ParkingCondition
}

// EdgeSeparator is the separator rule applied at the outer edge of the road,
// where there is no outside neighbor lane.
type EdgeSeparator struct {
	ParkingCondition ParkingCondition
}

func directionsOpposeOrMatch(inside, outside *road.Direction) (same, opposite bool) {
	if inside == nil || outside == nil || *inside == road.Both || *outside == road.Both {
		return false, false
	}
	if *inside == *outside {
		return true, false
	}
	return false, true
}

// lanePairToSemanticSeparator decides the separator semantic between a pair
// of adjacent draft lanes, given left-to-right order (inside is nearer the
// road centre).
func lanePairToSemanticSeparator(inside, outside *LaneBuilder, rb *RoadBuilder, warnings *diag.Warnings) *SemanticSeparator {
	insideSpeed := func() *SpeedClass {
		if s, ok := inside.MaxSpeed.Some(); ok {
			c := speedClassFromSpeed(s)
			return &c
		}
		return nil
	}

	insideDesignated, insideHasDesignated := inside.Designated.Some()
	outsideDesignated, outsideHasDesignated := outside.Designated.Some()
	outsideType, _ := outside.Type.Some()

	switch {
	case outsideHasDesignated && outsideDesignated == road.Foot:
		return &SemanticSeparator{Kind: SeparatorKerb}
	case outsideType == LaneTypeShoulder:
		return &SemanticSeparator{Kind: SeparatorShoulder, Speed: insideSpeed()}
	case insideHasDesignated && outsideHasDesignated && insideDesignated == road.Motor && outsideDesignated == road.Motor:
		return motorPairToSemanticSeparator(inside, outside, rb, warnings)
	case insideHasDesignated && outsideHasDesignated && insideDesignated != outsideDesignated:
		return &SemanticSeparator{Kind: SeparatorModal, Speed: insideSpeed(), Inside: insideDesignated, Outside: outsideDesignated}
	default:
		warnings.Push(diag.SeparatorUnknown(mustBuild(inside), mustBuild(outside)))
		return nil
	}
}

func mustBuild(lb *LaneBuilder) road.Lane {
	l, err := lb.Build()
	if err != nil {
		return road.Lane{}
	}
	return l
}

func motorPairToSemanticSeparator(inside, outside *LaneBuilder, rb *RoadBuilder, warnings *diag.Warnings) *SemanticSeparator {
	var insideSpeed *SpeedClass
	if s, ok := inside.MaxSpeed.Some(); ok {
		c := speedClassFromSpeed(s)
		insideSpeed = &c
	}

	motorCount := 0
	for _, lb := range rb.forwardLanes {
		t, _ := lb.Type.Some()
		d, _ := lb.Designated.Some()
		if t == LaneTypeTravel && (d == road.Motor || d == road.Bus) {
			motorCount++
		}
	}
	for _, lb := range rb.backwardLanes {
		t, _ := lb.Type.Some()
		d, _ := lb.Designated.Some()
		if t == LaneTypeTravel && (d == road.Motor || d == road.Bus) {
			motorCount++
		}
	}

	if motorCount == 2 {
		return &SemanticSeparator{Kind: SeparatorCentre, Speed: insideSpeed, MoreThanTwoLanes: false}
	}

	insideDir, _ := inside.Direction.Some()
	outsideDir, _ := outside.Direction.Some()
	same, _ := directionsOpposeOrMatch(&insideDir, &outsideDir)
	if same {
		return &SemanticSeparator{Kind: SeparatorLane, Speed: insideSpeed}
	}
	return &SemanticSeparator{Kind: SeparatorCentre, Speed: insideSpeed, MoreThanTwoLanes: true}
}

func metre(v road.Metre) *road.Metre { return &v }
func col(c road.Color) *road.Color   { return &c }

// semanticSeparatorToLane renders a decided separator semantic into concrete
// markings, given the road's locale.
func semanticSeparatorToLane(inside, outside *LaneBuilder, sep *SemanticSeparator, t *tags.Tags, loc *locale.Locale, warnings *diag.Warnings) road.Lane {
	switch sep.Kind {
	case SeparatorKerb:
		m := road.Markings{{Style: road.KerbUp, Width: metre(road.DefaultMarkingWidth)}}
		sem := road.SemanticKerb
		return road.NewSeparator(&sem, &m)

	case SeparatorShoulder:
		m := road.Markings{{Style: road.SolidLine, Color: col(road.White), Width: metre(road.DefaultMarkingWidth)}}
		sem := road.SemanticShoulder
		return road.NewSeparator(&sem, &m)

	case SeparatorCentre:
		if t.Is(tags.MotorRoad, "yes") && loc.Country.Is(locale.TheNetherlands) {
			// https://puc.overheid.nl/rijkswaterstaat/doc/PUC_125514_31/ 4.2.5/4.2.6
			m := road.Markings{
				{Style: road.BrokenLine, Color: col(road.White), Width: metre(0.15)},
				{Style: road.SolidLine, Color: col(road.Green), Width: metre(2 * road.DefaultMarkingSpace)},
				{Style: road.BrokenLine, Color: col(road.White), Width: metre(0.15)},
			}
			sem := road.SemanticCentre
			return road.NewSeparator(&sem, &m)
		}
		if loc.Country.Is(locale.UnitedKingdom) {
			// Traffic Signs Manual, Chapter 3, page 90, 9.3.3
			m := road.Markings{{Style: road.BrokenLine, Color: col(road.White), Width: metre(0.1)}}
			sem := road.SemanticCentre
			return road.NewSeparator(&sem, &m)
		}
		warnings.Push(diag.SeparatorLocaleUnused(mustBuild(inside), mustBuild(outside)))
		var m road.Markings
		if sep.MoreThanTwoLanes {
			m = road.Markings{
				{Style: road.SolidLine, Color: col(road.White), Width: metre(road.DefaultMarkingWidth)},
				{Style: road.NoFill, Width: metre(road.DefaultMarkingSpace)},
				{Style: road.SolidLine, Color: col(road.White), Width: metre(road.DefaultMarkingWidth)},
			}
		} else {
			c := loc.SeparatorMotorColor()
			w := loc.SeparatorMotorWidth()
			m = road.Markings{{Style: road.DottedLine, Color: &c, Width: &w}}
		}
		sem := road.SemanticCentre
		return road.NewSeparator(&sem, &m)

	case SeparatorLane:
		m := road.Markings{{Style: road.DottedLine, Color: col(road.White), Width: metre(road.DefaultMarkingWidth)}}
		sem := road.SemanticLane
		return road.NewSeparator(&sem, &m)

	case SeparatorModal:
		if loc.Country.Is(locale.UnitedKingdom) {
			switch sep.Outside {
			case road.Bus:
				m := road.Markings{{Style: road.SolidLine, Color: col(road.White), Width: metre(0.25)}}
				sem := road.SemanticModal
				return road.NewSeparator(&sem, &m)
			case road.Bicycle:
				m := road.Markings{{Style: road.SolidLine, Color: col(road.White), Width: metre(0.15)}}
				sem := road.SemanticModal
				return road.NewSeparator(&sem, &m)
			}
		}
		warnings.Push(diag.SeparatorLocaleUnused(mustBuild(inside), mustBuild(outside)))
		m := road.Markings{{Style: road.SolidLine, Color: col(road.White), Width: metre(road.DefaultMarkingWidth)}}
		sem := road.SemanticModal
		return road.NewSeparator(&sem, &m)

	default:
		warnings.Push(diag.SeparatorUnknown(mustBuild(inside), mustBuild(outside)))
		m := road.Markings{{Style: road.BrokenLine, Color: col(road.Red), Width: metre(road.DefaultMarkingWidth)}}
		sem := road.SemanticModal
		return road.NewSeparator(&sem, &m)
	}
}

// outerEdgeSeparator is the separator rule at the road's outer edge, where
// there is no neighboring lane outside.
func outerEdgeSeparator(lb *LaneBuilder, t *tags.Tags, loc *locale.Locale) *EdgeSeparator {
	ty, _ := lb.Type.Some()
	if ty == LaneTypeTravel && loc.Country.Is(locale.UnitedKingdom) && t.Is(tags.ParkingCondBoth, "no_stopping") {
		return &EdgeSeparator{ParkingCondition: ParkingConditionNoStopping}
	}
	return nil
}

func edgeSeparatorToLane(sep *EdgeSeparator) road.Lane {
	m := road.Markings{
		{Style: road.SolidLine, Color: col(road.Red), Width: metre(0.1)},
		{Style: road.NoFill, Width: metre(0.08)},
		{Style: road.SolidLine, Color: col(road.Red), Width: metre(0.1)},
	}
	sem := road.SemanticHard
	return road.NewSeparator(&sem, &m)
}

// innerEdgeSeparator is the separator at the road's inner edge (the centre
// line, where there is no inside neighbor).
func innerEdgeSeparator() road.Lane {
	m := road.Markings{{Style: road.SolidLine, Color: col(road.White), Width: metre(road.DefaultMarkingWidth)}}
	sem := road.SemanticCentre
	return road.NewSeparator(&sem, &m)
}
