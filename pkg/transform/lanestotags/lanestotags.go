// Package lanestotags implements the reverse projection: turning a Road's
// left-to-right lane list back into OSM way tags.
package lanestotags

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/azybler/osm2lanes/pkg/diag"
	"github.com/azybler/osm2lanes/pkg/locale"
	"github.com/azybler/osm2lanes/pkg/road"
	"github.com/azybler/osm2lanes/pkg/schemes"
	"github.com/azybler/osm2lanes/pkg/tags"
	"github.com/azybler/osm2lanes/pkg/transform/tagstolanes"
)

// Config controls optional behavior of LanesToTags.
type Config struct {
	// CheckRoundtrip re-runs tags→lanes on the emitted tags and fails if the
	// result doesn't deep-equal the input lanes.
	CheckRoundtrip bool
}

// DefaultConfig matches the reference implementation's default: always
// check the roundtrip.
func DefaultConfig() Config {
	return Config{CheckRoundtrip: true}
}

func insert(t *tags.Tags, key tags.Key, val string) error {
	if err := t.Insert(key, val); err != nil {
		dup, _ := err.(*tags.DuplicateKeyError)
		return diag.ErrMsg(diag.TagsDuplicateKey(dup))
	}
	return nil
}

// LanesToTags converts a Road back into way tags.
func LanesToTags(r *road.Road, loc *locale.Locale, cfg Config) (*tags.Tags, error) {
	t := tags.New()

	hasTraffic := false
	for _, l := range r.Lanes {
		if l.IsMotor() || l.IsBus() {
			hasTraffic = true
			break
		}
	}
	if !hasTraffic {
		if err := insert(t, tags.Highway, "path"); err != nil {
			return nil, err
		}
		return t, nil
	}

	if err := insert(t, tags.Highway, r.Highway.Type.String()); err != nil {
		return nil, err
	}
	if r.Highway.Lifecycle == schemes.Construction {
		return nil, diag.ErrMsg(diag.Unimplemented("construction=*", nil))
	}
	if r.Highway.Lifecycle == schemes.Proposed {
		return nil, diag.ErrMsg(diag.Unimplemented("proposed=*", nil))
	}

	lanes := r.Lanes
	if len(lanes) == 0 {
		return nil, diag.ErrMsg(diag.Internal("road has traffic but no lanes"))
	}

	laneCount, err := setLanes(lanes, t)
	if err != nil {
		return nil, err
	}
	oneway, err := setOneway(lanes, t, loc, laneCount)
	if err != nil {
		return nil, err
	}

	if err := setShoulder(lanes, t); err != nil {
		return nil, err
	}
	if err := setPedestrian(lanes, t); err != nil {
		return nil, err
	}
	if err := setParking(lanes, t); err != nil {
		return nil, err
	}
	if err := setCycleway(lanes, t, oneway, loc); err != nil {
		return nil, err
	}
	if err := setBusway(lanes, t, oneway); err != nil {
		return nil, err
	}

	maxSpeed, err := getMaxSpeed(lanes, t)
	if err != nil {
		return nil, err
	}

	if err := localeAdditions(maxSpeed, loc, t); err != nil {
		return nil, err
	}

	if cfg.CheckRoundtrip {
		if err := checkRoundtrip(t, loc, lanes); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func setLanes(lanes []road.Lane, t *tags.Tags) (int, error) {
	count := 0
	for _, l := range lanes {
		if l.IsMotor() || l.IsBus() {
			count++
		}
	}
	if err := insert(t, tags.Lanes, fmt.Sprintf("%d", count)); err != nil {
		return 0, err
	}
	return count, nil
}

// setOneway returns whether the road is oneway.
func setOneway(lanes []road.Lane, t *tags.Tags, loc *locale.Locale, laneCount int) (bool, error) {
	allForward := true
	for _, l := range lanes {
		if !l.IsMotor() {
			continue
		}
		if l.Direction == nil || *l.Direction != road.Forward {
			allForward = false
			break
		}
	}
	if allForward {
		if err := insert(t, tags.Oneway, "yes"); err != nil {
			return false, err
		}
		return true, nil
	}

	forward, backward := 0, 0
	for _, l := range lanes {
		if !(l.IsMotor() || l.IsBus()) || l.Direction == nil {
			continue
		}
		switch *l.Direction {
		case road.Forward:
			forward++
		case road.Backward:
			backward++
		}
	}
	if err := insert(t, tags.LanesForward, fmt.Sprintf("%d", forward)); err != nil {
		return false, err
	}
	if err := insert(t, tags.LanesBackward, fmt.Sprintf("%d", backward)); err != nil {
		return false, err
	}

	hasBothWays := false
	for _, l := range lanes {
		if l.IsMotor() && l.Direction != nil && *l.Direction == road.Both {
			hasBothWays = true
			break
		}
	}
	if hasBothWays {
		if err := insert(t, tags.LanesBothWays, "1"); err != nil {
			return false, err
		}
		if laneCount >= 3 {
			if err := insert(t, tags.TurnLanesBothWays, loc.DrivingSide.Opposite().String()); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

func setShoulder(lanes []road.Lane, t *tags.Tags) error {
	left, right := lanes[0].IsShoulder(), lanes[len(lanes)-1].IsShoulder()
	switch {
	case !left && !right:
		return insert(t, tags.Shoulder, "no")
	case left && !right:
		return insert(t, tags.Shoulder, "left")
	case !left && right:
		return insert(t, tags.Shoulder, "right")
	default:
		return insert(t, tags.Shoulder, "both")
	}
}

func setPedestrian(lanes []road.Lane, t *tags.Tags) error {
	left, right := lanes[0].IsFoot(), lanes[len(lanes)-1].IsFoot()
	switch {
	case !left && !right:
		return insert(t, tags.Sidewalk, "no")
	case left && !right:
		return insert(t, tags.Sidewalk, "left")
	case !left && right:
		return insert(t, tags.Sidewalk, "right")
	default:
		return insert(t, tags.Sidewalk, "both")
	}
}

// prefixBeforeFirstMotor returns the lanes up to (excluding) the first motor
// travel lane.
func prefixBeforeFirstMotor(lanes []road.Lane) []road.Lane {
	for i, l := range lanes {
		if l.IsMotor() {
			return lanes[:i]
		}
	}
	return lanes
}

func setParking(lanes []road.Lane, t *tags.Tags) error {
	left := false
	for _, l := range lanes {
		if l.IsMotor() {
			break
		}
		if l.Kind == road.KindParking {
			left = true
		}
	}
	right := false
	skipping := true
	for _, l := range lanes {
		if skipping {
			if !l.IsMotor() {
				continue
			}
			skipping = false
		}
		if l.Kind == road.KindParking {
			right = true
		}
	}

	switch {
	case !left && !right:
	case left && !right:
		if err := insert(t, tags.ParkingLaneLeft, "parallel"); err != nil {
			return err
		}
	case !left && right:
		if err := insert(t, tags.ParkingLaneRight, "parallel"); err != nil {
			return err
		}
	default:
		if err := insert(t, tags.ParkingLaneBoth, "parallel"); err != nil {
			return err
		}
	}

	if lanes[0].Kind == road.KindSeparator && lanes[0].Markings != nil {
		ms := *lanes[0].Markings
		if len(ms) > 0 && ms[0].Color != nil && *ms[0].Color == road.Red {
			if err := insert(t, tags.ParkingCondBoth, "no_stopping"); err != nil {
				return err
			}
		}
	}
	return nil
}

func findBicycleFromLeft(lanes []road.Lane) (road.Lane, bool) {
	for _, l := range lanes {
		if l.IsMotor() {
			break
		}
		if l.IsBicycle() {
			return l, true
		}
	}
	return road.Lane{}, false
}

func findBicycleFromRight(lanes []road.Lane) (road.Lane, bool) {
	for i := len(lanes) - 1; i >= 0; i-- {
		if lanes[i].IsMotor() {
			break
		}
		if lanes[i].IsBicycle() {
			return lanes[i], true
		}
	}
	return road.Lane{}, false
}

func setCycleway(lanes []road.Lane, t *tags.Tags, oneway bool, loc *locale.Locale) error {
	leftCycle, hasLeft := findBicycleFromLeft(lanes)
	rightCycle, hasRight := findBicycleFromRight(lanes)

	switch {
	case !hasLeft && !hasRight:
	case hasLeft && !hasRight:
		if err := insert(t, tags.CyclewayLeft, "lane"); err != nil {
			return err
		}
	case !hasLeft && hasRight:
		if err := insert(t, tags.CyclewayRight, "lane"); err != nil {
			return err
		}
	default:
		if err := insert(t, tags.CyclewayBoth, "lane"); err != nil {
			return err
		}
	}

	leftBackward := hasLeft && leftCycle.Direction != nil && *leftCycle.Direction == road.Backward
	rightBackward := hasRight && rightCycle.Direction != nil && *rightCycle.Direction == road.Backward
	if oneway && (leftBackward || rightBackward) {
		if err := insert(t, tags.OnewayBicycle, "no"); err != nil {
			return err
		}
	}

	if hasLeft && leftCycle.Direction != nil {
		v, ok := directionOnewaySuffix(*leftCycle.Direction)
		if ok {
			if err := insert(t, tags.CyclewayLeft.Plus("oneway"), v); err != nil {
				return err
			}
		}
	}
	if hasRight && rightCycle.Direction != nil {
		v, ok := directionOnewaySuffix(*rightCycle.Direction)
		if ok {
			if err := insert(t, tags.CyclewayRight.Plus("oneway"), v); err != nil {
				return err
			}
		}
	}

	if hasLeft && leftCycle.Kind == road.KindTravel && leftCycle.Width != nil {
		if err := insert(t, tags.CyclewayLeft.Plus("width"), formatMetre(*leftCycle.Width)); err != nil {
			return err
		}
	}
	if hasRight && rightCycle.Kind == road.KindTravel && rightCycle.Width != nil {
		if err := insert(t, tags.CyclewayRight.Plus("width"), formatMetre(*rightCycle.Width)); err != nil {
			return err
		}
	}

	// a lone shared lane: bicycle traffic permitted contraflow on a oneway.
	if len(lanes) == 1 {
		lane := lanes[len(lanes)-1]
		if loc.DrivingSide == locale.Left {
			lane = lanes[0]
		}
		if lane.Kind == road.KindTravel && lane.Access != nil && lane.Access.Bicycle != nil {
			b := lane.Access.Bicycle
			if oneway && b.Access == schemes.AccessYes && b.Direction != nil && *b.Direction == road.Both {
				if err := insert(t, tags.Cycleway, "opposite"); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func directionOnewaySuffix(d road.Direction) (string, bool) {
	switch d {
	case road.Forward:
		return "yes", true
	case road.Backward:
		return "-1", true
	case road.Both:
		return "no", true
	default:
		return "", false
	}
}

func formatMetre(m road.Metre) string {
	return fmt.Sprintf("%g", float64(m))
}

func findBusFromLeft(lanes []road.Lane) (road.Lane, bool) {
	for _, l := range lanes {
		if l.IsMotor() {
			break
		}
		if l.IsBus() {
			return l, true
		}
	}
	return road.Lane{}, false
}

func findBusFromRight(lanes []road.Lane) (road.Lane, bool) {
	for i := len(lanes) - 1; i >= 0; i-- {
		if lanes[i].IsMotor() {
			break
		}
		if lanes[i].IsBus() {
			return lanes[i], true
		}
	}
	return road.Lane{}, false
}

func setBusway(lanes []road.Lane, t *tags.Tags, oneway bool) error {
	leftBus, hasLeft := findBusFromLeft(lanes)
	rightBus, hasRight := findBusFromRight(lanes)

	anyBus := false
	for _, l := range lanes {
		if l.IsBus() {
			anyBus = true
			break
		}
	}

	if !hasLeft && !hasRight && anyBus {
		parts := make([]string, len(lanes))
		for i, l := range lanes {
			if l.IsBus() {
				parts[i] = "designated"
			}
		}
		return insert(t, tags.BusLanes, strings.Join(parts, "|"))
	}

	value := func(l road.Lane) string {
		if oneway && l.Direction != nil && *l.Direction == road.Backward {
			return "opposite_lane"
		}
		return "lane"
	}

	switch {
	case !hasLeft && !hasRight:
		return nil
	case hasLeft && !hasRight:
		return insert(t, tags.BuswayLeft, value(leftBus))
	case !hasLeft && hasRight:
		return insert(t, tags.BuswayRight, value(rightBus))
	default:
		return insert(t, tags.BuswayBoth, "lane")
	}
}

func getMaxSpeed(lanes []road.Lane, t *tags.Tags) (*road.Speed, error) {
	var speeds []road.Speed
	for _, l := range lanes {
		if l.Kind == road.KindTravel && l.MaxSpeed != nil {
			speeds = append(speeds, *l.MaxSpeed)
		}
	}
	if len(speeds) == 0 {
		return nil, nil
	}
	first := speeds[0]
	for _, s := range speeds[1:] {
		if s != first {
			return nil, diag.ErrMsg(diag.Unimplemented("different max speeds per lane", nil))
		}
	}
	if err := insert(t, tags.MaxSpeed, first.String()); err != nil {
		return nil, err
	}
	return &first, nil
}

func localeAdditions(maxSpeed *road.Speed, loc *locale.Locale, t *tags.Tags) error {
	if maxSpeed != nil && maxSpeed.Kph() == 100 && loc.Country.Is(locale.TheNetherlands) {
		return insert(t, tags.MotorRoad, "yes")
	}
	return nil
}

func checkRoundtrip(t *tags.Tags, loc *locale.Locale, lanes []road.Lane) error {
	r, _, err := tagstolanes.TagsToLanes(t, loc, tagstolanes.Config{ErrorOnWarnings: true, IncludeSeparators: hasAnySeparator(lanes)})
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(lanes, r.Lanes) {
		return diag.ErrRoundtrip(r.Lanes, lanes)
	}
	return nil
}

func hasAnySeparator(lanes []road.Lane) bool {
	for _, l := range lanes {
		if l.IsSeparator() {
			return true
		}
	}
	return false
}
