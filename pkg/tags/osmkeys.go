package tags

// Recognized input keys. Every key the core consumes is named here so that
// the unsupported-tag sweep (pkg/transform/tagstolanes's final pass) can tell
// a deliberately-ignored tag from one nobody ever looked at.
const (
	Highway      Key = "highway"
	Construction Key = "construction"
	Proposed     Key = "proposed"
	Name         Key = "name"
	Ref          Key = "ref"

	Oneway        Key = "oneway"
	OnewayBus     Key = "oneway:bus"
	OnewayBicycle Key = "oneway:bicycle"
	Junction      Key = "junction"

	Lanes           Key = "lanes"
	LanesForward    Key = "lanes:forward"
	LanesBackward   Key = "lanes:backward"
	LanesBothWays   Key = "lanes:both_ways"
	LanesBus        Key = "lanes:bus"
	LanesPsv        Key = "lanes:psv"
	BusLanes        Key = "bus:lanes"
	PsvLanes        Key = "psv:lanes"
	CentreTurnLane  Key = "centre_turn_lane"
	TurnLanesBothWays Key = "turn:lanes:both_ways"

	Busway      Key = "busway"
	BuswayBoth  Key = "busway:both"
	BuswayLeft  Key = "busway:left"
	BuswayRight Key = "busway:right"

	Cycleway       Key = "cycleway"
	CyclewayLeft   Key = "cycleway:left"
	CyclewayRight  Key = "cycleway:right"
	CyclewayBoth   Key = "cycleway:both"
	CyclewayLanes  Key = "cycleway:lanes"
	OnewayBicycleSuffix Key = "oneway:bicycle"

	ParkingLaneLeft  Key = "parking:lane:left"
	ParkingLaneRight Key = "parking:lane:right"
	ParkingLaneBoth  Key = "parking:lane:both"
	ParkingCondBoth  Key = "parking:condition:both"

	Sidewalk      Key = "sidewalk"
	SidewalkBoth  Key = "sidewalk:both"
	SidewalkLeft  Key = "sidewalk:left"
	SidewalkRight Key = "sidewalk:right"

	Shoulder Key = "shoulder"

	MaxSpeed   Key = "maxspeed"
	MotorRoad  Key = "motorroad"
	TrackType  Key = "tracktype"
	Smoothness Key = "smoothness"
	Lit        Key = "lit"
	Access     Key = "access"

	Bus                     Key = "bus"
	Psv                     Key = "psv"
	MotorVehicleConditional Key = "motor_vehicle:conditional"

	ISO31661 Key = "ISO3166-1"
	ISO31662 Key = "ISO3166-2"
	DrivingSide Key = "driving_side"
)

// SideLeft and SideRight suffix a base key with a side of the road, e.g.
// Busway.Plus(SideRight) yields "busway:right".
const (
	SideLeft  Key = "left"
	SideRight Key = "right"
)
