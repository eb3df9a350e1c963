package road

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/azybler/osm2lanes/pkg/schemes"
)

type highwayJSON struct {
	Highway   string `json:"highway"`
	Lifecycle string `json:"lifecycle,omitempty"`
}

type roadJSON struct {
	Name       *string        `json:"name,omitempty"`
	Ref        *string        `json:"ref,omitempty"`
	Highway    highwayJSON    `json:"highway"`
	Lit        *string        `json:"lit,omitempty"`
	TrackType  *string        `json:"tracktype,omitempty"`
	Smoothness *string        `json:"smoothness,omitempty"`
	Lanes      []json.RawMessage `json:"lanes"`
}

// MarshalJSON renders the Road JSON surface: {name?, ref?, highway: {highway,
// lifecycle?}, lit?, tracktype?, smoothness?, lanes: [...]}.
func (r Road) MarshalJSON() ([]byte, error) {
	out := roadJSON{
		Name: r.Name,
		Ref:  r.Ref,
		Highway: highwayJSON{
			Highway: r.Highway.Type.String(),
		},
		Lit: r.Lit,
	}
	if r.Highway.Lifecycle != schemes.Active {
		out.Highway.Lifecycle = r.Highway.Lifecycle.String()
	}
	if r.TrackType != nil {
		s := r.TrackType.String()
		out.TrackType = &s
	}
	if r.Smoothness != nil {
		s := r.Smoothness.String()
		out.Smoothness = &s
	}
	for _, lane := range r.Lanes {
		data, err := lane.MarshalJSON()
		if err != nil {
			return nil, err
		}
		out.Lanes = append(out.Lanes, data)
	}
	return json.Marshal(out)
}

type accessAndDirectionJSON struct {
	Access    string  `json:"access"`
	Direction *string `json:"direction,omitempty"`
}

type accessByTypeJSON struct {
	Foot    *accessAndDirectionJSON `json:"foot,omitempty"`
	Bicycle *accessAndDirectionJSON `json:"bicycle,omitempty"`
	Taxi    *accessAndDirectionJSON `json:"taxi,omitempty"`
	Bus     *accessAndDirectionJSON `json:"bus,omitempty"`
	Motor   *accessAndDirectionJSON `json:"motor,omitempty"`
}

type markingJSON struct {
	Style string  `json:"style"`
	Width *Metre  `json:"width,omitempty"`
	Color *string `json:"color,omitempty"`
}

type laneJSON struct {
	Type       string             `json:"type"`
	Direction  *string            `json:"direction,omitempty"`
	Designated *string            `json:"designated,omitempty"`
	Width      *Metre             `json:"width,omitempty"`
	MaxSpeed   *Speed             `json:"max_speed,omitempty"`
	Access     *accessByTypeJSON  `json:"access,omitempty"`
	Semantic   *string            `json:"semantic,omitempty"`
	Markings   []markingJSON      `json:"markings,omitempty"`
}

func adJSON(a *AccessAndDirection) *accessAndDirectionJSON {
	if a == nil {
		return nil
	}
	out := &accessAndDirectionJSON{Access: a.Access.String()}
	if a.Direction != nil {
		s := a.Direction.String()
		out.Direction = &s
	}
	return out
}

func accessJSON(a *AccessByType) *accessByTypeJSON {
	if a == nil {
		return nil
	}
	return &accessByTypeJSON{
		Foot:    adJSON(a.Foot),
		Bicycle: adJSON(a.Bicycle),
		Taxi:    adJSON(a.Taxi),
		Bus:     adJSON(a.Bus),
		Motor:   adJSON(a.Motor),
	}
}

// MarshalJSON renders a single Lane tagged by "type" with variants
// travel|parking|shoulder|separator.
func (l Lane) MarshalJSON() ([]byte, error) {
	out := laneJSON{}
	switch l.Kind {
	case KindTravel:
		out.Type = "travel"
		if l.Direction != nil {
			s := l.Direction.String()
			out.Direction = &s
		}
		d := l.Designated.String()
		out.Designated = &d
		out.Width = l.Width
		out.MaxSpeed = l.MaxSpeed
		out.Access = accessJSON(l.Access)
	case KindParking:
		out.Type = "parking"
		if l.Direction != nil {
			s := l.Direction.String()
			out.Direction = &s
		}
		d := l.Designated.String()
		out.Designated = &d
		out.Width = l.Width
	case KindShoulder:
		out.Type = "shoulder"
		out.Width = l.Width
	case KindSeparator:
		out.Type = "separator"
		if l.Semantic != nil {
			s := l.Semantic.String()
			out.Semantic = &s
		}
		if l.Markings != nil {
			for _, m := range *l.Markings {
				mj := markingJSON{Style: m.Style.String(), Width: m.Width}
				if m.Color != nil {
					c := m.Color.String()
					mj.Color = &c
				}
				out.Markings = append(out.Markings, mj)
			}
		}
	}
	return json.Marshal(out)
}

// MarshalJSON renders Speed as a bare number for kph, or {unit, value} for
// mph/knots, matching the OSM-facing numeric-first convention.
func (s Speed) MarshalJSON() ([]byte, error) {
	if s.Unit == UnitKph {
		return json.Marshal(s.Value)
	}
	unit := "mph"
	if s.Unit == UnitKnots {
		unit = "knots"
	}
	return json.Marshal(struct {
		Unit  string  `json:"unit"`
		Value float64 `json:"value"`
	}{Unit: unit, Value: s.Value})
}

var directionByText = map[string]Direction{
	"forward":  Forward,
	"backward": Backward,
	"both":     Both,
}

func parseDirection(s string) (Direction, error) {
	if d, ok := directionByText[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown lane direction %q", s)
}

var designatedByText = map[string]Designated{
	"foot":          Foot,
	"bicycle":       Bicycle,
	"motor_vehicle": Motor,
	"bus":           Bus,
}

func parseDesignated(s string) (Designated, error) {
	if d, ok := designatedByText[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown lane designation %q", s)
}

var semanticByText = map[string]Semantic{
	"buffer":   SemanticBuffer,
	"centre":   SemanticCentre,
	"hard":     SemanticHard,
	"kerb":     SemanticKerb,
	"lane":     SemanticLane,
	"modal":    SemanticModal,
	"shoulder": SemanticShoulder,
	"verge":    SemanticVerge,
}

func parseSemantic(s string) (Semantic, error) {
	if v, ok := semanticByText[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown separator semantic %q", s)
}

var styleByText = map[string]Style{
	"solid_line":  SolidLine,
	"broken_line": BrokenLine,
	"dashed_line": DashedLine,
	"dotted_line": DottedLine,
	"no_fill":     NoFill,
	"kerb_up":     KerbUp,
	"kerb_down":   KerbDown,
}

func parseStyle(s string) (Style, error) {
	if v, ok := styleByText[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown marking style %q", s)
}

var colorByText = map[string]Color{
	"white":  White,
	"yellow": Yellow,
	"red":    Red,
	"green":  Green,
}

func parseColor(s string) (Color, error) {
	if v, ok := colorByText[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown marking color %q", s)
}

var lifecycleByText = map[string]schemes.Lifecycle{
	"active":       schemes.Active,
	"construction": schemes.Construction,
	"proposed":     schemes.Proposed,
}

func parseLifecycle(s string) (schemes.Lifecycle, error) {
	if v, ok := lifecycleByText[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown highway lifecycle %q", s)
}

func adFromJSON(a *accessAndDirectionJSON) (*AccessAndDirection, error) {
	if a == nil {
		return nil, nil
	}
	access, err := schemes.ParseAccess(a.Access)
	if err != nil {
		return nil, err
	}
	out := &AccessAndDirection{Access: access}
	if a.Direction != nil {
		d, err := parseDirection(*a.Direction)
		if err != nil {
			return nil, err
		}
		out.Direction = &d
	}
	return out, nil
}

func accessFromJSON(a *accessByTypeJSON) (*AccessByType, error) {
	if a == nil {
		return nil, nil
	}
	out := &AccessByType{}
	var err error
	if out.Foot, err = adFromJSON(a.Foot); err != nil {
		return nil, err
	}
	if out.Bicycle, err = adFromJSON(a.Bicycle); err != nil {
		return nil, err
	}
	if out.Taxi, err = adFromJSON(a.Taxi); err != nil {
		return nil, err
	}
	if out.Bus, err = adFromJSON(a.Bus); err != nil {
		return nil, err
	}
	if out.Motor, err = adFromJSON(a.Motor); err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalJSON parses a single Lane tagged by "type", the inverse of
// Lane.MarshalJSON.
func (l *Lane) UnmarshalJSON(data []byte) error {
	var in laneJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	var direction *Direction
	if in.Direction != nil {
		d, err := parseDirection(*in.Direction)
		if err != nil {
			return err
		}
		direction = &d
	}
	switch in.Type {
	case "travel":
		designated := Foot
		if in.Designated != nil {
			d, err := parseDesignated(*in.Designated)
			if err != nil {
				return err
			}
			designated = d
		}
		access, err := accessFromJSON(in.Access)
		if err != nil {
			return err
		}
		*l = NewTravel(direction, designated, in.Width, in.MaxSpeed, access)
	case "parking":
		designated := Motor
		if in.Designated != nil {
			d, err := parseDesignated(*in.Designated)
			if err != nil {
				return err
			}
			designated = d
		}
		if direction == nil {
			return fmt.Errorf("parking lane missing direction")
		}
		*l = NewParking(*direction, designated, in.Width)
	case "shoulder":
		*l = NewShoulder(in.Width)
	case "separator":
		var semantic *Semantic
		if in.Semantic != nil {
			s, err := parseSemantic(*in.Semantic)
			if err != nil {
				return err
			}
			semantic = &s
		}
		var markings *Markings
		if in.Markings != nil {
			ms := make(Markings, len(in.Markings))
			for i, mj := range in.Markings {
				style, err := parseStyle(mj.Style)
				if err != nil {
					return err
				}
				m := Marking{Style: style, Width: mj.Width}
				if mj.Color != nil {
					c, err := parseColor(*mj.Color)
					if err != nil {
						return err
					}
					m.Color = &c
				}
				ms[i] = m
			}
			markings = &ms
		}
		*l = NewSeparator(semantic, markings)
	default:
		return fmt.Errorf("unknown lane type %q", in.Type)
	}
	return nil
}

// UnmarshalJSON parses a Road, the inverse of Road.MarshalJSON.
func (r *Road) UnmarshalJSON(data []byte) error {
	var in roadJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	highwayType, err := schemes.ParseHighwayType(in.Highway.Highway)
	if err != nil {
		return err
	}
	lifecycle := schemes.Active
	if in.Highway.Lifecycle != "" {
		lifecycle, err = parseLifecycle(in.Highway.Lifecycle)
		if err != nil {
			return err
		}
	}
	out := Road{
		Name:    in.Name,
		Ref:     in.Ref,
		Highway: schemes.Highway{Type: highwayType, Lifecycle: lifecycle},
		Lit:     in.Lit,
	}
	if in.TrackType != nil {
		t, err := schemes.ParseTrackType(*in.TrackType)
		if err != nil {
			return err
		}
		out.TrackType = &t
	}
	if in.Smoothness != nil {
		s, err := schemes.ParseSmoothness(*in.Smoothness)
		if err != nil {
			return err
		}
		out.Smoothness = &s
	}
	for _, raw := range in.Lanes {
		var lane Lane
		if err := lane.UnmarshalJSON(raw); err != nil {
			return err
		}
		out.Lanes = append(out.Lanes, lane)
	}
	*r = out
	return nil
}

// UnmarshalJSON parses a Speed from either a bare number (kph) or a
// {unit, value} object, the inverse of Speed.MarshalJSON.
func (s *Speed) UnmarshalJSON(data []byte) error {
	var bare float64
	if err := json.Unmarshal(data, &bare); err == nil {
		s.Unit = UnitKph
		s.Value = bare
		return nil
	}
	var obj struct {
		Unit  string  `json:"unit"`
		Value float64 `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	switch obj.Unit {
	case "mph":
		s.Unit = UnitMph
	case "knots":
		s.Unit = UnitKnots
	default:
		s.Unit = UnitKph
	}
	s.Value = obj.Value
	return nil
}
