// Package alert describes the problems a simulation run reports: errors
// that reject a motor before it burns and warnings attached to a finished
// run.
package alert

import (
	"fmt"
	"strings"
)

type Level int

const (
	Error Level = iota
	Warning
)

func (l Level) String() string {
	switch l {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "ERROR":
		*l = Error
	case "WARNING":
		*l = Warning
	default:
		return fmt.Errorf("alert: unknown level %q", b)
	}
	return nil
}

type Type int

const (
	Geometry Type = iota
	Constraint
)

func (t Type) String() string {
	switch t {
	case Geometry:
		return "geometry"
	case Constraint:
		return "constraint"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "geometry":
		*t = Geometry
	case "constraint":
		*t = Constraint
	default:
		return fmt.Errorf("alert: unknown type %q", b)
	}
	return nil
}

type Alert struct {
	Level       Level  `json:"level"`
	Type        Type   `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func New(level Level, typ Type, description, location string) Alert {
	return Alert{Level: level, Type: typ, Description: description, Location: location}
}

func (a Alert) String() string {
	return fmt.Sprintf("%s (%s) %s: %s", a.Level, a.Type, a.Location, a.Description)
}

// Filter returns the alerts of the given level, preserving order.
func Filter(alerts []Alert, level Level) []Alert {
	var out []Alert
	for _, a := range alerts {
		if a.Level == level {
			out = append(out, a)
		}
	}
	return out
}

// Relocate returns a copy of alerts with every location set to loc.
func Relocate(alerts []Alert, loc string) []Alert {
	out := make([]Alert, len(alerts))
	for i, a := range alerts {
		a.Location = loc
		out[i] = a
	}
	return out
}
