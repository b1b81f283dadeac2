package grain

import (
	"errors"
	"fmt"

	"github.com/san-kum/motorsim/internal/alert"
)

const (
	TypeBates      = "BATES"
	TypeEndBurner  = "End Burner"
	TypeFinocyl    = "Finocyl"
	TypeStar       = "Star Grain"
	TypeMoonBurner = "Moon Burner"
)

// DefaultMapDim is used when a map-based grain is queried before
// SimulationSetup ran.
const DefaultMapDim = 750

var (
	ErrUnknownType = errors.New("grain: unknown grain type")
	ErrBadProperty = errors.New("grain: bad property value")
)

// Setup carries the run settings a grain may precompute against.
type Setup struct {
	MapDim int
}

type Grain interface {
	Type() string
	Properties() Properties
	SetProperties(p Properties) error

	SurfaceAreaAtRegression(r float64) float64
	VolumeAtRegression(r float64) float64
	WebLeft(r float64) float64
	IsWebLeft(r, threshold float64) bool
	// PortArea reports false for shapes without a port (end burners).
	PortArea(r float64) (float64, bool)
	// PeakMassFlux is the mass flux at the aft end of the grain while it
	// regresses from r to r+dr over dt, given the mass flow entering its
	// forward end.
	PeakMassFlux(massIn, dt, r, dr, density float64) float64

	GeometryErrors() []alert.Alert
	SimulationSetup(s Setup)
}

func Types() []string {
	return []string{TypeBates, TypeEndBurner, TypeFinocyl, TypeStar, TypeMoonBurner}
}

// New returns a grain of the given type with zero-valued geometry.
func New(tag string) (Grain, error) {
	switch tag {
	case TypeBates:
		return NewBates(), nil
	case TypeEndBurner:
		return NewEndBurner(), nil
	case TypeFinocyl:
		return NewFinocyl(), nil
	case TypeStar:
		return NewStar(), nil
	case TypeMoonBurner:
		return NewMoonBurner(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
}

func FromProperties(tag string, p Properties) (Grain, error) {
	g, err := New(tag)
	if err != nil {
		return nil, err
	}
	if err := g.SetProperties(p); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	return g, nil
}

func IsEndBurner(g Grain) bool {
	_, ok := g.(*EndBurner)
	return ok
}

func geometryError(desc string) alert.Alert {
	return alert.New(alert.Error, alert.Geometry, desc, "")
}

func geometryWarning(desc string) alert.Alert {
	return alert.New(alert.Warning, alert.Geometry, desc, "")
}
