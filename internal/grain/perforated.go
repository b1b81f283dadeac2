package grain

import (
	"fmt"
	"math"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/geometry"
)

type InhibitedEnds string

const (
	InhibitNeither InhibitedEnds = "Neither"
	InhibitTop     InhibitedEnds = "Top"
	InhibitBottom  InhibitedEnds = "Bottom"
	InhibitBoth    InhibitedEnds = "Both"
)

// perforated holds what every ported grain shares: an outer diameter, a
// length that regresses from its uninhibited ends, and the axial mass flux
// bookkeeping.
type perforated struct {
	Diameter      float64
	Length        float64
	InhibitedEnds InhibitedEnds
}

func (p *perforated) baseProperties() Properties {
	return Properties{
		"diameter":      p.Diameter,
		"length":        p.Length,
		"inhibitedEnds": string(p.InhibitedEnds),
	}
}

func (p *perforated) setBase(props Properties) error {
	if err := props.setFloat("diameter", &p.Diameter); err != nil {
		return err
	}
	if err := props.setFloat("length", &p.Length); err != nil {
		return err
	}
	ends := string(p.InhibitedEnds)
	if err := props.setText("inhibitedEnds", &ends); err != nil {
		return err
	}
	switch InhibitedEnds(ends) {
	case InhibitNeither, InhibitTop, InhibitBottom, InhibitBoth:
		p.InhibitedEnds = InhibitedEnds(ends)
	default:
		return fmt.Errorf("%w: inhibitedEnds=%q", ErrBadProperty, ends)
	}
	return nil
}

func (p *perforated) baseErrors() []alert.Alert {
	var out []alert.Alert
	if p.Diameter <= 0 {
		out = append(out, geometryError("Diameter must not be 0"))
	}
	if p.Length <= 0 {
		out = append(out, geometryError("Length must not be 0"))
	}
	return out
}

func (p *perforated) exposedFaces() int {
	switch p.InhibitedEnds {
	case InhibitTop, InhibitBottom:
		return 1
	case InhibitBoth:
		return 0
	default:
		return 2
	}
}

func (p *perforated) topExposed() bool {
	return p.InhibitedEnds == InhibitNeither || p.InhibitedEnds == InhibitBottom
}

func (p *perforated) regressedLength(r float64) float64 {
	l := p.Length - float64(p.exposedFaces())*r
	return math.Max(l, 0)
}

// endPositions are the forward and aft face positions measured from the
// original forward face.
func (p *perforated) endPositions(r float64) (float64, float64) {
	switch p.InhibitedEnds {
	case InhibitTop:
		return 0, p.Length - r
	case InhibitBottom:
		return r, p.Length
	case InhibitBoth:
		return 0, p.Length
	default:
		return r, p.Length - r
	}
}

func (p *perforated) webLeft(wall, r float64) float64 {
	if p.InhibitedEnds == InhibitBoth {
		return wall
	}
	return math.Min(wall, p.regressedLength(r))
}

// peakMassFlux evaluates the flux at the aft face: the incoming flow plus
// the propellant the forward face and the core release during the step,
// over the port area at the end of the step.
func (p *perforated) peakMassFlux(massIn, dt, r, dr, density float64, port, face func(float64) float64) float64 {
	start, end := p.endPositions(r)

	top := 0.0
	coreLength := end - start
	if p.topExposed() {
		top = face(r+dr) * dr * density
		coreLength = end - (start + dr)
	}

	core := (port(r+dr) - port(r)) * coreLength * density
	mass := massIn + (top+core)/dt

	outlet := port(r + dr)
	if outlet <= 0 {
		return massIn / geometry.CircleArea(p.Diameter)
	}
	return mass / outlet
}
