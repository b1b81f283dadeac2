package grain

import (
	"math"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/geometry"
)

// EndBurner burns only from its aft face. It has no port, so it must sit
// at the forward end of the stack.
type EndBurner struct {
	Diameter float64
	Length   float64
}

func NewEndBurner() *EndBurner { return &EndBurner{} }

func (e *EndBurner) Type() string { return TypeEndBurner }

func (e *EndBurner) Properties() Properties {
	return Properties{
		"diameter": e.Diameter,
		"length":   e.Length,
	}
}

func (e *EndBurner) SetProperties(p Properties) error {
	if err := p.setFloat("diameter", &e.Diameter); err != nil {
		return err
	}
	return p.setFloat("length", &e.Length)
}

func (e *EndBurner) SurfaceAreaAtRegression(r float64) float64 {
	return geometry.CircleArea(e.Diameter)
}

func (e *EndBurner) VolumeAtRegression(r float64) float64 {
	return geometry.CircleArea(e.Diameter) * math.Max(e.Length-r, 0)
}

func (e *EndBurner) WebLeft(r float64) float64 {
	return e.Length - r
}

func (e *EndBurner) IsWebLeft(r, threshold float64) bool {
	return e.WebLeft(r) > threshold
}

func (e *EndBurner) PortArea(float64) (float64, bool) {
	return 0, false
}

func (e *EndBurner) PeakMassFlux(massIn, dt, r, dr, density float64) float64 {
	return 0
}

func (e *EndBurner) GeometryErrors() []alert.Alert {
	var out []alert.Alert
	if e.Diameter <= 0 {
		out = append(out, geometryError("Diameter must not be 0"))
	}
	if e.Length <= 0 {
		out = append(out, geometryError("Length must not be 0"))
	}
	return out
}

func (e *EndBurner) SimulationSetup(Setup) {}
