package grain

import (
	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/geometry"
)

// Bates is a cylindrical grain with a single circular core.
type Bates struct {
	perforated
	CoreDiameter float64
}

func NewBates() *Bates {
	return &Bates{perforated: perforated{InhibitedEnds: InhibitNeither}}
}

func (b *Bates) Type() string { return TypeBates }

func (b *Bates) Properties() Properties {
	p := b.baseProperties()
	p["coreDiameter"] = b.CoreDiameter
	return p
}

func (b *Bates) SetProperties(p Properties) error {
	if err := b.setBase(p); err != nil {
		return err
	}
	return p.setFloat("coreDiameter", &b.CoreDiameter)
}

func (b *Bates) coreDiameter(r float64) float64 {
	return b.CoreDiameter + 2*r
}

func (b *Bates) faceArea(r float64) float64 {
	return geometry.CircleArea(b.Diameter) - geometry.CircleArea(b.coreDiameter(r))
}

func (b *Bates) port(r float64) float64 {
	return geometry.CircleArea(b.coreDiameter(r))
}

func (b *Bates) SurfaceAreaAtRegression(r float64) float64 {
	if b.coreDiameter(r) >= b.Diameter {
		return 0
	}
	length := b.regressedLength(r)
	core := geometry.TubeArea(b.coreDiameter(r), length)
	faces := float64(b.exposedFaces()) * b.faceArea(r)
	return core + faces
}

func (b *Bates) VolumeAtRegression(r float64) float64 {
	if b.coreDiameter(r) >= b.Diameter {
		return 0
	}
	return b.faceArea(r) * b.regressedLength(r)
}

func (b *Bates) WebLeft(r float64) float64 {
	wall := (b.Diameter-b.CoreDiameter)/2 - r
	return b.webLeft(wall, r)
}

func (b *Bates) IsWebLeft(r, threshold float64) bool {
	return b.WebLeft(r) > threshold
}

func (b *Bates) PortArea(r float64) (float64, bool) {
	return b.port(r), true
}

func (b *Bates) PeakMassFlux(massIn, dt, r, dr, density float64) float64 {
	return b.peakMassFlux(massIn, dt, r, dr, density, b.port, b.faceArea)
}

func (b *Bates) GeometryErrors() []alert.Alert {
	out := b.baseErrors()
	if b.CoreDiameter <= 0 {
		out = append(out, geometryError("Core diameter must not be 0"))
	}
	if b.CoreDiameter >= b.Diameter {
		out = append(out, geometryError("Core diameter must be less than grain diameter"))
	}
	return out
}

func (b *Bates) SimulationSetup(Setup) {}
