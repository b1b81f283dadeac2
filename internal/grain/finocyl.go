package grain

import (
	"math"

	"github.com/san-kum/motorsim/internal/alert"
)

// Finocyl is a circular core with rectangular fins radiating from it.
// FinLength is measured from the core surface.
type Finocyl struct {
	mapped
	CoreDiameter float64
	NumFins      int
	FinWidth     float64
	FinLength    float64
}

func NewFinocyl() *Finocyl {
	f := &Finocyl{}
	f.InhibitedEnds = InhibitNeither
	f.shape = f
	return f
}

func (f *Finocyl) Type() string { return TypeFinocyl }

func (f *Finocyl) Properties() Properties {
	p := f.baseProperties()
	p["coreDiameter"] = f.CoreDiameter
	p["numFins"] = f.NumFins
	p["finWidth"] = f.FinWidth
	p["finLength"] = f.FinLength
	return p
}

func (f *Finocyl) SetProperties(p Properties) error {
	f.invalidate()
	if err := f.setBase(p); err != nil {
		return err
	}
	if err := p.setFloat("coreDiameter", &f.CoreDiameter); err != nil {
		return err
	}
	if err := p.setInt("numFins", &f.NumFins); err != nil {
		return err
	}
	if err := p.setFloat("finWidth", &f.FinWidth); err != nil {
		return err
	}
	return p.setFloat("finLength", &f.FinLength)
}

func (f *Finocyl) inCore(x, y float64) bool {
	rc := f.CoreDiameter / 2
	if x*x+y*y <= rc*rc {
		return true
	}
	for i := 0; i < f.NumFins; i++ {
		u, v := rotate(x, y, 2*math.Pi*float64(i)/float64(f.NumFins))
		if u >= 0 && u <= rc+f.FinLength && math.Abs(v) <= f.FinWidth/2 {
			return true
		}
	}
	return false
}

func (f *Finocyl) GeometryErrors() []alert.Alert {
	out := f.baseErrors()
	if f.CoreDiameter <= 0 {
		out = append(out, geometryError("Core diameter must not be 0"))
	}
	if f.CoreDiameter >= f.Diameter {
		out = append(out, geometryError("Core diameter must be less than grain diameter"))
	}
	if f.NumFins < 0 {
		out = append(out, geometryError("Number of fins must not be negative"))
	}
	if f.NumFins > 0 {
		if f.FinWidth <= 0 {
			out = append(out, geometryError("Fin width must not be 0"))
		}
		if f.CoreDiameter/2+f.FinLength >= f.Diameter/2 {
			out = append(out, geometryError("Core radius plus fin length must be less than grain radius"))
		}
		if float64(f.NumFins)*f.FinWidth > math.Pi*f.CoreDiameter {
			out = append(out, geometryWarning("Fins are wide enough to overlap at the core"))
		}
	}
	return out
}
