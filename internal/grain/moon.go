package grain

import "github.com/san-kum/motorsim/internal/alert"

// MoonBurner has a circular core displaced from the grain axis.
type MoonBurner struct {
	mapped
	CoreDiameter float64
	CoreOffset   float64
}

func NewMoonBurner() *MoonBurner {
	m := &MoonBurner{}
	m.InhibitedEnds = InhibitNeither
	m.shape = m
	return m
}

func (m *MoonBurner) Type() string { return TypeMoonBurner }

func (m *MoonBurner) Properties() Properties {
	p := m.baseProperties()
	p["coreDiameter"] = m.CoreDiameter
	p["coreOffset"] = m.CoreOffset
	return p
}

func (m *MoonBurner) SetProperties(p Properties) error {
	m.invalidate()
	if err := m.setBase(p); err != nil {
		return err
	}
	if err := p.setFloat("coreDiameter", &m.CoreDiameter); err != nil {
		return err
	}
	return p.setFloat("coreOffset", &m.CoreOffset)
}

func (m *MoonBurner) inCore(x, y float64) bool {
	rc := m.CoreDiameter / 2
	dx := x - m.CoreOffset
	return dx*dx+y*y <= rc*rc
}

func (m *MoonBurner) GeometryErrors() []alert.Alert {
	out := m.baseErrors()
	if m.CoreDiameter <= 0 {
		out = append(out, geometryError("Core diameter must not be 0"))
	}
	if m.CoreOffset < 0 {
		out = append(out, geometryError("Core offset must not be negative"))
	}
	if m.CoreOffset+m.CoreDiameter/2 >= m.Diameter/2 {
		out = append(out, geometryError("Core offset plus core radius must be less than grain radius"))
	}
	return out
}
