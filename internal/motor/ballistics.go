package motor

import "math"

// KN sums the burning surface of every grain with web left over the throat
// area. reg holds one regression per grain.
func (m *Motor) KN(reg []float64) float64 {
	surface := 0.0
	for i, g := range m.Grains {
		if g.IsWebLeft(reg[i], m.Config.BurnoutWebThres) {
			surface += g.SurfaceAreaAtRegression(reg[i])
		}
	}
	return surface / m.Nozzle.ThroatArea()
}

// PressureFromKN is the equilibrium chamber pressure at the given KN.
func (m *Motor) PressureFromKN(kn float64) float64 {
	if kn <= 0 {
		return 0
	}
	p := m.Propellant
	return math.Pow(kn*p.Density*p.A/p.characteristicTerm(), 1/(1-p.N))
}

func (m *Motor) IdealPressure(reg []float64) float64 {
	return m.PressureFromKN(m.KN(reg))
}

// Force is the thrust at chamber pressure pc against the configured
// ambient pressure. Invalid expansion states yield 0.
func (m *Motor) Force(pc float64) float64 {
	if pc == 0 {
		return 0
	}
	k := m.Propellant.K
	pe := m.Nozzle.ExitPressure(k, pc)

	t1 := 2 * k * k / (k - 1)
	t2 := math.Pow(2/(k+1), (k+1)/(k-1))
	t3 := 1 - math.Pow(pe/pc, (k-1)/k)

	momentum := m.Nozzle.Efficiency * m.Nozzle.ThroatArea() * pc * math.Sqrt(t1*t2*t3)
	pressure := (pe - m.Config.AmbPressure) * m.Nozzle.ExitArea()
	f := momentum + pressure
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return f
}

func (m *Motor) ForceAt(reg []float64) float64 {
	return m.Force(m.IdealPressure(reg))
}
