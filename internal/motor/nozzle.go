package motor

import (
	"math"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/geometry"
)

const exitPressureIterations = 200

// Nozzle diameters are in meters. Efficiency scales the momentum thrust.
type Nozzle struct {
	Throat     float64 `yaml:"throat" json:"throat"`
	Exit       float64 `yaml:"exit" json:"exit"`
	Efficiency float64 `yaml:"efficiency" json:"efficiency"`
}

func (n Nozzle) ThroatArea() float64 { return geometry.CircleArea(n.Throat) }
func (n Nozzle) ExitArea() float64   { return geometry.CircleArea(n.Exit) }

func (n Nozzle) ExpansionRatio() float64 {
	return n.ExitArea() / n.ThroatArea()
}

// ExitPressure solves the isentropic area ratio for the supersonic exit
// pressure. The root lies between 0 and the critical pressure ratio, where
// the area ratio function is monotonic, so bisection always converges.
func (n Nozzle) ExitPressure(k, chamber float64) float64 {
	if chamber <= 0 {
		return 0
	}
	critical := math.Pow(2/(k+1), k/(k-1))
	eps := n.ExpansionRatio()
	if !(eps > 1) {
		return critical * chamber
	}

	target := 1 / eps
	lo, hi := 0.0, critical
	for i := 0; i < exitPressureIterations; i++ {
		mid := (lo + hi) / 2
		if mid == lo || mid == hi {
			break
		}
		if throatToArea(k, mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2 * chamber
}

// throatToArea is A*/A at pressure ratio x = p/pc.
func throatToArea(k, x float64) float64 {
	return math.Pow((k+1)/2, 1/(k-1)) *
		math.Pow(x, 1/k) *
		math.Sqrt(((k+1)/(k-1))*(1-math.Pow(x, (k-1)/k)))
}

func (n Nozzle) GeometryErrors() []alert.Alert {
	var out []alert.Alert
	add := func(desc string) {
		out = append(out, alert.New(alert.Error, alert.Geometry, desc, "Nozzle"))
	}
	if n.Throat <= 0 {
		add("Throat diameter must not be 0")
	}
	if n.Exit < n.Throat {
		add("Exit diameter must not be smaller than throat diameter")
	}
	if n.Efficiency <= 0 || n.Efficiency > 1 {
		add("Efficiency must be between 0 and 1")
	}
	return out
}
