package motor

import (
	"math"

	"github.com/san-kum/motorsim/internal/alert"
)

// GasConstant is the universal gas constant in J/(kmol·K).
const GasConstant = 8314.0

// Propellant holds the ballistic and thermochemical constants of a
// propellant. Burn rate follows Saint-Robert's law, r = A·P^N.
type Propellant struct {
	Name    string  `yaml:"name" json:"name"`
	Density float64 `yaml:"density" json:"density"`
	A       float64 `yaml:"a" json:"a"`
	N       float64 `yaml:"n" json:"n"`
	K       float64 `yaml:"k" json:"k"`
	T       float64 `yaml:"t" json:"t"`
	M       float64 `yaml:"m" json:"m"`
}

func (p *Propellant) BurnRate(pressure float64) float64 {
	return p.A * math.Pow(pressure, p.N)
}

// characteristicTerm is the nozzle mass-flow normalization D.
func (p *Propellant) characteristicTerm() float64 {
	k := p.K
	return math.Sqrt((k / ((GasConstant / p.M) * p.T)) * math.Pow(2/(k+1), (k+1)/(k-1)))
}

func (p *Propellant) Clone() *Propellant {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Errors reports constants that would make the pressure solve meaningless.
func (p *Propellant) Errors() []alert.Alert {
	var out []alert.Alert
	add := func(desc string) {
		out = append(out, alert.New(alert.Error, alert.Constraint, desc, "Propellant"))
	}
	if p.Density <= 0 {
		add("Density must be positive")
	}
	if p.A <= 0 {
		add("Burn rate coefficient must be positive")
	}
	if p.N < 0 || p.N >= 1 {
		add("Burn rate exponent must be in [0, 1)")
	}
	if p.K <= 1 {
		add("Specific heat ratio must be greater than 1")
	}
	if p.T <= 0 {
		add("Combustion temperature must be positive")
	}
	if p.M <= 0 {
		add("Molar mass must be positive")
	}
	return out
}
