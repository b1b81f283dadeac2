package motor

import (
	"fmt"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/grain"
)

// Motor is long lived and may be edited between runs, never during one.
type Motor struct {
	Grains     []grain.Grain
	Propellant *Propellant
	Nozzle     Nozzle
	Config     Config
}

func New() *Motor {
	return &Motor{Config: DefaultConfig()}
}

func (m *Motor) AddGrain(g grain.Grain) {
	m.Grains = append(m.Grains, g)
}

func grainLocation(i int) string {
	return fmt.Sprintf("Grain %d", i+1)
}

// Validate returns the alerts that keep a run from starting along with any
// geometry warnings. A run starts only if none of them is an ERROR.
func (m *Motor) Validate() []alert.Alert {
	var out []alert.Alert
	if len(m.Grains) == 0 {
		out = append(out, alert.New(alert.Error, alert.Constraint, "Motor must have at least one propellant grain", "Motor"))
	}
	for i, g := range m.Grains {
		if grain.IsEndBurner(g) && i != 0 {
			out = append(out, alert.New(alert.Error, alert.Constraint, "End burning grains must be the forward-most grain in the motor", grainLocation(i)))
		}
		out = append(out, alert.Relocate(g.GeometryErrors(), grainLocation(i))...)
	}
	out = append(out, m.Nozzle.GeometryErrors()...)
	if m.Propellant == nil {
		out = append(out, alert.New(alert.Error, alert.Constraint, "Motor must have a propellant set", "Motor"))
	} else {
		out = append(out, m.Propellant.Errors()...)
	}
	if m.Config.Timestep <= 0 {
		out = append(out, alert.New(alert.Error, alert.Constraint, "Timestep must be positive", "Motor"))
	}
	return out
}
