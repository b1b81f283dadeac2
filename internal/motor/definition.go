package motor

import (
	"errors"
	"fmt"

	"github.com/san-kum/motorsim/internal/grain"
)

type GrainEntry struct {
	Type       string           `yaml:"type" json:"type"`
	Properties grain.Properties `yaml:"properties" json:"properties"`
}

// Definition is the serializable form of a Motor.
type Definition struct {
	Nozzle     Nozzle       `yaml:"nozzle" json:"nozzle"`
	Propellant *Propellant  `yaml:"propellant,omitempty" json:"propellant,omitempty"`
	Grains     []GrainEntry `yaml:"grains" json:"grains"`
	Config     Config       `yaml:"config" json:"config"`
}

func (d Definition) Clone() Definition {
	c := d
	c.Propellant = d.Propellant.Clone()
	c.Grains = make([]GrainEntry, len(d.Grains))
	for i, e := range d.Grains {
		c.Grains[i] = GrainEntry{Type: e.Type, Properties: e.Properties.Clone()}
	}
	return c
}

// FromDefinition builds a Motor. Grain properties missing from an entry
// keep the grain's zero value and surface later as geometry errors.
func FromDefinition(d Definition) (*Motor, error) {
	m := &Motor{
		Propellant: d.Propellant.Clone(),
		Nozzle:     d.Nozzle,
		Config:     d.Config,
	}
	for i, e := range d.Grains {
		g, err := grain.FromProperties(e.Type, e.Properties)
		switch {
		case errors.Is(err, grain.ErrUnknownType):
			return nil, fmt.Errorf("%w: %s: %q", ErrUnknownGrainType, grainLocation(i), e.Type)
		case err != nil:
			return nil, fmt.Errorf("%w: %s: %w", ErrGrainProperties, grainLocation(i), err)
		}
		m.AddGrain(g)
	}
	return m, nil
}

func (m *Motor) Definition() Definition {
	d := Definition{
		Nozzle:     m.Nozzle,
		Propellant: m.Propellant.Clone(),
		Grains:     make([]GrainEntry, len(m.Grains)),
		Config:     m.Config,
	}
	for i, g := range m.Grains {
		d.Grains[i] = GrainEntry{Type: g.Type(), Properties: g.Properties()}
	}
	return d
}
