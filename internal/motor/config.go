package motor

import "github.com/san-kum/motorsim/internal/grain"

// Config holds the run parameters. Bounds are enforced by the config
// package; the engine only guards against a non-positive timestep.
type Config struct {
	MaxPressure        float64 `yaml:"maxPressure" json:"maxPressure"`               // Pa
	MaxMassFlux        float64 `yaml:"maxMassFlux" json:"maxMassFlux"`               // kg/(m^2*s)
	MinPortThroat      float64 `yaml:"minPortThroat" json:"minPortThroat"`           // ratio
	BurnoutWebThres    float64 `yaml:"burnoutWebThres" json:"burnoutWebThres"`       // m
	BurnoutThrustThres float64 `yaml:"burnoutThrustThres" json:"burnoutThrustThres"` // % of peak
	Timestep           float64 `yaml:"timestep" json:"timestep"`                     // s
	AmbPressure        float64 `yaml:"ambPressure" json:"ambPressure"`               // Pa
	MapDim             int     `yaml:"mapDim" json:"mapDim"`
}

func DefaultConfig() Config {
	return Config{
		MaxPressure:        1.0342e7,
		MaxMassFlux:        1406.2,
		MinPortThroat:      2,
		BurnoutWebThres:    2.54e-4,
		BurnoutThrustThres: 0.1,
		Timestep:           0.03,
		AmbPressure:        101246,
		MapDim:             grain.DefaultMapDim,
	}
}

func (c Config) grainSetup() grain.Setup {
	return grain.Setup{MapDim: c.MapDim}
}
