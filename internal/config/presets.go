package config

import (
	"sort"

	"github.com/san-kum/motorsim/internal/grain"
	"github.com/san-kum/motorsim/internal/motor"
)

var Propellants = map[string]motor.Propellant{
	"KNSU": {Name: "KNSU", Density: 1889, A: 1.0073e-4, N: 0.319, K: 1.1361, T: 1600, M: 39.9},
	"KNDX": {Name: "KNDX", Density: 1785, A: 8.875e-5, N: 0.327, K: 1.1308, T: 1710, M: 42.39},
	"KNER": {Name: "KNER", Density: 1820, A: 2.903e-5, N: 0.4, K: 1.1390, T: 1608, M: 38.78},
}

func bates(d, l, core float64) motor.GrainEntry {
	return motor.GrainEntry{Type: grain.TypeBates, Properties: grain.Properties{
		"diameter": d, "length": l, "coreDiameter": core, "inhibitedEnds": "Neither",
	}}
}

func propellant(name string) *motor.Propellant {
	p := Propellants[name]
	return &p
}

var Presets = map[string]motor.Definition{
	"bates-knsu": {
		Nozzle:     motor.Nozzle{Throat: 0.017, Exit: 0.045, Efficiency: 0.85},
		Propellant: propellant("KNSU"),
		Grains:     []motor.GrainEntry{bates(0.083, 0.12, 0.03), bates(0.083, 0.12, 0.03)},
		Config:     motor.DefaultConfig(),
	},
	"bates-kndx": {
		Nozzle:     motor.Nozzle{Throat: 0.0127, Exit: 0.0318, Efficiency: 0.85},
		Propellant: propellant("KNDX"),
		Grains: []motor.GrainEntry{
			bates(0.054, 0.08, 0.02), bates(0.054, 0.08, 0.02), bates(0.054, 0.08, 0.02),
		},
		Config: motor.DefaultConfig(),
	},
	"endburner-kner": {
		Nozzle:     motor.Nozzle{Throat: 0.004, Exit: 0.01, Efficiency: 0.9},
		Propellant: propellant("KNER"),
		Grains: []motor.GrainEntry{{Type: grain.TypeEndBurner, Properties: grain.Properties{
			"diameter": 0.03, "length": 0.05,
		}}},
		Config: motor.DefaultConfig(),
	},
	"finocyl-knsu": {
		Nozzle:     motor.Nozzle{Throat: 0.018, Exit: 0.05, Efficiency: 0.85},
		Propellant: propellant("KNSU"),
		Grains: []motor.GrainEntry{
			bates(0.083, 0.12, 0.032),
			{Type: grain.TypeFinocyl, Properties: grain.Properties{
				"diameter": 0.083, "length": 0.12, "coreDiameter": 0.032, "inhibitedEnds": "Neither",
				"numFins": 6, "finWidth": 0.004, "finLength": 0.01,
			}},
		},
		Config: motor.DefaultConfig(),
	},
	"star-knsu": {
		Nozzle:     motor.Nozzle{Throat: 0.012, Exit: 0.03, Efficiency: 0.85},
		Propellant: propellant("KNSU"),
		Grains: []motor.GrainEntry{{Type: grain.TypeStar, Properties: grain.Properties{
			"diameter": 0.06, "length": 0.15, "inhibitedEnds": "Both",
			"numPoints": 5, "pointLength": 0.015, "pointWidth": 0.008,
		}}},
		Config: motor.DefaultConfig(),
	},
	"moon-kndx": {
		Nozzle:     motor.Nozzle{Throat: 0.012, Exit: 0.03, Efficiency: 0.85},
		Propellant: propellant("KNDX"),
		Grains: []motor.GrainEntry{{Type: grain.TypeMoonBurner, Properties: grain.Properties{
			"diameter": 0.054, "length": 0.1, "coreDiameter": 0.018, "coreOffset": 0.01,
			"inhibitedEnds": "Neither",
		}}},
		Config: motor.DefaultConfig(),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *motor.Definition {
	def, ok := Presets[name]
	if !ok {
		return nil
	}
	c := def.Clone()
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
