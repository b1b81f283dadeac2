package sweep

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/motorsim/internal/motor"
)

var ErrUnknownParam = errors.New("sweep: unknown parameter")

// Apply sets one numeric parameter of def. Parameters are dotted paths:
//
//	nozzle.throat | nozzle.exit | nozzle.efficiency
//	propellant.a | .n | .k | .t | .m | .density
//	config.<key>            e.g. config.timestep
//	grain.<n>.<property>    n counts from 1, e.g. grain.2.coreDiameter
func Apply(def *motor.Definition, param string, value float64) error {
	parts := strings.Split(param, ".")
	if parts[0] == "grain" {
		return applyGrain(def, param, parts[1:], value)
	}
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrUnknownParam, param)
	}

	var field *float64
	switch parts[0] {
	case "nozzle":
		field = nozzleField(&def.Nozzle, parts[1])
	case "propellant":
		if def.Propellant == nil {
			return fmt.Errorf("%w: %q: motor has no propellant", ErrUnknownParam, param)
		}
		field = propellantField(def.Propellant, parts[1])
	case "config":
		if parts[1] == "mapDim" {
			def.Config.MapDim = int(value)
			return nil
		}
		field = configField(&def.Config, parts[1])
	}
	if field == nil {
		return fmt.Errorf("%w: %q", ErrUnknownParam, param)
	}
	*field = value
	return nil
}

func nozzleField(n *motor.Nozzle, name string) *float64 {
	switch name {
	case "throat":
		return &n.Throat
	case "exit":
		return &n.Exit
	case "efficiency":
		return &n.Efficiency
	}
	return nil
}

func propellantField(p *motor.Propellant, name string) *float64 {
	switch name {
	case "a":
		return &p.A
	case "n":
		return &p.N
	case "k":
		return &p.K
	case "t":
		return &p.T
	case "m":
		return &p.M
	case "density":
		return &p.Density
	}
	return nil
}

func configField(c *motor.Config, name string) *float64 {
	switch name {
	case "maxPressure":
		return &c.MaxPressure
	case "maxMassFlux":
		return &c.MaxMassFlux
	case "minPortThroat":
		return &c.MinPortThroat
	case "burnoutWebThres":
		return &c.BurnoutWebThres
	case "burnoutThrustThres":
		return &c.BurnoutThrustThres
	case "timestep":
		return &c.Timestep
	case "ambPressure":
		return &c.AmbPressure
	}
	return nil
}

func applyGrain(def *motor.Definition, param string, parts []string, value float64) error {
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrUnknownParam, param)
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 1 || n > len(def.Grains) {
		return fmt.Errorf("%w: %q: no such grain", ErrUnknownParam, param)
	}
	entry := &def.Grains[n-1]
	if _, ok := entry.Properties[parts[1]]; !ok {
		return fmt.Errorf("%w: %q: %s has no property %s", ErrUnknownParam, param, entry.Type, parts[1])
	}
	entry.Properties[parts[1]] = value
	return nil
}

// ParseValues accepts either a comma separated list ("0.01,0.012") or a
// start:end:count range ("0.01:0.02:5", both ends included).
func ParseValues(s string) ([]float64, error) {
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("range %q: want start:end:count", s)
		}
		start, err1 := strconv.ParseFloat(parts[0], 64)
		end, err2 := strconv.ParseFloat(parts[1], 64)
		count, err3 := strconv.Atoi(parts[2])
		if err := errors.Join(err1, err2, err3); err != nil {
			return nil, fmt.Errorf("range %q: %w", s, err)
		}
		return Linspace(start, end, count), nil
	}

	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}
