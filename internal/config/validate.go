package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/san-kum/motorsim/internal/motor"
)

// boundsSchema mirrors the json names of motor.Config.
const boundsSchema = `
#Config: {
	maxPressure:        number & >=0 & <=7e7
	maxMassFlux:        number & >=0 & <=1e4
	minPortThroat:      number & >=1 & <=4
	burnoutWebThres:    number & >=2.54e-5 & <=3.175e-3
	burnoutThrustThres: number & >=0.01 & <=10
	timestep:           number & >=1e-4 & <=0.1
	ambPressure:        number & >=1e-4 & <=102000
	mapDim:             int & >=250 & <=2000
}
`

// ValidateBounds checks every config parameter against its allowed range.
func ValidateBounds(cfg motor.Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(boundsSchema)
	if schema.Err() != nil {
		return fmt.Errorf("compile bounds schema: %w", schema.Err())
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	val := ctx.Encode(cfg)
	if val.Err() != nil {
		return fmt.Errorf("encode config: %w", val.Err())
	}

	final := def.Unify(val)
	if err := final.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, err)
	}
	return nil
}
