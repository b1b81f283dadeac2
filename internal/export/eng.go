package export

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/motorsim/internal/motor"
)

const manufacturer = "motorsim"

// motorEnvelope is the largest grain diameter and the stack length.
func motorEnvelope(def motor.Definition) (diameter, length float64) {
	for _, g := range def.Grains {
		if d, ok := g.Properties["diameter"].(float64); ok {
			diameter = math.Max(diameter, d)
		}
		if l, ok := g.Properties["length"].(float64); ok {
			length += l
		}
	}
	return diameter, length
}

// WriteENG writes a RASP engine file. The thrust curve skips the t=0
// sample and always ends on a zero-thrust row.
func WriteENG(w io.Writer, name string, def motor.Definition, res *motor.Result) error {
	bw := bufio.NewWriter(w)
	dia, length := motorEnvelope(def)
	mass := res.PropellantMass()
	name = strings.ReplaceAll(name, " ", "_")

	fmt.Fprintf(bw, "; %s export\n", manufacturer)
	fmt.Fprintf(bw, "%s %.0f %.0f P %.4f %.4f %s\n", name, dia*1000, length*1000, mass, mass, manufacturer)

	for i := 1; i < res.Len(); i++ {
		f := res.Force[i]
		if i == res.Len()-1 {
			f = 0
		}
		fmt.Fprintf(bw, "   %.4f %.4f\n", res.Time[i], f)
	}
	return bw.Flush()
}
