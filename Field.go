package go_fieldcalc

import (
	"fmt"
	"io"
	"math"

	"github.com/gehtsoft-usa/go_fieldcalc/bmath/vector"
)

//VacuumPermittivity is the electric constant in F/m
const VacuumPermittivity float64 = 8.854e-12

//VacuumPermeability is the magnetic constant in H/m
const VacuumPermeability float64 = 4 * math.Pi * 1e-7

//Field keeps the components shared by all field samples
type Field struct {
	components vector.Vector
}

//Components returns the components of the field sample
func (v Field) Components() vector.Vector {
	return v.components
}

//String returns the components as (x, y, z)
func (v Field) String() string {
	return v.components.String()
}

//PrintMagnitude writes the components line of the sample
func (v Field) PrintMagnitude(w io.Writer) {
	fmt.Fprintf(w, "Components: %s\n", v.components)
}

func printCalculated(w io.Writer, base Field, label string, calculated float64) {
	base.PrintMagnitude(w)
	fmt.Fprintf(w, "Calculated %s Field Magnitude: %s\n", label, vector.FormatComponent(calculated))
}
