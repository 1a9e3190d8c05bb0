package go_fieldcalc

import (
	"fmt"
	"io"
)

//Demonstrate runs the fixed demonstration sequence and writes its output to w:
//the initial samples, the samples after the magnitudes are calculated
//for 1uC and 10A at 5cm, and the sums of the samples with a second pair.
func Demonstrate(w io.Writer) {
	e1 := CreateElectricField(0, 1e5, 1e3)
	m1 := CreateMagneticField(0.1, 0.2, 0.3)

	fmt.Fprintln(w, "Initial Electric Field:")
	e1.PrintMagnitude(w)

	fmt.Fprintln(w, "Initial Magnetic Field:")
	m1.PrintMagnitude(w)

	e1.CalculateField(1e-6, 0.05)
	m1.CalculateField(10, 0.05)

	fmt.Fprintln(w, "\nAfter Calculation:")
	e1.PrintMagnitude(w)
	m1.PrintMagnitude(w)

	e2 := CreateElectricField(1, 2, 3)
	e3 := e1.Add(e2)
	m2 := CreateMagneticField(0.5, 0.5, 0.5)
	m3 := m1.Add(m2)

	fmt.Fprintf(w, "\nCombined Electric Field: %s\n", e3)
	fmt.Fprintf(w, "Combined Magnetic Field: %s\n", m3)
}
