package go_fieldcalc

import (
	"io"
	"math"

	"github.com/gehtsoft-usa/go_fieldcalc/bmath/unit"
	"github.com/gehtsoft-usa/go_fieldcalc/bmath/vector"
)

//ElectricField is a sample of the electric field.
//
//The components are set by the caller, the magnitude is
//calculated separately from a point charge (see CalculateField)
type ElectricField struct {
	Field
	calculated float64
}

//CreateElectricField creates an electric field sample with the specified components
func CreateElectricField(x, y, z float64) ElectricField {
	return ElectricField{Field: Field{components: vector.Create(x, y, z)}}
}

//CalculateField calculates the field magnitude at the distance (m)
//from the point charge (C) using Coulomb's law.
//
//The magnitude is 0 when the distance is 0
func (v *ElectricField) CalculateField(charge, distance float64) {
	if distance != 0 {
		v.calculated = charge / (4 * math.Pi * VacuumPermittivity * distance * distance)
	} else {
		v.calculated = 0
	}
}

//CalculateFieldFor calculates the field magnitude using typed charge and distance
func (v *ElectricField) CalculateFieldFor(charge unit.Charge, distance unit.Distance) {
	v.CalculateField(charge.Coulombs(), distance.Meters())
}

//CalculatedMagnitude returns the magnitude set by the last CalculateField call
func (v ElectricField) CalculatedMagnitude() float64 {
	return v.calculated
}

//Add returns a new sample which components are the sum of both samples.
//The magnitude of the result is not calculated.
func (v ElectricField) Add(b ElectricField) ElectricField {
	return ElectricField{Field: Field{components: v.components.Add(b.components)}}
}

//Copy creates a copy of the sample including the calculated magnitude
func (v ElectricField) Copy() ElectricField {
	return ElectricField{Field: Field{components: v.components.Copy()}, calculated: v.calculated}
}

//PrintMagnitude writes the components and the calculated magnitude
func (v ElectricField) PrintMagnitude(w io.Writer) {
	printCalculated(w, v.Field, "Electric", v.calculated)
}
