package go_fieldcalc

import (
	"io"
	"math"

	"github.com/gehtsoft-usa/go_fieldcalc/bmath/unit"
	"github.com/gehtsoft-usa/go_fieldcalc/bmath/vector"
)

//MagneticField is a sample of the magnetic field
type MagneticField struct {
	Field
	calculated float64
}

//CreateMagneticField creates a magnetic field sample with the specified components
func CreateMagneticField(x, y, z float64) MagneticField {
	return MagneticField{Field: Field{components: vector.Create(x, y, z)}}
}

//CalculateField calculates the field magnitude at the distance (m)
//from a long straight wire carrying the current (A).
//
//The magnitude is 0 when the distance is 0
func (v *MagneticField) CalculateField(current, distance float64) {
	if distance != 0 {
		v.calculated = current / (2 * math.Pi * distance * VacuumPermeability)
	} else {
		v.calculated = 0
	}
}

//CalculateFieldFor calculates the field magnitude using typed current and distance
func (v *MagneticField) CalculateFieldFor(current unit.Current, distance unit.Distance) {
	v.CalculateField(current.Amperes(), distance.Meters())
}

func (v MagneticField) CalculatedMagnitude() float64 {
	return v.calculated
}

//Add returns a new sample which components are the sum of both samples.
//The magnitude of the result is not calculated.
func (v MagneticField) Add(b MagneticField) MagneticField {
	return MagneticField{Field: Field{components: v.components.Add(b.components)}}
}

func (v MagneticField) Copy() MagneticField {
	return MagneticField{Field: Field{components: v.components.Copy()}, calculated: v.calculated}
}

func (v MagneticField) PrintMagnitude(w io.Writer) {
	printCalculated(w, v.Field, "Magnetic", v.calculated)
}
