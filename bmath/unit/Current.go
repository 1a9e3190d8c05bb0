package unit

import (
	"fmt"

	"github.com/pkg/errors"
)

const CurrentMilliampere byte = 30
const CurrentAmpere byte = 31
const CurrentKiloampere byte = 32

func currentFactor(units byte) (float64, error) {
	switch units {
	case CurrentMilliampere:
		return 1e-3, nil
	case CurrentAmpere:
		return 1, nil
	case CurrentKiloampere:
		return 1e3, nil
	default:
		return 0, errors.Errorf("Current: unit %d is not supported", units)
	}
}

//Current keeps an electric current, stored in amperes
type Current struct {
	value        float64
	defaultUnits byte
}

//CreateCurrent creates a current value.
//
//units are measurement unit and may be any value from
//unit.Current* constants.
func CreateCurrent(value float64, units byte) (Current, error) {
	f, err := currentFactor(units)
	if err != nil {
		return Current{}, errors.Wrapf(err, "cannot create current %v", value)
	}
	return Current{value: value * f, defaultUnits: units}, nil
}

func MustCreateCurrent(value float64, units byte) Current {
	v, err := CreateCurrent(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the current in the specified units.
func (v Current) Value(units byte) (float64, error) {
	f, err := currentFactor(units)
	if err != nil {
		return 0, err
	}
	return v.value / f, nil
}

//Convert the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Current) In(units byte) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

//Amperes returns the current in SI units
func (v Current) Amperes() float64 {
	return v.value
}

func (v Current) String() string {
	x, e := v.Value(v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	switch v.defaultUnits {
	case CurrentMilliampere:
		unitName = "mA"
	case CurrentAmpere:
		unitName = "A"
	case CurrentKiloampere:
		unitName = "kA"
	}
	return fmt.Sprintf("%g%s", x, unitName)
}

func (v Current) Units() byte {
	return v.defaultUnits
}
