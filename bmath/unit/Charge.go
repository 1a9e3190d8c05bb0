package unit

import (
	"fmt"

	"github.com/pkg/errors"
)

const ChargeNanocoulomb byte = 20
const ChargeMicrocoulomb byte = 21
const ChargeMillicoulomb byte = 22
const ChargeCoulomb byte = 23

func chargeFactor(units byte) (float64, error) {
	switch units {
	case ChargeNanocoulomb:
		return 1e-9, nil
	case ChargeMicrocoulomb:
		return 1e-6, nil
	case ChargeMillicoulomb:
		return 1e-3, nil
	case ChargeCoulomb:
		return 1, nil
	default:
		return 0, errors.Errorf("Charge: unit %d is not supported", units)
	}
}

//Charge keeps an electric charge, stored in coulombs
type Charge struct {
	value        float64
	defaultUnits byte
}

//CreateCharge creates a charge value.
//
//units are measurement unit and may be any value from
//unit.Charge* constants.
func CreateCharge(value float64, units byte) (Charge, error) {
	f, err := chargeFactor(units)
	if err != nil {
		return Charge{}, errors.Wrapf(err, "cannot create charge %v", value)
	}
	return Charge{value: value * f, defaultUnits: units}, nil
}

func MustCreateCharge(value float64, units byte) Charge {
	v, err := CreateCharge(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the charge in the specified units.
func (v Charge) Value(units byte) (float64, error) {
	f, err := chargeFactor(units)
	if err != nil {
		return 0, err
	}
	return v.value / f, nil
}

//Convert the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Charge) In(units byte) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

//Coulombs returns the charge in SI units
func (v Charge) Coulombs() float64 {
	return v.value
}

func (v Charge) String() string {
	x, e := v.Value(v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	switch v.defaultUnits {
	case ChargeNanocoulomb:
		unitName = "nC"
	case ChargeMicrocoulomb:
		unitName = "uC"
	case ChargeMillicoulomb:
		unitName = "mC"
	case ChargeCoulomb:
		unitName = "C"
	}
	return fmt.Sprintf("%g%s", x, unitName)
}

func (v Charge) Units() byte {
	return v.defaultUnits
}
