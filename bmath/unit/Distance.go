package unit

import (
	"fmt"

	"github.com/pkg/errors"
)

//DistanceMillimeter is the value indicating that the distance value is set in millimeters
const DistanceMillimeter byte = 10

//DistanceCentimeter is the value indicating that the distance value is set in centimeters
const DistanceCentimeter byte = 11

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 12

//DistanceKilometer is the value indicating that the distance value is set in kilometers
const DistanceKilometer byte = 13

//Distance structure keeps the distance value
type Distance struct {
	value        float64
	defaultUnits byte
}

func distanceToDefault(value float64, units byte) (float64, error) {
	switch units {
	case DistanceMillimeter:
		return value / 1000, nil
	case DistanceCentimeter:
		return value / 100, nil
	case DistanceMeter:
		return value, nil
	case DistanceKilometer:
		return value * 1000, nil
	default:
		return 0, errors.Errorf("Distance: unit %d is not supported", units)
	}
}

func distanceFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case DistanceMillimeter:
		return value * 1000, nil
	case DistanceCentimeter:
		return value * 100, nil
	case DistanceMeter:
		return value, nil
	case DistanceKilometer:
		return value / 1000, nil
	default:
		return 0, errors.Errorf("Distance: unit %d is not supported", units)
	}
}

//CreateDistance creates a distance value.
//
//units are measurement unit and may be any value from
//unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := distanceToDefault(value, units)
	if err != nil {
		return Distance{}, errors.Wrapf(err, "cannot create distance %v", value)
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returned a error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the distance in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Distance) Value(units byte) (float64, error) {
	return distanceFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Distance) In(units byte) float64 {
	x, e := distanceFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Meters returns the distance in SI units
func (v Distance) Meters() float64 {
	return v.value
}

func (v Distance) String() string {
	x, e := distanceFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	switch v.defaultUnits {
	case DistanceMillimeter:
		unitName = "mm"
	case DistanceCentimeter:
		unitName = "cm"
	case DistanceMeter:
		unitName = "m"
	case DistanceKilometer:
		unitName = "km"
	}
	return fmt.Sprintf("%g%s", x, unitName)
}

//Units return the units in which the value is measured
func (v Distance) Units() byte {
	return v.defaultUnits
}
