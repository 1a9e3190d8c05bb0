//The package provides simple operations on 3d vector
//used to keep the components of a field sample
package vector

import (
	"fmt"
	"math"
)

//3D vector structure
type Vector struct {
	X float64 //X-component
	Y float64 //Y-component
	Z float64 //Z-component
}

//Converts a vector into a string
//
//Each component is rendered with 6 significant digits, e.g. (0, 100000, 1000)
func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)", FormatComponent(v.X), FormatComponent(v.Y), FormatComponent(v.Z))
}

//FormatComponent renders a single value the way vector components are printed
func FormatComponent(value float64) string {
	return fmt.Sprintf("%.6g", value)
}

//Creates a vector from its coordinates
func Create(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

//Create a copy of the vector
func (v Vector) Copy() Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}

//Return a product of two vectors
//
//The product of two vectors is a sum of products of each coordinate
func (v Vector) MultiplyByVector(b Vector) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

//Returns a magnitude of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.MultiplyByVector(v))
}

//Multiplies the vector by the constant
func (v Vector) MultiplyByConst(a float64) Vector {
	return Create(a*v.X, a*v.Y, a*v.Z)
}

//Adds two vectors component by component
func (a Vector) Add(b Vector) Vector {
	return Create(a.X+b.X, a.Y+b.Y, a.Z+b.Z)
}

//Subtracts one vector from another
func (a Vector) Subtract(b Vector) Vector {
	return Create(a.X-b.X, a.Y-b.Y, a.Z-b.Z)
}

//Returns a vector which is symmetrical to this vector vs (0,0,0) point
func (v Vector) Negate() Vector {
	return Create(-v.X, -v.Y, -v.Z)
}

//Returns a vector of magnitude one which is collinear to this vector
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if math.Abs(magnitude) < 1e-10 {
		return v.Copy()
	}
	return v.MultiplyByConst(1.0 / magnitude)
}
