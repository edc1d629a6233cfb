package model

import "fmt"

// Point is a position in 3D space.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a Point from its three coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Vector is a directed field value, e.g. a displacement or a surface normal.
// It has the same shape as a Point but is semantically a value, not a position.
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a Vector from its three components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// String returns a string representation of the Vector.
func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g, %g)", v.X, v.Y, v.Z)
}
