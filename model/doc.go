// Package model defines the geometry value types used throughout vtkgo.
//
// # Types
//
//   - Point: a position in 3D space (x, y, z), double precision
//   - Vector: a directed field value with the same shape as a Point
//
// Both are immutable value types. vtkgo treats them as opaque 3-tuples: it
// never validates geometric correctness, it only formats their components.
package model
