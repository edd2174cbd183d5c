package engine

import (
	"fmt"
	"math"
)

// Radians converts a heading in degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Displacement returns the x and y change produced by travelling distance
// along the given heading
func Displacement(angle, distance float64) (dx, dy float64) {
	rad := Radians(angle)
	return distance * math.Cos(rad), distance * math.Sin(rad)
}

// Distance returns the straight-line distance between two positions
func Distance(from, to Position) float64 {
	return math.Hypot(to.X-from.X, to.Y-from.Y)
}

// CheckFinite rejects NaN and infinite values
func CheckFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}
