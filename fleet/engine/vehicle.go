package engine

import "fmt"

// Vehicle is a point on the plane with a heading
type Vehicle struct {
	pos   Position
	angle float64
}

// NewVehicle creates a vehicle at (x, y) facing angle degrees
func NewVehicle(x, y, angle float64) *Vehicle {
	return &Vehicle{
		pos:   Position{X: x, Y: y},
		angle: angle,
	}
}

// Kind returns KindVehicle
func (v *Vehicle) Kind() Kind {
	return KindVehicle
}

// Move advances the vehicle along its current heading. A negative distance
// moves it backwards.
func (v *Vehicle) Move(distance float64) {
	dx, dy := Displacement(v.angle, distance)
	v.pos.X += dx
	v.pos.Y += dy
}

// Turn sets the heading. The angle is stored as given, without wrapping.
func (v *Vehicle) Turn(angle float64) {
	v.angle = angle
}

// Position returns the current coordinates
func (v *Vehicle) Position() Position {
	return v.pos
}

// Heading returns the current heading in degrees
func (v *Vehicle) Heading() float64 {
	return v.angle
}

func (v *Vehicle) Describe() string {
	return fmt.Sprintf("Vehicle: (X=%.2f, Y=%.2f, Angle=%.2f)", v.pos.X, v.pos.Y, v.angle)
}

func (v *Vehicle) String() string {
	return v.Describe()
}

// Snapshot returns a copy of the vehicle state
func (v *Vehicle) Snapshot() Snapshot {
	return Snapshot{
		Kind:  KindVehicle,
		X:     v.pos.X,
		Y:     v.pos.Y,
		Angle: v.angle,
	}
}
