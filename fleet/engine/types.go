package engine

import "errors"

// Kind identifies the type of an entity
type Kind string

const (
	KindVehicle Kind = "vehicle"
	KindBus     Kind = "bus"

	// FareRate is the revenue per passenger per unit of distance
	FareRate = 0.5
)

// ErrInvalidArgument is returned for arguments no entity can act on, such as NaN
var ErrInvalidArgument = errors.New("invalid argument")

// Position represents x,y coordinates on the plane
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is a point-in-time copy of an entity's state.
// Passengers and Earned are only set for a bus.
type Snapshot struct {
	Kind       Kind     `json:"kind"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Angle      float64  `json:"angle"`
	Passengers *int     `json:"passengers,omitempty"`
	Earned     *float64 `json:"earned,omitempty"`
}

// Entity is anything the simulator can move and describe
type Entity interface {
	Kind() Kind
	Move(distance float64)
	Turn(angle float64)
	Position() Position
	Heading() float64
	Describe() string
	Snapshot() Snapshot
}

// Passenger is implemented by entities that carry paying passengers
type Passenger interface {
	Entity
	Enter(num int)
	Exit(num int)
	Passengers() int
	Earned() float64
}
