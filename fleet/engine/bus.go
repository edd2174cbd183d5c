package engine

import "fmt"

// Bus is a Vehicle that carries passengers and earns FareRate per passenger
// per unit of distance travelled
type Bus struct {
	Vehicle
	passengers int
	earned     float64
}

// NewBus creates an empty bus at (x, y) facing angle degrees
func NewBus(x, y, angle float64) *Bus {
	return &Bus{
		Vehicle: *NewVehicle(x, y, angle),
	}
}

// Kind returns KindBus
func (b *Bus) Kind() Kind {
	return KindBus
}

// Enter boards num passengers. The count is not clamped here, so a negative
// num lowers it without the floor that Exit applies.
func (b *Bus) Enter(num int) {
	b.passengers += num
}

// Exit removes num passengers, never leaving fewer than zero on board
func (b *Bus) Exit(num int) {
	b.passengers -= num
	if b.passengers < 0 {
		b.passengers = 0
	}
}

// Move drives the bus like any vehicle, then accrues the fare for every
// passenger on board over the distance driven.
func (b *Bus) Move(distance float64) {
	b.Vehicle.Move(distance)
	b.earned += Fare(b.passengers, distance)
}

// Passengers returns the number of passengers on board
func (b *Bus) Passengers() int {
	return b.passengers
}

// Earned returns the fare revenue accrued so far
func (b *Bus) Earned() float64 {
	return b.earned
}

func (b *Bus) Describe() string {
	return fmt.Sprintf("Bus: (X=%.2f, Y=%.2f, Angle=%.2f, Passengers=%d, Earned=%.2f)",
		b.pos.X, b.pos.Y, b.angle, b.passengers, b.earned)
}

// String must be redefined here, otherwise the promoted Vehicle.String would
// describe the bus as a plain vehicle.
func (b *Bus) String() string {
	return b.Describe()
}

// Snapshot returns a copy of the bus state
func (b *Bus) Snapshot() Snapshot {
	s := b.Vehicle.Snapshot()
	s.Kind = KindBus
	passengers, earned := b.passengers, b.earned
	s.Passengers = &passengers
	s.Earned = &earned
	return s
}

// Fare is the revenue for carrying passengers over distance
func Fare(passengers int, distance float64) float64 {
	return float64(passengers) * distance * FareRate
}
