// Package engine provides the movable entities of the fleet simulator.
//
// The engine package implements:
//   - Vehicle: a position on the plane and a heading in degrees
//   - Bus: a Vehicle that also carries passengers and accrues fares
//   - Heading arithmetic shared by every entity that moves
//
// Core Types:
//
// The Entity interface is the contract the simulator drives. Vehicle and Bus
// implement it; Bus additionally implements Passenger. A Bus holds its
// Vehicle by embedding, and its Move runs the Vehicle movement first and then
// applies fare accrual as an explicit post-step.
//
// Usage:
//
//	car := engine.NewVehicle(10, 20, 45)
//	car.Move(5)
//	fmt.Println(car) // Vehicle: (X=13.54, Y=23.54, Angle=45.00)
//
//	bus := engine.NewBus(0, 0, 0)
//	bus.Enter(10)
//	bus.Move(10)
//	fmt.Println(bus) // Bus: (X=10.00, Y=0.00, Angle=0.00, Passengers=10, Earned=50.00)
//
// Headings:
//
// Angles are degrees measured counterclockwise from east: 0 is east, 90 is
// north, 180 is west and 270 is south. Headings are never normalised, so a
// heading of 450 or -90 is kept as given.
package engine
