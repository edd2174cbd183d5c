// Package service runs scenarios against the fleet engine.
//
// The Simulator validates a scenario, applies its steps in order to a fresh
// registry of entities and hands each resulting state to a Printer. Analyze
// runs the same steps silently and reports path lengths and steps whose
// effect is easy to miss, such as a negative boarding count or an exit that
// was clamped at zero.
//
// Usage:
//
//	printer, err := service.NewPrinter(service.FormatText, os.Stdout)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sim := service.NewSimulator(printer, logrus.StandardLogger())
//	report, err := sim.Run(ctx, scenario.Demo())
package service
