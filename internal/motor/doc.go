// Package motor holds the motor model and its internal-ballistics engine.
//
// A [Motor] is an ordered grain stack (index 0 is forward-most), a
// [Propellant], a [Nozzle] and a [Config]. [Motor.Simulate] marches the
// stack through time:
//
//   - validation: geometry and placement problems become ERROR alerts and
//     reject the run
//   - setup: grains precompute their regression maps
//   - burning: each step regresses every grain by the burn rate at the last
//     sample's pressure, then solves the new equilibrium pressure and thrust
//   - burnout: the loop stops once thrust falls below a fraction of its peak
//
// # Example
//
//	m, err := motor.FromDefinition(def)
//	if err != nil {
//		return err
//	}
//	res := m.Simulate(func(p float64) bool { return false })
//	fmt.Println(res.Stats().Designation)
//
// # Thread Safety
//
// Simulate does not lock the motor. Concurrent runs are safe only while no
// one edits the motor; the sweep package gives every run its own Motor.
package motor
