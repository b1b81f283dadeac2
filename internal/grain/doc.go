// Package grain models the propellant grains of a motor stack.
//
// Every grain shape implements [Grain], answering geometry queries at a
// given regression depth:
//
//   - [Bates]: cylindrical grain with a circular core
//   - [EndBurner]: solid cylinder burning from its aft face only
//   - [Finocyl], [Star], [MoonBurner]: cores that are rasterized on a
//     square map and regressed with a distance transform
//
// Grains are selected by their type tag through [New]; the tag and the
// property map round-trip through a motor definition record.
//
// # Per-run state
//
// [Grain.SimulationSetup] fills per-run caches (the regression map of the
// map-based shapes). It never touches the grain's properties, and calling
// it again with the same settings is a no-op.
package grain
