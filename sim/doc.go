// Package sim implements the happiness-economy community simulation.
//
// # Reading Guide
//
//   - phase.go: day → Phase classification and display labels
//   - user.go: user archetypes, the user factory and per-user daily updates
//   - state.go: State, Reset and AdvanceDay, plus the Status view
//   - rng.go: seeded, per-subsystem randomness
//
// A run lasts MaxDays days. AdvanceDay is the only transition; once the last
// day is reached it returns false and leaves the State untouched.
//
// All randomness flows from one SimulationKey through PartitionedRNG, so a
// seed fully determines a run. State is not safe for concurrent use.
package sim
