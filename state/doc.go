// Package state provides SearchState, the mutable global state of a
// partial branch-and-bound solution to the berth allocation problem:
// per-berth free times, per-vessel berth assignments and start times, the
// index of the most recently assigned vessel, and the running objective.
//
// SearchState exposes exactly two mutators, ApplyMove and BacktrackMove,
// meant to be called in strict LIFO pairs by a driver recording undo data
// on a trail (see package trail) between the two calls. Every other method
// is a read.
//
// ApplyMove panics if the vessel is already assigned; GetStartTime and
// GetAssignedBerth panic if the vessel is unassigned. There is no
// debug/release split — these checks always run.
package state
