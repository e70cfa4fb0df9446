package state

import "golang.org/x/exp/constraints"

// Number is satisfied by any numeric type suitable for an objective value —
// broader than constraints.Signed since costs are routinely floating
// point.
type Number interface {
	constraints.Integer | constraints.Float
}

// SearchState is the mutable global state of a partial branch-and-bound
// solution to the berth allocation problem.
//
// The zero value is not meaningful; construct with NewSearchState,
// NewSearchStateSized, or NewSearchStateFrom.
type SearchState[Time constraints.Signed, Index constraints.Signed, Cost Number] struct {
	BerthFreeTimes     []Time
	VesselAssignments  []Index
	VesselStartTimes   []Time
	LastAssignedVessel Index
	CurrentObjective   Cost
}

// Unassigned returns the sentinel value marking a vessel with no berth
// assignment, in Index's own type. Go generics have no way to spell one
// typed constant shared across every instantiation of Index, so this is a
// function rather than a package constant.
func Unassigned[Index constraints.Signed]() Index {
	return Index(-1)
}

// Move is the concrete shape of "one candidate branch" at a search node: a
// vessel assigned to a berth at a given start/finish time, with the
// resulting change in objective value. It is not part of the core
// component set; move generators populate a SearchStack[Move] and the
// driver applies the chosen one via SearchState.ApplyMove.
type Move[Time constraints.Signed, Index constraints.Signed, Cost Number] struct {
	Vessel    Index
	Berth     Index
	Start     Time
	Finish    Time
	CostDelta Cost
}
