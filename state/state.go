package state

import "golang.org/x/exp/constraints"

// NewSearchState returns an empty SearchState with no berths and no
// vessels.
func NewSearchState[Time constraints.Signed, Index constraints.Signed, Cost Number]() *SearchState[Time, Index, Cost] {
	return &SearchState[Time, Index, Cost]{LastAssignedVessel: Unassigned[Index]()}
}

// NewSearchStateSized returns a SearchState for numBerths berths and
// numVessels vessels: every berth free at time 0, every vessel
// unassigned with start time 0.
func NewSearchStateSized[Time constraints.Signed, Index constraints.Signed, Cost Number](numBerths, numVessels int) *SearchState[Time, Index, Cost] {
	s := &SearchState[Time, Index, Cost]{
		BerthFreeTimes:     make([]Time, numBerths),
		VesselAssignments:  make([]Index, numVessels),
		VesselStartTimes:   make([]Time, numVessels),
		LastAssignedVessel: Unassigned[Index](),
	}
	u := Unassigned[Index]()
	for i := range s.VesselAssignments {
		s.VesselAssignments[i] = u
	}
	return s
}

// NewSearchStateFrom builds a SearchState from existing collections, e.g.
// a warm start produced by a heuristic. It panics if assignments and
// startTimes have different lengths.
func NewSearchStateFrom[Time constraints.Signed, Index constraints.Signed, Cost Number](
	berthFreeTimes []Time, assignments []Index, startTimes []Time,
) *SearchState[Time, Index, Cost] {
	if len(assignments) != len(startTimes) {
		panic("state: vessel_assignments and vessel_start_times must have equal length")
	}
	return &SearchState[Time, Index, Cost]{
		BerthFreeTimes:     berthFreeTimes,
		VesselAssignments:  assignments,
		VesselStartTimes:   startTimes,
		LastAssignedVessel: Unassigned[Index](),
	}
}

// IsAssigned reports whether vessel vIdx currently has a berth assignment.
func (s *SearchState[Time, Index, Cost]) IsAssigned(vIdx Index) bool {
	return s.VesselAssignments[vIdx] != Unassigned[Index]()
}

// GetStartTime returns the time vessel vIdx starts service at its assigned
// berth. The caller must have checked IsAssigned(vIdx); calling this on an
// unassigned vessel is a precondition violation.
func (s *SearchState[Time, Index, Cost]) GetStartTime(vIdx Index) Time {
	if !s.IsAssigned(vIdx) {
		panic("state: GetStartTime called on an unassigned vessel")
	}
	return s.VesselStartTimes[vIdx]
}

// GetAssignedBerth returns the index of the berth vessel vIdx is assigned
// to. The caller must have checked IsAssigned(vIdx).
func (s *SearchState[Time, Index, Cost]) GetAssignedBerth(vIdx Index) Index {
	if !s.IsAssigned(vIdx) {
		panic("state: GetAssignedBerth called on an unassigned vessel")
	}
	return s.VesselAssignments[vIdx]
}

// ApplyMove assigns vessel vIdx to berth bIdx starting at start and
// finishing at finish, folding costDelta into the running objective. The
// caller must have checked !IsAssigned(vIdx).
//
// Callers that need to undo this must capture, before calling ApplyMove,
// whatever BacktrackMove requires to reverse it: the berth's prior free
// time, the prior objective, and the prior LastAssignedVessel.
func (s *SearchState[Time, Index, Cost]) ApplyMove(vIdx, bIdx Index, start, finish Time, costDelta Cost) {
	if s.IsAssigned(vIdx) {
		panic("state: ApplyMove called on an already-assigned vessel")
	}
	s.BerthFreeTimes[bIdx] = finish
	s.VesselAssignments[vIdx] = bIdx
	s.VesselStartTimes[vIdx] = start
	s.CurrentObjective += costDelta
	s.LastAssignedVessel = vIdx
}

// BacktrackMove reverses an ApplyMove(vIdx, bIdx, ...) call, given the
// state captured immediately before it: the berth's free time, the
// objective, and LastAssignedVessel. vesselStartTimes[vIdx] is left
// untouched — it is dead as soon as vIdx is unassigned, guarded by
// IsAssigned on every read.
func (s *SearchState[Time, Index, Cost]) BacktrackMove(vIdx, bIdx Index, oldBerthFreeTime Time, oldObjective Cost, oldLastVessel Index) {
	s.BerthFreeTimes[bIdx] = oldBerthFreeTime
	s.VesselAssignments[vIdx] = Unassigned[Index]()
	s.CurrentObjective = oldObjective
	s.LastAssignedVessel = oldLastVessel
}
