// Package leviathan is a branch-and-bound search kernel for the berth
// allocation problem: deciding which berth each vessel ties up at and
// when, to minimize a scheduling cost.
//
// The kernel itself never searches anything — it is the substrate a
// driver builds a solver on top of. Four components cover the substrate:
//
//	timeline/ — BerthTimeline, the sorted free-time windows of one berth
//	trail/    — DeltaTrail and FrameTrail, the two undo-log shapes a
//	            driver records while walking down the search tree
//	stack/    — SearchStack, the frame-structured tape of candidate moves
//	            at each node
//	state/    — SearchState, the partial solution's mutable global state
//
// A driver's inner loop looks like:
//
//	stack.FillFrameFunc(func(s *stack.SearchStack[Move]) {
//		// scan a vessel's candidate berths' BerthTimelines, push one
//		// Move per feasible (berth, start) pair
//	})
//	for _, mv := range stack.CurrentFrameEntries() {
//		trail.PushCheckpoint()
//		trail.SaveValue(mv.Berth, searchState.BerthFreeTimes[mv.Berth])
//		searchState.ApplyMove(mv.Vessel, mv.Berth, mv.Start, mv.Finish, mv.CostDelta)
//		// ... recurse ...
//		searchState.BacktrackMove(mv.Vessel, mv.Berth, oldFreeTime, oldObjective, oldLastVessel)
//		trail.Backtrack(searchState.BerthFreeTimes, func(int) {})
//	}
//	stack.PopFrame()
//
// None of the four components performs I/O, allocates on a steady-state
// path once warm, or shares state across goroutines — a solver that
// parallelises across the search tree partitions by giving each worker
// its own complete, independent set of components.
package leviathan
