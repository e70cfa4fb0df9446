// Package timeline manages a single berth's availability as a sorted,
// disjoint sequence of half-open windows.
//
// What:
//
//   - BerthTimeline holds zero or more AvailableWindow values, always kept
//     strictly ordered by start time and pairwise disjoint.
//   - Carve subtracts a sorted set of fixed-assignment windows from a sorted
//     set of raw availability windows, in a single amortized linear pass.
//   - FindEarliestStart answers "what is the soonest a vessel of this
//     duration could start, given it can't start before readyTime?" using a
//     binary-search lower bound into the window sequence.
//
// Why:
//
//   - Branch-and-bound move generation scans every berth's timeline once per
//     candidate vessel per search node. The timeline has to answer earliest-
//     fit queries without allocating and without scanning windows that have
//     already been ruled out by the ready time.
//
// Failure semantics:
//
//   - This package never returns an error. An invalid range collapses to an
//     empty timeline; a query with no fit returns ok=false. Both are normal,
//     expected outcomes for a search kernel — see FindEarliestStart and
//     Assign.
package timeline
