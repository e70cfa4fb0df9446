// Package trail provides two undo logs for a branch-and-bound search:
// DeltaTrail, which records field-granularity (index, old value) deltas
// plus a separate dirty-index log so "reset to default" doesn't pay for a
// full value pair, and FrameTrail, which records one opaque restoration
// bundle per applied move.
//
// Both are LIFO, frame/checkpoint-scoped, and designed to be reserved once
// before search starts and never reallocate on the hot path afterward. Pick
// DeltaTrail when the rollback surface is sparse across large shared arrays
// (most of global state, touched one field at a time); pick FrameTrail when
// a single move mutates several fields atomically and it's cheaper to
// capture one bundle than several delta entries. A solver may use either,
// or both side by side, for different pieces of state.
//
// FrameTrail panics unconditionally on Push/Backtrack with no frame open —
// there is no debug/release split. DeltaTrail's Backtrack/CommitCheckpoint
// are no-ops when no checkpoint is open, matching the "nothing to restore"
// reading of an already-unwound trail. Keeping a trail's frames in
// lockstep with a SearchStack's is the driver's responsibility; neither
// package checks the other.
package trail
