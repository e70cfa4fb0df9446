// Package stack provides SearchStack, a frame-structured decision tape
// for a branch-and-bound search.
//
// Every candidate decision for the node currently being explored lives in
// one contiguous frame, so siblings stay visible as a slice — the move
// generator can dump every candidate berth/gap for a vessel into one frame
// and the driver can scan, rank, or prune across the whole sibling set
// before committing to one. PushFrame/PopFrame nest arbitrarily deep; the
// two-slice layout (entries + frame-start indices) gives O(1) push/pop at
// every depth and zero copies when moving between depths.
//
// Every precondition violation (Push/Emplace/PopEntry/Top/PopFrame/Extend
// with no frame open, PopEntry/Top on an empty frame) panics
// unconditionally — there is no debug/release split. A SearchStack knows
// nothing about any trail recording undo data for its moves; keeping the
// two in lockstep during backtracking is the driver's responsibility.
package stack
