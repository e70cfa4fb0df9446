package trail

import "unsafe"

// FrameTrail is the bundled-variant undo log: it stores one opaque
// restoration bundle T per applied move, organized into frames. Backtrack
// pops the current frame and hands each of its entries, most recent first,
// to the caller's undo callback. See the package doc for when to prefer
// this over DeltaTrail.
//
// The zero value is an empty, usable FrameTrail.
type FrameTrail[T any] struct {
	entries []T
	frames  []int
}

// NewFrameTrail returns an empty FrameTrail with entryCap/frameCap
// reserved up front.
func NewFrameTrail[T any](entryCap, frameCap int) *FrameTrail[T] {
	return &FrameTrail[T]{
		entries: make([]T, 0, entryCap),
		frames:  make([]int, 0, frameCap),
	}
}

// PushFrame opens a new frame at the current end of the entry tape.
func (f *FrameTrail[T]) PushFrame() {
	f.frames = append(f.frames, len(f.entries))
}

// Push appends one restoration bundle to the current frame. It panics if
// no frame is open — callers must PushFrame before the first move of a
// scope.
func (f *FrameTrail[T]) Push(entry T) {
	if len(f.frames) == 0 {
		panic("trail: Push called with no open frame")
	}
	f.entries = append(f.entries, entry)
}

// Emplace is an alias for Push kept for symmetry with SearchStack.Emplace;
// Go generics have no variadic in-place constructor call, so "emplacing" a
// bundle here just means the caller builds T itself and hands it over.
func (f *FrameTrail[T]) Emplace(entry T) {
	f.Push(entry)
}

// Backtrack pops the current frame, invoking undo for each of its entries
// from most recently pushed to least. It panics if no frame is open.
func (f *FrameTrail[T]) Backtrack(undo func(entry T)) {
	if len(f.frames) == 0 {
		panic("trail: Backtrack called with no open frame")
	}
	start := f.frames[len(f.frames)-1]
	f.frames = f.frames[:len(f.frames)-1]

	for i := len(f.entries) - 1; i >= start; i-- {
		undo(f.entries[i])
	}
	f.entries = f.entries[:start]
}

// Depth returns the number of open frames.
func (f *FrameTrail[T]) Depth() int { return len(f.frames) }

// Empty reports whether there are no open frames.
func (f *FrameTrail[T]) Empty() bool { return len(f.frames) == 0 }

// Clear empties both logs while retaining their backing capacity.
func (f *FrameTrail[T]) Clear() {
	f.entries = f.entries[:0]
	f.frames = f.frames[:0]
}

// Reserve grows backing capacity to at least entryCap entries and frameCap
// frames in total, so the trail does not reallocate until it holds more
// than that. It never shrinks capacity.
func (f *FrameTrail[T]) Reserve(entryCap, frameCap int) {
	f.entries = growSlice(f.entries, entryCap)
	f.frames = growSlice(f.frames, frameCap)
}

// ShrinkToFit releases unused capacity. Do not call this during search.
func (f *FrameTrail[T]) ShrinkToFit() {
	f.entries = shrinkSlice(f.entries)
	f.frames = shrinkSlice(f.frames)
}

// AllocatedMemoryBytes returns the bytes currently allocated (capacity) by
// the backing slices.
func (f *FrameTrail[T]) AllocatedMemoryBytes() int {
	var ze T
	var zi int
	return cap(f.entries)*int(unsafe.Sizeof(ze)) + cap(f.frames)*int(unsafe.Sizeof(zi))
}

// UsedMemoryBytes returns the bytes currently occupied by live entries.
func (f *FrameTrail[T]) UsedMemoryBytes() int {
	var ze T
	var zi int
	return len(f.entries)*int(unsafe.Sizeof(ze)) + len(f.frames)*int(unsafe.Sizeof(zi))
}
