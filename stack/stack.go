package stack

import "unsafe"

// SearchStack is a frame-structured tape of decisions of type T. All
// entries live in one flat slice; a second slice records, per open frame,
// the index into entries where that frame begins. The current frame is
// entries[frames[len(frames)-1]:].
//
// The zero value is an empty, usable SearchStack with no open frame —
// PushFrame must be called before Push/Emplace/PopEntry/Top.
type SearchStack[T any] struct {
	entries []T
	frames  []int
}

// NewSearchStack returns an empty SearchStack with entryCap/frameCap
// reserved up front.
func NewSearchStack[T any](entryCap, frameCap int) *SearchStack[T] {
	return &SearchStack[T]{
		entries: make([]T, 0, entryCap),
		frames:  make([]int, 0, frameCap),
	}
}

// PushFrame opens a new, initially empty frame at the current end of the
// tape.
func (s *SearchStack[T]) PushFrame() {
	s.frames = append(s.frames, len(s.entries))
}

// PopFrame discards the current frame and truncates the tape back to
// where it began. It panics if no frame is open.
func (s *SearchStack[T]) PopFrame() {
	if len(s.frames) == 0 {
		panic("stack: PopFrame called with no open frame")
	}
	start := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.entries = s.entries[:start]
}

// Push appends a decision to the current frame. It panics if no frame is
// open.
func (s *SearchStack[T]) Push(d T) {
	s.requireFrame("Push")
	s.entries = append(s.entries, d)
}

// Emplace appends a decision to the current frame and returns a pointer to
// it in the tape. The pointer is valid only until the next mutating call
// (Push/Emplace/PopEntry/PopFrame/Clear may relocate the backing array).
func (s *SearchStack[T]) Emplace(d T) *T {
	s.requireFrame("Emplace")
	s.entries = append(s.entries, d)
	return &s.entries[len(s.entries)-1]
}

// PopEntry removes the last entry of the current frame. It panics if no
// frame is open or the current frame is empty.
func (s *SearchStack[T]) PopEntry() {
	s.requireFrame("PopEntry")
	if len(s.entries) == s.frames[len(s.frames)-1] {
		panic("stack: PopEntry called on an empty frame")
	}
	s.entries = s.entries[:len(s.entries)-1]
}

// Top returns a pointer to the last entry of the current frame. It panics
// if no frame is open or the current frame is empty.
func (s *SearchStack[T]) Top() *T {
	s.requireFrame("Top")
	if len(s.entries) == s.frames[len(s.frames)-1] {
		panic("stack: Top called on an empty frame")
	}
	return &s.entries[len(s.entries)-1]
}

// CurrentFrameEntries returns the contiguous slice of decisions belonging
// to the current frame — the "sibling visibility" slice used for dominance
// checks and ordered branching. It is empty if no frame is open. The
// returned slice aliases the tape: mutating the stack (Push, PopFrame,
// Clear, ...) while the slice is still referenced is a precondition
// violation the caller must avoid.
func (s *SearchStack[T]) CurrentFrameEntries() []T {
	if len(s.frames) == 0 {
		return nil
	}
	return s.entries[s.frames[len(s.frames)-1]:]
}

// CurrentFrameSize returns the number of entries in the current frame, or
// 0 if no frame is open.
func (s *SearchStack[T]) CurrentFrameSize() int {
	if len(s.frames) == 0 {
		return 0
	}
	return len(s.entries) - s.frames[len(s.frames)-1]
}

// Depth returns the number of open frames.
func (s *SearchStack[T]) Depth() int { return len(s.frames) }

// Empty reports whether there are no open frames.
func (s *SearchStack[T]) Empty() bool { return len(s.frames) == 0 }

// Clear removes every frame and entry while retaining backing capacity.
func (s *SearchStack[T]) Clear() {
	s.entries = s.entries[:0]
	s.frames = s.frames[:0]
}

// Reserve grows backing capacity to at least entryCap entries and frameCap
// frames in total, so the tape does not reallocate until it holds more than
// that. It never shrinks capacity.
func (s *SearchStack[T]) Reserve(entryCap, frameCap int) {
	s.entries = growSlice(s.entries, entryCap)
	s.frames = growSlice(s.frames, frameCap)
}

// ShrinkToFit releases unused capacity. Do not call this during search —
// the reallocation it can trigger is exactly what Reserve exists to avoid.
func (s *SearchStack[T]) ShrinkToFit() {
	s.entries = shrinkSlice(s.entries)
	s.frames = shrinkSlice(s.frames)
}

// AllocatedMemoryBytes returns the bytes currently allocated (capacity) by
// the backing slices.
func (s *SearchStack[T]) AllocatedMemoryBytes() int {
	var ze T
	var zi int
	return cap(s.entries)*int(unsafe.Sizeof(ze)) + cap(s.frames)*int(unsafe.Sizeof(zi))
}

// UsedMemoryBytes returns the bytes currently occupied by live entries.
func (s *SearchStack[T]) UsedMemoryBytes() int {
	var ze T
	var zi int
	return len(s.entries)*int(unsafe.Sizeof(ze)) + len(s.frames)*int(unsafe.Sizeof(zi))
}

// Entries returns every entry across every frame, root-to-leaf in the
// order they were pushed. The returned slice aliases the tape.
func (s *SearchStack[T]) Entries() []T { return s.entries }

// Reversed returns every entry across every frame, leaf-to-root, as a
// freshly allocated slice.
func (s *SearchStack[T]) Reversed() []T {
	out := make([]T, len(s.entries))
	for i, e := range s.entries {
		out[len(out)-1-i] = e
	}
	return out
}

// Extend appends every item in items to the current frame, in order. It
// panics if no frame is open.
func (s *SearchStack[T]) Extend(items []T) {
	s.requireFrame("Extend")
	s.entries = append(s.entries, items...)
}

// FillFrame opens a new frame and extends it with items in one call.
func (s *SearchStack[T]) FillFrame(items []T) {
	s.PushFrame()
	s.entries = append(s.entries, items...)
}

// FillFrameFunc opens a new frame and invokes gen with the stack so it can
// Push/Emplace candidate decisions directly into it — the move generator's
// entry point for populating one node's sibling set.
func (s *SearchStack[T]) FillFrameFunc(gen func(*SearchStack[T])) {
	s.PushFrame()
	gen(s)
}

// FillFrameFuncHint is FillFrameFunc with an up-front capacity hint for the
// number of entries gen is expected to push, avoiding reallocation while it
// runs.
func (s *SearchStack[T]) FillFrameFuncHint(hint int, gen func(*SearchStack[T])) {
	s.entries = growSlice(s.entries, len(s.entries)+hint)
	s.PushFrame()
	gen(s)
}

func (s *SearchStack[T]) requireFrame(op string) {
	if len(s.frames) == 0 {
		panic("stack: " + op + " called with no open frame")
	}
}
