package timeline

import "golang.org/x/exp/constraints"

// AvailableWindow is a half-open interval [Start, End) during which a berth
// can begin servicing a vessel. Start must be strictly less than End; the
// zero value is not a valid window and is never stored by BerthTimeline.
type AvailableWindow[Time constraints.Signed] struct {
	Start Time
	End   Time
}

// before reports whether the window lies entirely before t, i.e. whether a
// binary search probing for t should continue past this window. A window is
// "less than" a time point iff its end is at or before that point — windows
// ending exactly at t are skipped, preserving half-open semantics.
func (w AvailableWindow[Time]) before(t Time) bool {
	return w.End <= t
}

// BerthTimeline is the ordered, disjoint, non-empty-window sequence of one
// berth's remaining availability. The zero value is an empty timeline ready
// to use.
type BerthTimeline[Time constraints.Signed] struct {
	windows []AvailableWindow[Time]
}

// NewBerthTimeline returns an empty timeline with capacity reserved for cap
// windows, so the first few Assign/Carve calls during warm-up do not
// reallocate.
func NewBerthTimeline[Time constraints.Signed](cap int) *BerthTimeline[Time] {
	return &BerthTimeline[Time]{windows: make([]AvailableWindow[Time], 0, cap)}
}
