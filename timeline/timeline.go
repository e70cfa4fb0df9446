package timeline

import (
	"golang.org/x/exp/constraints"
)

// Assign replaces the timeline's contents with a single window [open, close)
// if open < close, or clears it otherwise. Capacity is retained.
func (t *BerthTimeline[Time]) Assign(open, close Time) {
	t.windows = t.windows[:0]
	if open < close {
		t.windows = append(t.windows, AvailableWindow[Time]{Start: open, End: close})
	}
}

// AssignWindows replaces the timeline's contents with windows. The caller
// guarantees windows is sorted by Start, pairwise disjoint, and contains no
// empty window; AssignWindows does not re-validate this.
func (t *BerthTimeline[Time]) AssignWindows(windows []AvailableWindow[Time]) {
	t.windows = append(t.windows[:0], windows...)
}

// Carve replaces the timeline's contents with availability minus fixed,
// as disjoint intervals. Windows are not merged: two availability windows
// that touch (one ends where the next starts) yield two adjacent output
// windows rather than one. Both availability and fixed must
// already be sorted by Start; fixed windows may overlap each other or span
// multiple availability windows — overlapping fixed windows simply carve
// more. The single fixed cursor is shared across every availability window,
// so the whole call runs in amortized O(len(availability)+len(fixed)).
func (t *BerthTimeline[Time]) Carve(availability, fixed []AvailableWindow[Time]) {
	t.windows = t.windows[:0]

	fi := 0
	for _, avail := range availability {
		cursor := avail.Start

		for fi < len(fixed) && fixed[fi].Start < avail.End {
			f := fixed[fi]

			if f.End <= cursor {
				fi++
				continue
			}

			if f.Start > cursor {
				t.windows = append(t.windows, AvailableWindow[Time]{Start: cursor, End: f.Start})
			}

			cursor = max(cursor, f.End)
			if cursor >= avail.End {
				break
			}

			if f.End < avail.End {
				fi++
			} else {
				break
			}
		}

		if cursor < avail.End {
			t.windows = append(t.windows, AvailableWindow[Time]{Start: cursor, End: avail.End})
		}
	}
}

// FindEarliestStart returns the earliest time at or after readyTime that a
// service of the given duration fits within some window, and true. It
// returns false if no window anywhere in the timeline can fit it.
//
// The search first locates the first window that does not lie entirely
// before readyTime (windows ending exactly at readyTime are skipped — a
// window is "before" readyTime iff its End <= readyTime), then scans
// forward for the first window that actually fits the duration once clamped
// to readyTime.
func (t *BerthTimeline[Time]) FindEarliestStart(readyTime, duration Time) (Time, bool) {
	idx := lowerBound(t.windows, readyTime)
	for ; idx < len(t.windows); idx++ {
		w := t.windows[idx]
		actualStart := max(readyTime, w.Start)
		if duration <= w.End-actualStart {
			return actualStart, true
		}
	}
	var zero Time
	return zero, false
}

// lowerBound returns the index of the first window not strictly before t.
func lowerBound[Time constraints.Signed](windows []AvailableWindow[Time], t Time) int {
	lo, hi := 0, len(windows)
	for lo < hi {
		mid := (lo + hi) / 2
		if windows[mid].before(t) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Len returns the number of windows currently held.
func (t *BerthTimeline[Time]) Len() int { return len(t.windows) }

// Empty reports whether the timeline holds no windows.
func (t *BerthTimeline[Time]) Empty() bool { return len(t.windows) == 0 }

// Clear removes all windows while retaining the backing capacity.
func (t *BerthTimeline[Time]) Clear() { t.windows = t.windows[:0] }

// Windows returns the windows in root-to-leaf (i.e. chronological) order.
// The returned slice aliases the timeline's backing array: it is only valid
// until the next mutating call (Assign/AssignWindows/Carve/Clear).
func (t *BerthTimeline[Time]) Windows() []AvailableWindow[Time] { return t.windows }

// Reversed returns the windows in reverse chronological order, as a freshly
// allocated slice (unlike Windows, it does not alias the backing array).
func (t *BerthTimeline[Time]) Reversed() []AvailableWindow[Time] {
	out := make([]AvailableWindow[Time], len(t.windows))
	for i, w := range t.windows {
		out[len(out)-1-i] = w
	}
	return out
}
