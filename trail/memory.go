package trail

import "github.com/dustin/go-humanize"

// MemoryReport renders the trail's used and reserved memory as a
// human-readable string (e.g. "used 1.2 kB of 4.0 kB reserved"), for a
// driver to log between search nodes. The trail itself performs no I/O —
// this only formats a value already computed by UsedMemoryBytes and
// ReservedMemoryBytes.
func (d *DeltaTrail[V]) MemoryReport() string {
	return reportBytes(d.UsedMemoryBytes(), d.ReservedMemoryBytes())
}

// MemoryReport renders the trail's used and allocated memory as a
// human-readable string, for the same diagnostic purpose as
// DeltaTrail.MemoryReport.
func (f *FrameTrail[T]) MemoryReport() string {
	return reportBytes(f.UsedMemoryBytes(), f.AllocatedMemoryBytes())
}

func reportBytes(used, reserved int) string {
	return "used " + humanize.Bytes(uint64(used)) + " of " + humanize.Bytes(uint64(reserved)) + " reserved"
}
