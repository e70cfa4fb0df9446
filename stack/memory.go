package stack

import "github.com/dustin/go-humanize"

// MemoryReport renders the stack's used and allocated memory as a
// human-readable string (e.g. "used 1.2 kB of 4.0 kB reserved"), for a
// driver to log between search nodes.
func (s *SearchStack[T]) MemoryReport() string {
	return "used " + humanize.Bytes(uint64(s.UsedMemoryBytes())) +
		" of " + humanize.Bytes(uint64(s.AllocatedMemoryBytes())) + " reserved"
}
