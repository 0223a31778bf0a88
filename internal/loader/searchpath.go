package loader

// SearchPath is the ordered list of directories consulted when resolving a
// module by import name. It is process-wide shared state and not safe for
// concurrent use: discovery loads one file at a time.
type SearchPath struct {
	entries []string
}

// DefaultSearchPath is the process-wide search path.
var DefaultSearchPath = &SearchPath{}

// Append adds dir to the end of the search path.
func (p *SearchPath) Append(dir string) {
	p.entries = append(p.entries, dir)
}

// Remove deletes the last occurrence of dir and reports whether it was present.
func (p *SearchPath) Remove(dir string) bool {
	for i := len(p.entries) - 1; i >= 0; i-- {
		if p.entries[i] == dir {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a snapshot of the search path.
func (p *SearchPath) Entries() []string {
	out := make([]string, len(p.entries))
	copy(out, p.entries)
	return out
}
