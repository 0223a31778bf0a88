package discovery

import (
	"path/filepath"
	"strings"

	"touca/internal/domain"
)

// Filter filters discovered modules by file name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the modules whose file name matches pattern.
// Supports wildcards like "*_suite.go" or "*students*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(refs []domain.TestModuleRef, pattern string) []domain.TestModuleRef {
	if pattern == "" {
		return refs
	}

	var filtered []domain.TestModuleRef
	for _, ref := range refs {
		if matchName(filepath.Base(ref.Path), pattern) {
			filtered = append(filtered, ref)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match is anchored; "*students*" style patterns also match
	// when every literal part appears in order.
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		found = true
	}
	return found
}
