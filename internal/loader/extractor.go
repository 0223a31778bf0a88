package loader

import (
	"iter"

	"touca/pkg/registry"
)

// Extract yields the workflows declared in m, sorted by name. Members that
// are not workflows are skipped. The sequence can be consumed once.
func Extract(m *LoadedModule) iter.Seq2[string, *registry.Workflow] {
	names := m.module.MemberNames()
	return func(yield func(string, *registry.Workflow) bool) {
		if m.extracted {
			return
		}
		m.extracted = true
		for _, name := range names {
			member, _ := m.module.Member(name)
			w, ok := member.(*registry.Workflow)
			if !ok {
				continue
			}
			if !yield(name, w) {
				return
			}
		}
	}
}
