package loader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearchPath_AppendRemove(t *testing.T) {
	p := &SearchPath{}
	p.Append("/a")
	p.Append("/b")
	p.Append("/a")

	if !p.Remove("/a") {
		t.Fatal("expected /a to be removed")
	}
	if diff := cmp.Diff([]string{"/a", "/b"}, p.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if p.Remove("/c") {
		t.Error("removing an absent entry reported success")
	}
}

func TestSearchPath_EntriesIsSnapshot(t *testing.T) {
	p := &SearchPath{}
	p.Append("/a")
	snapshot := p.Entries()
	snapshot[0] = "/changed"

	if diff := cmp.Diff([]string{"/a"}, p.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}
