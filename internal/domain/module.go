package domain

import "touca/pkg/registry"

// TestModuleRef identifies a source file classified as declaring workflows
type TestModuleRef struct {
	Path    string // Absolute path to the source file
	RelPath string // Path relative to the working directory, or Path if outside it
}

// WorkflowRef is a workflow discovered in a loaded module
type WorkflowRef struct {
	Name     string // Declared name, unique within Module only
	Module   string // Relative path of the declaring source file
	Workflow *registry.Workflow
}

// DiscoveredModule is a loaded module with the workflows extracted from it
type DiscoveredModule struct {
	Ref       TestModuleRef
	Workflows []WorkflowRef
}
