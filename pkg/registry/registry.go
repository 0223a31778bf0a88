package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
)

// Func is the body of a workflow. It is called once per testcase.
type Func func(ctx context.Context, testcase string) error

// SetupFunc is top-level module code, run every time the module is loaded.
type SetupFunc func() error

// Workflow is a named test entry point declared in a module.
type Workflow struct {
	name string
	fn   Func
}

// Name returns the name the workflow was declared with.
func (w *Workflow) Name() string {
	return w.name
}

// Run calls the workflow for a single testcase.
func (w *Workflow) Run(ctx context.Context, testcase string) error {
	return w.fn(ctx, testcase)
}

// Module groups every member and setup hook registered from one source file.
type Module struct {
	file    string
	dir     string
	realDir string
	name    string
	members map[string]any
	setups  []SetupFunc
	loads   int
}

// File returns the source file the module was registered from.
func (m *Module) File() string { return m.file }

// Dir returns the directory of the module's source file.
func (m *Module) Dir() string { return m.dir }

// Name returns the import name: the file base name without its extension.
func (m *Module) Name() string { return m.name }

// Loads reports how many times the module has been loaded.
func (m *Module) Loads() int { return m.loads }

// Setups returns the module's setup hooks in registration order.
func (m *Module) Setups() []SetupFunc {
	out := make([]SetupFunc, len(m.setups))
	copy(out, m.setups)
	return out
}

// MemberNames returns the names of all module members, sorted.
func (m *Module) MemberNames() []string {
	names := make([]string, 0, len(m.members))
	for name := range m.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Member returns the member registered under name.
func (m *Module) Member(name string) (any, bool) {
	v, ok := m.members[name]
	return v, ok
}

// Registry holds the modules declared by the test suites linked into the binary.
type Registry struct {
	mu         sync.RWMutex
	modules    map[string]*Module
	modulePath string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// NewForModule creates an empty registry for a binary whose main module is
// modulePath. Source files of binaries built with -trimpath are recorded
// under their import path, which is resolved relative to that module.
func NewForModule(modulePath string) *Registry {
	r := New()
	r.modulePath = modulePath
	return r
}

// Default is the registry populated by the touca package.
var Default = NewForModule(mainModulePath())

func mainModulePath() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return info.Main.Path
}

// Add registers a member in the module of the given source file.
// It panics if name is empty or already taken in that module.
func (r *Registry) Add(file, name string, member any) {
	if name == "" {
		panic(fmt.Sprintf("registry: empty member name in %s", file))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.module(file)
	if _, exists := m.members[name]; exists {
		panic(fmt.Sprintf("registry: %q declared twice in %s", name, m.file))
	}
	m.members[name] = member
}

// AddWorkflow registers a workflow in the module of the given source file.
func (r *Registry) AddWorkflow(file, name string, fn Func) *Workflow {
	if fn == nil {
		panic(fmt.Sprintf("registry: nil workflow %q in %s", name, file))
	}
	w := &Workflow{name: name, fn: fn}
	r.Add(file, name, w)
	return w
}

// AddSetup registers top-level code for the module of the given source file.
func (r *Registry) AddSetup(file string, fn SetupFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.module(file)
	m.setups = append(m.setups, fn)
}

// Lookup finds the module with import name declared in dir. Symbolic links
// in dir and in the module's directory are resolved before comparing.
func (r *Registry) Lookup(dir, name string) (*Module, bool) {
	dirs := candidateDirs(dir)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.modules {
		if m.name != name {
			continue
		}
		for _, d := range dirs {
			if r.matchDir(m.Dir(), d) || (m.realDir != m.dir && r.matchDir(m.realDir, d)) {
				return m, true
			}
		}
	}
	return nil, false
}

// Modules returns all registered modules sorted by source file.
func (r *Registry) Modules() []*Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Module, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].file < out[j].file })
	return out
}

// MarkLoaded records a successful load of m.
func (r *Registry) MarkLoaded(m *Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.loads++
}

// module must be called with r.mu held.
func (r *Registry) module(file string) *Module {
	file = filepath.Clean(filepath.FromSlash(file))
	if m, ok := r.modules[file]; ok {
		return m
	}
	base := filepath.Base(file)
	dir := filepath.Dir(file)
	m := &Module{
		file:    file,
		dir:     dir,
		realDir: dir,
		name:    strings.TrimSuffix(base, filepath.Ext(base)),
		members: make(map[string]any),
	}
	if filepath.IsAbs(dir) {
		if real, err := filepath.EvalSymlinks(dir); err == nil {
			m.realDir = real
		}
	}
	r.modules[file] = m
	return m
}

func candidateDirs(dir string) []string {
	dir = filepath.Clean(dir)
	dirs := []string{dir}
	if real, err := filepath.EvalSymlinks(dir); err == nil && real != dir {
		dirs = append(dirs, real)
	}
	return dirs
}

// matchDir reports whether a module directory refers to dir. Binaries built
// with -trimpath record import paths instead of absolute directories: the
// main module's packages as <module path>/<dir>, dependencies as
// <module path>@<version>/<dir>. Those match when dir ends in <dir>, or is a
// module root for packages at the root of their module.
func (r *Registry) matchDir(moduleDir, dir string) bool {
	if moduleDir == dir {
		return true
	}
	if filepath.IsAbs(moduleDir) {
		return false
	}
	if hasDirSuffix(dir, moduleDir) {
		return true
	}

	inner, ok := withinModule(filepath.ToSlash(moduleDir), r.modulePath)
	if !ok {
		return false
	}
	if inner == "" {
		return isModuleRoot(dir)
	}
	return hasDirSuffix(dir, filepath.FromSlash(inner))
}

// withinModule strips the module path, and the version of a dependency,
// from an import path directory.
func withinModule(importDir, modulePath string) (string, bool) {
	if modulePath != "" {
		if importDir == modulePath {
			return "", true
		}
		if rest, ok := strings.CutPrefix(importDir, modulePath+"/"); ok {
			return rest, true
		}
	}
	if i := strings.Index(importDir, "@"); i >= 0 {
		rest := importDir[i:]
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			return rest[j+1:], true
		}
		return "", true
	}
	return "", false
}

func hasDirSuffix(dir, suffix string) bool {
	return strings.HasSuffix(dir, string(filepath.Separator)+suffix)
}

func isModuleRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "go.mod"))
	return err == nil && !info.IsDir()
}
