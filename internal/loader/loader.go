package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"touca/internal/domain"
	"touca/pkg/registry"
)

// LoadedModule is a module resolved and initialised for one TestModuleRef.
// It is only valid inside the callback passed to Loader.Load.
type LoadedModule struct {
	Ref       domain.TestModuleRef
	module    *registry.Module
	extracted bool
}

// Name returns the module's import name.
func (m *LoadedModule) Name() string {
	return m.module.Name()
}

// Loader resolves workflow source files to registered modules.
type Loader struct {
	registry *registry.Registry
	path     *SearchPath
	log      *zap.Logger
}

// NewLoader creates a Loader resolving against reg through path.
func NewLoader(reg *registry.Registry, path *SearchPath, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{registry: reg, path: path, log: log}
}

// Load resolves ref, runs the module's setup hooks and passes the result to fn.
// The file's directory is on the search path for exactly the duration of the
// call, whatever the outcome. Setup failures are returned as *LoadError; errors
// from fn are returned unchanged.
func (l *Loader) Load(ref domain.TestModuleRef, fn func(*LoadedModule) error) error {
	entry := filepath.Dir(ref.Path)
	name := importName(ref.Path)

	l.path.Append(entry)
	defer l.path.Remove(entry)

	l.log.Debug("loading module", zap.String("path", ref.RelPath), zap.String("name", name))

	mod, ok := l.resolve(name)
	if !ok {
		return &LoadError{Path: ref.RelPath, Err: ErrNotLinked}
	}
	if err := runSetups(mod); err != nil {
		return &LoadError{Path: ref.RelPath, Err: err}
	}
	l.registry.MarkLoaded(mod)

	return fn(&LoadedModule{Ref: ref, module: mod})
}

func (l *Loader) resolve(name string) (*registry.Module, bool) {
	for _, entry := range l.path.Entries() {
		if m, ok := l.registry.Lookup(entry, name); ok {
			return m, true
		}
	}
	return nil, false
}

func runSetups(m *registry.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during setup: %v", r)
		}
	}()
	for _, setup := range m.Setups() {
		if setupErr := setup(); setupErr != nil {
			return setupErr
		}
	}
	return nil
}

func importName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
