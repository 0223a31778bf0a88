package loader

import (
	"errors"
	"fmt"
)

// ErrNotLinked means a source file declares workflows but its package was not
// compiled into the running binary.
var ErrNotLinked = errors.New("module is not linked into this binary")

// LoadError identifies a module that failed to load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
