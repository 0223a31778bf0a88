package discovery

import "fmt"

// ReadError is returned when a candidate file cannot be read or decoded
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// PathError is returned when the scan root cannot be accessed
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("test directory %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
