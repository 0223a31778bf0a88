package discovery

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"
)

// Marker is the token identifying a source file that declares workflows
const Marker = "touca.Workflow("

var errNotText = errors.New("content is not valid UTF-8 text")

// Classifier decides whether a file is a workflow source by its content.
// Any occurrence of the marker counts, including ones in comments or string
// literals.
type Classifier struct {
	marker string
}

// NewClassifier creates a Classifier matching Marker
func NewClassifier() *Classifier {
	return &Classifier{marker: Marker}
}

// IsTestModule reports whether the file at path contains the marker
func (c *Classifier) IsTestModule(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(content) {
		return false, &ReadError{Path: path, Err: errNotText}
	}
	return strings.Contains(string(content), c.marker), nil
}
