package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"touca/internal/domain"
)

const (
	sourceSuffix = ".go"
	// Test files are never linked into a suite binary
	testSuffix = "_test.go"
)

// Scanner scans a directory tree for workflow source files
type Scanner struct {
	workDir    string
	skipDirs   map[string]bool
	classifier *Classifier
	log        *zap.Logger
}

// NewScanner creates a new Scanner. Relative paths of discovered files are
// computed against workDir; skipDirs are directory names never descended into.
func NewScanner(workDir string, skipDirs []string, log *zap.Logger) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{
		workDir:    workDir,
		skipDirs:   skipMap,
		classifier: NewClassifier(),
		log:        log,
	}
}

// Scan finds all workflow source files under root, sorted by path.
// A root that does not exist yields no files.
func (s *Scanner) Scan(root string) ([]domain.TestModuleRef, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, &PathError{Path: root, Err: err}
	}

	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("test directory does not exist", zap.String("path", root))
		return nil, nil
	}
	if err != nil {
		return nil, &PathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &PathError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	var refs []domain.TestModuleRef
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return &PathError{Path: root, Err: err}
			}
			s.log.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || s.skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isSourceFile(d.Name()) {
			return nil
		}

		ok, err := s.classifier.IsTestModule(path)
		if err != nil {
			s.log.Warn("skipping file", zap.Error(err))
			return nil
		}
		if ok {
			refs = append(refs, s.ref(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })
	return refs, nil
}

func (s *Scanner) ref(path string) domain.TestModuleRef {
	ref := domain.TestModuleRef{Path: path, RelPath: path}
	if s.workDir == "" {
		return ref
	}
	if rel, err := filepath.Rel(s.workDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		ref.RelPath = rel
	}
	return ref
}

func isSourceFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, sourceSuffix) && !strings.HasSuffix(lower, testSuffix)
}
