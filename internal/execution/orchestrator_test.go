package execution

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touca/internal/config"
	"touca/internal/discovery"
	"touca/internal/domain"
	"touca/internal/loader"
	"touca/pkg/registry"
)

const declaresWorkflow = "package suite\n\nvar _ = touca.Workflow(\"checkOutput\", checkOutput)\n"

func noop(ctx context.Context, testcase string) error { return nil }

type fixture struct {
	dir      string
	registry *registry.Registry
	path     *loader.SearchPath
	calls    int
	cfg      config.Values
	got      []domain.WorkflowRef
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir(), registry: registry.New(), path: &loader.SearchPath{}}
	for name, content := range files {
		path := filepath.Join(f.dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return f
}

func (f *fixture) file(name string) string {
	return filepath.Join(f.dir, name)
}

func (f *fixture) orchestrator() *Orchestrator {
	runner := RunnerFunc(func(ctx context.Context, cfg config.Values, workflows []domain.WorkflowRef) error {
		f.calls++
		f.cfg = cfg
		f.got = workflows
		return nil
	})
	return NewOrchestrator(
		f.dir,
		discovery.NewScanner(f.dir, config.DefaultSkipDirs, nil),
		discovery.NewFilter(),
		loader.NewLoader(f.registry, f.path, nil),
		runner,
		nil,
	)
}

func (f *fixture) invocation() config.Invocation {
	return config.Invocation{ConfigFile: filepath.Join(f.dir, "no-config")}
}

func TestOrchestrator_Run(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a_suite.go": declaresWorkflow,
		"b_suite.go": "package suite\n\nfunc helper() {}\n",
	})
	f.registry.AddWorkflow(f.file("a_suite.go"), "checkOutput", noop)
	f.registry.Add(f.file("a_suite.go"), "helper", noop)
	f.registry.AddSetup(f.file("b_suite.go"), func() error {
		t.Error("b_suite.go declares no workflow and must not be loaded")
		return nil
	})

	inv := f.invocation()
	inv.Testcases = []string{"A", "B", "C"}
	require.NoError(t, f.orchestrator().Run(context.Background(), inv))

	require.Equal(t, 1, f.calls)
	require.Len(t, f.got, 1)
	assert.Equal(t, "checkOutput", f.got[0].Name)
	assert.Equal(t, "a_suite.go", f.got[0].Module)
	assert.Equal(t, []string{"A", "B", "C"}, f.cfg[config.KeyTestcases])
	assert.Equal(t, config.DefaultAPIURL, f.cfg[config.KeyAPIURL])
	assert.Empty(t, f.path.Entries())
}

func TestOrchestrator_KeepsDuplicateNames(t *testing.T) {
	f := newFixture(t, map[string]string{
		"one/common.go": declaresWorkflow,
		"two/common.go": declaresWorkflow,
	})
	f.registry.AddWorkflow(f.file("one/common.go"), "checkOutput", noop)
	f.registry.AddWorkflow(f.file("two/common.go"), "checkOutput", noop)

	require.NoError(t, f.orchestrator().Run(context.Background(), f.invocation()))

	require.Len(t, f.got, 2)
	assert.Equal(t, "checkOutput", f.got[0].Name)
	assert.Equal(t, "checkOutput", f.got[1].Name)
	assert.Equal(t, filepath.Join("one", "common.go"), f.got[0].Module)
	assert.Equal(t, filepath.Join("two", "common.go"), f.got[1].Module)
	assert.NotSame(t, f.got[0].Workflow, f.got[1].Workflow)
}

func TestOrchestrator_LoadErrorAbortsRun(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a_suite.go": declaresWorkflow,
		"b_suite.go": declaresWorkflow,
		"c_suite.go": declaresWorkflow,
	})
	var loaded []string
	for _, name := range []string{"a_suite.go", "b_suite.go", "c_suite.go"} {
		f.registry.AddWorkflow(f.file(name), "checkOutput", noop)
		f.registry.AddSetup(f.file(name), func() error {
			loaded = append(loaded, name)
			if name == "b_suite.go" {
				return errors.New("fixture missing")
			}
			return nil
		})
	}

	before := f.path.Entries()
	err := f.orchestrator().Run(context.Background(), f.invocation())

	var loadErr *loader.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "b_suite.go", loadErr.Path)
	assert.Equal(t, []string{"a_suite.go", "b_suite.go"}, loaded)
	assert.Zero(t, f.calls)
	if diff := cmp.Diff(before, f.path.Entries()); diff != "" {
		t.Errorf("search path leaked (-before +after):\n%s", diff)
	}
}

func TestOrchestrator_UnlinkedModuleAbortsRun(t *testing.T) {
	f := newFixture(t, map[string]string{"a_suite.go": declaresWorkflow})

	err := f.orchestrator().Run(context.Background(), f.invocation())
	assert.ErrorIs(t, err, loader.ErrNotLinked)
	assert.Zero(t, f.calls)
}

func TestOrchestrator_Filter(t *testing.T) {
	f := newFixture(t, map[string]string{
		"students.go": declaresWorkflow,
		"payments.go": declaresWorkflow,
	})
	f.registry.AddWorkflow(f.file("students.go"), "students", noop)

	inv := f.invocation()
	inv.NameFilter = "students*"
	workflows, err := f.orchestrator().Discover(inv)
	require.NoError(t, err)
	require.Len(t, workflows, 1)
	assert.Equal(t, "students", workflows[0].Name)
}

func TestOrchestrator_DiscoverModules(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a_suite.go": declaresWorkflow,
		"b_suite.go": "// touca.Workflow( mentioned in a comment only\npackage suite\n",
	})
	f.registry.AddWorkflow(f.file("a_suite.go"), "checkOutput", noop)
	f.registry.Add(f.file("b_suite.go"), "helper", noop)

	modules, err := f.orchestrator().DiscoverModules(f.invocation())
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "a_suite.go", modules[0].Ref.RelPath)
	assert.Len(t, modules[0].Workflows, 1)
	assert.Equal(t, "b_suite.go", modules[1].Ref.RelPath)
	assert.Empty(t, modules[1].Workflows)
}

func TestOrchestrator_RelativeTestDir(t *testing.T) {
	f := newFixture(t, map[string]string{"suite/students.go": declaresWorkflow})
	f.registry.AddWorkflow(f.file("suite/students.go"), "students", noop)

	inv := f.invocation()
	inv.TestDir = "suite"
	workflows, err := f.orchestrator().Discover(inv)
	require.NoError(t, err)
	require.Len(t, workflows, 1)
	assert.Equal(t, filepath.Join("suite", "students.go"), workflows[0].Module)
}

func TestOrchestrator_MissingTestDir(t *testing.T) {
	f := newFixture(t, nil)

	inv := f.invocation()
	inv.TestDir = "missing"
	require.NoError(t, f.orchestrator().Run(context.Background(), inv))
	assert.Equal(t, 1, f.calls)
	assert.Empty(t, f.got)
}

func TestOrchestrator_RunnerErrorIsReturned(t *testing.T) {
	f := newFixture(t, nil)
	runErr := errors.New("runner failed")
	o := f.orchestrator()
	o.runner = RunnerFunc(func(context.Context, config.Values, []domain.WorkflowRef) error { return runErr })

	assert.ErrorIs(t, o.Run(context.Background(), f.invocation()), runErr)
}
