package steps

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/otiai10/copy"
	"github.com/stretchr/testify/require"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
)

const testProjectDir = "../../testdata/project"

type fakeGit struct{}

func (fakeGit) AuthorName() (string, error)  { return "Jane Doe", nil }
func (fakeGit) AuthorEmail() (string, error) { return "jane@example.com", nil }
func (fakeGit) RemoteURL() (string, error)   { return "git@github.com:acme/widgets.git", nil }

// newTestProject copies the test project to a temporary directory and
// returns a context for it.
func newTestProject(t *testing.T) *populate_ctx.PopulateCtx {
	t.Helper()
	projectDir := t.TempDir()
	require.NoError(t, copy.Copy(testProjectDir, projectDir))
	return &populate_ctx.PopulateCtx{
		ProjectDir:  projectDir,
		TemplateDir: populate_ctx.DefaultTemplateDir,
		NoGit:       true,
		Git:         fakeGit{},
		Now: func() time.Time {
			return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		},
	}
}

// runSteps runs the steps on a new run context.
func runSteps(t *testing.T, ctx *populate_ctx.PopulateCtx, stepsChain ...Step) *RunCtx {
	t.Helper()
	runCtx := NewRunCtx()
	t.Cleanup(func() { runCtx.Close() })
	for _, step := range stepsChain {
		require.NoError(t, step.Run(ctx, &runCtx))
	}
	return &runCtx
}

// loaded returns a run context with resolved paths, values and repository.
func loaded(t *testing.T, ctx *populate_ctx.PopulateCtx) *RunCtx {
	t.Helper()
	return runSteps(t, ctx, ResolvePaths{}, LoadValues{}, FillValuesFromCli{}, OpenRepository{})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func projectPath(ctx *populate_ctx.PopulateCtx, parts ...string) string {
	return filepath.Join(append([]string{ctx.ProjectDir}, parts...)...)
}
