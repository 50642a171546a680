package populate

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/otiai10/copy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/templates"
	"github.com/tarantool/populate/cli/util"
)

type fakeGit struct{}

func (fakeGit) AuthorName() (string, error)  { return "Jane Doe", nil }
func (fakeGit) AuthorEmail() (string, error) { return "jane@example.com", nil }
func (fakeGit) RemoteURL() (string, error)   { return "https://github.com/acme/widgets", nil }

func newTestCtx(t *testing.T) *populate_ctx.PopulateCtx {
	t.Helper()
	projectDir := t.TempDir()
	require.NoError(t, copy.Copy("testdata/project", projectDir))
	return &populate_ctx.PopulateCtx{
		ProjectDir:  projectDir,
		RemoveFiles: []string{"populate.py"},
		Out:         &bytes.Buffer{},
		Now: func() time.Time {
			return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func checkPopulatedTree(t *testing.T, projectDir string) {
	t.Helper()
	assert.NoDirExists(t, filepath.Join(projectDir, "template"))
	assert.NoFileExists(t, filepath.Join(projectDir, "populate.ini"))
	assert.NoFileExists(t, filepath.Join(projectDir, "populate.py"))

	assert.Contains(t, readFile(t, filepath.Join(projectDir, "setup.py")),
		"    install_requires=(\n        'requests',\n    ),\n    tests_require=(),\n")
	assert.Equal(t, "__version__ = '0.1.0'\n",
		readFile(t, filepath.Join(projectDir, "my_widgets", "__init__.py")))
	assert.FileExists(t, filepath.Join(projectDir, "my_widgets", "{{ missing }}", "keep.txt"))
	assert.FileExists(t, filepath.Join(projectDir, "requirements.txt"))
	assert.FileExists(t, filepath.Join(projectDir, "README.md"))
}

func TestFillCtx(t *testing.T) {
	var ctx populate_ctx.PopulateCtx
	require.NoError(t, FillCtx(&ctx))

	workingDir, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, workingDir, ctx.ProjectDir)
	assert.Equal(t, "template", ctx.TemplateDir)
}

func TestRunNoGit(t *testing.T) {
	ctx := newTestCtx(t)
	ctx.NoGit = true
	ctx.Git = fakeGit{}
	ctx.JournalPath = filepath.Join(t.TempDir(), "populate.log")

	require.NoError(t, Run(ctx))
	checkPopulatedTree(t, ctx.ProjectDir)
	assert.Contains(t, ctx.Out.(*bytes.Buffer).String(), "'Jane Doe'")

	journal := readFile(t, ctx.JournalPath)
	assert.Contains(t, journal, `move "template/setup.py.template" "template/setup.py"`)
	assert.Contains(t, journal, `move "template/{{ package_dir_name }}" "template/my_widgets"`)
	assert.Contains(t, journal, `remove "populate.ini"`)
	assert.Contains(t, journal, `move "template/my_widgets" "."`)
	assert.Contains(t, journal, "stage")
}

func TestRunStrict(t *testing.T) {
	var configError *util.ConfigError

	ctx := newTestCtx(t)
	ctx.NoGit = true
	ctx.Strict = true
	ctx.Git = fakeGit{}

	err := Run(ctx)
	require.ErrorAs(t, err, &configError)
	assert.Contains(t, err.Error(), "{{ unknown_key }}")
	// Files are populated, setup files are kept.
	assert.FileExists(t, filepath.Join(ctx.ProjectDir, "populate.ini"))
	assert.FileExists(t, filepath.Join(ctx.ProjectDir, "template", "README.md"))

	ctx = newTestCtx(t)
	ctx.NoGit = true
	ctx.Strict = true
	ctx.Git = fakeGit{}
	ctx.VarsFromCli = []string{"unknown_key=known"}
	require.NoError(t, Run(ctx))
	assert.Contains(t, readFile(t, filepath.Join(ctx.ProjectDir, "README.md")), "known")
}

func TestRunDeclined(t *testing.T) {
	ctx := newTestCtx(t)
	ctx.NoGit = true
	ctx.Git = fakeGit{}
	ctx.Confirm = func() (bool, error) { return false, nil }

	require.ErrorIs(t, Run(ctx), util.ErrCmdAbort)
	assert.FileExists(t, filepath.Join(ctx.ProjectDir, "template", "setup.py.template"))
	assert.FileExists(t, filepath.Join(ctx.ProjectDir, "populate.ini"))
}

func TestRunDryRun(t *testing.T) {
	ctx := newTestCtx(t)
	ctx.DryRun = true
	ctx.Git = fakeGit{}

	require.NoError(t, Run(ctx))
	assert.Contains(t, ctx.Out.(*bytes.Buffer).String(), "+    name='my-widgets',")
	assert.FileExists(t, filepath.Join(ctx.ProjectDir, "populate.ini"))
	assert.FileExists(t, filepath.Join(ctx.ProjectDir, "template", "setup.py.template"))
	assert.NoFileExists(t, filepath.Join(ctx.ProjectDir, "setup.py"))
}

func TestRunMissingSettings(t *testing.T) {
	var configError *util.ConfigError

	ctx := newTestCtx(t)
	ctx.NoGit = true
	ctx.Git = fakeGit{}
	require.NoError(t, os.WriteFile(filepath.Join(ctx.ProjectDir, "populate.ini"),
		[]byte("[global]\npackage_name =\npackage_version = 1.0\n"), 0644))

	err := Run(ctx)
	require.ErrorAs(t, err, &configError)
	assert.Equal(t, []string{"package_name", "short_description"}, configError.Keys)
	assert.DirExists(t, filepath.Join(ctx.ProjectDir, "template"))
}

func TestLoadValues(t *testing.T) {
	ctx := newTestCtx(t)
	ctx.Git = fakeGit{}
	ctx.VarsFromCli = []string{"license=MIT"}

	values, err := LoadValues(ctx)
	require.NoError(t, err)
	value, found := values.Get("license")
	require.True(t, found)
	assert.Equal(t, templates.Scalar("MIT"), value)
	value, _ = values.Get("repo_name")
	assert.Equal(t, templates.Scalar("widgets"), value)
	assert.DirExists(t, filepath.Join(ctx.ProjectDir, "template"))
}

func TestLoadValuesNoProjectDir(t *testing.T) {
	_, err := LoadValues(&populate_ctx.PopulateCtx{})
	require.Error(t, err)
}

func git(t *testing.T, workDir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return string(out)
}

func TestRunGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	ctx := newTestCtx(t)
	git(t, ctx.ProjectDir, "init", "-q")
	git(t, ctx.ProjectDir, "config", "user.name", "Jane Doe")
	git(t, ctx.ProjectDir, "config", "user.email", "jane@example.com")
	git(t, ctx.ProjectDir, "remote", "add", "origin", "git@github.com:acme/widgets.git")
	git(t, ctx.ProjectDir, "add", "-A")
	git(t, ctx.ProjectDir, "commit", "-q", "-m", "init")

	require.NoError(t, Run(ctx))
	checkPopulatedTree(t, ctx.ProjectDir)
	assert.Contains(t, readFile(t, filepath.Join(ctx.ProjectDir, "README.md")),
		"Copyright 2024 Jane Doe.")

	// Everything is staged.
	status := strings.TrimRight(git(t, ctx.ProjectDir, "status", "--porcelain"), "\n")
	for _, line := range strings.Split(status, "\n") {
		require.GreaterOrEqual(t, len(line), 2, status)
		assert.Equal(t, byte(' '), line[1], line)
	}
}
