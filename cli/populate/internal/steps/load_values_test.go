package steps

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/populate/cli/templates"
)

func TestLoadValues(t *testing.T) {
	ctx := newTestProject(t)
	ctx.VarsFromCli = []string{"author_name=John Roe"}
	runCtx := runSteps(t, ctx, ResolvePaths{}, LoadValues{}, FillValuesFromCli{})

	expected := map[string]templates.Value{
		"author_name":      templates.Scalar("John Roe"),
		"author_email":     templates.Scalar("jane@example.com"),
		"copyright_years":  templates.Scalar("2024"),
		"github_user":      templates.Scalar("acme"),
		"repo_name":        templates.Scalar("widgets"),
		"package_dir_name": templates.Scalar("my_widgets"),
		"install_requires": templates.Sequence{"requests"},
		"tests_require":    templates.Sequence{},
	}
	for key, value := range expected {
		actual, found := runCtx.Values.Get(key)
		require.True(t, found, key)
		assert.Equal(t, value, actual, key)
	}
}

func TestPrintValues(t *testing.T) {
	ctx := newTestProject(t)
	var out bytes.Buffer
	ctx.Out = &out
	runSteps(t, ctx, ResolvePaths{}, LoadValues{}, PrintValues{})

	assert.Contains(t, out.String(), "Using the following template values:")
	assert.Contains(t, out.String(), "'my-widgets'")
	assert.Contains(t, out.String(), "('requests',)")
}
