package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/populate/cli/util"
)

func TestResolvePaths(t *testing.T) {
	ctx := newTestProject(t)
	runCtx := NewRunCtx()

	require.NoError(t, ResolvePaths{}.Run(ctx, &runCtx))
	assert.Equal(t, filepath.Join(ctx.ProjectDir, "template"), runCtx.TemplatePath)
	assert.Equal(t, filepath.Join(ctx.ProjectDir, "populate.ini"), runCtx.SettingsPath)
}

func TestResolvePathsExplicitSettings(t *testing.T) {
	ctx := newTestProject(t)
	require.NoError(t, os.Rename(projectPath(ctx, "populate.ini"),
		projectPath(ctx, "settings.ini")))
	ctx.SettingsPath = "settings.ini"
	runCtx := NewRunCtx()

	require.NoError(t, ResolvePaths{}.Run(ctx, &runCtx))
	assert.Equal(t, filepath.Join(ctx.ProjectDir, "settings.ini"), runCtx.SettingsPath)
}

func TestResolvePathsErrors(t *testing.T) {
	var configError *util.ConfigError

	ctx := newTestProject(t)
	ctx.TemplateDir = "skeleton"
	runCtx := NewRunCtx()
	err := ResolvePaths{}.Run(ctx, &runCtx)
	require.ErrorAs(t, err, &configError)
	assert.Contains(t, err.Error(), "skeleton")

	ctx = newTestProject(t)
	ctx.SettingsPath = "missing.ini"
	err = ResolvePaths{}.Run(ctx, &runCtx)
	require.ErrorAs(t, err, &configError)
	assert.Contains(t, err.Error(), "missing.ini")

	ctx = newTestProject(t)
	require.NoError(t, os.Remove(projectPath(ctx, "populate.ini")))
	err = ResolvePaths{}.Run(ctx, &runCtx)
	require.ErrorAs(t, err, &configError)
}
