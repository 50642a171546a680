package steps

import (
	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/values"
)

// LoadValues represents template values collection step.
type LoadValues struct{}

// Run collects values from git metadata, requirements files and settings.
func (LoadValues) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	git := ctx.Git
	if git == nil {
		git = values.NewGitCliMetadata(ctx.ProjectDir)
	}
	loader := values.Loader{
		SettingsPath: runCtx.SettingsPath,
		TemplateDir:  runCtx.TemplatePath,
		Git:          git,
		Now:          ctx.Now,
	}
	loaded, err := loader.Load()
	if err != nil {
		return err
	}
	runCtx.Values = loaded
	return nil
}
