package steps

import (
	"github.com/apex/log"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/util"
	"github.com/tarantool/populate/cli/values"
)

// ResolvePaths represents template directory and settings file lookup step.
type ResolvePaths struct{}

// Run checks the template directory exists and finds the settings file.
func (ResolvePaths) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	templateDir := ctx.TemplateDir
	if templateDir == "" {
		templateDir = populate_ctx.DefaultTemplateDir
	}
	runCtx.TemplatePath = util.JoinPaths(ctx.ProjectDir, templateDir)
	if !util.IsDir(runCtx.TemplatePath) {
		return util.NewConfigError("template directory %q is not found", runCtx.TemplatePath)
	}

	if ctx.SettingsPath != "" {
		runCtx.SettingsPath = util.JoinPaths(ctx.ProjectDir, ctx.SettingsPath)
		if !util.IsRegularFile(runCtx.SettingsPath) {
			return util.NewConfigError("settings file %q is not found", runCtx.SettingsPath)
		}
	} else {
		var err error
		if runCtx.SettingsPath, err = values.FindSettingsFile(ctx.ProjectDir); err != nil {
			return err
		}
	}
	log.Debugf("Template directory: %s", runCtx.TemplatePath)
	log.Debugf("Settings file: %s", runCtx.SettingsPath)
	return nil
}
