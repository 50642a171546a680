// Package populate turns a project template into the project: it fills
// template files and directory names with values and moves the result to
// the project root.
package populate

import (
	"fmt"
	"os"

	"github.com/apex/log"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/populate/internal/steps"
	"github.com/tarantool/populate/cli/templates"
	"github.com/tarantool/populate/cli/util"
	"github.com/tarantool/populate/cli/version"
)

// FillCtx fills populate context.
func FillCtx(populateCtx *populate_ctx.PopulateCtx) error {
	if populateCtx.ProjectDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return err
		}
		populateCtx.ProjectDir = workingDir
	}
	if populateCtx.TemplateDir == "" {
		populateCtx.TemplateDir = populate_ctx.DefaultTemplateDir
	}
	return nil
}

// runChain runs steps one by one. The first error stops the chain; the tree
// is left as is.
func runChain(populateCtx *populate_ctx.PopulateCtx, stepsChain []steps.Step) (
	*steps.RunCtx, error) {
	runCtx := steps.NewRunCtx()
	defer runCtx.Close()

	for _, step := range stepsChain {
		if err := step.Run(populateCtx, &runCtx); err != nil {
			return nil, err
		}
	}
	return &runCtx, nil
}

// LoadValues resolves the template values without touching the tree.
func LoadValues(populateCtx *populate_ctx.PopulateCtx) (*templates.Values, error) {
	if err := checkCtx(populateCtx); err != nil {
		return nil, util.InternalError("Populate context check failed: %s",
			version.GetVersion, err)
	}

	runCtx, err := runChain(populateCtx, []steps.Step{
		steps.ResolvePaths{},
		steps.LoadValues{},
		steps.FillValuesFromCli{},
	})
	if err != nil {
		return nil, err
	}
	return runCtx.Values, nil
}

// Run populates the project from its template.
func Run(populateCtx *populate_ctx.PopulateCtx) error {
	if err := checkCtx(populateCtx); err != nil {
		return util.InternalError("Populate context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.ResolvePaths{},
		steps.LoadValues{},
		steps.FillValuesFromCli{},
		steps.PrintValues{},
		steps.AskConfirmation{},
		steps.OpenRepository{},
		steps.PopulateFiles{},
		steps.PopulateDirectories{},
		steps.CheckLeftovers{},
		steps.RemoveSetupFiles{},
		steps.RelocateToRoot{},
		steps.StageChanges{},
	}
	if _, err := runChain(populateCtx, stepsChain); err != nil {
		return err
	}

	if populateCtx.DryRun {
		log.Info("Dry run is finished. No changes were made.")
	} else {
		log.Infof("Project is populated in %s", populateCtx.ProjectDir)
	}
	return nil
}

// checkCtx checks populate context for validity.
func checkCtx(ctx *populate_ctx.PopulateCtx) error {
	if ctx.ProjectDir == "" {
		return fmt.Errorf("project directory is not set")
	}
	return nil
}
