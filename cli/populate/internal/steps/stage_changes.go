package steps

import (
	populate_ctx "github.com/tarantool/populate/cli/populate/context"
)

// StageChanges represents updated files staging step.
type StageChanges struct{}

// Run stages the rest of the updated files.
func (StageChanges) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	return runCtx.Repo.AddUpdated()
}
