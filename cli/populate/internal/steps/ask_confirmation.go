package steps

import (
	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/util"
)

// AskConfirmation represents user confirmation step.
type AskConfirmation struct{}

// Run asks the user to confirm populating. Dry runs are not confirmed.
func (AskConfirmation) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	if ctx.Confirm == nil || ctx.DryRun {
		return nil
	}
	confirmed, err := ctx.Confirm()
	if err != nil {
		return err
	}
	if !confirmed {
		return util.ErrCmdAbort
	}
	return nil
}
