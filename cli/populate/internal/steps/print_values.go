package steps

import (
	"fmt"

	"github.com/tarantool/populate/cli/formatter"
	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/util"
)

// PrintValues represents template values listing step.
type PrintValues struct{}

// Run prints the values the template is populated with.
func (PrintValues) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	out, err := formatter.MakeOutput(runCtx.Values, formatter.TableFormat, formatter.Opts{})
	if err != nil {
		return err
	}
	w := output(ctx.Out)
	fmt.Fprintln(w, util.Bold("Using the following template values:"))
	fmt.Fprint(w, out)
	return nil
}
