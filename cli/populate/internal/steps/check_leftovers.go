package steps

import (
	"strings"

	"github.com/apex/log"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/util"
)

// CheckLeftovers represents unpopulated tokens report step.
type CheckLeftovers struct{}

// Run reports tokens left in populated files. Fails in strict mode.
func (CheckLeftovers) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	if len(runCtx.Leftovers) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(runCtx.Leftovers))
	for _, leftover := range runCtx.Leftovers {
		log.Warnf("%s: %s is left unpopulated", leftover.File, leftover.Token)
		tokens = append(tokens, leftover.File+": "+leftover.Token)
	}
	if ctx.Strict {
		return util.NewConfigError("no values for the following tokens: %s",
			strings.Join(tokens, ", "))
	}
	return nil
}
