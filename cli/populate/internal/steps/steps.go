// Package steps provides a set of handlers for populate command chain of responsibility.
package steps

import (
	populate_ctx "github.com/tarantool/populate/cli/populate/context"
)

// Step is an interface for single step in populate chain.
type Step interface {
	Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error
}
