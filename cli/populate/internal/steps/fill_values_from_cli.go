package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/templates"
	"github.com/tarantool/populate/cli/util"
)

const formatError = `Wrong variable definition format: %s
Usage: --var "var-name=value"`

// FillValuesFromCli represents command line values override step.
type FillValuesFromCli struct{}

// Run sets scalar values passed using command line args.
func (FillValuesFromCli) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	for _, varDefinition := range ctx.VarsFromCli {
		varDefinition = strings.TrimSpace(varDefinition)
		varName, value, found := strings.Cut(varDefinition, "=")
		if !found || varName == "" || value == "" {
			return util.NewArgError(fmt.Sprintf(formatError, varDefinition))
		}
		if current, found := runCtx.Values.Get(varName); found {
			if _, isScalar := current.(templates.Scalar); !isScalar {
				return util.NewArgError(
					fmt.Sprintf("%s is a list and cannot be set from command line", varName))
			}
		}
		log.Debugf("Setting value from CLI: %s = %s", varName, value)
		runCtx.Values.Set(varName, templates.Scalar(value))
	}
	return nil
}
