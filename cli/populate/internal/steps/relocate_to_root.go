package steps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/apex/log"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/util"
)

// RelocateToRoot represents template contents relocation step.
type RelocateToRoot struct{}

// Run moves everything in the template directory to the project root
// and removes the template directory.
func (RelocateToRoot) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	entries, err := os.ReadDir(runCtx.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, entry := range entries {
		src := util.RelativeTo(ctx.ProjectDir, util.JoinPaths(runCtx.TemplatePath, entry.Name()))
		log.Debugf("Moving %s to the project root", src)
		if err := runCtx.Repo.Move(src, ".", true); err != nil {
			return fmt.Errorf("failed to move %s: %w", src, err)
		}
	}

	if ctx.DryRun {
		return nil
	}
	// The template directory should be empty now.
	if err := os.Remove(runCtx.TemplatePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove template directory: %w", err)
	}
	return nil
}
