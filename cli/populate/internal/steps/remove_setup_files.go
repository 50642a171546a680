package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/util"
)

// RemoveSetupFiles represents template setup files removal step.
type RemoveSetupFiles struct{}

// Run removes the settings file and the files requested in command line.
func (RemoveSetupFiles) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	paths := []string{util.RelativeTo(ctx.ProjectDir, runCtx.SettingsPath)}
	paths = append(paths, ctx.RemoveFiles...)

	for _, path := range paths {
		if _, err := os.Lstat(util.JoinPaths(ctx.ProjectDir, path)); os.IsNotExist(err) {
			log.Warnf("Setup file %s does not exist. Skipping.", path)
			continue
		}
		log.Debugf("Removing %s", path)
		if err := runCtx.Repo.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}
