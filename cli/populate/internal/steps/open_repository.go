package steps

import (
	"github.com/apex/log"

	"github.com/tarantool/populate/cli/journal"
	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/vcs"
)

const (
	journalMaxSize    = 10
	journalMaxBackups = 3
)

// OpenRepository represents tree mutation backend selection step.
type OpenRepository struct{}

// Run selects the repository: dry run, explicitly set, plain filesystem or git.
// Real mutations are journaled if a journal file is set.
func (OpenRepository) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	switch {
	case ctx.DryRun:
		runCtx.Repo = vcs.DryRunRepository{}
		return nil
	case ctx.Repository != nil:
		runCtx.Repo = ctx.Repository
	case ctx.NoGit:
		runCtx.Repo = vcs.FsRepository{WorkDir: ctx.ProjectDir}
	default:
		repo, err := vcs.NewGitRepository(ctx.ProjectDir, ctx.Verbose)
		if err != nil {
			return err
		}
		runCtx.Repo = repo
	}

	if ctx.JournalPath != "" {
		log.Debugf("Journaling tree changes to %s", ctx.JournalPath)
		runCtx.Journal = journal.New(journal.Opts{
			Filename:   ctx.JournalPath,
			MaxSize:    journalMaxSize,
			MaxBackups: journalMaxBackups,
		})
		runCtx.Repo = vcs.JournalRepository{Repository: runCtx.Repo, Journal: runCtx.Journal}
	}
	return nil
}
