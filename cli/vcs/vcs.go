// Package vcs provides tree mutations used to relocate populated files:
// git-aware moves and removals, and their plain filesystem counterparts.
package vcs

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	"golang.org/x/sys/unix"

	"github.com/tarantool/populate/cli/journal"
	"github.com/tarantool/populate/cli/util"
)

// Repository mutates the working tree. Paths are absolute or relative to
// the repository work dir. If dst of Move is an existing directory, src is
// moved into it.
type Repository interface {
	// Move renames src to dst. Existing dst file is overwritten if force is set.
	Move(src, dst string, force bool) error
	// Remove deletes path.
	Remove(path string) error
	// AddUpdated stages modifications and removals of tracked files.
	AddUpdated() error
}

// GitRepository runs git commands in WorkDir.
type GitRepository struct {
	// WorkDir is the repository work tree.
	WorkDir string
	// Verbose shows git output.
	Verbose bool
}

// NewGitRepository creates a git repository handle. Fails if git is not
// installed.
func NewGitRepository(workDir string, verbose bool) (*GitRepository, error) {
	if err := util.CheckRequiredBinaries("git"); err != nil {
		return nil, err
	}
	return &GitRepository{WorkDir: workDir, Verbose: verbose}, nil
}

func (repo *GitRepository) git(args ...string) error {
	_, err := util.RunCommand(exec.Command("git", args...), repo.WorkDir, repo.Verbose)
	return err
}

// Move runs git mv.
func (repo *GitRepository) Move(src, dst string, force bool) error {
	args := []string{"mv"}
	if force {
		args = append(args, "-f")
	}
	return repo.git(append(args, "--", src, dst)...)
}

// Remove runs git rm -f.
func (repo *GitRepository) Remove(path string) error {
	return repo.git("rm", "-f", "--", path)
}

// AddUpdated runs git add -u for the whole tree.
func (repo *GitRepository) AddUpdated() error {
	args := []string{"add", "-u"}
	if !util.IsGitAddUpdateTreeWide() {
		args = append(args, ":/")
	}
	return repo.git(args...)
}

// FsRepository mutates the filesystem directly. Used for trees not under
// version control.
type FsRepository struct {
	// WorkDir is a base for relative paths.
	WorkDir string
}

func (repo FsRepository) abs(path string) string {
	return util.JoinPaths(repo.WorkDir, path)
}

// Move renames src to dst, copying across devices. An existing directory
// at dst is an error even with force.
func (repo FsRepository) Move(src, dst string, force bool) error {
	src, dst = repo.abs(src), repo.abs(dst)
	if _, err := os.Lstat(src); err != nil {
		return err
	}
	if util.IsDir(dst) {
		dst = filepath.Join(dst, filepath.Base(src))
	}
	if info, err := os.Lstat(dst); err == nil {
		// Like git mv, force replaces files and symlinks but never a directory.
		if info.IsDir() {
			return fmt.Errorf("cannot move %q: destination directory %q exists", src, dst)
		}
		if !force {
			return fmt.Errorf("cannot move %q: destination %q exists", src, dst)
		}
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("failed to remove %q: %w", dst, err)
		}
	}

	err := os.Rename(src, dst)
	if errors.Is(err, unix.EXDEV) {
		if err = copy.Copy(src, dst); err != nil {
			return fmt.Errorf("failed to copy %q to %q: %w", src, dst, err)
		}
		err = os.RemoveAll(src)
	}
	return err
}

// Remove deletes path recursively.
func (repo FsRepository) Remove(path string) error {
	return os.RemoveAll(repo.abs(path))
}

// AddUpdated does nothing: there is no index.
func (FsRepository) AddUpdated() error {
	return nil
}

// DryRunRepository reports mutations without performing them.
type DryRunRepository struct{}

// Move logs the move.
func (DryRunRepository) Move(src, dst string, force bool) error {
	log.Infof("Would move %s -> %s", src, dst)
	return nil
}

// Remove logs the removal.
func (DryRunRepository) Remove(path string) error {
	log.Infof("Would remove %s", path)
	return nil
}

// AddUpdated logs staging.
func (DryRunRepository) AddUpdated() error {
	log.Info("Would stage updated files")
	return nil
}

// JournalRepository records every mutation of the wrapped repository.
type JournalRepository struct {
	Repository
	Journal *journal.Journal
}

func (repo JournalRepository) record(err error, op string, args ...string) error {
	if err != nil {
		repo.Journal.Record("failed "+op, append(args, err.Error())...)
		return err
	}
	repo.Journal.Record(op, args...)
	return nil
}

// Move moves and records the move.
func (repo JournalRepository) Move(src, dst string, force bool) error {
	return repo.record(repo.Repository.Move(src, dst, force), "move", src, dst)
}

// Remove removes and records the removal.
func (repo JournalRepository) Remove(path string) error {
	return repo.record(repo.Repository.Remove(path), "remove", path)
}

// AddUpdated stages and records staging.
func (repo JournalRepository) AddUpdated() error {
	return repo.record(repo.Repository.AddUpdated(), "stage")
}
