package steps

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/apex/log"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/templates"
	"github.com/tarantool/populate/cli/util"
)

// PopulateDirectories represents template directories renaming step.
type PopulateDirectories struct{}

func pathDepth(path string) int {
	return strings.Count(filepath.ToSlash(path), "/")
}

// findTemplatedDirectories returns directories named `{{ * }}` under root,
// deepest first.
func findTemplatedDirectories(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() && path != root && templates.IsTemplateDirName(entry.Name()) {
			dirs = append(dirs, path)
		}
		return nil
	})
	slices.SortStableFunc(dirs, func(a, b string) int {
		return pathDepth(b) - pathDepth(a)
	})
	return dirs, err
}

// renameDirectory returns the directory name with the first scalar value
// that changes it substituted.
func renameDirectory(name string, values *templates.Values) (string, bool) {
	for key, value := range values.Scalars() {
		renamed, count := templates.Substitute(name, key, value, templates.Raw)
		if count > 0 && renamed != name {
			return renamed, true
		}
	}
	return name, false
}

// Run renames template directories. A directory is renamed by its own name
// only, so nested template directories are renamed before their parents.
func (PopulateDirectories) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	dirs, err := findTemplatedDirectories(runCtx.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to find template directories: %w", err)
	}

	for _, dir := range dirs {
		name := filepath.Base(dir)
		renamed, changed := renameDirectory(name, runCtx.Values)
		if !changed {
			log.Debugf("No value for directory %s", util.RelativeTo(ctx.ProjectDir, dir))
			continue
		}
		if renamed == "" || renamed == "." || renamed == ".." ||
			strings.ContainsRune(renamed, filepath.Separator) || strings.Contains(renamed, "/") {
			return util.NewConfigError("directory %q cannot be renamed to %q", name, renamed)
		}

		src := util.RelativeTo(ctx.ProjectDir, dir)
		dst := filepath.Join(filepath.Dir(src), renamed)
		log.Debugf("Renaming directory %s to %s", src, dst)
		if err := runCtx.Repo.Move(src, dst, false); err != nil {
			return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
		}
	}
	return nil
}
