package steps

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	populate_ctx "github.com/tarantool/populate/cli/populate/context"
	"github.com/tarantool/populate/cli/templates"
	"github.com/tarantool/populate/cli/util"
)

const templateFileExt = ".template"

var (
	diffAdded   = color.New(color.FgGreen)
	diffRemoved = color.New(color.FgRed)
	diffHunk    = color.New(color.FgCyan)
)

// PopulateFiles represents template files population step.
type PopulateFiles struct{}

// findTemplatedFiles returns template files under root in lexical order.
func findTemplatedFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := entry.Name()
		if entry.Type().IsRegular() && len(name) > len(templateFileExt) &&
			strings.HasSuffix(name, templateFileExt) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// writeDiff writes a colored unified diff of a template and its rendering.
func writeDiff(w io.Writer, fromFile, toFile, before, after string) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	})
	if err != nil {
		return err
	}
	for _, line := range difflib.SplitLines(diff) {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(w, util.Bold(line))
		case strings.HasPrefix(line, "+"):
			diffAdded.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			diffRemoved.Fprint(w, line)
		case strings.HasPrefix(line, "@@"):
			diffHunk.Fprint(w, line)
		default:
			fmt.Fprint(w, line)
		}
	}
	return nil
}

func (PopulateFiles) populate(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx,
	path string) (string, error) {
	if ctx.DryRun {
		content, err := util.GetFileContent(path)
		if err != nil {
			return "", err
		}
		rendered := runCtx.Engine.RenderText(content, runCtx.Values)
		err = writeDiff(output(ctx.Out), util.RelativeTo(ctx.ProjectDir, path),
			util.RelativeTo(ctx.ProjectDir, strings.TrimSuffix(path, templateFileExt)),
			content, rendered)
		return rendered, err
	}

	if err := runCtx.Engine.RenderFile(path, path, runCtx.Values); err != nil {
		return "", err
	}
	return util.GetFileContent(path)
}

// Run renders every template file in place and moves it to the name
// without the template extension.
func (step PopulateFiles) Run(ctx *populate_ctx.PopulateCtx, runCtx *RunCtx) error {
	files, err := findTemplatedFiles(runCtx.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to find template files: %w", err)
	}

	for _, path := range files {
		rendered, err := step.populate(ctx, runCtx, path)
		if err != nil {
			return fmt.Errorf("failed to populate %s: %w", path, err)
		}

		src := util.RelativeTo(ctx.ProjectDir, path)
		dst := strings.TrimSuffix(src, templateFileExt)
		for _, token := range templates.FindAnyTokens(rendered) {
			runCtx.Leftovers = append(runCtx.Leftovers, Leftover{File: dst, Token: token.Text()})
		}

		log.Debugf("Populated %s", dst)
		if err := runCtx.Repo.Move(src, dst, true); err != nil {
			return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
		}
	}
	return nil
}
