package steps

import (
	"io"
	"os"

	"github.com/tarantool/populate/cli/journal"
	"github.com/tarantool/populate/cli/templates"
	"github.com/tarantool/populate/cli/vcs"
)

// Leftover is a token left in a populated file.
type Leftover struct {
	// File is a populated file path relative to the project dir.
	File string
	// Token is the token text.
	Token string
}

// RunCtx contains the state shared by populate steps.
type RunCtx struct {
	// TemplatePath is the template directory path.
	TemplatePath string
	// SettingsPath is the resolved settings file path.
	SettingsPath string
	// Values are template values. Not changed after FillValuesFromCli.
	Values *templates.Values
	// Engine is a template engine to use for template rendering.
	Engine templates.TemplateEngine
	// Repo performs tree mutations.
	Repo vcs.Repository
	// Journal records Repo mutations. Nil if disabled.
	Journal *journal.Journal
	// Leftovers are tokens found in populated files.
	Leftovers []Leftover
}

// NewRunCtx creates new populate run context.
func NewRunCtx() RunCtx {
	var runCtx RunCtx
	runCtx.Values = templates.NewValues()
	runCtx.Engine = templates.NewDefaultEngine()
	return runCtx
}

// Close releases the journal.
func (runCtx *RunCtx) Close() error {
	if runCtx.Journal == nil {
		return nil
	}
	return runCtx.Journal.Close()
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
