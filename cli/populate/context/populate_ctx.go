package populate_ctx

import (
	"io"
	"time"

	"github.com/tarantool/populate/cli/values"
	"github.com/tarantool/populate/cli/vcs"
)

// DefaultTemplateDir is the template directory name inside a project.
const DefaultTemplateDir = "template"

// PopulateCtx contains information for populating a project from its template.
type PopulateCtx struct {
	// ProjectDir is the project root. Template contents are moved here.
	ProjectDir string
	// TemplateDir is the template directory, relative to ProjectDir.
	TemplateDir string
	// SettingsPath is the settings file. Looked up in ProjectDir if empty.
	SettingsPath string
	// VarsFromCli template values definitions provided in command line.
	VarsFromCli []string
	// RemoveFiles are setup files removed along with the settings file.
	RemoveFiles []string
	// DryRun prints the rendered changes and leaves the tree as is.
	DryRun bool
	// NoGit mutates the tree without git.
	NoGit bool
	// Strict fails the run if tokens are left in populated files.
	Strict bool
	// Verbose shows git output.
	Verbose bool
	// JournalPath is a file to record tree mutations to. No journal if empty.
	JournalPath string

	// Confirm is called after the values are printed, before the tree is
	// changed. Returning false aborts the run.
	Confirm func() (bool, error)

	// Git provides git metadata. Read from the project git config if nil.
	Git values.GitMetadata
	// Repository overrides the repository chosen by NoGit.
	Repository vcs.Repository
	// Now returns current time. time.Now if nil.
	Now func() time.Time
	// Out receives the values listing and dry run diffs. os.Stdout if nil.
	Out io.Writer
}
