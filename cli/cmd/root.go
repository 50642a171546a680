package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tarantool/populate/cli/cmdcontext"
	"github.com/tarantool/populate/cli/populate"
	populate_ctx "github.com/tarantool/populate/cli/populate/context"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	rootCmd *cobra.Command

	removeFiles []string
	dryRun      bool
	noGit       bool
	strictMode  bool
	assumeYes   bool
	journalPath string
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "populate [flags]",
		Short: "Populate a project from its template",
		Long: `Populate a project from its template.

Template files (*.template) under the template directory are filled with values
and renamed, directories named after a value ({{ key }}) are renamed. Then the
template directory contents are moved to the project root, the setup files are
removed and the changes are staged in git.`,
		Example: `$ populate
  $ populate --dry-run
  $ populate -C ../my-project --var license=MIT --remove populate.py -y
  $ populate values --format yaml`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmdCtx.Cli.Verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: RunModuleFunc(internalPopulateModule),
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ProjectDir, "dir", "C", "",
		"Project directory")
	rootCmd.PersistentFlags().StringVar(&cmdCtx.Cli.TemplateDir, "template-dir",
		populate_ctx.DefaultTemplateDir, "Template directory relative to the project directory")
	rootCmd.PersistentFlags().StringVar(&cmdCtx.Cli.SettingsPath, "settings", "",
		"Settings file path. Default: populate.ini, populate.yaml or populate.yml")
	rootCmd.PersistentFlags().StringArrayVar(&cmdCtx.Cli.VarsFromCli, "var", []string{},
		"Value definition. Usage: --var key=value")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V", false,
		"Verbose output")

	rootCmd.Flags().StringArrayVar(&removeFiles, "remove", []string{},
		"Setup file to remove along with the settings file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Show the changes without making them")
	rootCmd.Flags().BoolVar(&noGit, "no-git", false, "Change files without git")
	rootCmd.Flags().BoolVar(&strictMode, "strict", false,
		"Fail if tokens are left unpopulated")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.Flags().StringVar(&journalPath, "journal", "",
		"Record file moves and removals to the journal file")

	rootCmd.AddCommand(
		NewValuesCmd(),
		NewVersionCmd(),
		NewCompletionCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if rootCmd == nil {
		rootCmd = NewCmdRoot()
	}
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// newPopulateCtx creates a populate context from the command line flags.
func newPopulateCtx(cmdCtx *cmdcontext.CmdCtx) (*populate_ctx.PopulateCtx, error) {
	populateCtx := populate_ctx.PopulateCtx{
		TemplateDir:  cmdCtx.Cli.TemplateDir,
		SettingsPath: cmdCtx.Cli.SettingsPath,
		VarsFromCli:  cmdCtx.Cli.VarsFromCli,
		Verbose:      cmdCtx.Cli.Verbose,
	}
	if cmdCtx.Cli.ProjectDir != "" {
		projectDir, err := filepath.Abs(cmdCtx.Cli.ProjectDir)
		if err != nil {
			return nil, err
		}
		populateCtx.ProjectDir = projectDir
	}
	if err := populate.FillCtx(&populateCtx); err != nil {
		return nil, err
	}
	return &populateCtx, nil
}

// confirmPopulate asks the user whether to change the project tree.
func confirmPopulate(projectDir string) func() (bool, error) {
	return func() (bool, error) {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Populate %s", projectDir),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}

// internalPopulateModule is a default populate module.
func internalPopulateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	populateCtx, err := newPopulateCtx(cmdCtx)
	if err != nil {
		return err
	}
	populateCtx.RemoveFiles = removeFiles
	populateCtx.DryRun = dryRun
	populateCtx.NoGit = noGit
	populateCtx.Strict = strictMode
	populateCtx.JournalPath = journalPath
	if !assumeYes && term.IsTerminal(int(os.Stdin.Fd())) {
		populateCtx.Confirm = confirmPopulate(populateCtx.ProjectDir)
	}

	return populate.Run(populateCtx)
}
