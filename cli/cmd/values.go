package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarantool/populate/cli/cmdcontext"
	"github.com/tarantool/populate/cli/formatter"
	"github.com/tarantool/populate/cli/populate"
	"github.com/tarantool/populate/cli/util"
)

var (
	valuesFormat   string
	valuesGraphics bool
)

// NewValuesCmd creates a new values command.
func NewValuesCmd() *cobra.Command {
	var valuesCmd = &cobra.Command{
		Use:   "values [flags]",
		Short: "Show template values",
		Long: "Show the values the template is populated with: git metadata, " +
			"dependency lists and settings.",
		Args: cobra.NoArgs,
		Run:  RunModuleFunc(internalValuesModule),
		Example: `
# Show the values as a table.

    $ populate values

# Show the values of a project in another directory as YAML.

    $ populate values -C ../my-project --format yaml`,
	}

	valuesCmd.Flags().StringVar(&valuesFormat, "format", "table",
		"Output format: table, yaml or json")
	valuesCmd.Flags().BoolVar(&valuesGraphics, "graphics", false,
		"Draw table borders")

	return valuesCmd
}

// internalValuesModule is a default values module.
func internalValuesModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	format, ok := formatter.ParseFormat(valuesFormat)
	if !ok {
		return util.NewArgError(fmt.Sprintf("unknown output format: %q", valuesFormat))
	}

	populateCtx, err := newPopulateCtx(cmdCtx)
	if err != nil {
		return err
	}
	values, err := populate.LoadValues(populateCtx)
	if err != nil {
		return err
	}

	out, err := formatter.MakeOutput(values, format, formatter.Opts{Graphics: valuesGraphics})
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
