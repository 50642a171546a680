package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tarantool/populate/cli/cmdcontext"
	"github.com/tarantool/populate/cli/util"
)

// internalModule is a command implementation.
type internalModule func(cmdCtx *cmdcontext.CmdCtx, args []string) error

// RunModuleFunc returns a cobra Run function calling the command
// implementation and handling its error.
func RunModuleFunc(module internalModule) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		err := module(&cmdCtx, args)
		util.HandleCmdErr(cmd, err)
	}
}
