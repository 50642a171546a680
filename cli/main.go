package main

import (
	"log"

	"github.com/tarantool/populate/cli/cmd"
	"github.com/tarantool/populate/cli/util"
	"github.com/tarantool/populate/cli/version"
)

func main() {
	defer func() {
		// A panic is reported with the version and the stack instead of
		// the bare runtime dump.
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.GetVersion, r))
		}
	}()

	cmd.Execute()
}
