package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// populate and shared by its commands.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags shared by populate commands.
type CliCtx struct {
	// ProjectDir is the project root. Current working directory if empty.
	ProjectDir string
	// TemplateDir is the template directory relative to the project root.
	TemplateDir string
	// SettingsPath is the settings file path. Looked up if empty.
	SettingsPath string
	// VarsFromCli are template values set in command line.
	VarsFromCli []string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}
