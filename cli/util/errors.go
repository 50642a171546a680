package util

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCmdAbort is reported when user aborts the program.
	ErrCmdAbort = errors.New("aborted by user")
)

// ArgError represents command line arguments error.
type ArgError struct {
	msg string
}

// Error returns error message.
func (e ArgError) Error() string {
	return e.msg
}

// NewArgError creates and returns new argument error.
func NewArgError(text string) error {
	return &ArgError{text}
}

// ConfigError is a user-facing configuration problem: missing settings,
// unusable git metadata and so on. It is reported without a stack.
type ConfigError struct {
	msg string
	// Keys are the settings keys the error is about, if any.
	Keys []string
}

// Error returns error message.
func (e ConfigError) Error() string {
	return e.msg
}

// NewConfigError creates a configuration error with a formatted message.
func NewConfigError(format string, args ...any) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// NewMissingKeysError creates a configuration error listing keys without values
// in the settings file.
func NewMissingKeysError(settingsFile string, keys []string) error {
	return &ConfigError{
		msg: fmt.Sprintf("Please specify values in %q for the following: %s",
			settingsFile, strings.Join(keys, ", ")),
		Keys: keys,
	}
}
