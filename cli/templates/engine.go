// Package templates implements placeholder substitution in project template files.
//
// A template refers to a value with a token: `{{ key }}` inserts the value as
// is, `{{ key|filter }}` renders it with the named filter. Tokens of unknown
// keys are left in the text untouched.
package templates

import (
	"fmt"
	"os"
	"strings"
)

// Filter renders values of type T in place of `{{ key|Name }}` tokens.
type Filter[T any] struct {
	// Name is a filter name used in tokens. Empty for the raw form.
	Name string
	// Indented filters get the whitespace preceding a token and replace it.
	Indented bool
	// Render converts a value to the replacement text.
	Render func(indent string, value T) string
	// Normalize is applied to the whole text once tokens are replaced. It is
	// skipped when the text has no token of this filter.
	Normalize func(text string) string
}

// Substitute replaces every token of key recognized by filter. Replacement
// text is not scanned again, so values containing tokens are kept as is.
// Returns the rewritten text and the number of replaced tokens.
func Substitute[T any](text, key string, value T, filter Filter[T]) (string, int) {
	matcher := NewMatcher(key, filter.Name, filter.Indented)

	var out strings.Builder
	cursor, count := 0, 0
	for {
		token, found := matcher.Find(text, cursor)
		if !found {
			break
		}
		if count == 0 {
			out.Grow(len(text))
		}
		out.WriteString(text[cursor:token.Start])
		out.WriteString(filter.Render(token.Indent, value))
		cursor = token.End
		count++
	}
	if count == 0 {
		return text, 0
	}
	out.WriteString(text[cursor:])

	result := out.String()
	if filter.Normalize != nil {
		result = filter.Normalize(result)
	}
	return result, count
}

// TemplateEngine renders template text and files with a set of values.
type TemplateEngine interface {
	// RenderFile applies values to the template from srcPath.
	// Instantiated template is saved as dstPath.
	RenderFile(srcPath, dstPath string, values *Values) error

	// RenderText applies values to the template text. Returns instantiated text.
	RenderText(in string, values *Values) string
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return tokenEngine{}
}

type tokenEngine struct{}

// RenderText substitutes values one key at a time in values order.
func (tokenEngine) RenderText(in string, values *Values) string {
	for key, value := range values.All() {
		in, _ = value.substitute(in, key)
	}
	return in
}

// RenderFile renders srcPath to dstPath keeping the source file mode.
// srcPath and dstPath may be the same file.
func (engine tokenEngine) RenderFile(srcPath, dstPath string, values *Values) error {
	stat, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("error getting file info %s: %w", srcPath, err)
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", srcPath, err)
	}

	rendered := engine.RenderText(string(content), values)
	if err := os.WriteFile(dstPath, []byte(rendered), stat.Mode().Perm()); err != nil {
		return fmt.Errorf("error writing %s: %w", dstPath, err)
	}
	// WriteFile does not change the mode of an existing file.
	if err := os.Chmod(dstPath, stat.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to change permissions of %s: %w", dstPath, err)
	}
	return nil
}
