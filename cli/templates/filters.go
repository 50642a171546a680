package templates

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tarantool/populate/cli/templates/wrap"
	"github.com/tarantool/populate/cli/util"
)

// wrapWidth is the column budget of pystring output, indent included.
const wrapWidth = 70

var emptyTupleRe = regexp.MustCompile(`\(\s+\)`)

var (
	// Raw inserts a value verbatim: `{{ key }}`.
	Raw = Filter[string]{
		Render: func(_ string, value string) string { return value },
	}
	// Capitalize upper-cases the first letter of every word: `{{ key|capitalize }}`.
	Capitalize = Filter[string]{
		Name:   "capitalize",
		Render: func(_ string, value string) string { return Capwords(value) },
	}
	// PyString renders a wrapped sequence of adjacent Python string literals:
	// `{{ key|pystring }}`.
	PyString = Filter[string]{
		Name:     "pystring",
		Indented: true,
		Render:   renderPyString,
	}
	// PyTuple renders tuple items, one per line: `{{ key|pytuple }}`.
	PyTuple = Filter[[]string]{
		Name:      "pytuple",
		Indented:  true,
		Render:    renderPyTuple,
		// Squashing runs only on texts where a pytuple token was replaced.
		Normalize: squashEmptyTuples,
	}

	scalarFilters   = []Filter[string]{Raw, Capitalize, PyString}
	sequenceFilters = []Filter[[]string]{PyTuple}
)

// Capwords splits s into words, capitalizes each word and joins them with
// a single space. The first letter takes its full title case mapping, so
// "ß" becomes "Ss".
func Capwords(s string) string {
	title := cases.Title(language.Und, cases.NoLower)
	lower := cases.Lower(language.Und)
	words := strings.Fields(s)
	for i, word := range words {
		_, size := utf8.DecodeRuneInString(word)
		words[i] = title.String(word[:size]) + lower.String(word[size:])
	}
	return strings.Join(words, " ")
}

func renderPyString(indent string, value string) string {
	width := util.Max(wrapWidth-len(indent), 1)
	lines := wrap.Wrap(value, width)
	literals := make([]string, 0, len(lines))
	for _, line := range lines {
		literals = append(literals, PyRepr(line))
	}
	return indent + strings.Join(literals, "\n"+indent)
}

func renderPyTuple(indent string, value []string) string {
	lines := make([]string, 0, len(value))
	for _, item := range value {
		lines = append(lines, indent+PyRepr(item)+",")
	}
	return strings.Join(lines, "\n")
}

// squashEmptyTuples replaces `(` followed by whitespace and `)` with `()`.
func squashEmptyTuples(text string) string {
	return emptyTupleRe.ReplaceAllString(text, "()")
}
