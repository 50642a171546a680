package templates

import (
	"regexp"
	"strings"
)

const (
	tokenOpen  = "{{ "
	tokenClose = " }}"
)

// anyTokenRe matches any raw or filtered token.
var anyTokenRe = regexp.MustCompile(`\{\{ ([^\s{}|]+)(?:\|([^\s{}|]+))? \}\}`)

// Token is a single placeholder occurrence in text.
type Token struct {
	// Start is the offset of the replaced span. It includes the indent.
	Start int
	// End is the offset right after the closing braces.
	End int
	// Indent is the horizontal whitespace preceding the token on its line.
	// Empty for matchers without indent capture.
	Indent string
	// Key is the value name.
	Key string
	// Filter is the filter name, empty for raw tokens.
	Filter string
}

// Text returns the token literal without the indent.
func (token Token) Text() string {
	return TokenLiteral(token.Key, token.Filter)
}

// TokenLiteral returns `{{ key }}` or `{{ key|filter }}`.
func TokenLiteral(key, filter string) string {
	if filter == "" {
		return tokenOpen + key + tokenClose
	}
	return tokenOpen + key + "|" + filter + tokenClose
}

// Matcher finds tokens of one key and filter.
type Matcher struct {
	key      string
	filter   string
	literal  string
	indented bool
}

// NewMatcher creates a matcher for `{{ key }}` (empty filter) or
// `{{ key|filter }}`. If indented is set, found tokens capture the spaces and
// tabs preceding them.
func NewMatcher(key, filter string, indented bool) Matcher {
	return Matcher{
		key:      key,
		filter:   filter,
		literal:  TokenLiteral(key, filter),
		indented: indented,
	}
}

// Find returns the first token at or after from. The indent never extends
// before from.
func (m Matcher) Find(text string, from int) (Token, bool) {
	if from > len(text) {
		return Token{}, false
	}
	pos := strings.Index(text[from:], m.literal)
	if pos < 0 {
		return Token{}, false
	}
	tokenStart := from + pos
	start := tokenStart
	if m.indented {
		for start > from && isHorizontalSpace(text[start-1]) {
			start--
		}
	}
	return Token{
		Start:  start,
		End:    tokenStart + len(m.literal),
		Indent: text[start:tokenStart],
		Key:    m.key,
		Filter: m.filter,
	}, true
}

func isHorizontalSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// FindAnyTokens returns all tokens left in text regardless of the key.
func FindAnyTokens(text string) []Token {
	var tokens []Token
	for _, loc := range anyTokenRe.FindAllStringSubmatchIndex(text, -1) {
		token := Token{Start: loc[0], End: loc[1], Key: text[loc[2]:loc[3]]}
		if loc[4] >= 0 {
			token.Filter = text[loc[4]:loc[5]]
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// IsTemplateDirName checks if the whole name is a token: `{{ * }}`.
func IsTemplateDirName(name string) bool {
	return len(name) >= len(tokenOpen)+len(tokenClose) &&
		strings.HasPrefix(name, tokenOpen) && strings.HasSuffix(name, tokenClose)
}
