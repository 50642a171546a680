// Package formatter renders template values for the operator.
package formatter

const (
	defaultFormatStr    = ""
	yamlFormatStr       = "yaml"
	yamlFormatShortStr  = "y"
	jsonFormatStr       = "json"
	jsonFormatShortStr  = "j"
	tableFormatStr      = "table"
	tableFormatShortStr = "t"
)

// Format defines a set of supported output format.
type Format int

const (
	DefaultFormat Format = iota
	YamlFormat
	JsonFormat
	TableFormat
)

// ParseFormat parses a output format string representation.
func ParseFormat(str string) (Format, bool) {
	switch str {
	case defaultFormatStr, tableFormatStr, tableFormatShortStr:
		return TableFormat, true
	case yamlFormatStr, yamlFormatShortStr:
		return YamlFormat, true
	case jsonFormatStr, jsonFormatShortStr:
		return JsonFormat, true
	}
	return DefaultFormat, false
}

// Opts contains formatting options.
type Opts struct {
	// Graphics sets on/off the output of pseudographics characters.
	Graphics bool
	// ColumnWidthMax sets is a maximum width of the value column. Zero means
	// no limit.
	ColumnWidthMax int
}
