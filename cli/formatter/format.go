package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v2"

	"github.com/tarantool/populate/cli/templates"
)

// MakeOutput returns values formatted depending on specified output format.
func MakeOutput(values *templates.Values, outputFormat Format, opts Opts) (string, error) {
	switch outputFormat {
	case DefaultFormat, TableFormat:
		return renderTable(values, opts), nil
	case YamlFormat:
		return renderYaml(values)
	case JsonFormat:
		return renderJson(values)
	default:
		return "", fmt.Errorf("unknown output format: %d", outputFormat)
	}
}

// newTableWriter creates and configures new table writer.
func newTableWriter(opts Opts) table.Writer {
	t := table.NewWriter()
	if !opts.Graphics {
		t.SetStyle(table.Style{Box: StyleWithoutGraphics})
	}
	if opts.ColumnWidthMax > 0 {
		t.SetColumnConfigs([]table.ColumnConfig{{
			Number:           2,
			WidthMax:         opts.ColumnWidthMax,
			WidthMaxEnforcer: text.WrapSoft,
		}})
	}
	return t
}

func renderTable(values *templates.Values, opts Opts) string {
	t := newTableWriter(opts)
	t.AppendHeader(table.Row{"KEY", "VALUE"})
	for key, value := range values.All() {
		var cell string
		switch raw := value.Raw().(type) {
		case []string:
			quoted := make([]string, 0, len(raw))
			for _, item := range raw {
				quoted = append(quoted, templates.PyRepr(item))
			}
			// A single item tuple keeps the trailing comma.
			if len(quoted) == 1 {
				quoted[0] += ","
			}
			cell = "(" + strings.Join(quoted, ", ") + ")"
		default:
			cell = templates.PyRepr(fmt.Sprint(raw))
		}
		t.AppendRow(table.Row{key, cell})
	}
	return t.Render() + "\n"
}

func renderYaml(values *templates.Values) (string, error) {
	ordered := make(yaml.MapSlice, 0, values.Len())
	for key, value := range values.All() {
		ordered = append(ordered, yaml.MapItem{Key: key, Value: value.Raw()})
	}
	out, err := yaml.Marshal(ordered)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// renderJson renders a JSON object keeping the values order.
func renderJson(values *templates.Values) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	first := true
	for key, value := range values.All() {
		if !first {
			buf.WriteString(",")
		}
		first = false

		keyJson, err := json.Marshal(key)
		if err != nil {
			return "", err
		}
		valueJson, err := json.Marshal(value.Raw())
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "\n  %s: %s", keyJson, valueJson)
	}
	if !first {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}
