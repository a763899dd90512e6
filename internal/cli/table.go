package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

type NewTableOpts struct {
	Headers []string
}

func NewTable(opts NewTableOpts) *Table {
	t := &Table{}
	t.table = tablewriter.NewWriter(&t.data)
	t.table.Options(tablewriter.WithHeaderAlignment(tw.AlignLeft))
	t.table.Configure(func(cfg *tablewriter.Config) {
		width, _, _ := term.GetSize(int(os.Stdout.Fd()))
		cfg.MaxWidth = width
	})
	t.table.Header(opts.Headers)
	return t
}

type Table struct {
	data  bytes.Buffer
	table *tablewriter.Table
}

// AddRow stringifies the values into a row; booleans render as ✅/❌
func (t *Table) AddRow(values ...any) error {
	row := []string{}
	for _, value := range values {
		var text string
		switch v := value.(type) {
		case bool:
			text = "✅"
			if !v {
				text = "❌"
			}
		case string:
			text = v
		case []string:
			text = strings.Join(v, ", ")
		default:
			text = fmt.Sprintf("%v", v)
		}
		row = append(row, text)
	}
	return t.table.Append(row)
}

func (t *Table) GetString() string {
	t.table.Render()
	return t.data.String()
}
