package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	Masked = "***"
	Yes    = "yes"
	No     = "no"

	timestampLayout = "2006-01-02 15:04:05"
)

// printData writes value as JSON or YAML, or calls table for table output.
func printData(w io.Writer, value any, table func() error) error {
	output := viper.GetString("output")

	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		return encoder.Close()
	case "", OutputFormatTable:
		return table()
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, output)
	}
}

// renderTable prints rows under headers, truncating long cells.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)

	header := make([]any, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}

	table.Header(header...)

	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, truncate(cell, constants.MaxColumnWidth))
		}

		_ = table.Append(cells)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderKeyValues prints a two column Property/Value table.
func renderKeyValues(w io.Writer, pairs [][2]string) error {
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{pair[0], pair[1]})
	}

	return renderTable(w, []string{"Property", "Value"}, rows)
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}

	return string(runes[:width-3]) + "..."
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(timestampLayout)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(freshbooks.DateLayout)
}

func formatBool(b bool) string {
	if b {
		return Yes
	}

	return No
}

// titleCase renders enum-like values such as vis states for tables.
func titleCase(value string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(value, "_", " "))
}

// fullName joins non-empty name parts.
func fullName(parts ...string) string {
	var names []string

	for _, part := range parts {
		if part != "" {
			names = append(names, part)
		}
	}

	return strings.Join(names, " ")
}
