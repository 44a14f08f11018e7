package utils

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	nameStyle   = cellStyle.Foreground(lipgloss.Color("86"))
)

// TableFormatter helps create formatted tables for CLI output
type TableFormatter struct {
	headers []string
	rows    [][]string
}

// NewTableFormatter creates a new table formatter with headers
func NewTableFormatter(headers []string) *TableFormatter {
	return &TableFormatter{
		headers: headers,
		rows:    [][]string{},
	}
}

// AddRow adds a row to the table. Rows that don't match the header width are dropped.
func (t *TableFormatter) AddRow(row []string) {
	if len(row) != len(t.headers) {
		return
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows
func (t *TableFormatter) Len() int {
	return len(t.rows)
}

// String returns the formatted table. The first column is highlighted.
func (t *TableFormatter) String() string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		}).
		String() + "\n"
}
