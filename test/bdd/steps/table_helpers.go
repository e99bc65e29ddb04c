package steps

import (
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// getCellValueFromTable gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]

	// Find column index by matching header
	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return strings.TrimSpace(row.Cells[i].Value)
			}
			return ""
		}
	}

	return ""
}

// cellsString renders energy cells as "10100", one digit per cell
func cellsString(cells []bool) string {
	var b strings.Builder
	for _, charged := range cells {
		if charged {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// parseCells reads "10100" back into energy cells
func parseCells(s string) []bool {
	cells := make([]bool, len(s))
	for i := range s {
		cells[i] = s[i] == '1'
	}
	return cells
}
