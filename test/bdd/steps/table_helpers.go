package steps

import (
	"fmt"
	"strconv"
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

// optionalFloat parses a cell that may be left blank
func optionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", value, err)
	}
	return &f, nil
}

// optionalInt parses a cell that may be left blank as zero
func optionalInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}
	return i, nil
}

// approxEqual compares rates that went through float arithmetic
func approxEqual(a, b float64) bool {
	const epsilon = 1e-6
	d := a - b
	return d < epsilon && d > -epsilon
}
