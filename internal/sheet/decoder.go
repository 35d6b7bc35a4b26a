// Package sheet decodes uploaded workbook bytes into a tabular
// structure and extracts CO₂ readings from it.
package sheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Table is a decoded spreadsheet: the header row as column names plus
// one string slice per data row. Rows may be shorter than Columns when
// trailing cells are empty.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Decode parses raw workbook bytes into a Table, reading the first
// sheet only. Malformed bytes are an error for the caller to surface.
func Decode(data []byte) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("read rows from %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}

	t := Table{Columns: rows[0]}
	if len(rows) > 1 {
		t.Rows = rows[1:]
	}
	return t, nil
}
