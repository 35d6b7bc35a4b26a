package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"emissioni/internal/core"
)

// Layouts a date cell may carry once excelize renders it as a string.
// Day resolution is all the aggregation needs; time-of-day layouts are
// accepted and the extra precision is ignored downstream.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
	time.RFC3339,
}

// Readings extracts core.Reading values from a decoded table. The
// header must expose the required columns (exact match); any other
// column is ignored. Rows that are empty in both required cells are
// skipped, every other malformed cell is an error.
func Readings(t Table) ([]core.Reading, error) {
	if err := core.ValidateColumns(t.Columns); err != nil {
		return nil, err
	}

	dateIdx := columnIndex(t.Columns, core.ColumnDate)
	co2Idx := columnIndex(t.Columns, core.ColumnCO2)

	readings := make([]core.Reading, 0, len(t.Rows))
	for i, row := range t.Rows {
		dateCell := cellAt(row, dateIdx)
		co2Cell := cellAt(row, co2Idx)
		if dateCell == "" && co2Cell == "" {
			// Trailing blank rows are common in hand-edited workbooks.
			continue
		}

		// Header row is row 1 in the workbook.
		rowNum := i + 2

		date, err := ParseDate(dateCell)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		value, err := strconv.ParseFloat(co2Cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse CO2 %q: %w", rowNum, co2Cell, err)
		}

		r := core.Reading{Date: date, CO2: value}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		readings = append(readings, r)
	}
	return readings, nil
}

// ParseDate parses a date cell as rendered by excelize. Plain numeric
// values are interpreted as Excel serial dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date cell")
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date value %q", s)
}

func columnIndex(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
