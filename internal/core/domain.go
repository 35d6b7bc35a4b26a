package core

import (
	"errors"
	"math"
	"time"
)

// Required column names in the uploaded table. Matching is exact,
// other columns are ignored.
const (
	ColumnDate = "Date"
	ColumnCO2  = "CO2"
)

var (
	ErrMissingDateColumn = errors.New("missing 'Date' column")
	ErrMissingCO2Column  = errors.New("missing 'CO2' column")
	ErrInvalidCO2Value   = errors.New("invalid CO2 value")
)

type (
	// Reading is one input row: a dated CO₂ measurement. It lives only
	// for the duration of a single upload.
	Reading struct {
		Date time.Time
		CO2  float64
	}

	// MonthlyBucket is the aggregated total of all readings falling in
	// one calendar month. Month is the first day of that month in UTC.
	MonthlyBucket struct {
		Month time.Time
		Total float64
	}
)

// ValidateColumns checks that the decoded table exposes both required
// columns. It is the single user-recoverable gate: everything past it
// is expected to be well formed.
func ValidateColumns(columns []string) error {
	hasDate, hasCO2 := false, false
	for _, c := range columns {
		switch c {
		case ColumnDate:
			hasDate = true
		case ColumnCO2:
			hasCO2 = true
		}
	}
	if !hasDate {
		return ErrMissingDateColumn
	}
	if !hasCO2 {
		return ErrMissingCO2Column
	}
	return nil
}

func (r Reading) Validate() error {
	if r.Date.IsZero() {
		return errors.New("reading date cannot be zero")
	}
	if math.IsNaN(r.CO2) || math.IsInf(r.CO2, 0) {
		return ErrInvalidCO2Value
	}
	return nil
}

// Year returns the bucket year.
func (b MonthlyBucket) Year() int {
	return b.Month.Year()
}

// MonthNumber returns the bucket month in 1..12.
func (b MonthlyBucket) MonthNumber() int {
	return int(b.Month.Month())
}
