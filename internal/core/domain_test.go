package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestValidateColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		wantErr error
	}{
		{"both present", []string{"Date", "CO2"}, nil},
		{"extra columns ignored", []string{"Site", "Date", "Notes", "CO2"}, nil},
		{"missing date", []string{"CO2"}, ErrMissingDateColumn},
		{"missing co2", []string{"Date"}, ErrMissingCO2Column},
		{"both missing reports date first", []string{"Foo", "Bar"}, ErrMissingDateColumn},
		{"exact match is case sensitive", []string{"date", "co2"}, ErrMissingDateColumn},
		{"no columns", nil, ErrMissingDateColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumns(tt.columns)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateColumns(%v) = %v, want %v", tt.columns, err, tt.wantErr)
			}
		})
	}
}

func TestReadingValidate(t *testing.T) {
	valid := Reading{Date: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), CO2: 10}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid reading rejected: %v", err)
	}

	if err := (Reading{CO2: 1}).Validate(); err == nil {
		t.Errorf("zero date accepted")
	}
	if err := (Reading{Date: valid.Date, CO2: math.NaN()}).Validate(); !errors.Is(err, ErrInvalidCO2Value) {
		t.Errorf("NaN CO2 accepted")
	}
	if err := (Reading{Date: valid.Date, CO2: math.Inf(1)}).Validate(); !errors.Is(err, ErrInvalidCO2Value) {
		t.Errorf("Inf CO2 accepted")
	}
}
