package core

import (
	"testing"
	"time"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateMonthlyScenario(t *testing.T) {
	readings := []Reading{
		{Date: day(2023, 1, 5), CO2: 10},
		{Date: day(2023, 1, 20), CO2: 5},
		{Date: day(2023, 2, 1), CO2: 7},
	}

	buckets := AggregateMonthly(readings)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if !buckets[0].Month.Equal(day(2023, 1, 1)) || buckets[0].Total != 15 {
		t.Errorf("bucket[0] = (%v, %v), want (2023-01-01, 15)", buckets[0].Month, buckets[0].Total)
	}
	if !buckets[1].Month.Equal(day(2023, 2, 1)) || buckets[1].Total != 7 {
		t.Errorf("bucket[1] = (%v, %v), want (2023-02-01, 7)", buckets[1].Month, buckets[1].Total)
	}
}

func TestAggregateMonthlyEmptyInput(t *testing.T) {
	if got := AggregateMonthly(nil); len(got) != 0 {
		t.Fatalf("expected empty output for empty input, got %v", got)
	}
	if got := AggregateMonthly([]Reading{}); len(got) != 0 {
		t.Fatalf("expected empty output for zero rows, got %v", got)
	}
}

func TestAggregateMonthlySingleMonth(t *testing.T) {
	readings := []Reading{
		{Date: day(2024, 6, 1), CO2: 1.5},
		{Date: day(2024, 6, 15), CO2: 2.5},
		{Date: day(2024, 6, 30), CO2: 3},
	}
	buckets := AggregateMonthly(readings)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Total != 7 {
		t.Errorf("total = %v, want 7", buckets[0].Total)
	}
}

func TestAggregateMonthlyIgnoresTimeOfDay(t *testing.T) {
	readings := []Reading{
		{Date: time.Date(2023, 3, 10, 23, 59, 0, 0, time.UTC), CO2: 1},
		{Date: time.Date(2023, 3, 1, 0, 0, 1, 0, time.UTC), CO2: 2},
	}
	buckets := AggregateMonthly(readings)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if !buckets[0].Month.Equal(day(2023, 3, 1)) {
		t.Errorf("month = %v, want 2023-03-01", buckets[0].Month)
	}
}

func TestAggregateMonthlyOrderingAndConservation(t *testing.T) {
	// Deliberately unordered input spanning a year boundary, with a gap
	// (no readings in 2023-01).
	readings := []Reading{
		{Date: day(2023, 2, 14), CO2: 4},
		{Date: day(2022, 11, 3), CO2: 2},
		{Date: day(2023, 2, 2), CO2: 6},
		{Date: day(2022, 12, 25), CO2: 8},
	}

	buckets := AggregateMonthly(readings)

	var inputSum float64
	for _, r := range readings {
		inputSum += r.CO2
	}
	if got := TotalOf(buckets); got != inputSum {
		t.Errorf("sum of bucket totals = %v, want %v", got, inputSum)
	}

	for i := 1; i < len(buckets); i++ {
		if !buckets[i-1].Month.Before(buckets[i].Month) {
			t.Errorf("buckets not strictly ascending at %d: %v >= %v", i, buckets[i-1].Month, buckets[i].Month)
		}
	}

	for _, b := range buckets {
		if b.Month.Equal(day(2023, 1, 1)) {
			t.Errorf("gap month 2023-01 must not produce a bucket")
		}
	}
}

func TestMonthOf(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	got := MonthOf(time.Date(2023, 5, 17, 14, 30, 0, 0, loc))
	if !got.Equal(day(2023, 5, 1)) {
		t.Errorf("MonthOf = %v, want 2023-05-01 UTC", got)
	}
}
