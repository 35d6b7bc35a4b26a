package core

import (
	"sort"
	"time"
)

// MonthOf truncates a timestamp to the first day of its calendar month
// in UTC. Time of day, if present, does not affect bucketing.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AggregateMonthly groups readings into calendar-month buckets and sums
// the CO₂ value per bucket. Buckets are returned in ascending month
// order with no duplicates; months with no readings produce no bucket.
// Empty input yields an empty result.
func AggregateMonthly(readings []Reading) []MonthlyBucket {
	if len(readings) == 0 {
		return nil
	}

	totals := make(map[time.Time]float64, len(readings))
	for _, r := range readings {
		totals[MonthOf(r.Date)] += r.CO2
	}

	buckets := make([]MonthlyBucket, 0, len(totals))
	for month, total := range totals {
		buckets = append(buckets, MonthlyBucket{Month: month, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month.Before(buckets[j].Month)
	})
	return buckets
}

// TotalOf sums the totals of all buckets. Used for the upload summary.
func TotalOf(buckets []MonthlyBucket) float64 {
	var sum float64
	for _, b := range buckets {
		sum += b.Total
	}
	return sum
}
