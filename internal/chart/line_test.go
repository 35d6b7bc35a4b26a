package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"emissioni/internal/core"
)

func TestRenderLine(t *testing.T) {
	buckets := []core.MonthlyBucket{
		{Month: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Total: 15},
		{Month: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), Total: 7},
	}

	var buf bytes.Buffer
	if err := RenderLine(&buf, "Emissioni CO₂ mensili", buckets); err != nil {
		t.Fatalf("RenderLine: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"echarts", "2023-01", "2023-02", "Emissioni CO₂ mensili"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered chart missing %q", want)
		}
	}
}

func TestRenderLineEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLine(&buf, "Emissioni CO₂ mensili", nil); err != nil {
		t.Fatalf("RenderLine with empty series: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty output")
	}
}
