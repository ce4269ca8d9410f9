package fmtx

import (
	"strings"
	"testing"
)

func TestSprintfReadoutLine(t *testing.T) {
	got := Sprintf("Temp: %.2fF, Humidity: %.2f%%\n", 98.5, 45.0)
	want := "Temp: 98.50F, Humidity: 45.00%\n"
	if got != want {
		t.Fatalf("Sprintf = %q, want %q", got, want)
	}
}

func TestSprintfLogLine(t *testing.T) {
	got := Sprintf("%s - Temp: %.2f°F, Humidity: %.2f%%\n",
		"2026-08-23 10:00:00", 69.8, 51.0)
	if !strings.Contains(got, "Temp: 69.80°F") || !strings.Contains(got, "Humidity: 51.00%") {
		t.Fatalf("Sprintf = %q", got)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("read %d of %d", 3, 7)
	if err.Error() != "read 3 of 7" {
		t.Fatalf("Errorf = %q", err.Error())
	}
}
