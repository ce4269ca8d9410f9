package monitor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAppendChangeLineFormat(t *testing.T) {
	dir := t.TempDir()
	lb := NewLogbook(filepath.Join(dir, "sensor_log.txt"), filepath.Join(dir, "snapshots.txt"))

	ts := time.Date(2026, 8, 23, 10, 0, 0, 123456000, time.Local)
	if err := lb.AppendChange(ts, 98.5, 45.0); err != nil {
		t.Fatalf("AppendChange: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sensor_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want := "2026-08-23 10:00:00.123456 - Temp: 98.50°F, Humidity: 45.00%\n"
	if string(data) != want {
		t.Fatalf("change line = %q, want %q", data, want)
	}
}

func TestAppendSnapshotLineFormat(t *testing.T) {
	dir := t.TempDir()
	lb := NewLogbook(filepath.Join(dir, "sensor_log.txt"), filepath.Join(dir, "snapshots.txt"))

	if err := lb.AppendSnapshot("2026-08-23 10:00:00", 69.8, 51.0); err != nil {
		t.Fatalf("AppendSnapshot: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "snapshots.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want := "2026-08-23 10:00:00 - Temp: 69.80°F, Humidity: 51.00%\n"
	if string(data) != want {
		t.Fatalf("snapshot line = %q, want %q", data, want)
	}
}

func TestAppendIsAppendOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sensor_log.txt")
	lb := NewLogbook(path, filepath.Join(dir, "snapshots.txt"))

	ts := time.Date(2026, 8, 23, 10, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		if err := lb.AppendChange(ts.Add(time.Duration(i)*time.Second), 70.0+float64(i), 50.0); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[2], "Temp: 72.00°F") {
		t.Fatalf("last line = %q", lines[2])
	}
}

func TestAppendErrorCarriesCode(t *testing.T) {
	lb := NewLogbook(filepath.Join(t.TempDir(), "missing", "sensor_log.txt"), "")
	err := lb.AppendChange(time.Now(), 70, 50)
	if err == nil {
		t.Fatal("expected open failure for missing directory")
	}
	if !strings.Contains(err.Error(), "log_append") {
		t.Fatalf("error should carry the log_append code, got %q", err)
	}
}
