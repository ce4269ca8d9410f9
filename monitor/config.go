package monitor

import (
	"time"

	"envmon-go/x/timex"
)

// Nominal sampling rate. History capacity is sized so the buffer holds the
// trailing 15 minutes at this rate; the label is approximate when the tick
// drifts, since samples carry no timestamps.
const (
	sampleHz          = 1
	historyMinutes    = 15
	defaultHistoryCap = historyMinutes * 60 * sampleHz
)

// Config is the monitor's compiled-in tuning. There is deliberately no
// file/env/flag input; tests override fields, production uses the defaults.
type Config struct {
	TickPeriod   time.Duration // nominal time between samples
	ReadBackoff  time.Duration // pause after a failed sensor read
	AverageHold  time.Duration // how long the average overlay blocks the loop
	SnapshotHold time.Duration // how long the snapshot overlay blocks the loop

	HistoryCap      int
	ChangeThreshold float64 // °F or %RH delta that forces a change-log line

	ChangeLogPath   string
	SnapshotLogPath string
}

func DefaultConfig() Config {
	return Config{
		TickPeriod:      time.Duration(timex.PeriodFromHz(sampleHz)),
		ReadBackoff:     2 * time.Second,
		AverageHold:     3 * time.Second,
		SnapshotHold:    2 * time.Second,
		HistoryCap:      defaultHistoryCap,
		ChangeThreshold: 0.3,
		ChangeLogPath:   "sensor_log.txt",
		SnapshotLogPath: "snapshots.txt",
	}
}
