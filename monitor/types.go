// Package monitor implements the sense→render→log control loop: one sample
// per tick from the sensor, a live bar-graph view on the display, a
// 15-minute rolling average, and two append-only text logs (threshold
// changes and manual snapshots).
package monitor

import "context"

// Sample is one sensor reading. Temperature is stored in Celsius;
// conversion to Fahrenheit happens at display/log time.
type Sample struct {
	Celsius  float64
	Humidity float64
}

// TempF returns the sample's temperature in Fahrenheit.
func (s Sample) TempF() float64 { return CtoF(s.Celsius) }

// CtoF converts Celsius to Fahrenheit.
func CtoF(c float64) float64 { return c*9/5 + 32 }

// Sensor yields one reading per call. Errors are transient; the loop
// reports them and retries after a backoff.
type Sensor interface {
	Read(ctx context.Context) (Sample, error)
}

// Button is a momentary input. Pressed reports the logical (already
// polarity-corrected) state; adapters own the active-low inversion.
type Button interface {
	Pressed() bool
}
