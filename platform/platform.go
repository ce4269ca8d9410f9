// Package platform wires the monitor's collaborators to real hardware.
// The core loop never touches buses or pins directly: Setup hands it a
// sensor, a displayer and two buttons, and everything behind them is
// selected by build tags (linux/Raspberry Pi via periph.io, rp2040/rp2350
// via machine + tinygo drivers).
package platform

import (
	"tinygo.org/x/drivers"

	"envmon-go/monitor"
)

// Devices are the hardware collaborators handed to the monitor.
type Devices struct {
	Sensor  monitor.Sensor
	Display drivers.Displayer
	ButtonA monitor.Button // show 15-minute average
	ButtonB monitor.Button // save snapshot
}
