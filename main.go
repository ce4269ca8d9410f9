// Command envmon runs the environment monitor head unit: it samples a
// SHT4x temperature/humidity sensor once a second, renders a live bar
// graph, appends change and snapshot log lines and services the two
// front-panel buttons.
package main

import (
	"os"

	"envmon-go/monitor"
	"envmon-go/platform"
	"envmon-go/x/fmtx"
	"envmon-go/x/timex"
)

func main() {
	dev, err := platform.Setup()
	if err != nil {
		fmtx.Printf("setup failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := platform.SignalContext()
	defer cancel()

	m := monitor.New(monitor.DefaultConfig(), dev.Sensor, dev.Display, dev.ButtonA, dev.ButtonB, timex.Real{})
	m.Run(ctx)
}
