//go:build linux || rp2040 || rp2350

package platform

import (
	"context"

	"envmon-go/drivers/sht4x"
	"envmon-go/monitor"
)

// sht4xSensor adapts the fixed-point driver to the monitor's float samples.
type sht4xSensor struct {
	dev sht4x.Device
}

func (s *sht4xSensor) Read(_ context.Context) (monitor.Sample, error) {
	if err := s.dev.Read(); err != nil {
		return monitor.Sample{}, err
	}
	return monitor.Sample{
		Celsius:  float64(s.dev.DeciCelsius()) / 10,
		Humidity: float64(s.dev.DeciRelHumidity()) / 10,
	}, nil
}
