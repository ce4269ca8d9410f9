//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"

	"envmon-go/drivers/sht4x"
	"envmon-go/errcode"
	"envmon-go/monitor"
)

// Pico wiring: sensor on I2C0 (GP4/GP5), panel on SPI0, buttons on GP14/GP15
// to ground with the internal pull-ups.
const (
	pinSensorSDA = machine.GP4
	pinSensorSCL = machine.GP5

	pinPanelSCK = machine.GP18
	pinPanelSDO = machine.GP19
	pinPanelRST = machine.GP20
	pinPanelDC  = machine.GP16
	pinPanelCS  = machine.GP17
	pinPanelBL  = machine.GP21

	pinButtonA = machine.GP14
	pinButtonB = machine.GP15
)

// Setup brings up the console, the sensor bus, the panel and the buttons.
func Setup() (Devices, error) {
	setupConsole()

	if err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       pinSensorSDA,
		SCL:       pinSensorSCL,
		Frequency: 400_000,
	}); err != nil {
		return Devices{}, &errcode.E{C: errcode.SensorInit, Op: "i2c_configure", Err: err}
	}
	dev := sht4x.New(machine.I2C0)
	dev.Configure()
	if _, err := dev.SerialNumber(); err != nil {
		return Devices{}, &errcode.E{C: errcode.SensorInit, Op: "probe", Err: err}
	}

	if err := machine.SPI0.Configure(machine.SPIConfig{
		SCK:       pinPanelSCK,
		SDO:       pinPanelSDO,
		Frequency: 24_000_000,
	}); err != nil {
		return Devices{}, &errcode.E{C: errcode.DisplayInit, Op: "spi_configure", Err: err}
	}
	display := st7789.New(machine.SPI0, pinPanelRST, pinPanelDC, pinPanelCS, pinPanelBL)
	display.Configure(st7789.Config{
		Width:     240,
		Height:    240,
		RowOffset: 80,
		Rotation:  drivers.Rotation180,
	})

	return Devices{
		Sensor:  &sht4xSensor{dev: dev},
		Display: &display,
		ButtonA: newPinButton(pinButtonA),
		ButtonB: newPinButton(pinButtonB),
	}, nil
}

// pinButton reads a pulled-high momentary input; pressed pulls it low.
type pinButton struct {
	pin machine.Pin
}

func newPinButton(p machine.Pin) monitor.Button {
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &pinButton{pin: p}
}

func (b *pinButton) Pressed() bool { return !b.pin.Get() }
