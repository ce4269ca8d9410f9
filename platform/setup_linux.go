//go:build linux && !(rp2040 || rp2350)

package platform

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"envmon-go/drivers/sht4x"
	"envmon-go/errcode"
	"envmon-go/monitor"
)

// Raspberry Pi wiring, matching the original head unit: buttons on GPIO5/6,
// display DC on GPIO25, reset on GPIO24, backlight on GPIO26.
const (
	pinButtonA    = "GPIO5"
	pinButtonB    = "GPIO6"
	pinDisplayDC  = "GPIO25"
	pinDisplayRST = "GPIO24"
	pinBacklight  = "GPIO26"
)

// Setup opens the Pi's I2C/SPI/GPIO resources and probes the sensor.
// A sensor probe failure is the caller's fatal-at-startup condition.
func Setup() (Devices, error) {
	if _, err := host.Init(); err != nil {
		return Devices{}, &errcode.E{C: errcode.SensorInit, Op: "host_init", Err: err}
	}

	bus, err := i2creg.Open("")
	if err != nil {
		return Devices{}, &errcode.E{C: errcode.SensorInit, Op: "i2c_open", Err: err}
	}
	dev := sht4x.New(&i2cBus{bus: bus})
	dev.Configure()
	if _, err := dev.SerialNumber(); err != nil {
		return Devices{}, &errcode.E{C: errcode.SensorInit, Op: "probe", Err: err}
	}

	display, err := openDisplay()
	if err != nil {
		return Devices{}, err
	}

	a, err := openButton(pinButtonA)
	if err != nil {
		return Devices{}, err
	}
	b, err := openButton(pinButtonB)
	if err != nil {
		return Devices{}, err
	}

	return Devices{
		Sensor:  &sht4xSensor{dev: dev},
		Display: display,
		ButtonA: a,
		ButtonB: b,
	}, nil
}

// i2cBus narrows periph's bus to the driver's Tx-only interface.
// The signatures line up exactly.
type i2cBus struct {
	bus i2c.BusCloser
}

func (b *i2cBus) Tx(addr uint16, w, r []byte) error { return b.bus.Tx(addr, w, r) }

// gpioButton reads a pulled-high momentary input; pressed pulls it low.
type gpioButton struct {
	pin    gpio.PinIO
	invert bool
}

func (b *gpioButton) Pressed() bool {
	level := b.pin.Read() == gpio.High
	if b.invert {
		return !level
	}
	return level
}

func openButton(name string) (monitor.Button, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, &errcode.E{C: errcode.ButtonInit, Op: "lookup", Msg: name}
	}
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, &errcode.E{C: errcode.ButtonInit, Op: "configure", Msg: name, Err: err}
	}
	return &gpioButton{pin: p, invert: true}, nil
}
