// Package sht4x provides a driver for the SHT4x temperature/humidity sensor
// family. It exposes a two-phase measurement API:
//
//	d.Trigger()              // start a conversion (fast)
//	err := d.Collect(&s)     // fetch when ready; returns ErrNotReady while busy
//
// For convenience, d.Read() performs trigger + bounded polling until ready.
//
// The SHT4x has no status register: while a conversion is in flight the
// device NACKs reads, which this driver reports as ErrNotReady.
//
// The driver avoids floating-point on the hot path; fixed-point helpers
// return tenths of units (deci-°C and deci-%RH).
package sht4x

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"

	"envmon-go/x/mathx"
)

// I2C address.
const Address = 0x44

// Commands (per datasheet).
const (
	cmdMeasureHigh   = 0xFD
	cmdMeasureMedium = 0xF6
	cmdMeasureLow    = 0xE0
	cmdSerialNumber  = 0x89
	cmdSoftReset     = 0x94
)

// Errors returned by the driver.
var (
	ErrTimeout  = errors.New("sht4x: timeout")
	ErrNotReady = errors.New("sht4x: not ready")
	ErrCRC      = errors.New("sht4x: bad crc")
)

// Precision selects the measurement command. Higher precision costs more
// conversion time (~8.3 ms at high, ~4.5 ms medium, ~1.6 ms low).
type Precision uint8

const (
	PrecisionHigh Precision = iota
	PrecisionMedium
	PrecisionLow
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x44 if zero.
	Address uint16
	// Precision defaults to PrecisionHigh (the no-heater commands only).
	Precision Precision
	// PollInterval is used by Read() between Collect() attempts. Default 2 ms.
	PollInterval time.Duration
	// CollectTimeout bounds the total wait in Read(). Default 100 ms.
	CollectTimeout time.Duration
	// TriggerHint is the nominal conversion time; no sleep is performed in
	// Trigger. Default 10 ms. Exposed for callers scheduling Collect
	// themselves.
	TriggerHint time.Duration
}

// Device wraps an I2C connection to an SHT4x device.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg     Config
	buf     [6]byte // reuse buffer to avoid allocations
	rawTemp uint16  // last raw temperature word
	rawHum  uint16  // last raw humidity word
}

// New creates a new SHT4x connection. The I2C bus must already be configured.
// This function only creates the Device object; it does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Configure applies optional config. It may be called with no cfg.
func (d *Device) Configure(cfgs ...Config) {
	c := Config{}
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address != 0 {
		d.Address = c.Address
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 2 * time.Millisecond
	}
	if c.CollectTimeout <= 0 {
		c.CollectTimeout = 100 * time.Millisecond
	}
	if c.TriggerHint <= 0 {
		c.TriggerHint = 10 * time.Millisecond
	}
	d.cfg = c
}

// Reset issues a soft reset. Give the device ~1 ms afterwards before using.
func (d *Device) Reset() {
	_ = d.bus.Tx(d.Address, []byte{cmdSoftReset}, nil)
}

// Trigger starts a measurement. It is a single command write with no blocking.
// After Trigger, the device needs time to convert; see d.TriggerHint().
func (d *Device) Trigger() error {
	if d.cfg.PollInterval == 0 {
		d.Configure()
	}
	return d.bus.Tx(d.Address, []byte{d.measureCmd()}, nil)
}

func (d *Device) measureCmd() byte {
	switch d.cfg.Precision {
	case PrecisionMedium:
		return cmdMeasureMedium
	case PrecisionLow:
		return cmdMeasureLow
	default:
		return cmdMeasureHigh
	}
}

// TriggerHint returns the nominal conversion time to wait before Collect.
func (d *Device) TriggerHint() time.Duration {
	if d.cfg.TriggerHint > 0 {
		return d.cfg.TriggerHint
	}
	return 10 * time.Millisecond
}

// Collect attempts to read one measurement into the device cache and the
// provided sample. A NACK while the conversion is still running is reported
// as ErrNotReady; a corrupt frame as ErrCRC.
func (d *Device) Collect(out *Sample) error {
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, nil, data); err != nil {
		return ErrNotReady
	}
	if crc8(data[0:2]) != data[2] || crc8(data[3:5]) != data[5] {
		return ErrCRC
	}
	traw := uint16(data[0])<<8 | uint16(data[1])
	hraw := uint16(data[3])<<8 | uint16(data[4])

	d.rawTemp = traw
	d.rawHum = hraw

	if out != nil {
		out.RawTemp = traw
		out.RawHumidity = hraw
	}
	return nil
}

// Read performs a full measurement cycle: Trigger followed by bounded
// polling until Collect succeeds or the timeout elapses.
func (d *Device) Read() error {
	if err := d.Trigger(); err != nil {
		return err
	}
	time.Sleep(d.TriggerHint())
	deadline := time.Now().Add(d.cfg.CollectTimeout)
	for {
		var s Sample
		err := d.Collect(&s)
		switch err {
		case nil:
			return nil
		case ErrNotReady:
			if time.Now().After(deadline) {
				return ErrTimeout
			}
			time.Sleep(d.cfg.PollInterval)
			continue
		default:
			return err
		}
	}
}

// SerialNumber reads the chip's unique serial. Useful as a startup probe:
// it fails cleanly when no SHT4x answers on the bus.
func (d *Device) SerialNumber() (uint32, error) {
	if d.cfg.PollInterval == 0 {
		d.Configure()
	}
	if err := d.bus.Tx(d.Address, []byte{cmdSerialNumber}, nil); err != nil {
		return 0, err
	}
	time.Sleep(time.Millisecond)
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, nil, data); err != nil {
		return 0, err
	}
	if crc8(data[0:2]) != data[2] || crc8(data[3:5]) != data[5] {
		return 0, ErrCRC
	}
	return uint32(data[0])<<24 | uint32(data[1])<<16 |
		uint32(data[3])<<8 | uint32(data[4]), nil
}

// Sample holds raw readings.
type Sample struct {
	RawTemp     uint16
	RawHumidity uint16
}

// Fixed-point conversion helpers operating on Sample.
// T[°C] = -45 + 175·raw/65535, RH[%] = -6 + 125·raw/65535 (RH clamped to
// the physical 0..100 range per datasheet guidance).

func (s Sample) DeciCelsius() int32 {
	return int32(uint32(s.RawTemp)*1750/65535) - 450
}

func (s Sample) DeciRelHumidity() int32 {
	rh := int32(uint32(s.RawHumidity)*1250/65535) - 60
	return mathx.Clamp(rh, 0, 1000)
}

// Accessors operating on the last cached sample.

func (d *Device) RawTemp() uint16     { return d.rawTemp }
func (d *Device) RawHumidity() uint16 { return d.rawHum }

// DeciCelsius returns tenths of °C for the last cached sample.
func (d *Device) DeciCelsius() int32 {
	return Sample{RawTemp: d.rawTemp}.DeciCelsius()
}

// DeciRelHumidity returns tenths of %RH for the last cached sample.
func (d *Device) DeciRelHumidity() int32 {
	return Sample{RawHumidity: d.rawHum}.DeciRelHumidity()
}

// Celsius returns °C (float). Prefer DeciCelsius for fixed-point.
func (d *Device) Celsius() float32 {
	return float32(d.rawTemp)*175.0/65535 - 45
}

// RelHumidity returns %RH (float). Prefer DeciRelHumidity for fixed-point.
func (d *Device) RelHumidity() float32 {
	rh := float32(d.rawHum)*125.0/65535 - 6
	return mathx.Clamp(rh, 0, 100)
}

// crc8 is the SHT4x frame checksum: polynomial 0x31, init 0xFF.
func crc8(data []byte) byte {
	crc := byte(0xFF)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
