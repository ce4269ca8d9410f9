//go:build linux && !(rp2040 || rp2350)

package platform

import (
	"image/color"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"envmon-go/errcode"
	"envmon-go/x/mathx"
)

// ST7789 over periph SPI. The tinygo st7789 driver wants machine pins, so
// the Pi gets this small framebuffer displayer instead: SetPixel writes an
// RGB565 framebuffer, Display streams it to the panel in one window write.
//
// The panel is a 240x240 slice of the controller's 240x320 RAM; with the
// 180-degree mounting the visible rows start at 80.
const (
	panelWidth  = 240
	panelHeight = 240
	panelRowOff = 80

	spiChunk = 4096 // spidev default transfer cap
)

// Controller opcodes.
const (
	st7789SWRESET = 0x01
	st7789SLPOUT  = 0x11
	st7789NORON   = 0x13
	st7789INVON   = 0x21
	st7789DISPON  = 0x29
	st7789CASET   = 0x2A
	st7789RASET   = 0x2B
	st7789RAMWR   = 0x2C
	st7789MADCTL  = 0x36
	st7789COLMOD  = 0x3A
)

type st7789 struct {
	conn    spi.Conn
	port    spi.PortCloser
	dc, rst gpio.PinIO

	fb []byte // RGB565 big-endian, 2 bytes per pixel
}

func openDisplay() (*st7789, error) {
	port, err := spireg.Open("")
	if err != nil {
		return nil, &errcode.E{C: errcode.DisplayInit, Op: "spi_open", Err: err}
	}
	conn, err := port.Connect(24*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, &errcode.E{C: errcode.DisplayInit, Op: "spi_connect", Err: err}
	}

	dc := gpioreg.ByName(pinDisplayDC)
	rst := gpioreg.ByName(pinDisplayRST)
	bl := gpioreg.ByName(pinBacklight)
	if dc == nil || rst == nil || bl == nil {
		return nil, &errcode.E{C: errcode.DisplayInit, Op: "gpio_lookup", Msg: "dc/rst/backlight"}
	}
	if err := bl.Out(gpio.High); err != nil {
		return nil, &errcode.E{C: errcode.DisplayInit, Op: "backlight", Err: err}
	}

	d := &st7789{
		conn: conn,
		port: port,
		dc:   dc,
		rst:  rst,
		fb:   make([]byte, panelWidth*panelHeight*2),
	}
	if err := d.init(); err != nil {
		return nil, &errcode.E{C: errcode.DisplayInit, Op: "panel_init", Err: err}
	}
	return d, nil
}

func (d *st7789) init() error {
	// Hardware reset pulse, then the minimal bring-up sequence.
	if err := d.rst.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(50 * time.Millisecond)
	_ = d.rst.Out(gpio.Low)
	time.Sleep(50 * time.Millisecond)
	_ = d.rst.Out(gpio.High)
	time.Sleep(150 * time.Millisecond)

	steps := []struct {
		cmd   byte
		data  []byte
		delay time.Duration
	}{
		{cmd: st7789SWRESET, delay: 150 * time.Millisecond},
		{cmd: st7789SLPOUT, delay: 120 * time.Millisecond},
		{cmd: st7789COLMOD, data: []byte{0x55}, delay: 10 * time.Millisecond}, // 16 bpp
		{cmd: st7789MADCTL, data: []byte{0xC0}},                              // 180-degree mounting
		{cmd: st7789INVON},
		{cmd: st7789NORON, delay: 10 * time.Millisecond},
		{cmd: st7789DISPON, delay: 120 * time.Millisecond},
	}
	for _, s := range steps {
		if err := d.command(s.cmd, s.data...); err != nil {
			return err
		}
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
	}
	return nil
}

func (d *st7789) command(cmd byte, data ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.conn.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.conn.Tx(data, nil)
}

func (d *st7789) Size() (int16, int16) { return panelWidth, panelHeight }

func (d *st7789) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= panelWidth || y >= panelHeight {
		return
	}
	v := rgbaTo565(c)
	i := (int(y)*panelWidth + int(x)) * 2
	d.fb[i] = byte(v >> 8)
	d.fb[i+1] = byte(v)
}

// FillScreen is the renderer's fast clear path.
func (d *st7789) FillScreen(c color.RGBA) {
	v := rgbaTo565(c)
	hi, lo := byte(v>>8), byte(v)
	for i := 0; i < len(d.fb); i += 2 {
		d.fb[i] = hi
		d.fb[i+1] = lo
	}
}

// Display flushes the framebuffer to the panel.
func (d *st7789) Display() error {
	if err := d.window(0, panelWidth-1, panelRowOff, panelRowOff+panelHeight-1); err != nil {
		return err
	}
	if err := d.command(st7789RAMWR); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	for i := 0; i < len(d.fb); i += spiChunk {
		end := mathx.Min(i+spiChunk, len(d.fb))
		if err := d.conn.Tx(d.fb[i:end], nil); err != nil {
			return err
		}
	}
	return nil
}

func (d *st7789) window(x0, x1, y0, y1 int) error {
	if err := d.command(st7789CASET,
		byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	return d.command(st7789RASET,
		byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
}

func rgbaTo565(c color.RGBA) uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B)>>3
}
