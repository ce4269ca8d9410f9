//go:build rp2040 || rp2350

package platform

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"envmon-go/x/fmtx"
	"envmon-go/x/ring"
)

const consoleBaud = 115200

// setupConsole routes fmtx.Printf to UART0 through a drop-on-full ring.
// The monitor loop writes the per-tick readout line; it must never block
// behind a slow or disconnected serial console.
func setupConsole() {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	r := ring.New(1024)
	fmtx.DefaultOutput = &consoleWriter{r: r}
	go pump(r, u)
}

// consoleWriter is the producer side: copy what fits, drop the rest.
type consoleWriter struct {
	r *ring.Ring
}

func (w *consoleWriter) Write(p []byte) (int, error) {
	w.r.TryWriteFrom(p)
	return len(p), nil
}

// pump drains the ring to the UART, parked on the readable edge when idle.
func pump(r *ring.Ring, u *uartx.UART) {
	var buf [64]byte
	for {
		n := r.ReadInto(buf[:])
		if n == 0 {
			<-r.Readable()
			continue
		}
		_, _ = u.Write(buf[:n])
	}
}
