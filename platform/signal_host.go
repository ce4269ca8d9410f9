//go:build !(rp2040 || rp2350)

package platform

import (
	"context"
	"os"
	"os/signal"
)

// SignalContext returns a context cancelled by an interrupt.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
