//go:build rp2040 || rp2350

package platform

import "context"

// SignalContext on the MCU has no process signals; the loop runs until reset.
func SignalContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}
