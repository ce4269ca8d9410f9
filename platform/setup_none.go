//go:build !linux && !(rp2040 || rp2350)

package platform

import "envmon-go/errcode"

// Setup has no hardware to open on this platform. Tests construct the
// monitor with fakes instead of going through Setup.
func Setup() (Devices, error) {
	return Devices{}, &errcode.E{C: errcode.Unsupported, Op: "setup", Msg: "no hardware backend for this platform"}
}
