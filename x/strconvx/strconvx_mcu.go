//go:build rp2040 || rp2350

package strconvx

// Minimal, allocation-aware formatters with strconv-compatible signatures.
// Only the formatting half is provided; nothing in this firmware parses
// numbers. FormatFloat is decimal-only and not IEEE-perfect.

func Itoa(i int) string { return FormatInt(int64(i), 10) }

func FormatInt(i int64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	neg := i < 0
	var u uint64
	if neg {
		u = uint64(-i)
	} else {
		u = uint64(i)
	}
	s := formatUint(u, base)
	if neg {
		return "-" + s
	}
	return s
}

func FormatUint(u uint64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return formatUint(u, base)
}

func formatUint(u uint64, base int) string {
	if u == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for u > 0 {
		i--
		buf[i] = digits[u%b]
		u /= b
	}
	return string(buf[i:])
}

// FormatFloat supports the 'f' form with a fixed precision, which is all the
// display and log formatting needs.
func FormatFloat(f float64, _ byte, prec, _ int) string {
	if prec < 0 {
		prec = 6
	}
	neg := false
	if f < 0 {
		neg = true
		f = -f
	}
	intp := uint64(f)
	frac := f - float64(intp)

	// Round the fractional part at the requested precision and carry into
	// the integer part when it overflows (e.g. 0.999 at prec 2 -> 1.00).
	pow := 1.0
	for i := 0; i < prec; i++ {
		pow *= 10
	}
	fracN := uint64(frac*pow + 0.5)
	if prec > 0 && fracN >= uint64(pow) {
		fracN -= uint64(pow)
		intp++
	}

	ints := FormatUint(intp, 10)
	if prec == 0 {
		if neg {
			return "-" + ints
		}
		return ints
	}
	fs := FormatUint(fracN, 10)
	if len(fs) < prec {
		z := make([]byte, prec-len(fs))
		for i := range z {
			z[i] = '0'
		}
		fs = string(z) + fs
	}
	out := ints + "." + fs
	if neg {
		return "-" + out
	}
	return out
}
