//go:build rp2040 || rp2350

package fmtx

import (
	"io"

	"envmon-go/x/strconvx"
)

// DefaultOutput is used by Printf on MCU builds.
// Set this from the platform bootstrap (e.g. a UART console writer).
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// --- Public API (signatures match fmt for the verbs this firmware uses) ---

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a...)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) {
	return Fprintf(DefaultOutput, format, a...)
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return w.Write([]byte(Sprintf(format, a...)))
}

func Errorf(format string, a ...any) error {
	return &stringError{Sprintf(format, a...)}
}

type stringError struct{ s string }

func (e *stringError) Error() string { return e.s }

// --- Internals: tiny formatter subset ---
// Supports: %s %d %x %f %v %% with width for %s and precision for %f.
// The readout and log lines need nothing more; keep MCU cost low.

type builder struct{ buf []byte }

func (b *builder) byte(c byte)  { b.buf = append(b.buf, c) }
func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			b.byte(format[i])
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.byte('%')
			i += 2
			continue
		}
		i++
		width, prec, hasPrec := 0, 0, false
		i = parseNum(format, i, &width)
		if i < len(format) && format[i] == '.' {
			i++
			hasPrec = true
			i = parseNum(format, i, &prec)
		}
		if i >= len(format) || ai >= len(args) {
			return
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		switch verb {
		case 's':
			s, ok := arg.(string)
			if !ok {
				b.any(arg)
				continue
			}
			for pad := width - len(s); pad > 0; pad-- {
				b.byte(' ')
			}
			b.str(s)
		case 'd':
			b.str(strconvx.FormatInt(toI64(arg), 10))
		case 'x':
			b.str(strconvx.FormatUint(toU64(arg), 16))
		case 'f':
			if !hasPrec {
				prec = 6
			}
			b.str(strconvx.FormatFloat(toF64(arg), 'f', prec, 64))
		case 'v':
			b.any(arg)
		default:
			// Unknown verb: write it literally to aid debugging.
			b.byte('%')
			b.byte(verb)
		}
	}
}

func (b *builder) any(v any) {
	switch x := v.(type) {
	case string:
		b.str(x)
	case error:
		b.str(x.Error())
	case bool:
		if x {
			b.str("true")
		} else {
			b.str("false")
		}
	case float32, float64:
		b.str(strconvx.FormatFloat(toF64(x), 'f', 6, 64))
	case int, int8, int16, int32, int64:
		b.str(strconvx.FormatInt(toI64(x), 10))
	case uint, uint8, uint16, uint32, uint64:
		b.str(strconvx.FormatUint(toU64(x), 10))
	default:
		b.str("<unk>")
	}
}

func toI64(v any) int64 {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	default:
		return int64(toU64(v))
	}
}

func toU64(v any) uint64 {
	switch t := v.(type) {
	case uint:
		return uint64(t)
	case uint8:
		return uint64(t)
	case uint16:
		return uint64(t)
	case uint32:
		return uint64(t)
	case uint64:
		return t
	default:
		return 0
	}
}

func toF64(v any) float64 {
	switch t := v.(type) {
	case float32:
		return float64(t)
	case float64:
		return t
	default:
		return 0
	}
}

func parseNum(s string, i int, out *int) int {
	n := 0
	start := i
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i > start {
		*out = n
	}
	return i
}
