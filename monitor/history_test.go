package monitor

import (
	"math"
	"testing"
)

func TestHistoryHoldsMostRecentInOrder(t *testing.T) {
	const capacity = 900
	h := NewHistory(capacity)

	for total := 1; total <= 1000; total++ {
		h.Push(Sample{Celsius: float64(total)})

		wantLen := total
		if wantLen > capacity {
			wantLen = capacity
		}
		if h.Len() != wantLen {
			t.Fatalf("after %d pushes: Len = %d, want %d", total, h.Len(), wantLen)
		}
	}

	got := h.Samples()
	if len(got) != capacity {
		t.Fatalf("Samples len = %d, want %d", len(got), capacity)
	}
	// 1000 pushes into 900 slots: oldest surviving sample is #101.
	for i, s := range got {
		if want := float64(101 + i); s.Celsius != want {
			t.Fatalf("Samples[%d].Celsius = %v, want %v", i, s.Celsius, want)
		}
	}
}

func TestHistoryAverage(t *testing.T) {
	h := NewHistory(900)
	h.Push(Sample{Celsius: 20, Humidity: 50})
	h.Push(Sample{Celsius: 22, Humidity: 52})

	avg, ok := h.Average()
	if !ok {
		t.Fatal("Average on non-empty history")
	}
	if math.Abs(avg.Celsius-21) > 1e-9 {
		t.Errorf("avg Celsius = %v, want 21", avg.Celsius)
	}
	if math.Abs(CtoF(avg.Celsius)-69.8) > 1e-9 {
		t.Errorf("avg Fahrenheit = %v, want 69.8", CtoF(avg.Celsius))
	}
	if math.Abs(avg.Humidity-51) > 1e-9 {
		t.Errorf("avg Humidity = %v, want 51", avg.Humidity)
	}
}

func TestHistoryAverageEmpty(t *testing.T) {
	h := NewHistory(900)
	if _, ok := h.Average(); ok {
		t.Fatal("Average on empty history should report ok=false")
	}
}

func TestHistoryAverageConvertsAfterAveraging(t *testing.T) {
	// Averaging in Celsius then converting differs from averaging converted
	// values only by float noise, but the buffer must hold Celsius.
	h := NewHistory(4)
	h.Push(Sample{Celsius: 0})
	h.Push(Sample{Celsius: 100})
	avg, _ := h.Average()
	if avg.Celsius != 50 {
		t.Fatalf("avg Celsius = %v, want 50", avg.Celsius)
	}
	if got := CtoF(avg.Celsius); got != 122 {
		t.Fatalf("converted avg = %v, want 122", got)
	}
}
