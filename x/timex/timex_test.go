package timex

import (
	"testing"
	"time"
)

func TestPeriodFromHz(t *testing.T) {
	cases := []struct {
		hz   uint32
		want uint64
	}{
		{0, 1_000_000_000}, // coerced to 1 Hz
		{1, 1_000_000_000},
		{10, 100_000_000},
		{1000, 1_000_000},
	}
	for _, c := range cases {
		if got := PeriodFromHz(c.hz); got != c.want {
			t.Errorf("PeriodFromHz(%d) = %d, want %d", c.hz, got, c.want)
		}
	}
}

func TestRealClockMonotonicEnough(t *testing.T) {
	var c Clock = Real{}
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Fatalf("Real.Now went backwards: %v then %v", a, b)
	}
	if time.Duration(PeriodFromHz(1)) != time.Second {
		t.Fatal("1 Hz period should be one second")
	}
}
