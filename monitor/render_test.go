package monitor

import (
	"image/color"
	"testing"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.Displayer = (*fakeDisplay)(nil)

// fakeDisplay records pixel writes. It deliberately has no FillScreen so the
// renderer's rectangle-clear fallback is exercised; out-of-bounds writes are
// dropped like on real panels.
type fakeDisplay struct {
	w, h    int16
	px      map[[2]int16]color.RGBA
	flushes int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{w: 240, h: 240, px: map[[2]int16]color.RGBA{}}
}

func (d *fakeDisplay) Size() (int16, int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.px[[2]int16{x, y}] = c
}

func (d *fakeDisplay) Display() error {
	d.flushes++
	return nil
}

// columnCount counts pixels of color c in column x with y < yMax.
func (d *fakeDisplay) columnCount(x int16, c color.RGBA, yMax int16) int {
	n := 0
	for y := int16(0); y < yMax; y++ {
		if d.px[[2]int16{x, y}] == c {
			n++
		}
	}
	return n
}

// rowCount counts pixels of color c in row y.
func (d *fakeDisplay) rowCount(y int16, c color.RGBA) int {
	n := 0
	for x := int16(0); x < d.w; x++ {
		if d.px[[2]int16{x, y}] == c {
			n++
		}
	}
	return n
}

func TestLiveBarHeights(t *testing.T) {
	d := newFakeDisplay()
	r := NewRenderer(d)

	// 61°F over a 122°F scale and 50% humidity both land at half of 150 px.
	r.Live(61.0, 50.0, 0)

	if got := d.columnCount(tempBarX+5, colorRed, barBaseY); got != 75 {
		t.Errorf("temperature bar height = %d px, want 75", got)
	}
	if got := d.columnCount(humBarX+5, colorBlue, barBaseY); got != 75 {
		t.Errorf("humidity bar height = %d px, want 75", got)
	}
	if d.flushes != 1 {
		t.Errorf("flushes = %d, want 1", d.flushes)
	}
}

func TestLiveBarScalesWithReading(t *testing.T) {
	d := newFakeDisplay()
	r := NewRenderer(d)

	r.Live(98.6, 30.0, 0)

	// int((98.6/122)*150) == 121, int((30/100)*150) == 45.
	if got := d.columnCount(tempBarX+5, colorRed, barBaseY); got != 121 {
		t.Errorf("temperature bar height = %d px, want 121", got)
	}
	if got := d.columnCount(humBarX+5, colorBlue, barBaseY); got != 45 {
		t.Errorf("humidity bar height = %d px, want 45", got)
	}
}

func TestRunningIndicatorWraps(t *testing.T) {
	row := int16(240 - indicatorMargin - 2) // inside the indicator band

	for _, c := range []struct {
		frame int
		want  int
	}{
		{0, 0},
		{48, 48},
		{50, 0}, // 50 mod 50 == 0: fill restarts
		{102, 2},
	} {
		d := newFakeDisplay()
		NewRenderer(d).Live(61.0, 50.0, c.frame)
		if got := d.rowCount(row, colorGreen); got != c.want {
			t.Errorf("frame %d: indicator fill = %d px, want %d", c.frame, got, c.want)
		}
	}
}

func TestLiveClearsPreviousFrame(t *testing.T) {
	d := newFakeDisplay()
	r := NewRenderer(d)

	r.Live(90.0, 80.0, 0)
	tall := d.columnCount(humBarX+5, colorBlue, barBaseY)
	r.Live(90.0, 10.0, 2)
	short := d.columnCount(humBarX+5, colorBlue, barBaseY)

	if tall != 120 || short != 15 {
		t.Fatalf("bar heights across frames = %d then %d, want 120 then 15", tall, short)
	}
}

func TestOverlaysFlushOnce(t *testing.T) {
	d := newFakeDisplay()
	r := NewRenderer(d)

	r.Average(69.8, 51.0)
	if d.flushes != 1 {
		t.Fatalf("average overlay flushes = %d, want 1", d.flushes)
	}

	r.SnapshotSaved("2026-08-23 10:00:00")
	if d.flushes != 2 {
		t.Fatalf("snapshot overlay flushes = %d, want 2", d.flushes)
	}
}

func TestOutOfScaleBarDoesNotPanic(t *testing.T) {
	d := newFakeDisplay()
	r := NewRenderer(d)

	// Past full scale and below zero: geometry clips, nothing crashes.
	r.Live(250.0, -5.0, 4)
	if d.flushes != 1 {
		t.Fatal("render did not complete")
	}
}
