package monitor

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"

	"envmon-go/x/fmtx"
)

// Canvas geometry for the 240x240 panel. Bar heights are proportional, not
// clamped: readings past full scale run the rectangles off the canvas and
// the displayer clips them.
const (
	labelX     = 20
	tempLabelY = 20
	humLabelY  = 50

	tempBarX       = 180
	humBarX        = 220
	barWidth       = 30
	barBaseY       = 200
	barSpanPx      = 150
	tempFullScaleF = 122.0

	indicatorSpan   = 50 // px; the fill wraps at frame mod indicatorSpan
	indicatorMargin = 10
	indicatorH      = 6

	// tinyfont draws from the baseline; the original layout positions the
	// top of each line.
	baselineOff = 18
)

var labelFont = &freesans.Bold12pt7b

var (
	colorBlack  = color.RGBA{A: 255}
	colorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorRed    = color.RGBA{R: 255, A: 255}
	colorBlue   = color.RGBA{B: 255, A: 255}
	colorGreen  = color.RGBA{G: 255, A: 255}
	colorYellow = color.RGBA{R: 255, G: 255, A: 255}
)

// filler is the optional fast-clear surface some displayers provide.
type filler interface {
	FillScreen(c color.RGBA)
}

// Renderer draws the monitor's three views on a raster displayer.
type Renderer struct {
	d drivers.Displayer
}

func NewRenderer(d drivers.Displayer) *Renderer {
	return &Renderer{d: d}
}

func (r *Renderer) clear() {
	if f, ok := r.d.(filler); ok {
		f.FillScreen(colorBlack)
		return
	}
	w, h := r.d.Size()
	_ = tinydraw.FilledRectangle(r.d, 0, 0, w, h, colorBlack)
}

// Live draws the default view: readings as text, proportional bars for
// temperature (°F over a 122 °F full scale) and humidity, and the running
// indicator in the bottom-right corner.
func (r *Renderer) Live(tempF, humidity float64, frame int) {
	r.clear()

	tinyfont.WriteLine(r.d, labelFont, labelX, tempLabelY+baselineOff,
		fmtx.Sprintf("Temp: %.1fF", tempF), colorWhite)
	tinyfont.WriteLine(r.d, labelFont, labelX, humLabelY+baselineOff,
		fmtx.Sprintf("Humidity: %.1f%%", humidity), colorWhite)

	tempH := int16((tempF / tempFullScaleF) * barSpanPx)
	_ = tinydraw.FilledRectangle(r.d, tempBarX, barBaseY-tempH, barWidth, tempH, colorRed)

	humH := int16((humidity / 100.0) * barSpanPx)
	_ = tinydraw.FilledRectangle(r.d, humBarX, barBaseY-humH, barWidth, humH, colorBlue)

	r.runningIndicator(frame)

	_ = r.d.Display()
}

// runningIndicator is a looping "alive" animation, not a progress metric:
// the fill restarts every time frame mod indicatorSpan wraps.
func (r *Renderer) runningIndicator(frame int) {
	w, h := r.d.Size()
	x := w - indicatorSpan - indicatorMargin
	y := h - indicatorMargin
	progress := int16(frame % indicatorSpan)
	if progress == 0 {
		return
	}
	_ = tinydraw.FilledRectangle(r.d, x, y-indicatorH+1, progress, indicatorH, colorGreen)
}

// Average draws the 15-minute-average overlay.
func (r *Renderer) Average(tempF, humidity float64) {
	r.clear()
	tinyfont.WriteLine(r.d, labelFont, 40, 50+baselineOff, "15 Min Avg:", colorYellow)
	tinyfont.WriteLine(r.d, labelFont, 40, 100+baselineOff,
		fmtx.Sprintf("Temp: %.1fF", tempF), colorWhite)
	tinyfont.WriteLine(r.d, labelFont, 40, 150+baselineOff,
		fmtx.Sprintf("Humidity: %.1f%%", humidity), colorWhite)
	_ = r.d.Display()
}

// SnapshotSaved draws the snapshot confirmation overlay.
func (r *Renderer) SnapshotSaved(stamp string) {
	r.clear()
	tinyfont.WriteLine(r.d, labelFont, 30, 80+baselineOff, "Snapshot Saved!", colorYellow)
	tinyfont.WriteLine(r.d, labelFont, 30, 120+baselineOff, stamp, colorWhite)
	_ = r.d.Display()
}
