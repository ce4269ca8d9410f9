package monitor

import (
	"context"

	"tinygo.org/x/drivers"

	"envmon-go/x/fmtx"
	"envmon-go/x/mathx"
	"envmon-go/x/timex"
)

// Monitor owns all loop state: the collaborators, the rolling history, the
// last-logged pair and the animation frame. Everything is mutated from the
// single Run goroutine; overlays block it for their full hold.
type Monitor struct {
	cfg     Config
	sensor  Sensor
	render  *Renderer
	buttonA Button // show 15-minute average
	buttonB Button // save snapshot
	clock   timex.Clock
	log     *Logbook
	history *History

	frame int // running-indicator animation phase, +2 per tick

	// Last-logged reading. Survives across ticks and advances only when a
	// change-log line is actually written.
	lastTempF float64
	lastHum   float64
	logged    bool
}

func New(cfg Config, sensor Sensor, display drivers.Displayer, buttonA, buttonB Button, clock timex.Clock) *Monitor {
	return &Monitor{
		cfg:     cfg,
		sensor:  sensor,
		render:  NewRenderer(display),
		buttonA: buttonA,
		buttonB: buttonB,
		clock:   clock,
		log:     NewLogbook(cfg.ChangeLogPath, cfg.SnapshotLogPath),
		history: NewHistory(cfg.HistoryCap),
	}
}

// Run ticks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	fmtx.Printf("starting sensor monitoring\n")
	for {
		select {
		case <-ctx.Done():
			fmtx.Printf("exiting\n")
			return
		default:
		}
		m.Tick(ctx)
	}
}

// Tick runs one full cycle: sample, history, render, change log, buttons,
// sleep. A failed read aborts the cycle after the longer backoff; nothing
// else observes the failed tick.
func (m *Monitor) Tick(ctx context.Context) {
	s, err := m.sensor.Read(ctx)
	if err != nil {
		fmtx.Printf("sensor read failed: %v\n", err)
		m.clock.Sleep(m.cfg.ReadBackoff)
		return
	}
	tempF := s.TempF()
	fmtx.Printf("Temp: %.2fF, Humidity: %.2f%%\n", tempF, s.Humidity)

	m.history.Push(s)

	m.render.Live(tempF, s.Humidity, m.frame)
	m.frame += 2

	m.logChange(tempF, s.Humidity)

	// Both buttons are checked every tick; when both are down the average
	// overlay shows first, then the snapshot confirmation.
	if m.buttonA.Pressed() {
		m.showAverage()
	}
	if m.buttonB.Pressed() {
		m.saveSnapshot(tempF, s.Humidity)
	}

	m.clock.Sleep(m.cfg.TickPeriod)
}

// logChange appends to the change log when either field moved more than the
// threshold since the last logged reading (or when nothing was logged yet).
// On append failure the last-logged pair stays put, so the write is retried
// on the next qualifying tick.
func (m *Monitor) logChange(tempF, humidity float64) {
	if m.logged &&
		mathx.Abs(tempF-m.lastTempF) <= m.cfg.ChangeThreshold &&
		mathx.Abs(humidity-m.lastHum) <= m.cfg.ChangeThreshold {
		return
	}
	if err := m.log.AppendChange(m.clock.Now(), tempF, humidity); err != nil {
		fmtx.Printf("change log: %v\n", err)
		return
	}
	m.lastTempF, m.lastHum, m.logged = tempF, humidity, true
}

// showAverage renders the 15-minute average and holds it. An empty history
// is a complete no-op: no render, no hold.
func (m *Monitor) showAverage() {
	avg, ok := m.history.Average()
	if !ok {
		return
	}
	m.render.Average(CtoF(avg.Celsius), avg.Humidity)
	m.clock.Sleep(m.cfg.AverageHold)
}

// saveSnapshot appends the current reading to the snapshot log and confirms
// on screen. The confirmation is skipped when the append failed.
func (m *Monitor) saveSnapshot(tempF, humidity float64) {
	stamp := m.clock.Now().Format(snapshotStamp)
	if err := m.log.AppendSnapshot(stamp, tempF, humidity); err != nil {
		fmtx.Printf("snapshot log: %v\n", err)
		return
	}
	m.render.SnapshotSaved(stamp)
	m.clock.Sleep(m.cfg.SnapshotHold)
}
