package monitor

import (
	"os"
	"time"

	"envmon-go/errcode"
	"envmon-go/x/fmtx"
)

// Timestamp layouts. The change log keeps microseconds; the snapshot log is
// the human-readable second-resolution form shown on the display.
const (
	changeStamp   = "2006-01-02 15:04:05.000000"
	snapshotStamp = "2006-01-02 15:04:05"
)

// Logbook appends readings to the change and snapshot logs. Files are
// opened, appended and closed per write; there is exactly one writer and no
// concurrent readers are assumed.
type Logbook struct {
	changePath   string
	snapshotPath string
}

func NewLogbook(changePath, snapshotPath string) *Logbook {
	return &Logbook{changePath: changePath, snapshotPath: snapshotPath}
}

// AppendChange records a threshold-triggered reading.
func (l *Logbook) AppendChange(now time.Time, tempF, humidity float64) error {
	line := fmtx.Sprintf("%s - Temp: %.2f°F, Humidity: %.2f%%\n",
		now.Format(changeStamp), tempF, humidity)
	return appendLine(l.changePath, line)
}

// AppendSnapshot records a manual snapshot. stamp is the already-formatted
// timestamp so the log line and the confirmation overlay show the same one.
func (l *Logbook) AppendSnapshot(stamp string, tempF, humidity float64) error {
	line := fmtx.Sprintf("%s - Temp: %.2f°F, Humidity: %.2f%%\n",
		stamp, tempF, humidity)
	return appendLine(l.snapshotPath, line)
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &errcode.E{C: errcode.LogAppend, Op: "open", Msg: path, Err: err}
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return &errcode.E{C: errcode.LogAppend, Op: "write", Msg: path, Err: err}
	}
	return nil
}
