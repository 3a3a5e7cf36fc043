package schedule

import "time"

const isoDate = "2006-01-02"

// WeekWindow holds a reference date and derives the Sunday-to-Saturday week
// containing it. The window is never stored; it is always recomputed from
// the reference date, so Advance/Retreat/SetReference cannot leave a stale
// window behind.
type WeekWindow struct {
	ref time.Time
}

// NewWeekWindow anchors a window on the given reference date. The time of
// day is discarded; week arithmetic works on whole UTC dates.
func NewWeekWindow(ref time.Time) *WeekWindow {
	w := &WeekWindow{}
	w.SetReference(ref)
	return w
}

func (w *WeekWindow) Reference() time.Time {
	return w.ref
}

func (w *WeekWindow) SetReference(t time.Time) {
	w.ref = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Advance moves the window one week forward.
func (w *WeekWindow) Advance() {
	w.ref = w.ref.AddDate(0, 0, 7)
}

// Retreat moves the window one week back.
func (w *WeekWindow) Retreat() {
	w.ref = w.ref.AddDate(0, 0, -7)
}

// Days returns the seven consecutive dates of the window, first is the
// Sunday on or before the reference date.
func (w *WeekWindow) Days() [7]time.Time {
	start := w.ref.AddDate(0, 0, -int(w.ref.Weekday()))
	var days [7]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// Bounds returns the first and last window dates as ISO YYYY-MM-DD strings,
// the shape the appointment store and the cache key work with.
func (w *WeekWindow) Bounds() (string, string) {
	days := w.Days()
	return days[0].Format(isoDate), days[6].Format(isoDate)
}

// ParseISODate parses a YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(isoDate, s)
}
