package schedule

import "agendo/internal/domain"

const (
	gridStartMinutes   = 8 * 60
	gridEndMinutes     = 22 * 60
	gridCeilingMinutes = gridEndMinutes + slotMinutes
)

// DailyGrid returns the fixed grid of bookable start labels: 08:00 through
// 22:00 inclusive in 30-minute steps.
func DailyGrid() []string {
	out := make([]string, 0, (gridEndMinutes-gridStartMinutes)/slotMinutes+1)
	for m := gridStartMinutes; m <= gridEndMinutes; m += slotMinutes {
		out = append(out, minutesLabel(m))
	}
	return out
}

// AvailableStartTimes filters the daily grid to the labels whose implied
// 30-minute slot does not overlap any appointment on the date. An empty date
// returns the whole grid, matching the pre-selection state of a booking form.
func AvailableStartTimes(appts []domain.Appointment, professionalID int64, date string) []string {
	grid := DailyGrid()
	if date == "" {
		return grid
	}

	out := make([]string, 0, len(grid))
	for _, t := range grid {
		if !IsOccupied(appts, professionalID, date, t, "") {
			out = append(out, t)
		}
	}
	return out
}

// AvailableEndTimes returns the end labels a booking starting at startTime
// may use: every grid step strictly after startTime, up to the start of the
// nearest later appointment on the date, or to 22:30 when none exists. The
// ceiling runs one step past the last grid start label; 22:30 is a legal end
// even though it is not a bookable start. Empty date or startTime yields nil.
func AvailableEndTimes(appts []domain.Appointment, professionalID int64, date, startTime string) []string {
	if date == "" || startTime == "" {
		return nil
	}

	start := ToMinutes(startTime)

	limit := gridCeilingMinutes
	for _, a := range appts {
		if !concernsProfessionalOnDate(a, professionalID, date) {
			continue
		}
		if as := ToMinutes(a.StartTime); as > start && as < limit {
			limit = as
		}
	}

	var out []string
	for m := gridStartMinutes; m <= gridCeilingMinutes; m += slotMinutes {
		if m > start && m <= limit {
			out = append(out, minutesLabel(m))
		}
	}
	return out
}
