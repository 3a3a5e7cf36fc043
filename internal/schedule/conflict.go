package schedule

import (
	"errors"

	"agendo/internal/domain"
)

// Conflict verdicts. These are returned values describing a normal negative
// result, not exceptional conditions; transports map them to 409.
var (
	ErrTimeOccupied     = errors.New("time range is already booked")
	ErrEndNotAfterStart = errors.New("end time must be after start time")
)

// IsOccupied reports whether the candidate range overlaps a non-cancelled
// appointment for the professional on the given date. Ranges are half-open,
// so touching endpoints do not conflict: an appointment ending at 10:00 does
// not block one starting at 10:00. An empty endTime means a single 30-minute
// slot. Appointments missing either time are skipped, and professionalID 0
// (no professional selected) is never occupied.
func IsOccupied(appts []domain.Appointment, professionalID int64, date, startTime, endTime string) bool {
	if professionalID == 0 {
		return false
	}

	s := ToMinutes(startTime)
	e := s + slotMinutes
	if endTime != "" {
		e = ToMinutes(endTime)
	}

	for _, a := range appts {
		if !concernsProfessionalOnDate(a, professionalID, date) {
			continue
		}
		as := ToMinutes(a.StartTime)
		ae := ToMinutes(a.EndTime)
		if s < ae && e > as {
			return true
		}
	}
	return false
}

// Validate checks a proposed booking range. Occupancy is checked before the
// start/end ordering; the occupancy message takes priority when both would
// apply.
func Validate(appts []domain.Appointment, professionalID int64, date, startTime, endTime string) error {
	if IsOccupied(appts, professionalID, date, startTime, endTime) {
		return ErrTimeOccupied
	}
	if ToMinutes(endTime) <= ToMinutes(startTime) {
		return ErrEndNotAfterStart
	}
	return nil
}

func concernsProfessionalOnDate(a domain.Appointment, professionalID int64, date string) bool {
	if a.Cancelled {
		return false
	}
	if a.ProfessionalID == nil || *a.ProfessionalID != professionalID {
		return false
	}
	if a.Date != date {
		return false
	}
	return a.StartTime != "" && a.EndTime != ""
}
