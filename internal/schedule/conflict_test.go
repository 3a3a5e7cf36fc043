package schedule

import (
	"errors"
	"testing"
	"time"

	"agendo/internal/domain"
)

func appt(professionalID int64, date, start, end string) domain.Appointment {
	pid := professionalID
	return domain.Appointment{
		ProfessionalID: &pid,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Title:          "booked",
	}
}

func TestIsOccupied_Overlap(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "10:00", "10:30")}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"before, touching start", "09:30", "10:00", false},
		{"straddles start", "09:45", "10:15", true},
		{"exact match", "10:00", "10:30", true},
		{"inside", "10:00", "10:15", true},
		{"straddles end", "10:15", "10:45", true},
		{"after, touching end", "10:30", "11:00", false},
		{"clear before", "08:00", "09:00", false},
		{"clear after", "11:00", "12:00", false},
		{"covers entirely", "09:00", "11:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOccupied(appts, 5, "2024-06-10", tt.start, tt.end); got != tt.want {
				t.Fatalf("IsOccupied(%s-%s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestIsOccupied_DefaultsEndToOneSlot(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "10:00", "10:30")}

	if IsOccupied(appts, 5, "2024-06-10", "09:30", "") {
		t.Fatalf("09:30 with implied 30-minute end should not conflict")
	}
	if !IsOccupied(appts, 5, "2024-06-10", "09:45", "") {
		t.Fatalf("09:45 with implied end 10:15 should conflict")
	}
}

func TestIsOccupied_ScopesToProfessionalAndDate(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "10:00", "10:30")}

	if IsOccupied(appts, 6, "2024-06-10", "10:00", "10:30") {
		t.Fatalf("other professional should not conflict")
	}
	if IsOccupied(appts, 5, "2024-06-11", "10:00", "10:30") {
		t.Fatalf("other date should not conflict")
	}
	if IsOccupied(appts, 0, "2024-06-10", "10:00", "10:30") {
		t.Fatalf("no professional selected should never be occupied")
	}
}

func TestIsOccupied_SkipsCancelledAndIncomplete(t *testing.T) {
	now := time.Now()
	cancelled := appt(5, "2024-06-10", "10:00", "10:30")
	cancelled.Cancelled = true
	cancelled.CancelledAt = &now

	noEnd := appt(5, "2024-06-10", "10:00", "")
	unassigned := appt(5, "2024-06-10", "10:00", "10:30")
	unassigned.ProfessionalID = nil

	appts := []domain.Appointment{cancelled, noEnd, unassigned}
	if IsOccupied(appts, 5, "2024-06-10", "10:00", "10:30") {
		t.Fatalf("cancelled and incomplete appointments must not block the slot")
	}
}

func TestValidate(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "10:00", "10:30")}

	if err := Validate(appts, 5, "2024-06-10", "11:00", "11:30"); err != nil {
		t.Fatalf("free slot: err = %v, want nil", err)
	}

	err := Validate(appts, 5, "2024-06-10", "10:00", "10:30")
	if !errors.Is(err, ErrTimeOccupied) {
		t.Fatalf("occupied slot: err = %v, want ErrTimeOccupied", err)
	}

	err = Validate(appts, 5, "2024-06-10", "11:30", "11:00")
	if !errors.Is(err, ErrEndNotAfterStart) {
		t.Fatalf("inverted range: err = %v, want ErrEndNotAfterStart", err)
	}

	err = Validate(appts, 5, "2024-06-10", "12:00", "12:00")
	if !errors.Is(err, ErrEndNotAfterStart) {
		t.Fatalf("zero-length range: err = %v, want ErrEndNotAfterStart", err)
	}

	// An inverted range that also overlaps reports occupancy first; the
	// check order is part of the contract.
	err = Validate(appts, 5, "2024-06-10", "10:15", "10:05")
	if !errors.Is(err, ErrTimeOccupied) {
		t.Fatalf("inverted occupied range: err = %v, want ErrTimeOccupied", err)
	}
}
