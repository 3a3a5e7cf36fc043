package schedule

import (
	"testing"

	"agendo/internal/domain"
)

func TestDailyGrid(t *testing.T) {
	grid := DailyGrid()
	if len(grid) != 29 {
		t.Fatalf("grid length = %d, want 29", len(grid))
	}
	if grid[0] != "08:00" {
		t.Fatalf("grid[0] = %q, want 08:00", grid[0])
	}
	if grid[len(grid)-1] != "22:00" {
		t.Fatalf("last label = %q, want 22:00", grid[len(grid)-1])
	}
	for i := 1; i < len(grid); i++ {
		if ToMinutes(grid[i])-ToMinutes(grid[i-1]) != 30 {
			t.Fatalf("labels %q and %q are not 30 minutes apart", grid[i-1], grid[i])
		}
	}
}

func TestAvailableStartTimes(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "10:00", "10:30")}

	starts := AvailableStartTimes(appts, 5, "2024-06-10")
	if len(starts) != 28 {
		t.Fatalf("len(starts) = %d, want 28", len(starts))
	}
	for _, s := range starts {
		if s == "10:00" {
			t.Fatalf("10:00 is booked and must not be offered as a start")
		}
	}
	// The slot before a booking stays available: 09:30-10:00 only touches it.
	if !contains(starts, "09:30") {
		t.Fatalf("09:30 should be available")
	}
	if !contains(starts, "10:30") {
		t.Fatalf("10:30 should be available")
	}
}

func TestAvailableStartTimes_NoneOverlapBookings(t *testing.T) {
	appts := []domain.Appointment{
		appt(5, "2024-06-10", "09:00", "11:00"),
		appt(5, "2024-06-10", "14:00", "14:30"),
	}

	for _, s := range AvailableStartTimes(appts, 5, "2024-06-10") {
		if IsOccupied(appts, 5, "2024-06-10", s, "") {
			t.Fatalf("start %q overlaps a booking", s)
		}
	}
}

func TestAvailableStartTimes_EmptyDateReturnsFullGrid(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "10:00", "10:30")}

	starts := AvailableStartTimes(appts, 5, "")
	if len(starts) != len(DailyGrid()) {
		t.Fatalf("len(starts) = %d, want the full grid %d", len(starts), len(DailyGrid()))
	}
}

func TestAvailableEndTimes(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "12:00", "13:00")}

	ends := AvailableEndTimes(appts, 5, "2024-06-10", "10:00")
	if len(ends) == 0 {
		t.Fatalf("expected end times")
	}
	// Clamped to the 12:00 start of the next booking, strictly after 10:00.
	if ends[0] != "10:30" {
		t.Fatalf("first end = %q, want 10:30", ends[0])
	}
	if ends[len(ends)-1] != "12:00" {
		t.Fatalf("last end = %q, want the 12:00 clamp", ends[len(ends)-1])
	}
	for _, e := range ends {
		if ToMinutes(e) <= ToMinutes("10:00") {
			t.Fatalf("end %q is not after the start", e)
		}
		if ToMinutes(e) > ToMinutes("12:00") {
			t.Fatalf("end %q exceeds the clamp", e)
		}
	}
}

func TestAvailableEndTimes_NoLaterBookingRunsToCeiling(t *testing.T) {
	ends := AvailableEndTimes(nil, 5, "2024-06-10", "21:30")
	want := []string{"22:00", "22:30"}
	if len(ends) != len(want) {
		t.Fatalf("ends = %v, want %v", ends, want)
	}
	for i := range want {
		if ends[i] != want[i] {
			t.Fatalf("ends = %v, want %v", ends, want)
		}
	}
}

func TestAvailableEndTimes_EarlierBookingsDoNotClamp(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "08:00", "09:00")}

	ends := AvailableEndTimes(appts, 5, "2024-06-10", "21:00")
	if len(ends) != 3 {
		t.Fatalf("len(ends) = %d, want 3 (21:30, 22:00, 22:30)", len(ends))
	}
	if ends[len(ends)-1] != "22:30" {
		t.Fatalf("last end = %q, want 22:30", ends[len(ends)-1])
	}
}

func TestAvailableEndTimes_EmptyInputs(t *testing.T) {
	appts := []domain.Appointment{appt(5, "2024-06-10", "10:00", "10:30")}

	if got := AvailableEndTimes(appts, 5, "2024-06-10", ""); got != nil {
		t.Fatalf("empty start: got %v, want nil", got)
	}
	if got := AvailableEndTimes(appts, 5, "", "10:00"); got != nil {
		t.Fatalf("empty date: got %v, want nil", got)
	}
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
