package postgres

import (
	"testing"

	"agendo/internal/domain"
	"agendo/internal/store"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func TestApplyUpdate_NilFieldsLeaveValues(t *testing.T) {
	pid := int64(5)
	appt := domain.Appointment{
		ID:             1,
		ProfessionalID: &pid,
		Date:           "2024-06-10",
		StartTime:      "10:00",
		EndTime:        "10:30",
		Title:          "checkup",
		Color:          domain.DefaultColor,
	}

	applyUpdate(&appt, store.AppointmentUpdate{})

	if appt.Title != "checkup" || appt.Date != "2024-06-10" || appt.StartTime != "10:00" {
		t.Fatalf("empty update changed the appointment: %+v", appt)
	}
	if appt.ProfessionalID == nil || *appt.ProfessionalID != 5 {
		t.Fatalf("empty update changed professional: %+v", appt.ProfessionalID)
	}
}

func TestApplyUpdate_SetsSuppliedFields(t *testing.T) {
	appt := domain.Appointment{
		ID:        1,
		Date:      "2024-06-10",
		StartTime: "10:00",
		EndTime:   "10:30",
		Title:     "checkup",
		Color:     domain.DefaultColor,
	}

	applyUpdate(&appt, store.AppointmentUpdate{
		Title:       strPtr("follow-up"),
		Description: strPtr("bring previous results"),
		Color:       strPtr("#FFE4E6"),
		StartTime:   strPtr("11:00"),
		EndTime:     strPtr("12:00"),
		ClientID:    int64Ptr(9),
	})

	if appt.Title != "follow-up" {
		t.Fatalf("title = %q, want follow-up", appt.Title)
	}
	if appt.Description != "bring previous results" {
		t.Fatalf("description = %q", appt.Description)
	}
	if appt.Color != "#FFE4E6" {
		t.Fatalf("color = %q", appt.Color)
	}
	if appt.StartTime != "11:00" || appt.EndTime != "12:00" {
		t.Fatalf("times = %s-%s, want 11:00-12:00", appt.StartTime, appt.EndTime)
	}
	if appt.ClientID == nil || *appt.ClientID != 9 {
		t.Fatalf("client = %+v, want 9", appt.ClientID)
	}
	if appt.Date != "2024-06-10" {
		t.Fatalf("date changed unexpectedly: %s", appt.Date)
	}
}

func TestApplyUpdate_CanClearTimes(t *testing.T) {
	appt := domain.Appointment{
		ID:        1,
		StartTime: "10:00",
		EndTime:   "10:30",
	}

	applyUpdate(&appt, store.AppointmentUpdate{
		StartTime: strPtr(""),
		EndTime:   strPtr(""),
	})

	if appt.StartTime != "" || appt.EndTime != "" {
		t.Fatalf("times = %q-%q, want both cleared", appt.StartTime, appt.EndTime)
	}
}
