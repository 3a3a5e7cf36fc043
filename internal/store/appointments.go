package store

import (
	"context"

	"agendo/internal/domain"
)

// AppointmentUpdate carries the mutable appointment fields for an edit.
// Nil pointers leave the stored value untouched.
type AppointmentUpdate struct {
	ProfessionalID *int64
	ClientID       *int64
	Date           *string
	StartTime      *string
	EndTime        *string
	Title          *string
	Description    *string
	Color          *string
}

// AppointmentStore is the persistence collaborator. QueryAppointments serves
// the cache: non-cancelled appointments for the professional within the
// closed date interval, ordered by date then start time. CancelAppointment
// marks the record cancelled and keeps it for reporting; nothing is ever
// hard-deleted.
type AppointmentStore interface {
	QueryAppointments(ctx context.Context, professionalID int64, dateFrom, dateTo string) ([]domain.Appointment, error)
	QueryFullReport(ctx context.Context) ([]domain.ReportRow, error)

	InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, fields AppointmentUpdate) (domain.Appointment, error)
	CancelAppointment(ctx context.Context, id int64) error
}
