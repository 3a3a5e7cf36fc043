package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"agendo/internal/domain"
	"agendo/internal/schedule"
	"agendo/internal/service/booking"
)

type bookingService interface {
	Create(ctx context.Context, in booking.CreateInput) (domain.Appointment, error)
	Update(ctx context.Context, id int64, in booking.UpdateInput) (domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
	WeekAppointments(ctx context.Context, professionalID int64, reference time.Time) ([]domain.Appointment, error)
	StartTimes(ctx context.Context, professionalID int64, date string) ([]string, error)
	EndTimes(ctx context.Context, professionalID int64, date, startTime string) ([]string, error)
	Report(ctx context.Context, f schedule.ReportFilter) ([]domain.ReportRow, error)
}

// Pinger is what the readiness probe needs from the database.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func NewRouter(svc bookingService, db Pinger, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &handler{
		svc: svc,
		log: log.With(slog.String("component", "http.booking")),
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(log))

	r.Get("/health/live", livenessHandler)
	r.Get("/health/ready", readinessHandler(db))

	r.Post("/appointments", h.createAppointment)
	r.Patch("/appointments/{id}", h.updateAppointment)
	r.Post("/appointments/{id}/cancel", h.cancelAppointment)

	r.Get("/professionals/{id}/appointments", h.weekAppointments)
	r.Get("/professionals/{id}/start-times", h.startTimes)
	r.Get("/professionals/{id}/end-times", h.endTimes)

	r.Get("/calendar/week", h.calendarWeek)
	r.Get("/reports/appointments", h.report)

	return r
}
