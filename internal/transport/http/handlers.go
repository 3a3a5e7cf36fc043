package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"agendo/internal/schedule"
	"agendo/internal/service/booking"
	"agendo/internal/store"
)

type handler struct {
	svc bookingService
	log *slog.Logger
}

func (h *handler) createAppointment(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	appt, err := h.svc.Create(r.Context(), booking.CreateInput{
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Title:          req.Title,
		Description:    req.Description,
		Color:          req.Color,
	})
	if err != nil {
		h.writeServiceError(w, r, "create", err)
		return
	}

	h.log.Info("appointment created",
		slog.Int64("appointment_id", appt.ID),
		slog.String("date", appt.Date),
		slog.String("start_time", appt.StartTime),
		slog.String("end_time", appt.EndTime),
	)
	writeJSON(w, http.StatusCreated, toAppointmentResponse(appt))
}

func (h *handler) updateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	appt, err := h.svc.Update(r.Context(), id, booking.UpdateInput{
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Title:          req.Title,
		Description:    req.Description,
		Color:          req.Color,
	})
	if err != nil {
		h.writeServiceError(w, r, "update", err)
		return
	}

	h.log.Info("appointment updated", slog.Int64("appointment_id", appt.ID))
	writeJSON(w, http.StatusOK, toAppointmentResponse(appt))
}

func (h *handler) cancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "cancel", err)
		return
	}

	h.log.Info("appointment cancelled", slog.Int64("appointment_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) weekAppointments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ref, ok := dateParam(w, r, "date")
	if !ok {
		return
	}

	appts, err := h.svc.WeekAppointments(r.Context(), id, ref)
	if err != nil {
		h.writeServiceError(w, r, "week appointments", err)
		return
	}
	writeJSON(w, http.StatusOK, toAppointmentResponses(appts))
}

func (h *handler) startTimes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	times, err := h.svc.StartTimes(r.Context(), id, r.URL.Query().Get("date"))
	if err != nil {
		h.writeServiceError(w, r, "start times", err)
		return
	}
	writeJSON(w, http.StatusOK, slotsResponse{Times: times})
}

func (h *handler) endTimes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	times, err := h.svc.EndTimes(r.Context(), id, q.Get("date"), q.Get("start"))
	if err != nil {
		h.writeServiceError(w, r, "end times", err)
		return
	}
	writeJSON(w, http.StatusOK, slotsResponse{Times: times})
}

func (h *handler) calendarWeek(w http.ResponseWriter, r *http.Request) {
	ref, ok := dateParam(w, r, "date")
	if !ok {
		return
	}

	win := schedule.NewWeekWindow(ref)
	days := win.Days()
	out := weekResponse{Days: make([]string, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, d.Format("2006-01-02"))
	}
	out.Start, out.End = win.Bounds()
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f schedule.ReportFilter

	if v := q.Get("professional_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_professional_id", "professional_id must be an integer")
			return
		}
		f.ProfessionalID = &id
	}
	if v := q.Get("client_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_client_id", "client_id must be an integer")
			return
		}
		f.ClientID = &id
	}
	f.DateFrom = q.Get("from")
	f.DateTo = q.Get("to")

	rows, err := h.svc.Report(r.Context(), f)
	if err != nil {
		h.writeServiceError(w, r, "report", err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := h.log.With(slog.String("op", op), slog.String("request_id", requestID(r.Context())))

	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.Warn("invalid request", slog.Any("err", err))
		writeError(w, http.StatusBadRequest, "invalid_request", vErr.Error())
	case errors.Is(err, schedule.ErrTimeOccupied):
		log.Info("booking conflict", slog.Any("err", err))
		writeError(w, http.StatusConflict, "time_occupied", "This time slot is already booked. Pick another one.")
	case errors.Is(err, schedule.ErrEndNotAfterStart):
		log.Info("booking conflict", slog.Any("err", err))
		writeError(w, http.StatusConflict, "end_not_after_start", "End time must be after the start time.")
	case errors.Is(err, schedule.ErrWindowUnavailable):
		log.Warn("week window unavailable", slog.Any("err", err))
		writeError(w, http.StatusUnprocessableEntity, "window_unavailable", "The week window is not resolved yet; retry shortly.")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "appointment_not_found", "appointment not found")
	case errors.Is(err, store.ErrCancelled):
		writeError(w, http.StatusConflict, "appointment_cancelled", "appointment is already cancelled")
	default:
		log.Error("request failed", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func dateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Now().UTC(), true
	}
	d, err := schedule.ParseISODate(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", name+" must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return d, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, errorResponse{Error: code, Details: details})
}
