package http

import (
	"time"

	"agendo/internal/domain"
)

type createAppointmentRequest struct {
	ProfessionalID int64  `json:"professional_id"`
	ClientID       *int64 `json:"client_id,omitempty"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Color          string `json:"color,omitempty"`
}

type updateAppointmentRequest struct {
	ProfessionalID int64   `json:"professional_id"`
	ClientID       *int64  `json:"client_id,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Color          *string `json:"color,omitempty"`
}

type appointmentResponse struct {
	ID             int64      `json:"id"`
	ProfessionalID *int64     `json:"professional_id,omitempty"`
	ClientID       *int64     `json:"client_id,omitempty"`
	Date           string     `json:"date"`
	StartTime      string     `json:"start_time,omitempty"`
	EndTime        string     `json:"end_time,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Color          string     `json:"color"`
	Cancelled      bool       `json:"cancelled"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
}

type slotsResponse struct {
	Times []string `json:"times"`
}

type weekResponse struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toAppointmentResponse(a domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:             a.ID,
		ProfessionalID: a.ProfessionalID,
		ClientID:       a.ClientID,
		Date:           a.Date,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
		Title:          a.Title,
		Description:    a.Description,
		Color:          a.Color,
		Cancelled:      a.Cancelled,
		CancelledAt:    a.CancelledAt,
	}
}

func toAppointmentResponses(appts []domain.Appointment) []appointmentResponse {
	out := make([]appointmentResponse, len(appts))
	for i, a := range appts {
		out[i] = toAppointmentResponse(a)
	}
	return out
}
