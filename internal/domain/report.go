package domain

import "time"

// ReportRow is the denormalized appointment record used by report views:
// the appointment joined with client, professional and specialty names.
// Cancelled appointments are included; reports show full history.
type ReportRow struct {
	ID               int64      `json:"id"`
	Date             string     `json:"date"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Color            string     `json:"color"`
	Cancelled        bool       `json:"cancelled"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	ClientID         *int64     `json:"client_id,omitempty"`
	ClientName       string     `json:"client_name,omitempty"`
	ClientEmail      string     `json:"client_email,omitempty"`
	ClientPhone      string     `json:"client_phone,omitempty"`
	ProfessionalID   *int64     `json:"professional_id,omitempty"`
	ProfessionalName string     `json:"professional_name,omitempty"`
	Specialty        string     `json:"specialty,omitempty"`
}
