package domain

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// DefaultColor is applied to appointments created without an explicit color.
const DefaultColor = "#DBE9FE"

// Appointment is a single booking for a professional. Date is an ISO
// YYYY-MM-DD string and StartTime/EndTime are wall-clock HH:MM values;
// stored values may carry a seconds or timezone suffix, but only the leading
// HH:MM is significant to the scheduling engine. An empty time string means
// the value is unset.
type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID             int64      `bun:"id,pk,autoincrement"`
	ProfessionalID *int64     `bun:"professional_id"`
	ClientID       *int64     `bun:"client_id"`
	Date           string     `bun:"date,notnull"`
	StartTime      string     `bun:"start_time"`
	EndTime        string     `bun:"end_time"`
	Title          string     `bun:"title,notnull"`
	Description    string     `bun:"description"`
	Color          string     `bun:"color,notnull"`
	Cancelled      bool       `bun:"cancelled,notnull"`
	CancelledAt    *time.Time `bun:"cancelled_at"`
	CreatedAt      time.Time  `bun:"created_at,notnull"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok {
		if a.Color == "" {
			a.Color = DefaultColor
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now().UTC()
		}
	}
	return nil
}

type Specialty struct {
	bun.BaseModel `bun:"table:specialties"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull"`
}

type Professional struct {
	bun.BaseModel `bun:"table:professionals"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Name        string `bun:"name,notnull"`
	SpecialtyID int64  `bun:"specialty_id,notnull"`
}

type Client struct {
	bun.BaseModel `bun:"table:clients"`

	ID    int64  `bun:"id,pk,autoincrement"`
	Name  string `bun:"name,notnull"`
	Email string `bun:"email"`
	Phone string `bun:"phone"`
}
