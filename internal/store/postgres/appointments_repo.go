package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"agendo/internal/domain"
	"agendo/internal/store"
)

type AppointmentRepo struct {
	db *bun.DB
}

func NewAppointmentRepo(db *bun.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

func (r *AppointmentRepo) QueryAppointments(ctx context.Context, professionalID int64, dateFrom, dateTo string) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("professional_id = ?", professionalID).
		Where("cancelled = ?", false).
		Where("date >= ?", dateFrom).
		Where("date <= ?", dateTo).
		OrderExpr("date ASC, start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentRepo) QueryFullReport(ctx context.Context) ([]domain.ReportRow, error) {
	var rows []domain.ReportRow
	err := r.db.NewSelect().
		TableExpr("appointments AS a").
		ColumnExpr("a.id, a.date, a.start_time, a.end_time, a.title, a.description, a.color").
		ColumnExpr("a.cancelled, a.cancelled_at, a.client_id, a.professional_id").
		ColumnExpr("COALESCE(c.name, '') AS client_name").
		ColumnExpr("COALESCE(c.email, '') AS client_email").
		ColumnExpr("COALESCE(c.phone, '') AS client_phone").
		ColumnExpr("COALESCE(p.name, '') AS professional_name").
		ColumnExpr("COALESCE(s.name, '') AS specialty").
		Join("LEFT JOIN clients AS c ON c.id = a.client_id").
		Join("LEFT JOIN professionals AS p ON p.id = a.professional_id").
		Join("LEFT JOIN specialties AS s ON s.id = p.specialty_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentRepo) InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	_, err := r.db.NewInsert().
		Model(&appt).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (r *AppointmentRepo) UpdateAppointment(ctx context.Context, id int64, fields store.AppointmentUpdate) (domain.Appointment, error) {
	var existing domain.Appointment
	err := r.db.NewSelect().
		Model(&existing).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Appointment{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Appointment{}, err
	}
	if existing.Cancelled {
		return domain.Appointment{}, store.ErrCancelled
	}

	applyUpdate(&existing, fields)

	_, err = r.db.NewUpdate().
		Model(&existing).
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.Appointment{}, err
	}
	return existing, nil
}

func (r *AppointmentRepo) CancelAppointment(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	res, err := r.db.NewUpdate().
		Model((*domain.Appointment)(nil)).
		Set("cancelled = ?", true).
		Set("cancelled_at = ?", now).
		Where("id = ?", id).
		Where("cancelled = ?", false).
		Exec(ctx)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: the appointment is missing or already cancelled.
	exists, err := r.db.NewSelect().
		Model((*domain.Appointment)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}
	return store.ErrCancelled
}

func applyUpdate(appt *domain.Appointment, fields store.AppointmentUpdate) {
	if fields.ProfessionalID != nil {
		appt.ProfessionalID = fields.ProfessionalID
	}
	if fields.ClientID != nil {
		appt.ClientID = fields.ClientID
	}
	if fields.Date != nil {
		appt.Date = *fields.Date
	}
	if fields.StartTime != nil {
		appt.StartTime = *fields.StartTime
	}
	if fields.EndTime != nil {
		appt.EndTime = *fields.EndTime
	}
	if fields.Title != nil {
		appt.Title = *fields.Title
	}
	if fields.Description != nil {
		appt.Description = *fields.Description
	}
	if fields.Color != nil {
		appt.Color = *fields.Color
	}
}
