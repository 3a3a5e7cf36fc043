package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agendo/internal/domain"
	"agendo/internal/schedule"
	"agendo/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Service drives bookings through the scheduling engine and the store. All
// reads go through the appointment cache; every successful mutation
// invalidates it, failed mutations leave it alone.
type Service struct {
	store store.AppointmentStore
	cache *schedule.Cache
}

func NewService(st store.AppointmentStore, cache *schedule.Cache) *Service {
	return &Service{store: st, cache: cache}
}

type CreateInput struct {
	ProfessionalID int64
	ClientID       *int64
	Date           string
	StartTime      string
	EndTime        string
	Title          string
	Description    string
	Color          string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Appointment{}, validationError("title is required")
	}
	if in.ProfessionalID <= 0 {
		return domain.Appointment{}, validationError("professional_id is required")
	}
	if _, err := schedule.ParseISODate(in.Date); err != nil {
		return domain.Appointment{}, validationError("date must be YYYY-MM-DD")
	}
	if in.StartTime == "" {
		return domain.Appointment{}, validationError("start_time is required")
	}
	if in.EndTime == "" {
		return domain.Appointment{}, validationError("end_time is required")
	}

	appts, err := s.weekAppointments(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return domain.Appointment{}, err
	}
	if err := schedule.Validate(appts, in.ProfessionalID, in.Date, in.StartTime, in.EndTime); err != nil {
		return domain.Appointment{}, err
	}

	pid := in.ProfessionalID
	created, err := s.store.InsertAppointment(ctx, domain.Appointment{
		ProfessionalID: &pid,
		ClientID:       in.ClientID,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Title:          title,
		Description:    in.Description,
		Color:          in.Color,
	})
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}

	s.cache.Invalidate()
	return created, nil
}

// UpdateInput carries the full proposed time range of the edited booking
// plus the optional field edits; nil pointers leave stored values untouched.
type UpdateInput struct {
	ProfessionalID int64
	Date           string
	StartTime      string
	EndTime        string
	ClientID       *int64
	Title          *string
	Description    *string
	Color          *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (domain.Appointment, error) {
	if id <= 0 {
		return domain.Appointment{}, validationError("appointment id is required")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return domain.Appointment{}, validationError("title is required")
	}
	if in.ProfessionalID <= 0 {
		return domain.Appointment{}, validationError("professional_id is required")
	}
	if _, err := schedule.ParseISODate(in.Date); err != nil {
		return domain.Appointment{}, validationError("date must be YYYY-MM-DD")
	}
	if in.StartTime == "" {
		return domain.Appointment{}, validationError("start_time is required")
	}
	if in.EndTime == "" {
		return domain.Appointment{}, validationError("end_time is required")
	}

	appts, err := s.weekAppointments(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return domain.Appointment{}, err
	}

	// The edited booking must not conflict with itself.
	others := make([]domain.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.ID != id {
			others = append(others, a)
		}
	}
	if err := schedule.Validate(others, in.ProfessionalID, in.Date, in.StartTime, in.EndTime); err != nil {
		return domain.Appointment{}, err
	}

	pid := in.ProfessionalID
	updated, err := s.store.UpdateAppointment(ctx, id, store.AppointmentUpdate{
		ProfessionalID: &pid,
		ClientID:       in.ClientID,
		Date:           &in.Date,
		StartTime:      &in.StartTime,
		EndTime:        &in.EndTime,
		Title:          trimmed(in.Title),
		Description:    in.Description,
		Color:          in.Color,
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.cache.Invalidate()
	return updated, nil
}

func (s *Service) Cancel(ctx context.Context, id int64) error {
	if id <= 0 {
		return validationError("appointment id is required")
	}
	if err := s.store.CancelAppointment(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// WeekAppointments returns the professional's bookings for the Sunday-to-
// Saturday week containing the reference date, served from the cache when
// possible.
func (s *Service) WeekAppointments(ctx context.Context, professionalID int64, reference time.Time) ([]domain.Appointment, error) {
	if professionalID <= 0 {
		return nil, validationError("professional_id is required")
	}
	start, end := schedule.NewWeekWindow(reference).Bounds()
	return s.cache.Fetch(ctx, professionalID, start, end)
}

// StartTimes returns the grid labels still bookable as a start on the date.
func (s *Service) StartTimes(ctx context.Context, professionalID int64, date string) ([]string, error) {
	if professionalID <= 0 {
		return nil, validationError("professional_id is required")
	}
	if _, err := schedule.ParseISODate(date); err != nil {
		return nil, validationError("date must be YYYY-MM-DD")
	}

	appts, err := s.weekAppointments(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}
	return schedule.AvailableStartTimes(appts, professionalID, date), nil
}

// EndTimes returns the legal end labels for a booking starting at startTime.
func (s *Service) EndTimes(ctx context.Context, professionalID int64, date, startTime string) ([]string, error) {
	if professionalID <= 0 {
		return nil, validationError("professional_id is required")
	}
	if _, err := schedule.ParseISODate(date); err != nil {
		return nil, validationError("date must be YYYY-MM-DD")
	}
	if startTime == "" {
		return nil, validationError("start_time is required")
	}

	appts, err := s.weekAppointments(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}
	return schedule.AvailableEndTimes(appts, professionalID, date, startTime), nil
}

// Report returns the filtered, most-recent-first report set. Cancelled
// appointments are included; reports show history.
func (s *Service) Report(ctx context.Context, f schedule.ReportFilter) ([]domain.ReportRow, error) {
	if f.DateFrom != "" {
		if _, err := schedule.ParseISODate(f.DateFrom); err != nil {
			return nil, validationError("from must be YYYY-MM-DD")
		}
	}
	if f.DateTo != "" {
		if _, err := schedule.ParseISODate(f.DateTo); err != nil {
			return nil, validationError("to must be YYYY-MM-DD")
		}
	}

	rows, err := s.store.QueryFullReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("query full report: %w", err)
	}
	return schedule.ApplyReportFilter(rows, f), nil
}

// OnSessionChange is the host's session-lifecycle hook: when the signed-in
// user changes, cached weeks belong to the previous session and are dropped.
func (s *Service) OnSessionChange() {
	s.cache.Invalidate()
}

func (s *Service) weekAppointments(ctx context.Context, professionalID int64, date string) ([]domain.Appointment, error) {
	d, err := schedule.ParseISODate(date)
	if err != nil {
		return nil, validationError("date must be YYYY-MM-DD")
	}
	start, end := schedule.NewWeekWindow(d).Bounds()
	return s.cache.Fetch(ctx, professionalID, start, end)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
