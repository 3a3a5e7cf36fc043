package schedule

import (
	"sort"

	"agendo/internal/domain"
)

// ReportFilter narrows the full report set. Every field is optional and the
// supplied ones are ANDed. There is no cancellation filter: reports show
// history, cancelled appointments included.
type ReportFilter struct {
	ProfessionalID *int64
	ClientID       *int64
	DateFrom       string
	DateTo         string
}

// ApplyReportFilter filters rows and orders them most-recent-first:
// descending by date, ties broken by descending start time. Lexicographic
// comparison is exact because dates and times are zero-padded ISO strings.
func ApplyReportFilter(rows []domain.ReportRow, f ReportFilter) []domain.ReportRow {
	out := make([]domain.ReportRow, 0, len(rows))
	for _, r := range rows {
		if f.ProfessionalID != nil && (r.ProfessionalID == nil || *r.ProfessionalID != *f.ProfessionalID) {
			continue
		}
		if f.ClientID != nil && (r.ClientID == nil || *r.ClientID != *f.ClientID) {
			continue
		}
		if f.DateFrom != "" && r.Date < f.DateFrom {
			continue
		}
		if f.DateTo != "" && r.Date > f.DateTo {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out
}
