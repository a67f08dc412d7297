// Package report contains the reporting pipeline use cases: period resolution,
// aggregation, export and report label lifecycle.
package report

import (
	"fmt"
	"time"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// Predicate reports whether a record date is inside the selected period.
type Predicate func(date time.Time) bool

// PeriodResolver turns a period selector into an inclusion predicate.
type PeriodResolver struct {
	clock adapter.Clock
}

// NewPeriodResolver creates a new PeriodResolver instance.
func NewPeriodResolver(clock adapter.Clock) *PeriodResolver {
	return &PeriodResolver{clock: clock}
}

// Resolve returns the predicate for the given period. The custom range is
// only read when period is custom. Unknown selectors are an error.
func (r *PeriodResolver) Resolve(period entity.ReportPeriod, custom *entity.DateRange) (Predicate, error) {
	now := r.clock.Now()

	switch period {
	case entity.ReportPeriodAll:
		return func(time.Time) bool { return true }, nil

	case entity.ReportPeriodCurrentMonth:
		return func(date time.Time) bool {
			return date.Year() == now.Year() && date.Month() == now.Month()
		}, nil

	case entity.ReportPeriodCurrentYear:
		return func(date time.Time) bool {
			return date.Year() == now.Year()
		}, nil

	case entity.ReportPeriodQuarter:
		quarter := quarterOf(now)
		return func(date time.Time) bool {
			return date.Year() == now.Year() && quarterOf(date) == quarter
		}, nil

	case entity.ReportPeriodSemester:
		semester := semesterOf(now)
		return func(date time.Time) bool {
			return date.Year() == now.Year() && semesterOf(date) == semester
		}, nil

	case entity.ReportPeriodCustom:
		if err := ValidateCustomRange(custom); err != nil {
			return nil, err
		}
		start, end := civilDay(custom.Start), civilDay(custom.End)
		return func(date time.Time) bool {
			day := civilDay(date)
			return day >= start && day <= end
		}, nil

	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnknownPeriod,
			fmt.Sprintf("unknown period %q", period),
			domainerror.ErrUnknownPeriod,
		)
	}
}

// ValidateCustomRange checks that a custom range is present and not inverted.
func ValidateCustomRange(custom *entity.DateRange) error {
	if custom == nil || custom.Start.IsZero() || custom.End.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidCustomRange,
			"custom period requires start_date and end_date",
			domainerror.ErrInvalidCustomRange,
		)
	}
	if civilDay(custom.Start) > civilDay(custom.End) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidCustomRange,
			"start_date must not be after end_date",
			domainerror.ErrInvalidCustomRange,
		)
	}
	return nil
}

// quarterOf returns the calendar quarter (1-4) of the date.
func quarterOf(date time.Time) int {
	return (int(date.Month())-1)/3 + 1
}

// semesterOf returns the half-year (1-2) of the date.
func semesterOf(date time.Time) int {
	return (int(date.Month())-1)/6 + 1
}

// civilDay encodes the calendar date as yyyymmdd, ignoring the time of day.
func civilDay(date time.Time) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}
