package payroll

import (
	"github.com/shopspring/decimal"

	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
)

// TimesheetAggregator classifies one month of raw time entries into hour
// totals by work-type class. It is pure: output depends only on the entry
// list, so callers may memoize per (employee, month) once a month closes.
type TimesheetAggregator struct{}

// Aggregate sums all hours, overtime hours, and multiplier-weighted hours.
// Fixed-eight-hour codes contribute exactly 8.0 weighted hours per distinct
// (date, code) group no matter how many raw hours the group carries.
// Entries with an unknown work-type code are skipped rather than failing
// the whole month.
func (TimesheetAggregator) Aggregate(entries []domain.TimeEntry) domain.TimesheetSummary {
	total := decimal.Zero
	overtime := decimal.Zero
	weighted := decimal.Zero

	type groupKey struct {
		date string
		code int
	}
	counted := make(map[groupKey]bool)

	for _, e := range entries {
		wt, ok := domain.WorkTypeByCode(e.WorkTypeCode)
		if !ok {
			continue
		}

		total = total.Add(e.Hours)
		if wt.IsOvertime {
			overtime = overtime.Add(e.Hours)
		}

		if wt.FixedEightHour {
			k := groupKey{date: e.Date.Format("2006-01-02"), code: e.WorkTypeCode}
			if !counted[k] {
				counted[k] = true
				weighted = weighted.Add(domain.HoursPerDay)
			}
			continue
		}
		weighted = weighted.Add(e.Hours.Mul(wt.Multiplier))
	}

	return domain.TimesheetSummary{
		TotalHours:    total.Round(1),
		OvertimeHours: overtime.Round(1),
		WeightedHours: weighted.Round(2),
	}
}
