package payroll

import (
	"sort"

	"github.com/shopspring/decimal"

	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
)

// OvertimeLedger turns a month of overtime entries into a day-ordered
// ledger of compensatory hours earned, matches compensatory leave taken
// against it earliest-first, and values whatever survives the month as
// cash.
//
// The date-ascending order (ties kept in input order) is the FIFO
// contract: the earliest-earned hours are the first spent as leave, and
// the conversion pass walks the same order.
type OvertimeLedger struct{}

// Build computes the full breakdown. compLeaves must be the month's
// approved compensatory-type leave requests; hourlyRateCents is the
// base-salary hourly rate used to value unused hours.
func (OvertimeLedger) Build(entries []domain.TimeEntry, compLeaves []domain.LeaveRequest, hourlyRateCents int64) domain.OvertimeBreakdown {
	records := buildRecords(entries)

	totalGenerated := decimal.Zero
	for _, r := range records {
		totalGenerated = totalGenerated.Add(r.CompHoursGenerated)
	}

	totalUsed := decimal.Zero
	for _, l := range compLeaves {
		if l.Status != domain.RequestStatusApproved || l.Type != domain.LeaveTypeCompensatory {
			continue
		}
		totalUsed = totalUsed.Add(l.Hours())
	}

	// FIFO deduction pass. A fresh slice is produced so the record list can
	// be reused for display without aliasing the fold's mutations.
	deducted := make([]domain.OvertimeRecord, len(records))
	remainingUse := totalUsed
	for i, r := range records {
		d := minDecimal(remainingUse, r.CompHoursGenerated)
		r.CompHoursDeducted = d
		r.CompHoursRemaining = r.CompHoursGenerated.Sub(d)
		remainingUse = remainingUse.Sub(d)
		deducted[i] = r
	}

	unused := maxDecimal(decimal.Zero, totalGenerated.Sub(totalUsed))

	// Conversion pass: the same chronological order, valuing
	// min(record hours, hours left to convert) at rate x multiplier.
	rate := decimal.NewFromInt(hourlyRateCents)
	var expiredPay int64
	toConvert := unused
	for _, r := range deducted {
		if !toConvert.IsPositive() {
			break
		}
		conv := minDecimal(r.Hours, toConvert)
		expiredPay += roundCents(conv.Mul(rate).Mul(r.Multiplier))
		toConvert = toConvert.Sub(conv)
	}

	return domain.OvertimeBreakdown{
		Records:                 deducted,
		TotalCompHoursGenerated: totalGenerated,
		TotalCompHoursUsed:      totalUsed,
		UnusedCompHours:         unused,
		ExpiredCompPayCents:     expiredPay,
	}
}

// buildRecords keeps overtime entries only and computes each entry's
// compensatory credit. Fixed-eight-hour codes credit 8 hours per distinct
// (date, code) group apportioned pro-rata across the group's entries;
// every other overtime hour credits one-for-one.
func buildRecords(entries []domain.TimeEntry) []domain.OvertimeRecord {
	type groupKey struct {
		date string
		code int
	}
	groupHours := make(map[groupKey]decimal.Decimal)
	for _, e := range entries {
		wt, ok := domain.WorkTypeByCode(e.WorkTypeCode)
		if !ok || !wt.FixedEightHour {
			continue
		}
		k := groupKey{date: e.Date.Format("2006-01-02"), code: e.WorkTypeCode}
		groupHours[k] = groupHours[k].Add(e.Hours)
	}

	var records []domain.OvertimeRecord
	for _, e := range entries {
		wt, ok := domain.WorkTypeByCode(e.WorkTypeCode)
		if !ok || !wt.IsOvertime {
			continue
		}

		comp := e.Hours
		if wt.FixedEightHour {
			k := groupKey{date: e.Date.Format("2006-01-02"), code: e.WorkTypeCode}
			sum := groupHours[k]
			if sum.IsPositive() {
				comp = domain.HoursPerDay.Mul(e.Hours).Div(sum)
			} else {
				comp = decimal.Zero
			}
		}

		records = append(records, domain.OvertimeRecord{
			Date:               e.Date,
			WorkTypeCode:       e.WorkTypeCode,
			WorkTypeName:       wt.Name,
			Hours:              e.Hours,
			Multiplier:         wt.Multiplier,
			FixedEightHour:     wt.FixedEightHour,
			CompHoursGenerated: comp,
			CompHoursRemaining: comp,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records
}
