package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/domain/settings"
)

// menstrualFreeDaysPerYear is the statutory number of menstrual-leave days
// per calendar year that stay outside sick-leave accounting.
var menstrualFreeDaysPerYear = decimal.NewFromInt(3)

// menstrualDeductionRate is fixed by regulation, not configurable.
var menstrualDeductionRate = decimal.NewFromFloat(0.5)

// LeaveDeductionInput carries everything the calculator needs so it stays
// pure against the record store.
type LeaveDeductionInput struct {
	Month domain.Month

	// MonthLeaves are the approved leave requests overlapping the month.
	MonthLeaves []domain.LeaveRequest

	// YearMenstrualLeaves are the approved menstrual requests for the whole
	// calendar year up to and including the month.
	YearMenstrualLeaves []domain.LeaveRequest

	BaseSalaryCents       int64
	RegularAllowanceCents int64
}

// LeaveDeductionCalculator computes pay deductions for sick, personal and
// menstrual leave, including the yearly menstrual carry.
type LeaveDeductionCalculator struct {
	settings settings.Provider
}

func NewLeaveDeductionCalculator(p settings.Provider) *LeaveDeductionCalculator {
	return &LeaveDeductionCalculator{settings: p}
}

func (c *LeaveDeductionCalculator) Calculate(ctx context.Context, in LeaveDeductionInput) domain.LeaveDeductionDetail {
	divisor := c.settings.Int(ctx, settings.KeyHourlyRateDivisor, settings.DefaultHourlyRateDivisor)
	if divisor <= 0 {
		divisor = settings.DefaultHourlyRateDivisor
	}
	dailyDivisor := c.settings.Int(ctx, settings.KeyLeaveDailySalaryDivisor, settings.DefaultLeaveDailySalaryDivisor)
	if dailyDivisor <= 0 {
		dailyDivisor = settings.DefaultLeaveDailySalaryDivisor
	}
	sickRate := c.settings.Decimal(ctx, settings.KeySickLeaveDeductionRate, settings.DefaultSickLeaveDeductionRate)
	personalRate := c.settings.Decimal(ctx, settings.KeyPersonalLeaveDeductRate, settings.DefaultPersonalLeaveDeductRate)

	sickHours := decimal.Zero
	personalHours := decimal.Zero
	menstrualHours := decimal.Zero
	for _, l := range in.MonthLeaves {
		if l.Status != domain.RequestStatusApproved {
			continue
		}
		switch l.Type {
		case domain.LeaveTypeSick:
			sickHours = sickHours.Add(l.Hours())
		case domain.LeaveTypePersonal:
			personalHours = personalHours.Add(l.Hours())
		case domain.LeaveTypeMenstrual:
			menstrualHours = menstrualHours.Add(l.Hours())
		}
	}

	// Yearly carry: the first three menstrual days of the calendar year sit
	// outside sick-leave accounting; everything beyond merges. The split
	// only affects attendance bookkeeping - menstrual hours always deduct
	// at the fixed half rate.
	yearHours := decimal.Zero
	for _, l := range in.YearMenstrualLeaves {
		if l.Status != domain.RequestStatusApproved || l.Type != domain.LeaveTypeMenstrual {
			continue
		}
		yearHours = yearHours.Add(l.Hours())
	}
	yearDays := yearHours.Div(domain.HoursPerDay)
	thisMonthDays := menstrualHours.Div(domain.HoursPerDay)
	previousYearDays := yearDays.Sub(thisMonthDays)

	freeDays := minDecimal(thisMonthDays, maxDecimal(decimal.Zero, menstrualFreeDaysPerYear.Sub(previousYearDays)))
	mergedDays := thisMonthDays.Sub(freeDays)

	pay := decimal.NewFromInt(in.BaseSalaryCents + in.RegularAllowanceCents)
	hourlyRate := roundCents(pay.Div(decimal.NewFromInt(divisor)))
	dailySalary := roundCents(pay.Div(decimal.NewFromInt(dailyDivisor)))

	rate := decimal.NewFromInt(hourlyRate)
	sickDed := floorCents(sickHours.Mul(rate).Mul(sickRate))
	personalDed := floorCents(personalHours.Mul(rate).Mul(personalRate))
	menstrualDed := floorCents(menstrualHours.Mul(rate).Mul(menstrualDeductionRate))

	return domain.LeaveDeductionDetail{
		SickHours:               sickHours,
		PersonalHours:           personalHours,
		MenstrualHours:          menstrualHours,
		MenstrualFreeDays:       freeDays,
		MenstrualMerged:         mergedDays,
		HourlyRateCents:         hourlyRate,
		DailySalaryCents:        dailySalary,
		SickDeductionCents:      sickDed,
		PersonalDeductionCents:  personalDed,
		MenstrualDeductionCents: menstrualDed,
		TotalCents:              sickDed + personalDed + menstrualDed,
	}
}
