package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/domain/settings"
)

func leave(typ domain.LeaveType, unit domain.LeaveUnit, amount string) domain.LeaveRequest {
	return domain.LeaveRequest{
		Type: typ, Unit: unit, Amount: dec(amount),
		Status: domain.RequestStatusApproved,
	}
}

func march() domain.Month {
	m, _ := domain.ParseMonth("2026-03")
	return m
}

func TestLeaveDeduction_RatesIncludeRegularAllowance(t *testing.T) {
	calc := NewLeaveDeductionCalculator(settings.Static{})
	got := calc.Calculate(context.Background(), LeaveDeductionInput{
		Month:                 march(),
		BaseSalaryCents:       4790000, // 47900.00
		RegularAllowanceCents: 10000,   // tops up to 48000.00
	})

	// (4790000 + 10000) / 240 and / 30.
	assert.Equal(t, int64(20000), got.HourlyRateCents)
	assert.Equal(t, int64(160000), got.DailySalaryCents)
	assert.Equal(t, int64(0), got.TotalCents)
}

func TestLeaveDeduction_SickAndPersonal(t *testing.T) {
	calc := NewLeaveDeductionCalculator(settings.Static{})
	got := calc.Calculate(context.Background(), LeaveDeductionInput{
		Month: march(),
		MonthLeaves: []domain.LeaveRequest{
			leave(domain.LeaveTypeSick, domain.LeaveUnitHour, "8"),
			leave(domain.LeaveTypePersonal, domain.LeaveUnitDay, "0.5"),
		},
		BaseSalaryCents: 4800000,
	})

	// hourly = 4800000/240 = 20000
	assert.Equal(t, int64(80000), got.SickDeductionCents)     // 8h x 20000 x 0.5
	assert.Equal(t, int64(80000), got.PersonalDeductionCents) // 4h x 20000 x 1.0
	assert.Equal(t, int64(160000), got.TotalCents)
}

func TestLeaveDeduction_FloorsFractionalCents(t *testing.T) {
	calc := NewLeaveDeductionCalculator(settings.Static{})
	got := calc.Calculate(context.Background(), LeaveDeductionInput{
		Month: march(),
		MonthLeaves: []domain.LeaveRequest{
			leave(domain.LeaveTypeSick, domain.LeaveUnitHour, "1"),
		},
		BaseSalaryCents: 4999900,
	})

	// hourly = round(4999900/240) = round(20832.9166) = 20833
	// deduction = floor(1 x 20833 x 0.5) = floor(10416.5) = 10416
	assert.Equal(t, int64(20833), got.HourlyRateCents)
	assert.Equal(t, int64(10416), got.SickDeductionCents)
}

func TestLeaveDeduction_MenstrualYearlyCarry(t *testing.T) {
	// Two free days already used earlier in the year; of this month's two
	// days, one is still free and one merges into sick accounting.
	calc := NewLeaveDeductionCalculator(settings.Static{})
	got := calc.Calculate(context.Background(), LeaveDeductionInput{
		Month: march(),
		MonthLeaves: []domain.LeaveRequest{
			leave(domain.LeaveTypeMenstrual, domain.LeaveUnitDay, "2"),
		},
		YearMenstrualLeaves: []domain.LeaveRequest{
			leave(domain.LeaveTypeMenstrual, domain.LeaveUnitDay, "2"), // january
			leave(domain.LeaveTypeMenstrual, domain.LeaveUnitDay, "2"), // this month
		},
		BaseSalaryCents: 4800000,
	})

	assert.True(t, got.MenstrualFreeDays.Equal(dec("1")), "free %s", got.MenstrualFreeDays)
	assert.True(t, got.MenstrualMerged.Equal(dec("1")), "merged %s", got.MenstrualMerged)
	// The half rate applies to all menstrual hours regardless of the split:
	// 16h x 20000 x 0.5.
	assert.Equal(t, int64(160000), got.MenstrualDeductionCents)
}

func TestLeaveDeduction_MenstrualQuotaExhausted(t *testing.T) {
	calc := NewLeaveDeductionCalculator(settings.Static{})
	got := calc.Calculate(context.Background(), LeaveDeductionInput{
		Month: march(),
		MonthLeaves: []domain.LeaveRequest{
			leave(domain.LeaveTypeMenstrual, domain.LeaveUnitDay, "2"),
		},
		YearMenstrualLeaves: []domain.LeaveRequest{
			leave(domain.LeaveTypeMenstrual, domain.LeaveUnitDay, "3"),
			leave(domain.LeaveTypeMenstrual, domain.LeaveUnitDay, "2"),
		},
		BaseSalaryCents: 4800000,
	})

	assert.True(t, got.MenstrualFreeDays.IsZero())
	assert.True(t, got.MenstrualMerged.Equal(dec("2")))
}

func TestLeaveDeduction_IgnoresUnapprovedAndOtherTypes(t *testing.T) {
	pending := leave(domain.LeaveTypeSick, domain.LeaveUnitHour, "8")
	pending.Status = domain.RequestStatusPending

	calc := NewLeaveDeductionCalculator(settings.Static{})
	got := calc.Calculate(context.Background(), LeaveDeductionInput{
		Month: march(),
		MonthLeaves: []domain.LeaveRequest{
			pending,
			leave(domain.LeaveTypeAnnual, domain.LeaveUnitDay, "1"),
			leave(domain.LeaveTypeMarriage, domain.LeaveUnitDay, "3"),
		},
		BaseSalaryCents: 4800000,
	})

	assert.Equal(t, int64(0), got.TotalCents)
	assert.True(t, got.SickHours.IsZero())
}

func TestLeaveDeduction_ConfigurableRates(t *testing.T) {
	s := settings.Static{
		settings.KeySickLeaveDeductionRate:  "0.3",
		settings.KeyPersonalLeaveDeductRate: "0.8",
	}
	calc := NewLeaveDeductionCalculator(s)
	got := calc.Calculate(context.Background(), LeaveDeductionInput{
		Month: march(),
		MonthLeaves: []domain.LeaveRequest{
			leave(domain.LeaveTypeSick, domain.LeaveUnitHour, "10"),
			leave(domain.LeaveTypePersonal, domain.LeaveUnitHour, "10"),
		},
		BaseSalaryCents: 4800000,
	})

	assert.Equal(t, int64(60000), got.SickDeductionCents)      // 10 x 20000 x 0.3
	assert.Equal(t, int64(160000), got.PersonalDeductionCents) // 10 x 20000 x 0.8
}
