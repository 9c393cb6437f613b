package payroll

import (
	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
)

// ClassifiedItems buckets an employee's effective salary items for one
// month. The performance amount is extracted separately and never appears
// in the bonus bucket.
type ClassifiedItems struct {
	RegularAllowances   []domain.ItemAmount
	IrregularAllowances []domain.ItemAmount
	Bonuses             []domain.ItemAmount
	YearEndBonuses      []domain.ItemAmount
	Deductions          []domain.ItemAmount

	PerformanceCents int64
	HasPerformance   bool
}

// SalaryItemClassifier evaluates each configured assignment against the
// target month's recurrence and effective window.
type SalaryItemClassifier struct{}

func (SalaryItemClassifier) Classify(items []domain.SalaryItemAssignment, m domain.Month) ClassifiedItems {
	var out ClassifiedItems
	for _, it := range items {
		if !it.IsActive || !it.EffectiveIn(m) || !paysIn(it, m) {
			continue
		}

		if it.ItemCode == domain.PerformanceItemCode {
			out.PerformanceCents += it.AmountCents
			out.HasPerformance = true
			continue
		}

		amount := domain.ItemAmount{
			ItemCode:           it.ItemCode,
			ItemName:           it.ItemName,
			Category:           it.Category,
			AmountCents:        it.AmountCents,
			FullAttendanceOnly: it.FullAttendanceOnly,
			ShouldPay:          true,
		}

		switch it.Category {
		case domain.CategoryRegularAllowance:
			out.RegularAllowances = append(out.RegularAllowances, amount)
		case domain.CategoryIrregularAllowance:
			out.IrregularAllowances = append(out.IrregularAllowances, amount)
		case domain.CategoryBonus:
			out.Bonuses = append(out.Bonuses, amount)
		case domain.CategoryYearEndBonus:
			out.YearEndBonuses = append(out.YearEndBonuses, amount)
		case domain.CategoryDeduction:
			out.Deductions = append(out.Deductions, amount)
		}
	}
	return out
}

// paysIn evaluates the assignment's recurrence against the target month.
// A yearly assignment with no configured months pays every month rather
// than failing the employee over bad configuration data.
func paysIn(it domain.SalaryItemAssignment, m domain.Month) bool {
	switch it.RecurringType {
	case domain.RecurringMonthly:
		return true
	case domain.RecurringOnce:
		return it.EffectiveDate.Year() == m.Year && it.EffectiveDate.Month() == m.Month
	case domain.RecurringYearly:
		if len(it.RecurringMonths) == 0 {
			return true
		}
		for _, mm := range it.RecurringMonths {
			if mm == int(m.Month) {
				return true
			}
		}
		return false
	}
	return true
}
