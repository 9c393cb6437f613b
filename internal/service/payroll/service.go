package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acctfirm/backoffice-go/internal/domain/employee"
	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/domain/settings"
)

// Service is the payroll orchestrator: it composes the aggregator, the
// overtime ledger, the allowance and leave calculators and the salary item
// classifier into one itemized result per employee and month.
type Service struct {
	employees employee.EmployeeRepository
	records   domain.RecordSource
	settings  settings.Provider

	timesheet  TimesheetAggregator
	ledger     OvertimeLedger
	classifier SalaryItemClassifier
	meal       *MealAllowanceCalculator
	transport  *TransportAllowanceCalculator
	leaves     *LeaveDeductionCalculator
}

func NewService(
	employees employee.EmployeeRepository,
	records domain.RecordSource,
	provider settings.Provider,
) *Service {
	return &Service{
		employees: employees,
		records:   records,
		settings:  provider,
		meal:      NewMealAllowanceCalculator(provider),
		transport: NewTransportAllowanceCalculator(provider),
		leaves:    NewLeaveDeductionCalculator(provider),
	}
}

// CalculateEmployeePayroll computes the full gross/net itemization for one
// employee and month. The result exposes every intermediate for audit; the
// same inputs always produce the same output.
func (s *Service) CalculateEmployeePayroll(ctx context.Context, employeeID string, m domain.Month) (domain.Result, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return domain.Result{}, domain.ErrEmployeeNotFound
		}
		return domain.Result{}, fmt.Errorf("load employee %s: %w", employeeID, err)
	}

	first, last := m.FirstDay(), m.LastDay()
	tr := &trace{}

	entries, err := s.records.TimeEntries(ctx, emp.ID, first, last)
	if err != nil {
		return domain.Result{}, fmt.Errorf("load time entries: %w", err)
	}
	monthLeaves, err := s.records.ApprovedLeaves(ctx, emp.ID, first, last)
	if err != nil {
		return domain.Result{}, fmt.Errorf("load leave requests: %w", err)
	}
	yearMenstrual, err := s.records.ApprovedLeavesInYear(ctx, emp.ID, domain.LeaveTypeMenstrual, m.Year, last)
	if err != nil {
		return domain.Result{}, fmt.Errorf("load menstrual leave history: %w", err)
	}
	trips, err := s.records.ApprovedTrips(ctx, emp.ID, first, last)
	if err != nil {
		return domain.Result{}, fmt.Errorf("load business trips: %w", err)
	}
	items, err := s.records.ActiveSalaryItems(ctx, emp.ID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("load salary items: %w", err)
	}

	// The overtime conversion rate uses base salary only; the leave
	// deduction rate below includes regular allowances.
	divisor := s.settings.Int(ctx, settings.KeyHourlyRateDivisor, settings.DefaultHourlyRateDivisor)
	if divisor <= 0 {
		divisor = settings.DefaultHourlyRateDivisor
	}
	hourlyRate := roundCents(decimal.NewFromInt(emp.BaseSalaryCents).Div(decimal.NewFromInt(divisor)))
	tr.amount("hourly_rate", hourlyRate, "base salary / %d", divisor)

	overtime := s.ledger.Build(entries, monthLeaves, hourlyRate)
	tr.amount("overtime", overtime.ExpiredCompPayCents,
		"comp hours generated %s, used %s, unused %s",
		overtime.TotalCompHoursGenerated, overtime.TotalCompHoursUsed, overtime.UnusedCompHours)

	classified := s.classifier.Classify(items, m)

	if yeb, err := s.records.YearEndBonus(ctx, emp.ID, m.Year, int(m.Month)); err == nil {
		classified.YearEndBonuses = append(classified.YearEndBonuses, domain.ItemAmount{
			ItemCode:    "YEB",
			ItemName:    "year-end bonus",
			Category:    domain.CategoryYearEndBonus,
			AmountCents: yeb.AmountCents,
			ShouldPay:   true,
		})
	} else if !errors.Is(err, domain.ErrYearEndNotFound) {
		return domain.Result{}, fmt.Errorf("load year-end bonus: %w", err)
	}

	fullAttendance := isFullAttendance(monthLeaves)
	applyFullAttendance(classified.Bonuses, fullAttendance)
	applyFullAttendance(classified.YearEndBonuses, fullAttendance)
	tr.add("attendance", "full attendance: %t", fullAttendance)

	mealDetail := s.meal.Calculate(ctx, entries)
	tr.amount("meal_allowance", mealDetail.AmountCents, "%d qualifying days", len(mealDetail.QualifyingDates))

	transportDetail := s.transport.Calculate(ctx, trips)
	tr.amount("transport_allowance", transportDetail.AmountCents, "%d trips", len(transportDetail.Trips))

	regularAllowanceCents := sumItems(classified.RegularAllowances)
	leaveDetail := s.leaves.Calculate(ctx, LeaveDeductionInput{
		Month:                 m,
		MonthLeaves:           monthLeaves,
		YearMenstrualLeaves:   yearMenstrual,
		BaseSalaryCents:       emp.BaseSalaryCents,
		RegularAllowanceCents: regularAllowanceCents,
	})
	tr.amount("leave_deduction", leaveDetail.TotalCents,
		"sick %sh, personal %sh, menstrual %sh (free %s / merged %s days)",
		leaveDetail.SickHours, leaveDetail.PersonalHours, leaveDetail.MenstrualHours,
		leaveDetail.MenstrualFreeDays, leaveDetail.MenstrualMerged)

	performanceCents := classified.PerformanceCents
	performanceOverridden := false
	if adj, err := s.records.BonusAdjustment(ctx, emp.ID, m); err == nil {
		performanceCents = adj.AmountCents
		performanceOverridden = true
	} else if !errors.Is(err, domain.ErrBonusAdjNotFound) {
		return domain.Result{}, fmt.Errorf("load bonus adjustment: %w", err)
	}
	tr.amount("performance", performanceCents, "overridden: %t", performanceOverridden)

	gross := emp.BaseSalaryCents +
		regularAllowanceCents +
		sumItems(classified.IrregularAllowances) +
		sumPayable(classified.Bonuses) +
		sumPayable(classified.YearEndBonuses) +
		performanceCents +
		overtime.ExpiredCompPayCents +
		mealDetail.AmountCents +
		transportDetail.AmountCents

	totalDeduction := sumItems(classified.Deductions) + leaveDetail.TotalCents
	net := gross - totalDeduction
	tr.amount("totals", net, "gross %d - deductions %d", gross, totalDeduction)

	return domain.Result{
		EmployeeID:            emp.ID,
		EmployeeName:          emp.FullName,
		Month:                 m.String(),
		BaseSalaryCents:       emp.BaseSalaryCents,
		HourlyRateCents:       hourlyRate,
		IsFullAttendance:      fullAttendance,
		Timesheet:             s.timesheet.Aggregate(entries),
		Overtime:              overtime,
		RegularAllowances:     classified.RegularAllowances,
		IrregularAllowances:   classified.IrregularAllowances,
		Bonuses:               classified.Bonuses,
		YearEndBonuses:        classified.YearEndBonuses,
		DeductionItems:        classified.Deductions,
		PerformanceBonusCents: performanceCents,
		PerformanceOverridden: performanceOverridden,
		Meal:                  mealDetail,
		Transport:             transportDetail,
		Leave:                 leaveDetail,
		GrossCents:            gross,
		TotalDeductionCents:   totalDeduction,
		NetCents:              net,
		Trace:                 tr.steps,
	}, nil
}

// isFullAttendance is false once any approved sick or personal leave
// overlaps the month. Menstrual leave never breaks full attendance.
func isFullAttendance(leaves []domain.LeaveRequest) bool {
	for _, l := range leaves {
		if l.Status != domain.RequestStatusApproved {
			continue
		}
		if l.Type == domain.LeaveTypeSick || l.Type == domain.LeaveTypePersonal {
			return false
		}
	}
	return true
}

func applyFullAttendance(items []domain.ItemAmount, fullAttendance bool) {
	for i := range items {
		if items[i].FullAttendanceOnly {
			items[i].ShouldPay = fullAttendance
		}
	}
}

func sumItems(items []domain.ItemAmount) int64 {
	var sum int64
	for _, it := range items {
		sum += it.AmountCents
	}
	return sum
}

func sumPayable(items []domain.ItemAmount) int64 {
	var sum int64
	for _, it := range items {
		if it.ShouldPay {
			sum += it.AmountCents
		}
	}
	return sum
}
