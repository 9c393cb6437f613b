package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acctfirm/backoffice-go/internal/domain/employee"
	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/domain/settings"
)

type fakeEmployees map[string]employee.Employee

func (f fakeEmployees) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f fakeEmployees) GetActive(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f))
	for _, emp := range f {
		out = append(out, emp)
	}
	return out, nil
}

type fakeRecords struct {
	entries    []domain.TimeEntry
	leaves     []domain.LeaveRequest
	yearLeaves []domain.LeaveRequest
	trips      []domain.BusinessTrip
	items      []domain.SalaryItemAssignment
	adjustment *domain.BonusAdjustment
	yearEnd    *domain.YearEndBonus
}

func (f *fakeRecords) TimeEntries(_ context.Context, _ string, _, _ time.Time) ([]domain.TimeEntry, error) {
	return f.entries, nil
}

func (f *fakeRecords) ApprovedLeaves(_ context.Context, _ string, _, _ time.Time) ([]domain.LeaveRequest, error) {
	return f.leaves, nil
}

func (f *fakeRecords) ApprovedLeavesInYear(_ context.Context, _ string, _ domain.LeaveType, _ int, _ time.Time) ([]domain.LeaveRequest, error) {
	return f.yearLeaves, nil
}

func (f *fakeRecords) ApprovedTrips(_ context.Context, _ string, _, _ time.Time) ([]domain.BusinessTrip, error) {
	return f.trips, nil
}

func (f *fakeRecords) ActiveSalaryItems(_ context.Context, _ string) ([]domain.SalaryItemAssignment, error) {
	return f.items, nil
}

func (f *fakeRecords) BonusAdjustment(_ context.Context, _ string, _ domain.Month) (domain.BonusAdjustment, error) {
	if f.adjustment == nil {
		return domain.BonusAdjustment{}, domain.ErrBonusAdjNotFound
	}
	return *f.adjustment, nil
}

func (f *fakeRecords) YearEndBonus(_ context.Context, _ string, _, _ int) (domain.YearEndBonus, error) {
	if f.yearEnd == nil {
		return domain.YearEndBonus{}, domain.ErrYearEndNotFound
	}
	return *f.yearEnd, nil
}

func testEmployee() fakeEmployees {
	return fakeEmployees{"emp-1": {
		ID:              "emp-1",
		EmployeeCode:    "E001",
		FullName:        "Lin Wei",
		BaseSalaryCents: 4800000,
	}}
}

func TestCalculateEmployeePayroll_FullPipeline(t *testing.T) {
	attBonus := assignment("ATT", domain.CategoryBonus, 100000)
	attBonus.FullAttendanceOnly = true
	records := &fakeRecords{
		entries: []domain.TimeEntry{
			entry(3, 2, "2"), // overtime x1.34, also a meal-qualifying day
			entry(4, 1, "8"),
		},
		trips: []domain.BusinessTrip{trip(10, "12", domain.RequestStatusApproved)},
		items: []domain.SalaryItemAssignment{
			assignment("MEAL", domain.CategoryRegularAllowance, 200000),
			attBonus,
			assignment("INS", domain.CategoryDeduction, 30000),
			assignment(domain.PerformanceItemCode, domain.CategoryBonus, 150000),
		},
	}
	svc := NewService(testEmployee(), records, settings.Static{})

	got, err := svc.CalculateEmployeePayroll(context.Background(), "emp-1", march())
	require.NoError(t, err)

	assert.Equal(t, "Lin Wei", got.EmployeeName)
	assert.Equal(t, "2026-03", got.Month)
	assert.Equal(t, int64(20000), got.HourlyRateCents) // 4800000 / 240
	assert.True(t, got.IsFullAttendance)

	// 2 unused comp hours convert at 20000 x 1.34.
	assert.Equal(t, int64(53600), got.Overtime.ExpiredCompPayCents)
	assert.Equal(t, int64(10000), got.Meal.AmountCents)
	assert.Equal(t, int64(18000), got.Transport.AmountCents) // ceil(12/5) x 60.00
	assert.Equal(t, int64(150000), got.PerformanceBonusCents)
	assert.False(t, got.PerformanceOverridden)

	// base + regular + full-attendance bonus + performance + overtime + meal + transport
	wantGross := int64(4800000 + 200000 + 100000 + 150000 + 53600 + 10000 + 18000)
	assert.Equal(t, wantGross, got.GrossCents)
	assert.Equal(t, int64(30000), got.TotalDeductionCents)
	assert.Equal(t, wantGross-30000, got.NetCents)
	assert.NotEmpty(t, got.Trace)
}

func TestCalculateEmployeePayroll_SickLeaveBreaksFullAttendance(t *testing.T) {
	attBonus := assignment("ATT", domain.CategoryBonus, 100000)
	attBonus.FullAttendanceOnly = true
	// A single sick hour is enough.
	records := &fakeRecords{
		leaves: []domain.LeaveRequest{leave(domain.LeaveTypeSick, domain.LeaveUnitHour, "1")},
		items:  []domain.SalaryItemAssignment{attBonus},
	}
	svc := NewService(testEmployee(), records, settings.Static{})

	got, err := svc.CalculateEmployeePayroll(context.Background(), "emp-1", march())
	require.NoError(t, err)

	assert.False(t, got.IsFullAttendance)
	require.Len(t, got.Bonuses, 1)
	assert.False(t, got.Bonuses[0].ShouldPay)

	assert.Equal(t, int64(4800000), got.GrossCents) // bonus withheld
	assert.Equal(t, int64(10000), got.TotalDeductionCents)
	assert.Equal(t, int64(4790000), got.NetCents)
}

func TestCalculateEmployeePayroll_MenstrualLeaveKeepsFullAttendance(t *testing.T) {
	records := &fakeRecords{
		leaves:     []domain.LeaveRequest{leave(domain.LeaveTypeMenstrual, domain.LeaveUnitDay, "1")},
		yearLeaves: []domain.LeaveRequest{leave(domain.LeaveTypeMenstrual, domain.LeaveUnitDay, "1")},
	}
	svc := NewService(testEmployee(), records, settings.Static{})

	got, err := svc.CalculateEmployeePayroll(context.Background(), "emp-1", march())
	require.NoError(t, err)

	assert.True(t, got.IsFullAttendance)
	// Half rate still deducts: 8h x 20000 x 0.5.
	assert.Equal(t, int64(80000), got.Leave.MenstrualDeductionCents)
}

func TestCalculateEmployeePayroll_BonusAdjustmentOverrides(t *testing.T) {
	records := &fakeRecords{
		items: []domain.SalaryItemAssignment{
			assignment(domain.PerformanceItemCode, domain.CategoryBonus, 150000),
		},
		adjustment: &domain.BonusAdjustment{EmployeeID: "emp-1", Year: 2026, Month: 3, AmountCents: 90000},
	}
	svc := NewService(testEmployee(), records, settings.Static{})

	got, err := svc.CalculateEmployeePayroll(context.Background(), "emp-1", march())
	require.NoError(t, err)

	assert.True(t, got.PerformanceOverridden)
	assert.Equal(t, int64(90000), got.PerformanceBonusCents)
	assert.Equal(t, int64(4890000), got.GrossCents)
}

func TestCalculateEmployeePayroll_YearEndBonusFolded(t *testing.T) {
	records := &fakeRecords{
		yearEnd: &domain.YearEndBonus{EmployeeID: "emp-1", Year: 2026, PaymentMonth: 3, AmountCents: 4800000},
	}
	svc := NewService(testEmployee(), records, settings.Static{})

	got, err := svc.CalculateEmployeePayroll(context.Background(), "emp-1", march())
	require.NoError(t, err)

	require.Len(t, got.YearEndBonuses, 1)
	assert.Equal(t, "YEB", got.YearEndBonuses[0].ItemCode)
	assert.Equal(t, int64(9600000), got.GrossCents)
}

func TestCalculateEmployeePayroll_UnknownEmployee(t *testing.T) {
	svc := NewService(testEmployee(), &fakeRecords{}, settings.Static{})
	_, err := svc.CalculateEmployeePayroll(context.Background(), "nobody", march())
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestCalculateEmployeePayroll_Deterministic(t *testing.T) {
	records := &fakeRecords{
		entries: []domain.TimeEntry{
			entry(3, 2, "1.5"), entry(7, 7, "10"), entry(7, 7, "2"), entry(15, 3, "0.5"),
		},
		leaves: []domain.LeaveRequest{
			leave(domain.LeaveTypeCompensatory, domain.LeaveUnitHour, "3"),
			leave(domain.LeaveTypeSick, domain.LeaveUnitHour, "2"),
		},
		trips: []domain.BusinessTrip{trip(12, "7.5", domain.RequestStatusApproved)},
		items: []domain.SalaryItemAssignment{
			assignment("MEAL", domain.CategoryRegularAllowance, 200000),
		},
	}
	svc := NewService(testEmployee(), records, settings.Static{})

	first, err := svc.CalculateEmployeePayroll(context.Background(), "emp-1", march())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.CalculateEmployeePayroll(context.Background(), "emp-1", march())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
