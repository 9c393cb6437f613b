package payroll

import (
	"context"
	"time"
)

// RecordSource provides the read-only record lookups the engine consumes.
// All lookups are keyed by employee and date range; the engine never writes
// through this interface.
type RecordSource interface {
	// TimeEntries returns the raw timesheet lines dated in [from, to].
	TimeEntries(ctx context.Context, employeeID string, from, to time.Time) ([]TimeEntry, error)

	// ApprovedLeaves returns approved leave requests overlapping [from, to].
	ApprovedLeaves(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)

	// ApprovedLeavesInYear returns approved leave requests of one type
	// starting in the given calendar year up to and including `through`.
	// Used for the menstrual-leave year-to-date carry.
	ApprovedLeavesInYear(ctx context.Context, employeeID string, leaveType LeaveType, year int, through time.Time) ([]LeaveRequest, error)

	// ApprovedTrips returns approved business trips dated in [from, to].
	ApprovedTrips(ctx context.Context, employeeID string, from, to time.Time) ([]BusinessTrip, error)

	// ActiveSalaryItems returns the employee's active salary item
	// assignments; effective-window and recurrence checks happen in the
	// classifier, not in SQL.
	ActiveSalaryItems(ctx context.Context, employeeID string) ([]SalaryItemAssignment, error)

	// BonusAdjustment returns the performance-bonus override for the month,
	// or ErrBonusAdjNotFound.
	BonusAdjustment(ctx context.Context, employeeID string, m Month) (BonusAdjustment, error)

	// YearEndBonus returns the year-end bonus record paid in the given
	// month of the given year, or ErrYearEndNotFound.
	YearEndBonus(ctx context.Context, employeeID string, year, paymentMonth int) (YearEndBonus, error)
}
