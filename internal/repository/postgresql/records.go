package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/pkg/database"
)

// recordSourceImpl serves the engine's read-only record lookups: time
// entries, leave requests, business trips, salary item assignments, bonus
// adjustments and year-end bonus records.
type recordSourceImpl struct {
	db *database.DB
}

func NewRecordSource(db *database.DB) payroll.RecordSource {
	return &recordSourceImpl{db: db}
}

func (r *recordSourceImpl) TimeEntries(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry_date, work_type_code, hours
		FROM time_entries
		WHERE employee_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.TimeEntry
	for rows.Next() {
		var e payroll.TimeEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.WorkTypeCode, &e.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *recordSourceImpl) ApprovedLeaves(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, unit, amount, start_date, end_date, status
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2
		  AND start_date <= $4 AND end_date >= $3
		ORDER BY start_date
	`

	return r.queryLeaves(ctx, q, query, employeeID, payroll.RequestStatusApproved, from, to)
}

func (r *recordSourceImpl) ApprovedLeavesInYear(ctx context.Context, employeeID string, leaveType payroll.LeaveType, year int, through time.Time) ([]payroll.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	query := `
		SELECT id, employee_id, leave_type, unit, amount, start_date, end_date, status
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2 AND leave_type = $3
		  AND start_date BETWEEN $4 AND $5
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, payroll.RequestStatusApproved, leaveType, yearStart, through)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave history: %w", err)
	}
	defer rows.Close()
	return scanLeaves(rows)
}

func (r *recordSourceImpl) queryLeaves(ctx context.Context, q database.Querier, query string, args ...any) ([]payroll.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()
	return scanLeaves(rows)
}

func scanLeaves(rows pgx.Rows) ([]payroll.LeaveRequest, error) {
	var leaves []payroll.LeaveRequest
	for rows.Next() {
		var l payroll.LeaveRequest
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Type, &l.Unit, &l.Amount, &l.StartDate, &l.EndDate, &l.Status); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

func (r *recordSourceImpl) ApprovedTrips(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.BusinessTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, trip_date, distance_km, status
		FROM business_trips
		WHERE employee_id = $1 AND status = $2 AND trip_date BETWEEN $3 AND $4
		ORDER BY trip_date
	`

	rows, err := q.Query(ctx, query, employeeID, payroll.RequestStatusApproved, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query business trips: %w", err)
	}
	defer rows.Close()

	var trips []payroll.BusinessTrip
	for rows.Next() {
		var t payroll.BusinessTrip
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Date, &t.DistanceKm, &t.Status); err != nil {
			return nil, fmt.Errorf("failed to scan business trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *recordSourceImpl) ActiveSalaryItems(ctx context.Context, employeeID string) ([]payroll.SalaryItemAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.item_type_id, t.code, t.name, t.category,
			   a.amount_cents, a.recurring_type, a.recurring_months,
			   a.effective_date, a.expiry_date, a.is_active,
			   t.is_full_attendance_bonus
		FROM salary_item_assignments a
		JOIN salary_item_types t ON t.id = a.item_type_id
		WHERE a.employee_id = $1 AND a.is_active = TRUE
		ORDER BY t.code, a.effective_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary items: %w", err)
	}
	defer rows.Close()

	var items []payroll.SalaryItemAssignment
	for rows.Next() {
		var it payroll.SalaryItemAssignment
		err := rows.Scan(
			&it.ID, &it.EmployeeID, &it.ItemTypeID, &it.ItemCode, &it.ItemName, &it.Category,
			&it.AmountCents, &it.RecurringType, &it.RecurringMonths,
			&it.EffectiveDate, &it.ExpiryDate, &it.IsActive,
			&it.FullAttendanceOnly,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *recordSourceImpl) BonusAdjustment(ctx context.Context, employeeID string, m payroll.Month) (payroll.BonusAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, adjustment_year, adjustment_month, amount_cents
		FROM bonus_adjustments
		WHERE employee_id = $1 AND adjustment_year = $2 AND adjustment_month = $3
	`

	var adj payroll.BonusAdjustment
	err := q.QueryRow(ctx, query, employeeID, m.Year, int(m.Month)).Scan(
		&adj.ID, &adj.EmployeeID, &adj.Year, &adj.Month, &adj.AmountCents,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.BonusAdjustment{}, payroll.ErrBonusAdjNotFound
		}
		return payroll.BonusAdjustment{}, fmt.Errorf("failed to get bonus adjustment: %w", err)
	}
	return adj, nil
}

func (r *recordSourceImpl) YearEndBonus(ctx context.Context, employeeID string, year, paymentMonth int) (payroll.YearEndBonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, bonus_year, payment_month, amount_cents
		FROM year_end_bonuses
		WHERE employee_id = $1 AND bonus_year = $2 AND payment_month = $3
	`

	var yeb payroll.YearEndBonus
	err := q.QueryRow(ctx, query, employeeID, year, paymentMonth).Scan(
		&yeb.ID, &yeb.EmployeeID, &yeb.Year, &yeb.PaymentMonth, &yeb.AmountCents,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.YearEndBonus{}, payroll.ErrYearEndNotFound
		}
		return payroll.YearEndBonus{}, fmt.Errorf("failed to get year-end bonus: %w", err)
	}
	return yeb, nil
}
