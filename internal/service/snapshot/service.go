package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/acctfirm/backoffice-go/internal/domain/employee"
	"github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/domain/snapshot"
)

// finalizeAttempts bounds the retry loop when concurrent finalize calls
// race for the same (month, version) pair.
const finalizeAttempts = 3

// Calculator is the per-employee entry point of the payroll engine.
type Calculator interface {
	CalculateEmployeePayroll(ctx context.Context, employeeID string, m payroll.Month) (payroll.Result, error)
}

// Service runs the calculator over all active employees, persists
// immutable versioned snapshots and diffs consecutive versions.
type Service struct {
	employees employee.EmployeeRepository
	calc      Calculator
	snapshots snapshot.SnapshotRepository
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(
	employees employee.EmployeeRepository,
	calc Calculator,
	snapshots snapshot.SnapshotRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		employees: employees,
		calc:      calc,
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// SkippedEmployee records a per-employee failure inside a full run.
type SkippedEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

// PreviewResult is a full-month run that was not persisted.
type PreviewResult struct {
	Month   string            `json:"month"`
	Results []payroll.Result  `json:"results"`
	Skipped []SkippedEmployee `json:"skipped,omitempty"`
}

// Preview calculates the whole month without persisting anything.
// One employee's bad data never aborts the run: failures are logged,
// recorded as skipped, and the remaining employees continue.
func (s *Service) Preview(ctx context.Context, m payroll.Month) (PreviewResult, error) {
	results, skipped, err := s.runAll(ctx, m)
	if err != nil {
		return PreviewResult{}, err
	}
	return PreviewResult{Month: m.String(), Results: results, Skipped: skipped}, nil
}

// Finalize runs the month, diffs against the previous stored version and
// appends a new immutable snapshot. The version counter read and the
// insert race under concurrency; the repository's uniqueness guard on
// (month, version) plus this bounded retry serializes them.
func (s *Service) Finalize(ctx context.Context, m payroll.Month, notes *string, actor string) (snapshot.Snapshot, error) {
	results, skipped, err := s.runAll(ctx, m)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	for _, sk := range skipped {
		s.logger.Warn("employee excluded from snapshot",
			slog.String("month", m.String()),
			slog.String("employee_id", sk.EmployeeID),
			slog.String("reason", sk.Reason))
	}

	var lastErr error
	for attempt := 0; attempt < finalizeAttempts; attempt++ {
		maxVersion, err := s.snapshots.MaxVersion(ctx, m)
		if err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("read max snapshot version: %w", err)
		}

		var diff *snapshot.Diff
		if maxVersion > 0 {
			prev, err := s.snapshots.GetByMonthVersion(ctx, m, maxVersion)
			if err != nil {
				return snapshot.Snapshot{}, fmt.Errorf("load previous snapshot: %w", err)
			}
			d := diffResults(prev.Results, results)
			d.PreviousVersion = prev.Version
			diff = &d
		}

		snap := snapshot.Snapshot{
			ID:        uuid.NewString(),
			Month:     m.String(),
			Version:   maxVersion + 1,
			CreatedAt: s.now().UTC(),
			CreatedBy: actor,
			Notes:     notes,
			Results:   results,
			Changes:   diff,
		}

		created, err := s.snapshots.Insert(ctx, snap)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, snapshot.ErrVersionConflict) {
			return snapshot.Snapshot{}, fmt.Errorf("persist snapshot: %w", err)
		}
		lastErr = err
		s.logger.Info("snapshot version conflict, retrying",
			slog.String("month", m.String()),
			slog.Int("version", maxVersion+1))
	}
	return snapshot.Snapshot{}, fmt.Errorf("finalize %s: %w", m, lastErr)
}

func (s *Service) Get(ctx context.Context, m payroll.Month, version int) (snapshot.Snapshot, error) {
	return s.snapshots.GetByMonthVersion(ctx, m, version)
}

func (s *Service) Latest(ctx context.Context, m payroll.Month) (snapshot.Snapshot, error) {
	return s.snapshots.Latest(ctx, m)
}

func (s *Service) List(ctx context.Context, m payroll.Month) ([]snapshot.Summary, error) {
	return s.snapshots.List(ctx, m)
}

func (s *Service) runAll(ctx context.Context, m payroll.Month) ([]payroll.Result, []SkippedEmployee, error) {
	employees, err := s.employees.GetActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list active employees: %w", err)
	}

	results := make([]payroll.Result, 0, len(employees))
	var skipped []SkippedEmployee
	for _, emp := range employees {
		res, err := s.calc.CalculateEmployeePayroll(ctx, emp.ID, m)
		if err != nil {
			s.logger.Error("payroll calculation failed",
				slog.String("month", m.String()),
				slog.String("employee_id", emp.ID),
				slog.Any("error", err))
			skipped = append(skipped, SkippedEmployee{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				Reason:       err.Error(),
			})
			continue
		}
		results = append(results, res)
	}
	return results, skipped, nil
}

// diffResults compares two result sets by employee id. New employees show
// their full net pay as the delta; employees present only in the previous
// version are reported as removed with the negative of their old net.
func diffResults(previous, current []payroll.Result) snapshot.Diff {
	prevByID := make(map[string]payroll.Result, len(previous))
	for _, r := range previous {
		prevByID[r.EmployeeID] = r
	}

	var d snapshot.Diff
	seen := make(map[string]bool, len(current))
	for _, cur := range current {
		seen[cur.EmployeeID] = true
		prev, ok := prevByID[cur.EmployeeID]
		if !ok {
			d.Added = append(d.Added, snapshot.ChangeEntry{
				EmployeeID:    cur.EmployeeID,
				EmployeeName:  cur.EmployeeName,
				Kind:          snapshot.ChangeAdded,
				NetDeltaCents: cur.NetCents,
			})
			d.TotalNetDeltaCents += cur.NetCents
			continue
		}

		delta := cur.NetCents - prev.NetCents
		if delta == 0 && cur.IsFullAttendance == prev.IsFullAttendance {
			continue
		}
		d.Modified = append(d.Modified, snapshot.ChangeEntry{
			EmployeeID:    cur.EmployeeID,
			EmployeeName:  cur.EmployeeName,
			Kind:          snapshot.ChangeModified,
			NetDeltaCents: delta,
			Changes:       describeChanges(prev, cur),
		})
		d.TotalNetDeltaCents += delta
	}

	for _, prev := range previous {
		if seen[prev.EmployeeID] {
			continue
		}
		d.Removed = append(d.Removed, snapshot.ChangeEntry{
			EmployeeID:    prev.EmployeeID,
			EmployeeName:  prev.EmployeeName,
			Kind:          snapshot.ChangeRemoved,
			NetDeltaCents: -prev.NetCents,
		})
		d.TotalNetDeltaCents -= prev.NetCents
	}
	return d
}

func describeChanges(prev, cur payroll.Result) []string {
	var changes []string
	if prev.BaseSalaryCents != cur.BaseSalaryCents {
		changes = append(changes, fmt.Sprintf("base salary: %d -> %d cents", prev.BaseSalaryCents, cur.BaseSalaryCents))
	}
	if prev.Overtime.ExpiredCompPayCents != cur.Overtime.ExpiredCompPayCents {
		changes = append(changes, fmt.Sprintf("overtime pay: %d -> %d cents", prev.Overtime.ExpiredCompPayCents, cur.Overtime.ExpiredCompPayCents))
	}
	if prev.Leave.TotalCents != cur.Leave.TotalCents {
		changes = append(changes, fmt.Sprintf("leave deduction: %d -> %d cents", prev.Leave.TotalCents, cur.Leave.TotalCents))
	}
	if prev.IsFullAttendance != cur.IsFullAttendance {
		changes = append(changes, fmt.Sprintf("full attendance: %t -> %t", prev.IsFullAttendance, cur.IsFullAttendance))
	}
	if prev.NetCents != cur.NetCents {
		changes = append(changes, fmt.Sprintf("net pay: %d -> %d cents", prev.NetCents, cur.NetCents))
	}
	return changes
}
