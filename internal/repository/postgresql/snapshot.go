package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/domain/snapshot"
	"github.com/acctfirm/backoffice-go/internal/pkg/database"
)

// snapshotRepositoryImpl persists payroll snapshots append-only. The
// payroll_snapshots table carries a unique constraint on (month, version);
// a violated insert surfaces as snapshot.ErrVersionConflict so the service
// can re-read the counter and retry.
type snapshotRepositoryImpl struct {
	db *database.DB
}

func NewSnapshotRepository(db *database.DB) snapshot.SnapshotRepository {
	return &snapshotRepositoryImpl{db: db}
}

func (r *snapshotRepositoryImpl) MaxVersion(ctx context.Context, m payroll.Month) (int, error) {
	q := GetQuerier(ctx, r.db)

	var version int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM payroll_snapshots WHERE month = $1`,
		m.String(),
	).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read max snapshot version: %w", err)
	}
	return version, nil
}

func (r *snapshotRepositoryImpl) Insert(ctx context.Context, snap snapshot.Snapshot) (snapshot.Snapshot, error) {
	results, err := json.Marshal(snap.Results)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("failed to encode snapshot results: %w", err)
	}
	var changes []byte
	if snap.Changes != nil {
		changes, err = json.Marshal(snap.Changes)
		if err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("failed to encode snapshot changes: %w", err)
		}
	}

	query := `
		INSERT INTO payroll_snapshots (id, month, version, created_at, created_by, notes, results, changes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err = WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		// Advisory lock keyed on the month makes concurrent finalizes queue
		// instead of churning through insert-conflict-retry; the unique
		// constraint on (month, version) still decides the winner.
		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, snap.Month); err != nil {
			return fmt.Errorf("failed to lock snapshot month: %w", err)
		}

		return q.QueryRow(ctx, query,
			snap.ID, snap.Month, snap.Version, snap.CreatedAt, snap.CreatedBy, snap.Notes, results, changes,
		).Scan(&snap.CreatedAt)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return snapshot.Snapshot{}, snapshot.ErrVersionConflict
		}
		return snapshot.Snapshot{}, fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return snap, nil
}

func (r *snapshotRepositoryImpl) GetByMonthVersion(ctx context.Context, m payroll.Month, version int) (snapshot.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, month, version, created_at, created_by, notes, results, changes
		FROM payroll_snapshots
		WHERE month = $1 AND version = $2
	`
	return r.scanSnapshot(q.QueryRow(ctx, query, m.String(), version))
}

func (r *snapshotRepositoryImpl) Latest(ctx context.Context, m payroll.Month) (snapshot.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, month, version, created_at, created_by, notes, results, changes
		FROM payroll_snapshots
		WHERE month = $1
		ORDER BY version DESC
		LIMIT 1
	`
	return r.scanSnapshot(q.QueryRow(ctx, query, m.String()))
}

func (r *snapshotRepositoryImpl) scanSnapshot(row pgx.Row) (snapshot.Snapshot, error) {
	var snap snapshot.Snapshot
	var results []byte
	var changes []byte
	err := row.Scan(
		&snap.ID, &snap.Month, &snap.Version, &snap.CreatedAt, &snap.CreatedBy,
		&snap.Notes, &results, &changes,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return snapshot.Snapshot{}, snapshot.ErrSnapshotNotFound
		}
		return snapshot.Snapshot{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	if err := json.Unmarshal(results, &snap.Results); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("failed to decode snapshot results: %w", err)
	}
	if len(changes) > 0 {
		snap.Changes = &snapshot.Diff{}
		if err := json.Unmarshal(changes, snap.Changes); err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("failed to decode snapshot changes: %w", err)
		}
	}
	return snap, nil
}

func (r *snapshotRepositoryImpl) List(ctx context.Context, m payroll.Month) ([]snapshot.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, month, version, created_at, created_by, notes,
			   jsonb_array_length(results),
			   COALESCE((SELECT SUM((r->>'net_cents')::bigint) FROM jsonb_array_elements(results) r), 0)
		FROM payroll_snapshots
		WHERE month = $1
		ORDER BY version DESC
	`

	rows, err := q.Query(ctx, query, m.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var summaries []snapshot.Summary
	for rows.Next() {
		var s snapshot.Summary
		err := rows.Scan(&s.ID, &s.Month, &s.Version, &s.CreatedAt, &s.CreatedBy, &s.Notes, &s.EmployeeCount, &s.TotalNetCents)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
