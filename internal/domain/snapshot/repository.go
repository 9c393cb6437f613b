package snapshot

import (
	"context"

	"github.com/acctfirm/backoffice-go/internal/domain/payroll"
)

// SnapshotRepository is append-only persistence for payroll snapshots.
// Insert must enforce uniqueness on (month, version) and return
// ErrVersionConflict when a concurrent finalize already claimed the pair.
type SnapshotRepository interface {
	// MaxVersion returns the highest stored version for the month, 0 when
	// the month has never been finalized.
	MaxVersion(ctx context.Context, m payroll.Month) (int, error)

	Insert(ctx context.Context, snap Snapshot) (Snapshot, error)

	GetByMonthVersion(ctx context.Context, m payroll.Month, version int) (Snapshot, error)

	// Latest returns the highest-version snapshot for the month, or
	// ErrSnapshotNotFound.
	Latest(ctx context.Context, m payroll.Month) (Snapshot, error)

	List(ctx context.Context, m payroll.Month) ([]Summary, error)
}
