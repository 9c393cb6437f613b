package snapshot

import "errors"

var (
	ErrSnapshotNotFound = errors.New("payroll snapshot not found")
	// ErrVersionConflict signals that another finalize won the race for the
	// same (month, version) pair; callers re-read the max version and retry.
	ErrVersionConflict = errors.New("snapshot version already exists for this month")
)
