package snapshot

import (
	"time"

	"github.com/acctfirm/backoffice-go/internal/domain/payroll"
)

// Snapshot freezes one full payroll run for a month. Snapshots are
// append-only: a new finalize for the same month always writes version
// max+1 and never mutates an existing row.
type Snapshot struct {
	ID        string           `json:"id"`
	Month     string           `json:"month"`
	Version   int              `json:"version"`
	CreatedAt time.Time        `json:"created_at"`
	CreatedBy string           `json:"created_by"`
	Notes     *string          `json:"notes,omitempty"`
	Results   []payroll.Result `json:"results"`
	Changes   *Diff            `json:"changes,omitempty"`
}

// Summary is the listing shape: everything but the per-employee payloads.
type Summary struct {
	ID            string    `json:"id"`
	Month         string    `json:"month"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
	Notes         *string   `json:"notes,omitempty"`
	EmployeeCount int       `json:"employee_count"`
	TotalNetCents int64     `json:"total_net_cents"`
}

// ChangeKind enum
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// ChangeEntry describes one employee's movement between two versions.
// Changes holds human-readable per-field strings for modified entries.
type ChangeEntry struct {
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  string     `json:"employee_name"`
	Kind          ChangeKind `json:"kind"`
	NetDeltaCents int64      `json:"net_delta_cents"`
	Changes       []string   `json:"changes,omitempty"`
}

// Diff is the structured comparison against the previous version of the
// same month. TotalNetDeltaCents sums the net movement of added, modified
// and removed employees.
type Diff struct {
	PreviousVersion    int           `json:"previous_version"`
	Added              []ChangeEntry `json:"added,omitempty"`
	Modified           []ChangeEntry `json:"modified,omitempty"`
	Removed            []ChangeEntry `json:"removed,omitempty"`
	TotalNetDeltaCents int64         `json:"total_net_delta_cents"`
}
