package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetActive returns all non-deleted employees ordered by employee code.
	GetActive(ctx context.Context) ([]Employee, error)
}
