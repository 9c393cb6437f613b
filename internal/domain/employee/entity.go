package employee

import "time"

// Employee is the master-data record the payroll engine consumes. The HR
// subsystem owns the full profile; only the fields the engine reads are
// modeled here.
type Employee struct {
	ID              string
	EmployeeCode    string
	FullName        string
	BaseSalaryCents int64
	HireDate        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// Active reports whether the employee participates in payroll runs.
func (e Employee) Active() bool {
	return e.DeletedAt == nil
}
