package response

import (
	"errors"
	"net/http"

	"github.com/acctfirm/backoffice-go/internal/domain/employee"
	"github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/domain/snapshot"
	"github.com/acctfirm/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, payroll.ErrEmployeeNotFound), errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Snapshot domain errors
	case errors.Is(err, snapshot.ErrSnapshotNotFound):
		NotFound(w, "Payroll snapshot not found")
	case errors.Is(err, snapshot.ErrVersionConflict):
		Conflict(w, "A concurrent finalize claimed this snapshot version")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
