package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/handler/http/response"
	"github.com/acctfirm/backoffice-go/internal/pkg/validator"
)

// Calculator is the payroll engine's per-employee entry point.
type Calculator interface {
	CalculateEmployeePayroll(ctx context.Context, employeeID string, m payroll.Month) (payroll.Result, error)
}

type PayrollHandler interface {
	CalculateEmployee(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	calc Calculator
}

func NewPayrollHandler(calc Calculator) PayrollHandler {
	return &payrollHandlerImpl{calc: calc}
}

// CalculateEmployee computes one employee's itemized result for a month
// on demand, without persisting anything.
func (h *payrollHandlerImpl) CalculateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if validator.IsEmpty(employeeID) {
		response.BadRequest(w, "Employee id is required", nil)
		return
	}

	m, err := payroll.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calc.CalculateEmployeePayroll(r.Context(), employeeID, m)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
