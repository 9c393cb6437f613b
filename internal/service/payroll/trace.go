package payroll

import (
	"fmt"

	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
)

// trace collects structured calculation steps. The recorder is returned
// with the result so the calculation itself performs no logging.
type trace struct {
	steps []domain.TraceStep
}

func (t *trace) add(stage, format string, args ...any) {
	t.steps = append(t.steps, domain.TraceStep{
		Stage:  stage,
		Detail: fmt.Sprintf(format, args...),
	})
}

func (t *trace) amount(stage string, cents int64, format string, args ...any) {
	t.steps = append(t.steps, domain.TraceStep{
		Stage:       stage,
		Detail:      fmt.Sprintf(format, args...),
		AmountCents: cents,
	})
}
