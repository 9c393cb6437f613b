package payroll

import "github.com/shopspring/decimal"

// roundCents rounds half away from zero to a whole cent count. Used for
// rates and allowances.
func roundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// floorCents truncates toward negative infinity. Used for leave
// deductions, which never round up against the employee.
func floorCents(d decimal.Decimal) int64 {
	return d.Floor().IntPart()
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
