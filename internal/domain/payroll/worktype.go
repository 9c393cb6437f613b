package payroll

import "github.com/shopspring/decimal"

// WorkType describes how hours logged under a work-type code are valued.
// The table is static: timesheet entries reference codes 1-12.
type WorkType struct {
	Code           int
	Name           string
	Multiplier     decimal.Decimal
	IsOvertime     bool
	FixedEightHour bool
}

// MealAllowanceWorkType is the first block of weekday overtime; days whose
// hours under this code reach the configured threshold earn a meal allowance.
const MealAllowanceWorkType = 2

// PerformanceItemCode is the reserved salary-item code for the monthly
// performance bonus. Items with this code are resolved separately and may be
// overridden by a per-month bonus adjustment.
const PerformanceItemCode = "PERF"

var workTypes = map[int]WorkType{
	1:  {Code: 1, Name: "regular work", Multiplier: decimal.NewFromFloat(1.0)},
	2:  {Code: 2, Name: "weekday overtime, first 2h", Multiplier: decimal.NewFromFloat(1.34), IsOvertime: true},
	3:  {Code: 3, Name: "weekday overtime, beyond 2h", Multiplier: decimal.NewFromFloat(1.67), IsOvertime: true},
	4:  {Code: 4, Name: "rest-day overtime, first 2h", Multiplier: decimal.NewFromFloat(1.34), IsOvertime: true},
	5:  {Code: 5, Name: "rest-day overtime, hours 3-8", Multiplier: decimal.NewFromFloat(1.67), IsOvertime: true},
	6:  {Code: 6, Name: "rest-day overtime, hours 9-12", Multiplier: decimal.NewFromFloat(2.67), IsOvertime: true},
	7:  {Code: 7, Name: "holiday work, first 8h", Multiplier: decimal.NewFromFloat(1.0), IsOvertime: true, FixedEightHour: true},
	8:  {Code: 8, Name: "holiday overtime, beyond 8h", Multiplier: decimal.NewFromFloat(2.0), IsOvertime: true},
	9:  {Code: 9, Name: "national holiday work", Multiplier: decimal.NewFromFloat(2.0), IsOvertime: true},
	10: {Code: 10, Name: "scheduled day off, first 8h", Multiplier: decimal.NewFromFloat(1.0), IsOvertime: true, FixedEightHour: true},
	11: {Code: 11, Name: "night shift", Multiplier: decimal.NewFromFloat(1.0)},
	12: {Code: 12, Name: "standby duty", Multiplier: decimal.NewFromFloat(0.5)},
}

// WorkTypeByCode looks up the static work-type table.
func WorkTypeByCode(code int) (WorkType, bool) {
	wt, ok := workTypes[code]
	return wt, ok
}
