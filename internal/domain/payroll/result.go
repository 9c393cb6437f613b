package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetSummary aggregates one month of raw entries by work-type class.
// Hour totals carry one decimal place, weighted hours two.
type TimesheetSummary struct {
	TotalHours    decimal.Decimal `json:"total_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	WeightedHours decimal.Decimal `json:"weighted_hours"`
}

// OvertimeRecord is one day's worth of one overtime work-type, ordered by
// date. CompHoursDeducted and CompHoursRemaining reflect the FIFO match of
// compensatory leave taken against compensatory hours earned.
type OvertimeRecord struct {
	Date               time.Time       `json:"date"`
	WorkTypeCode       int             `json:"work_type_code"`
	WorkTypeName       string          `json:"work_type_name"`
	Hours              decimal.Decimal `json:"hours"`
	Multiplier         decimal.Decimal `json:"multiplier"`
	FixedEightHour     bool            `json:"fixed_eight_hour"`
	CompHoursGenerated decimal.Decimal `json:"comp_hours_generated"`
	CompHoursDeducted  decimal.Decimal `json:"comp_hours_deducted"`
	CompHoursRemaining decimal.Decimal `json:"comp_hours_remaining"`
}

// OvertimeBreakdown is the full month ledger: per-day records plus the
// totals that tie them together. TotalCompHoursGenerated always equals the
// sum of deducted and unused hours.
type OvertimeBreakdown struct {
	Records                 []OvertimeRecord `json:"records"`
	TotalCompHoursGenerated decimal.Decimal  `json:"total_comp_hours_generated"`
	TotalCompHoursUsed      decimal.Decimal  `json:"total_comp_hours_used"`
	UnusedCompHours         decimal.Decimal  `json:"unused_comp_hours"`
	ExpiredCompPayCents     int64            `json:"expired_comp_pay_cents"`
}

// ItemAmount is a classified salary line item as it enters the month's run.
type ItemAmount struct {
	ItemCode           string       `json:"item_code"`
	ItemName           string       `json:"item_name"`
	Category           ItemCategory `json:"category"`
	AmountCents        int64        `json:"amount_cents"`
	FullAttendanceOnly bool         `json:"full_attendance_only"`
	ShouldPay          bool         `json:"should_pay"`
}

// MealAllowanceDetail lists the dates whose qualifying-code hours reached
// the configured threshold.
type MealAllowanceDetail struct {
	QualifyingDates []time.Time `json:"qualifying_dates"`
	PerTimeCents    int64       `json:"per_time_cents"`
	AmountCents     int64       `json:"amount_cents"`
}

// TripAllowance is one approved business trip valued by distance tier.
type TripAllowance struct {
	Date        time.Time       `json:"date"`
	DistanceKm  decimal.Decimal `json:"distance_km"`
	Intervals   int64           `json:"intervals"`
	AmountCents int64           `json:"amount_cents"`
}

type TransportAllowanceDetail struct {
	Trips       []TripAllowance `json:"trips"`
	AmountCents int64           `json:"amount_cents"`
}

// LeaveDeductionDetail itemizes pay deductions for sick, personal and
// menstrual leave. Menstrual free/merged days track the three-day yearly
// carry; all menstrual hours deduct at the fixed half rate either way.
type LeaveDeductionDetail struct {
	SickHours         decimal.Decimal `json:"sick_hours"`
	PersonalHours     decimal.Decimal `json:"personal_hours"`
	MenstrualHours    decimal.Decimal `json:"menstrual_hours"`
	MenstrualFreeDays decimal.Decimal `json:"menstrual_free_days"`
	MenstrualMerged   decimal.Decimal `json:"menstrual_merged_days"`

	HourlyRateCents  int64 `json:"hourly_rate_cents"`
	DailySalaryCents int64 `json:"daily_salary_cents"`

	SickDeductionCents      int64 `json:"sick_deduction_cents"`
	PersonalDeductionCents  int64 `json:"personal_deduction_cents"`
	MenstrualDeductionCents int64 `json:"menstrual_deduction_cents"`
	TotalCents              int64 `json:"total_cents"`
}

// TraceStep is one structured entry of the calculation trace. The engine
// returns the trace with the result instead of logging mid-calculation.
type TraceStep struct {
	Stage       string `json:"stage"`
	Detail      string `json:"detail"`
	AmountCents int64  `json:"amount_cents,omitempty"`
}

// Result is the full itemization of one employee's month. Every
// intermediate is exposed for audit and display; the totals at the bottom
// are derived from the parts above and nothing else.
type Result struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"`

	BaseSalaryCents  int64 `json:"base_salary_cents"`
	HourlyRateCents  int64 `json:"hourly_rate_cents"`
	IsFullAttendance bool  `json:"is_full_attendance"`

	Timesheet TimesheetSummary  `json:"timesheet"`
	Overtime  OvertimeBreakdown `json:"overtime"`

	RegularAllowances   []ItemAmount `json:"regular_allowances"`
	IrregularAllowances []ItemAmount `json:"irregular_allowances"`
	Bonuses             []ItemAmount `json:"bonuses"`
	YearEndBonuses      []ItemAmount `json:"year_end_bonuses"`
	DeductionItems      []ItemAmount `json:"deduction_items"`

	PerformanceBonusCents int64 `json:"performance_bonus_cents"`
	PerformanceOverridden bool  `json:"performance_overridden"`

	Meal      MealAllowanceDetail      `json:"meal_allowance"`
	Transport TransportAllowanceDetail `json:"transport_allowance"`
	Leave     LeaveDeductionDetail     `json:"leave_deduction"`

	GrossCents          int64 `json:"gross_cents"`
	TotalDeductionCents int64 `json:"total_deduction_cents"`
	NetCents            int64 `json:"net_cents"`

	Trace []TraceStep `json:"trace,omitempty"`
}
