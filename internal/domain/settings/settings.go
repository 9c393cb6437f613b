package settings

import (
	"context"

	"github.com/shopspring/decimal"
)

// Recognized keys. Values live in the app_settings table; callers always
// pass the documented default so a missing or malformed row never fails a
// calculation.
const (
	KeyHourlyRateDivisor        = "hourly_rate_divisor"
	KeyLeaveDailySalaryDivisor  = "leave_daily_salary_divisor"
	KeySickLeaveDeductionRate   = "sick_leave_deduction_rate"
	KeyPersonalLeaveDeductRate  = "personal_leave_deduction_rate"
	KeyMealAllowanceMinOTHours  = "meal_allowance_min_overtime_hours"
	KeyMealAllowancePerTime     = "meal_allowance_per_time"
	KeyTransportAmountPerInterv = "transport_amount_per_interval"
	KeyTransportKmPerInterval   = "transport_km_per_interval"
)

// Defaults per key, in the unit the key documents (divisors and currency
// amounts as integers, rates and thresholds as decimals).
var (
	DefaultHourlyRateDivisor        = int64(240)
	DefaultLeaveDailySalaryDivisor  = int64(30)
	DefaultSickLeaveDeductionRate   = decimal.NewFromFloat(0.5)
	DefaultPersonalLeaveDeductRate  = decimal.NewFromFloat(1.0)
	DefaultMealAllowanceMinOTHours  = decimal.NewFromFloat(1.5)
	DefaultMealAllowancePerTime     = int64(100)
	DefaultTransportAmountPerInterv = int64(60)
	DefaultTransportKmPerInterval   = int64(5)
)

// Provider is the injected read-only view of tunable calculation
// parameters. Implementations fall back to the supplied default on any
// missing key or unparseable value; they never surface lookup errors into
// a calculation.
type Provider interface {
	Int(ctx context.Context, key string, def int64) int64
	Decimal(ctx context.Context, key string, def decimal.Decimal) decimal.Decimal
}

// Static is a fixed in-memory Provider, used in tests and as the zero
// configuration when no settings store is wired.
type Static map[string]string

func (s Static) Int(_ context.Context, key string, def int64) int64 {
	raw, ok := s[key]
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return def
	}
	return d.IntPart()
}

func (s Static) Decimal(_ context.Context, key string, def decimal.Decimal) decimal.Decimal {
	raw, ok := s[key]
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return def
	}
	return d
}
