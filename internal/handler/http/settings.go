package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/acctfirm/backoffice-go/internal/domain/settings"
	"github.com/acctfirm/backoffice-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetEffective(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	provider settings.Provider
}

func NewSettingsHandler(provider settings.Provider) SettingsHandler {
	return &settingsHandlerImpl{provider: provider}
}

type effectiveSettingsResponse struct {
	HourlyRateDivisor        int64           `json:"hourly_rate_divisor"`
	LeaveDailySalaryDivisor  int64           `json:"leave_daily_salary_divisor"`
	SickLeaveDeductionRate   decimal.Decimal `json:"sick_leave_deduction_rate"`
	PersonalLeaveDeductRate  decimal.Decimal `json:"personal_leave_deduction_rate"`
	MealAllowanceMinOTHours  decimal.Decimal `json:"meal_allowance_min_overtime_hours"`
	MealAllowancePerTime     int64           `json:"meal_allowance_per_time"`
	TransportAmountPerInterv int64           `json:"transport_amount_per_interval"`
	TransportKmPerInterval   int64           `json:"transport_km_per_interval"`
}

// GetEffective reports the values the engine would use right now, with
// defaults applied for anything unset.
func (h *settingsHandlerImpl) GetEffective(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	response.Success(w, effectiveSettingsResponse{
		HourlyRateDivisor:        h.provider.Int(ctx, settings.KeyHourlyRateDivisor, settings.DefaultHourlyRateDivisor),
		LeaveDailySalaryDivisor:  h.provider.Int(ctx, settings.KeyLeaveDailySalaryDivisor, settings.DefaultLeaveDailySalaryDivisor),
		SickLeaveDeductionRate:   h.provider.Decimal(ctx, settings.KeySickLeaveDeductionRate, settings.DefaultSickLeaveDeductionRate),
		PersonalLeaveDeductRate:  h.provider.Decimal(ctx, settings.KeyPersonalLeaveDeductRate, settings.DefaultPersonalLeaveDeductRate),
		MealAllowanceMinOTHours:  h.provider.Decimal(ctx, settings.KeyMealAllowanceMinOTHours, settings.DefaultMealAllowanceMinOTHours),
		MealAllowancePerTime:     h.provider.Int(ctx, settings.KeyMealAllowancePerTime, settings.DefaultMealAllowancePerTime),
		TransportAmountPerInterv: h.provider.Int(ctx, settings.KeyTransportAmountPerInterv, settings.DefaultTransportAmountPerInterv),
		TransportKmPerInterval:   h.provider.Int(ctx, settings.KeyTransportKmPerInterval, settings.DefaultTransportKmPerInterval),
	})
}
