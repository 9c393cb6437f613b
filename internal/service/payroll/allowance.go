package payroll

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/domain/settings"
)

// MealAllowanceCalculator pays a fixed amount for each day whose hours
// under the designated weekday-overtime code reach the configured minimum.
type MealAllowanceCalculator struct {
	settings settings.Provider
}

func NewMealAllowanceCalculator(p settings.Provider) *MealAllowanceCalculator {
	return &MealAllowanceCalculator{settings: p}
}

func (c *MealAllowanceCalculator) Calculate(ctx context.Context, entries []domain.TimeEntry) domain.MealAllowanceDetail {
	minHours := c.settings.Decimal(ctx, settings.KeyMealAllowanceMinOTHours, settings.DefaultMealAllowanceMinOTHours)
	perTime := c.settings.Int(ctx, settings.KeyMealAllowancePerTime, settings.DefaultMealAllowancePerTime)

	byDate := make(map[string]decimal.Decimal)
	dates := make(map[string]time.Time)
	for _, e := range entries {
		if e.WorkTypeCode != domain.MealAllowanceWorkType {
			continue
		}
		k := e.Date.Format("2006-01-02")
		byDate[k] = byDate[k].Add(e.Hours)
		dates[k] = e.Date
	}

	var qualifying []time.Time
	for k, sum := range byDate {
		// The threshold is inclusive: exactly the minimum qualifies.
		if sum.GreaterThanOrEqual(minHours) {
			qualifying = append(qualifying, dates[k])
		}
	}
	sort.Slice(qualifying, func(i, j int) bool { return qualifying[i].Before(qualifying[j]) })

	perTimeCents := perTime * 100
	return domain.MealAllowanceDetail{
		QualifyingDates: qualifying,
		PerTimeCents:    perTimeCents,
		AmountCents:     int64(len(qualifying)) * perTimeCents,
	}
}

// TransportAllowanceCalculator values each approved business trip by
// distance tier. Trips are computed independently; there is no cross-trip
// batching.
type TransportAllowanceCalculator struct {
	settings settings.Provider
}

func NewTransportAllowanceCalculator(p settings.Provider) *TransportAllowanceCalculator {
	return &TransportAllowanceCalculator{settings: p}
}

func (c *TransportAllowanceCalculator) Calculate(ctx context.Context, trips []domain.BusinessTrip) domain.TransportAllowanceDetail {
	kmPerInterval := c.settings.Int(ctx, settings.KeyTransportKmPerInterval, settings.DefaultTransportKmPerInterval)
	if kmPerInterval <= 0 {
		kmPerInterval = settings.DefaultTransportKmPerInterval
	}
	amountPerInterval := c.settings.Int(ctx, settings.KeyTransportAmountPerInterv, settings.DefaultTransportAmountPerInterv)

	km := decimal.NewFromInt(kmPerInterval)
	detail := domain.TransportAllowanceDetail{}
	for _, t := range trips {
		if t.Status != domain.RequestStatusApproved {
			continue
		}
		var intervals int64
		if t.DistanceKm.IsPositive() {
			intervals = t.DistanceKm.Div(km).Ceil().IntPart()
		}
		tripCents := intervals * amountPerInterval * 100
		detail.Trips = append(detail.Trips, domain.TripAllowance{
			Date:        t.Date,
			DistanceKm:  t.DistanceKm,
			Intervals:   intervals,
			AmountCents: tripCents,
		})
		detail.AmountCents += tripCents
	}
	return detail
}
