package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	domain "github.com/acctfirm/backoffice-go/internal/domain/payroll"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func entry(d int, code int, hours string) domain.TimeEntry {
	return domain.TimeEntry{Date: day(d), WorkTypeCode: code, Hours: dec(hours)}
}

func TestAggregate_Empty(t *testing.T) {
	sum := TimesheetAggregator{}.Aggregate(nil)
	assert.True(t, sum.TotalHours.IsZero())
	assert.True(t, sum.OvertimeHours.IsZero())
	assert.True(t, sum.WeightedHours.IsZero())
}

func TestAggregate_Totals(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(2, 1, "8"),    // regular
		entry(2, 2, "1.5"),  // weekday OT x1.34
		entry(3, 3, "2"),    // weekday OT x1.67
	}
	sum := TimesheetAggregator{}.Aggregate(entries)

	assert.True(t, sum.TotalHours.Equal(dec("11.5")), "total %s", sum.TotalHours)
	assert.True(t, sum.OvertimeHours.Equal(dec("3.5")), "overtime %s", sum.OvertimeHours)
	// 8*1 + 1.5*1.34 + 2*1.67 = 13.35
	assert.True(t, sum.WeightedHours.Equal(dec("13.35")), "weighted %s", sum.WeightedHours)
}

func TestAggregate_FixedEightHourGroupCollapses(t *testing.T) {
	// Two same-day entries under a fixed-8h code weigh exactly 8.0 together,
	// no matter how many raw hours the group carries.
	entries := []domain.TimeEntry{
		entry(7, 7, "6"),
		entry(7, 7, "4"),
	}
	sum := TimesheetAggregator{}.Aggregate(entries)

	assert.True(t, sum.TotalHours.Equal(dec("10")), "total %s", sum.TotalHours)
	assert.True(t, sum.WeightedHours.Equal(dec("8")), "weighted %s", sum.WeightedHours)
}

func TestAggregate_FixedEightHourPerGroup(t *testing.T) {
	// Distinct (date, code) groups each contribute their own 8 hours.
	entries := []domain.TimeEntry{
		entry(7, 7, "5"),
		entry(8, 7, "3"),
		entry(8, 10, "2"),
	}
	sum := TimesheetAggregator{}.Aggregate(entries)

	assert.True(t, sum.WeightedHours.Equal(dec("24")), "weighted %s", sum.WeightedHours)
}

func TestAggregate_UnknownCodeSkipped(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(2, 1, "8"),
		entry(2, 99, "4"),
	}
	sum := TimesheetAggregator{}.Aggregate(entries)
	assert.True(t, sum.TotalHours.Equal(dec("8")))
}

func TestAggregate_Deterministic(t *testing.T) {
	entries := []domain.TimeEntry{
		entry(2, 1, "8"), entry(3, 2, "2"), entry(7, 7, "9"),
	}
	first := TimesheetAggregator{}.Aggregate(entries)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, TimesheetAggregator{}.Aggregate(entries))
	}
}
