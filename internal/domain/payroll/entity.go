package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoursPerDay converts day-unit leave amounts to hours.
var HoursPerDay = decimal.NewFromInt(8)

// TimeEntry is a single raw timesheet line. Entries are immutable once
// recorded; multiple entries per day and work-type are legal and summed.
type TimeEntry struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	WorkTypeCode int
	Hours        decimal.Decimal
}

// LeaveType enum
type LeaveType string

const (
	LeaveTypeSick         LeaveType = "sick"
	LeaveTypePersonal     LeaveType = "personal"
	LeaveTypeMenstrual    LeaveType = "menstrual"
	LeaveTypeCompensatory LeaveType = "compensatory"
	LeaveTypeAnnual       LeaveType = "annual"
	LeaveTypeMarriage     LeaveType = "marriage"
	LeaveTypeBereavement  LeaveType = "bereavement"
	LeaveTypeMaternity    LeaveType = "maternity"
	LeaveTypeOfficial     LeaveType = "official"
)

// LeaveUnit enum
type LeaveUnit string

const (
	LeaveUnitDay  LeaveUnit = "day"
	LeaveUnitHour LeaveUnit = "hour"
)

// RequestStatus enum shared by leave requests and business trips.
// Only approved records participate in payroll.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	Unit       LeaveUnit
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	Status     RequestStatus
}

// Hours returns the request's amount expressed in hours.
func (l LeaveRequest) Hours() decimal.Decimal {
	if l.Unit == LeaveUnitDay {
		return l.Amount.Mul(HoursPerDay)
	}
	return l.Amount
}

type BusinessTrip struct {
	ID         string
	EmployeeID string
	Date       time.Time
	DistanceKm decimal.Decimal
	Status     RequestStatus
}

// ItemCategory enum for configured salary line items.
type ItemCategory string

const (
	CategoryRegularAllowance   ItemCategory = "regular_allowance"
	CategoryIrregularAllowance ItemCategory = "irregular_allowance"
	CategoryBonus              ItemCategory = "bonus"
	CategoryYearEndBonus       ItemCategory = "year_end_bonus"
	CategoryDeduction          ItemCategory = "deduction"
)

// RecurringType enum
type RecurringType string

const (
	RecurringMonthly RecurringType = "monthly"
	RecurringYearly  RecurringType = "yearly"
	RecurringOnce    RecurringType = "once"
)

// SalaryItemAssignment binds a configured salary item type to an employee.
// RecurringMonths is consulted only when RecurringType is yearly.
type SalaryItemAssignment struct {
	ID              string
	EmployeeID      string
	ItemTypeID      string
	ItemCode        string
	ItemName        string
	Category        ItemCategory
	AmountCents     int64
	RecurringType   RecurringType
	RecurringMonths []int
	EffectiveDate   time.Time
	ExpiryDate      *time.Time
	IsActive        bool

	// FullAttendanceOnly marks bonus items that pay only in months with full
	// attendance. Legacy rows carrying the flag in their display name are
	// normalized to this field at migration time, not during calculation.
	FullAttendanceOnly bool
}

// EffectiveIn reports whether the assignment's effective window overlaps m.
func (a SalaryItemAssignment) EffectiveIn(m Month) bool {
	if a.EffectiveDate.After(m.LastDay()) {
		return false
	}
	if a.ExpiryDate != nil && a.ExpiryDate.Before(m.FirstDay()) {
		return false
	}
	return true
}

// BonusAdjustment is a per-employee-per-month override of the performance
// bonus. When present it fully replaces the assignment-derived default.
type BonusAdjustment struct {
	ID          string
	EmployeeID  string
	Year        int
	Month       int
	AmountCents int64
}

type YearEndBonus struct {
	ID           string
	EmployeeID   string
	Year         int
	PaymentMonth int
	AmountCents  int64
}
