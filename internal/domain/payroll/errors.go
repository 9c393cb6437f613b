package payroll

import "errors"

var (
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUnknownWorkType  = errors.New("unknown work type code")
	ErrBonusAdjNotFound = errors.New("bonus adjustment not found")
	ErrYearEndNotFound  = errors.New("year-end bonus record not found")
)
