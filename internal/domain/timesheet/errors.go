package timesheet

import "errors"

var (
	ErrInvalidDate                = errors.New("invalid month or date format")
	ErrCannotReadOtherWorkedHours = errors.New("cannot read another user's worked hours")
	ErrDailyExpenseNotFound       = errors.New("daily expense not found")
)
