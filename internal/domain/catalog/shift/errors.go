package shift

import "errors"

var (
	ErrRevenueNotFound = errors.New("shift revenue not found")
	ErrShiftRecorded   = errors.New("revenue for this cafe shift is already recorded")
)
