package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrPhoneExists         = errors.New("phone number already registered")
	ErrEmailExists         = errors.New("email already registered")
	ErrManagerRoleRequired = errors.New("manager or supervisor role required")
	ErrEmployeeInUse       = errors.New("employee has revenue or attendance records")
)
