package activity

import "errors"

var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrActivityNameExists = errors.New("activity with this name already exists")
	ErrActivityInUse      = errors.New("activity is used by revenue entries")
)
