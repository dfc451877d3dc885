package purchase

import "errors"

var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrInvalidReference = errors.New("purchase references an unknown cafe or category")
)
