package cafe

import "errors"

var (
	ErrCafeNotFound = errors.New("cafe not found")
	ErrCafeInUse    = errors.New("cafe still has purchases or revenue")
)
