package category

import "errors"

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category with this name already exists")
	ErrCategoryInUse      = errors.New("category is used by purchases")
)
