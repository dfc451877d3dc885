package category

import "github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"

// Category groups purchases.
type Category struct {
	ID   string
	Name string
}

type CategoryResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func NewCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	return errs.Err()
}

type UpdateCategoryRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "invalid category id")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	return errs.Err()
}
