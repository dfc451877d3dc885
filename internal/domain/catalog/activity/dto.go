package activity

import "github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"

// Activity is what an employee revenue entry was earned for.
type Activity struct {
	ID          string
	Name        string
	Description *string
	IsActive    bool
}

type ActivityResponse struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
}

func NewActivityResponse(a Activity) ActivityResponse {
	return ActivityResponse{ID: a.ID, Name: a.Name, Description: a.Description, IsActive: a.IsActive}
}

type CreateActivityRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *CreateActivityRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}
	return errs.Err()
}

type UpdateActivityRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *UpdateActivityRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "invalid activity id")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	return errs.Err()
}
