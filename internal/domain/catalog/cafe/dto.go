package cafe

import (
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

type Cafe struct {
	ID          string
	Name        string
	Branch      string
	Description *string
}

// CafeResponse represents the response structure for a cafe.
type CafeResponse struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Branch      string  `json:"branch"`
	Description *string `json:"description,omitempty"`
}

func NewCafeResponse(c Cafe) CafeResponse {
	return CafeResponse{ID: c.ID, Name: c.Name, Branch: c.Branch, Description: c.Description}
}

type CreateCafeRequest struct {
	Name        string  `json:"name"`
	Branch      string  `json:"branch"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateCafeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}
	if validator.IsEmpty(r.Branch) {
		errs.Add("branch", "branch is required")
	}

	return errs.Err()
}

type UpdateCafeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Branch      *string `json:"branch,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateCafeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "invalid cafe id")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Branch != nil && validator.IsEmpty(*r.Branch) {
		errs.Add("branch", "branch must not be empty")
	}

	return errs.Err()
}
