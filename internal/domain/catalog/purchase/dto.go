package purchase

import (
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Purchase struct {
	ID           string
	CafeID       string
	CategoryID   string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TotalCost    decimal.Decimal
	PurchaseDate time.Time

	// Join
	CafeName     string
	CategoryName string
}

// ComputeTotal sets TotalCost from quantity and unit price.
func (p *Purchase) ComputeTotal() {
	p.TotalCost = p.Quantity.Mul(p.UnitPrice)
}

type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type PurchaseResponse struct {
	ID           string          `json:"_id"`
	Cafe         Ref             `json:"cafe"`
	Category     Ref             `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	PurchaseDate string          `json:"purchaseDate"`
}

func NewPurchaseResponse(p Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:           p.ID,
		Cafe:         Ref{ID: p.CafeID, Name: p.CafeName},
		Category:     Ref{ID: p.CategoryID, Name: p.CategoryName},
		Quantity:     p.Quantity,
		UnitPrice:    p.UnitPrice,
		TotalCost:    p.TotalCost,
		PurchaseDate: p.PurchaseDate.Format("2006-01-02"),
	}
}

type CreatePurchaseRequest struct {
	Cafe         string          `json:"cafe"`
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	PurchaseDate *string         `json:"purchaseDate,omitempty"`
}

func (r *CreatePurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.Cafe) {
		errs.Add("cafe", "cafe is required")
	}
	if !validator.IsValidUUID(r.Category) {
		errs.Add("category", "category is required")
	}
	if !r.Quantity.IsPositive() {
		errs.Add("quantity", "quantity must be greater than 0")
	}
	if r.UnitPrice.IsNegative() {
		errs.Add("unitPrice", "unitPrice must not be negative")
	}
	if r.PurchaseDate != nil {
		if _, ok := validator.IsValidDate(*r.PurchaseDate); !ok {
			errs.Add("purchaseDate", "purchaseDate must be YYYY-MM-DD")
		}
	}

	return errs.Err()
}

type UpdatePurchaseRequest struct {
	ID           string           `json:"-"`
	Category     *string          `json:"category,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"`
	PurchaseDate *string          `json:"purchaseDate,omitempty"`
}

func (r *UpdatePurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "invalid purchase id")
	}
	if r.Category != nil && !validator.IsValidUUID(*r.Category) {
		errs.Add("category", "invalid category id")
	}
	if r.Quantity != nil && !r.Quantity.IsPositive() {
		errs.Add("quantity", "quantity must be greater than 0")
	}
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		errs.Add("unitPrice", "unitPrice must not be negative")
	}
	if r.PurchaseDate != nil {
		if _, ok := validator.IsValidDate(*r.PurchaseDate); !ok {
			errs.Add("purchaseDate", "purchaseDate must be YYYY-MM-DD")
		}
	}

	return errs.Err()
}

// PurchaseFilter narrows /purchases/filter. Empty fields are ignored.
type PurchaseFilter struct {
	CafeID string
	From   *time.Time
	To     *time.Time // inclusive day
}

func (f *PurchaseFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.CafeID != "" && !validator.IsValidUUID(f.CafeID) {
		errs.Add("cafeId", "invalid cafe id")
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		errs.Add("to", "to must not be before from")
	}
	return errs.Err()
}
