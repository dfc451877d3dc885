package reservation

import (
	"regexp"

	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

type Reservation struct {
	ID                    string
	GuestName             string
	Age                   int
	Phone                 string
	Email                 *string
	Gender                *string
	Country               string
	NumberOfCompanions    int
	ExpectedArrivalDate   string
	ExpectedArrivalTime   string
	ExpectedDepartureDate *string
	PurposeOfVisit        *string
	TransportationMode    *string
	Notes                 *string
}

// ReservationRequest is used for both create and full replacement.
type ReservationRequest struct {
	ID                    string  `json:"-"`
	GuestName             string  `json:"guestName"`
	Age                   int     `json:"age"`
	Phone                 string  `json:"phone"`
	Email                 *string `json:"email,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	Country               string  `json:"country"`
	NumberOfCompanions    int     `json:"numberOfCompanions"`
	ExpectedArrivalDate   string  `json:"expectedArrivalDate"`
	ExpectedArrivalTime   string  `json:"expectedArrivalTime"`
	ExpectedDepartureDate *string `json:"expectedDepartureDate,omitempty"`
	PurposeOfVisit        *string `json:"purposeOfVisit,omitempty"`
	TransportationMode    *string `json:"transportationMode,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
}

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func (r *ReservationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GuestName) {
		errs.Add("guestName", "guestName is required")
	}
	if r.Age < 0 || r.Age > 150 {
		errs.Add("age", "age is out of range")
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "invalid phone number")
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "invalid email format")
	}
	if validator.IsEmpty(r.Country) {
		errs.Add("country", "country is required")
	}
	if r.NumberOfCompanions < 0 {
		errs.Add("numberOfCompanions", "numberOfCompanions must not be negative")
	}

	arrival, ok := validator.IsValidDate(r.ExpectedArrivalDate)
	if !ok {
		errs.Add("expectedArrivalDate", "expectedArrivalDate must be YYYY-MM-DD")
	}
	if !clockRegex.MatchString(r.ExpectedArrivalTime) {
		errs.Add("expectedArrivalTime", "expectedArrivalTime must be HH:MM")
	}
	if r.ExpectedDepartureDate != nil && *r.ExpectedDepartureDate != "" {
		departure, valid := validator.IsValidDate(*r.ExpectedDepartureDate)
		switch {
		case !valid:
			errs.Add("expectedDepartureDate", "expectedDepartureDate must be YYYY-MM-DD")
		case ok && departure.Before(arrival):
			errs.Add("expectedDepartureDate", "expectedDepartureDate must not be before arrival")
		}
	}

	return errs.Err()
}

func (r ReservationRequest) ToEntity() Reservation {
	return Reservation{
		ID:                    r.ID,
		GuestName:             r.GuestName,
		Age:                   r.Age,
		Phone:                 validator.NormalizePhone(r.Phone),
		Email:                 r.Email,
		Gender:                r.Gender,
		Country:               r.Country,
		NumberOfCompanions:    r.NumberOfCompanions,
		ExpectedArrivalDate:   r.ExpectedArrivalDate,
		ExpectedArrivalTime:   r.ExpectedArrivalTime,
		ExpectedDepartureDate: r.ExpectedDepartureDate,
		PurposeOfVisit:        r.PurposeOfVisit,
		TransportationMode:    r.TransportationMode,
		Notes:                 r.Notes,
	}
}

type ReservationResponse struct {
	ID                    string  `json:"_id"`
	GuestName             string  `json:"guestName"`
	Age                   int     `json:"age"`
	Phone                 string  `json:"phone"`
	Email                 *string `json:"email,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	Country               string  `json:"country"`
	NumberOfCompanions    int     `json:"numberOfCompanions"`
	ExpectedArrivalDate   string  `json:"expectedArrivalDate"`
	ExpectedArrivalTime   string  `json:"expectedArrivalTime"`
	ExpectedDepartureDate *string `json:"expectedDepartureDate,omitempty"`
	PurposeOfVisit        *string `json:"purposeOfVisit,omitempty"`
	TransportationMode    *string `json:"transportationMode,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
}

func NewReservationResponse(r Reservation) ReservationResponse {
	return ReservationResponse(r)
}
