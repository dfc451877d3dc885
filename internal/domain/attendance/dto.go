package attendance

import (
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employeeId"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
}

func (r *CheckInRequest) Validate() error {
	return validateLocation(r.EmployeeID, r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employeeId"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
}

func (r *CheckOutRequest) Validate() error {
	return validateLocation(r.EmployeeID, r.Latitude, r.Longitude)
}

func validateLocation(employeeID string, lat, lng float64) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	} else if !validator.IsValidUUID(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId must be a valid id",
		})
	}

	if lat < -90 || lat > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat must be between -90 and 90",
		})
	}

	if lng < -180 || lng > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "lng",
			Message: "lng must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string     `json:"_id"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName *string    `json:"employeeName,omitempty"`
	CheckInTime  time.Time  `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	TotalHours   float64    `json:"totalHours"`
	CheckIn      Point      `json:"checkIn"`
	CheckOut     *Point     `json:"checkOut,omitempty"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		TotalHours:   a.TotalHours,
		CheckIn:      a.CheckIn,
		CheckOut:     a.CheckOut,
	}
}

type StatusResponse struct {
	CheckedIn bool                `json:"checkedIn"`
	Open      *AttendanceResponse `json:"open,omitempty"`
}
