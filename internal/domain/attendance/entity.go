package attendance

import "time"

type Attendance struct {
	ID           string
	EmployeeID   string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	TotalHours   float64
	CheckIn      Point
	CheckOut     *Point
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeName *string
}

// IsOpen reports whether the record still waits for a check-out.
func (a Attendance) IsOpen() bool {
	return a.CheckOutTime == nil
}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
