package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens a record; rejected while another record is open.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the open record and computes total hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// Today lists records checked in on the current business day.
	Today(ctx context.Context) ([]AttendanceResponse, error)

	// Status reports whether the employee currently has an open record.
	Status(ctx context.Context, employeeID string) (StatusResponse, error)
}
