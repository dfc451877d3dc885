package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new open record. A second open record for the same
	// employee violates a unique index and returns ErrAlreadyCheckedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetOpenByEmployee returns the employee's open record, or nil when none exists.
	GetOpenByEmployee(ctx context.Context, employeeID string) (*Attendance, error)

	// Close writes check-out time, location and total hours.
	Close(ctx context.Context, attendance Attendance) (Attendance, error)

	// ListCheckedInBetween lists records whose check-in lies in [from, to).
	// A non-nil employeeID restricts the result to that employee.
	ListCheckedInBetween(ctx context.Context, from, to time.Time, employeeID *string) ([]Attendance, error)
}
