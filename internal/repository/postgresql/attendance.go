package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.check_in_time, a.check_out_time, a.total_hours,
	a.check_in_lat, a.check_in_lng, a.check_out_lat, a.check_out_lng,
	a.created_at, a.updated_at, e.name`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var (
		att            attendance.Attendance
		outLat, outLng *float64
	)
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CheckInTime, &att.CheckOutTime, &att.TotalHours,
		&att.CheckIn.Lat, &att.CheckIn.Lng, &outLat, &outLng,
		&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if outLat != nil && outLng != nil {
		att.CheckOut = &attendance.Point{Lat: *outLat, Lng: *outLng}
	}
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := newID()
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `
		WITH inserted AS (
			INSERT INTO attendance (id, employee_id, check_in_time, check_in_lat, check_in_lng)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM inserted a
		JOIN employees e ON e.id = a.employee_id
	`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		id, newAttendance.EmployeeID, newAttendance.CheckInTime,
		newAttendance.CheckIn.Lat, newAttendance.CheckIn.Lng,
	))
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok && constraint == "attendance_one_open_per_employee" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetOpenByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenByEmployee(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.check_out_time IS NULL
		FOR UPDATE OF a
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return &att, nil
}

// Close implements attendance.AttendanceRepository.
func (a *attendanceRepository) Close(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.CheckOutTime == nil || att.CheckOut == nil {
		return attendance.Attendance{}, fmt.Errorf("close attendance %s: missing check-out data", att.ID)
	}

	query := `
		WITH updated AS (
			UPDATE attendance
			SET check_out_time = $1, check_out_lat = $2, check_out_lng = $3,
				total_hours = $4, updated_at = NOW()
			WHERE id = $5 AND check_out_time IS NULL
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM updated a
		JOIN employees e ON e.id = a.employee_id
	`

	closed, err := scanAttendance(q.QueryRow(ctx, query,
		*att.CheckOutTime, att.CheckOut.Lat, att.CheckOut.Lng, att.TotalHours, att.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance: %w", err)
	}

	return closed, nil
}

// ListCheckedInBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListCheckedInBetween(ctx context.Context, from, to time.Time, employeeID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.check_in_time >= $1 AND a.check_in_time < $2
	`
	args := []interface{}{from, to}

	if employeeID != nil {
		query += ` AND a.employee_id = $3`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY a.check_in_time DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
