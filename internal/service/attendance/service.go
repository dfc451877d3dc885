package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/geo"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	db database.Transactor
	attendance.AttendanceRepository
	employee.EmployeeRepository
	fence geo.Fence
	loc   *time.Location
	now   func() time.Time
}

func NewAttendanceService(
	db database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	fence geo.Fence,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		fence:                fence,
		loc:                  loc,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := a.authorize(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	location := geo.Point{Lat: req.Latitude, Lng: req.Longitude}
	if !a.fence.Contains(location) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideAllowedRadius
	}

	var created attendance.Attendance
	err := a.db.WithinTx(ctx, func(ctx context.Context) error {
		emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		open, err := a.AttendanceRepository.GetOpenByEmployee(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get open attendance: %w", err)
		}
		if open != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		created, err = a.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID:  req.EmployeeID,
			CheckInTime: a.now().UTC(),
			CheckIn:     attendance.Point{Lat: req.Latitude, Lng: req.Longitude},
		})
		if err != nil {
			if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
				return err
			}
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		created.EmployeeName = &emp.Name
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := a.authorize(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	location := geo.Point{Lat: req.Latitude, Lng: req.Longitude}
	if !a.fence.Contains(location) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideAllowedRadius
	}

	var closed attendance.Attendance
	err := a.db.WithinTx(ctx, func(ctx context.Context) error {
		open, err := a.AttendanceRepository.GetOpenByEmployee(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get open attendance: %w", err)
		}
		if open == nil {
			return attendance.ErrNotCheckedIn
		}

		checkOut := a.now().UTC()
		if checkOut.Before(open.CheckInTime) {
			checkOut = open.CheckInTime
		}
		open.CheckOutTime = &checkOut
		open.CheckOut = &attendance.Point{Lat: req.Latitude, Lng: req.Longitude}
		open.TotalHours = roundHours(checkOut.Sub(open.CheckInTime))

		closed, err = a.AttendanceRepository.Close(ctx, *open)
		if err != nil {
			return fmt.Errorf("failed to close attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(closed), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	local := a.now().In(a.loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.loc)
	to := from.AddDate(0, 0, 1)

	var only *string
	if !claims.Role.CanManage() {
		only = &claims.EmployeeID
	}

	records, err := a.AttendanceRepository.ListCheckedInBetween(ctx, from, to, only)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, attendance.NewAttendanceResponse(r))
	}
	return result, nil
}

// Status implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Status(ctx context.Context, employeeID string) (attendance.StatusResponse, error) {
	if err := a.authorize(ctx, employeeID); err != nil {
		return attendance.StatusResponse{}, err
	}

	open, err := a.AttendanceRepository.GetOpenByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get open attendance: %w", err)
	}
	if open == nil {
		return attendance.StatusResponse{}, nil
	}

	resp := attendance.NewAttendanceResponse(*open)
	return attendance.StatusResponse{CheckedIn: true, Open: &resp}, nil
}

// authorize lets employees act only for themselves; managers and
// supervisors may act for anyone.
func (a *AttendanceServiceImpl) authorize(ctx context.Context, employeeID string) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return auth.ErrInvalidToken
	}
	if claims.Role.CanManage() || claims.EmployeeID == employeeID {
		return nil
	}
	return attendance.ErrUnauthorized
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
