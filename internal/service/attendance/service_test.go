package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/geo"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memoryAttendance struct {
	records []attendance.Attendance
}

func (m *memoryAttendance) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, r := range m.records {
		if r.EmployeeID == a.EmployeeID && r.IsOpen() {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	a.ID = uuid.Must(uuid.NewV7()).String()
	m.records = append(m.records, a)
	return a, nil
}

func (m *memoryAttendance) GetOpenByEmployee(_ context.Context, employeeID string) (*attendance.Attendance, error) {
	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.IsOpen() {
			open := r
			return &open, nil
		}
	}
	return nil, nil
}

func (m *memoryAttendance) Close(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for i, r := range m.records {
		if r.ID == a.ID {
			m.records[i] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (m *memoryAttendance) ListCheckedInBetween(_ context.Context, from, to time.Time, employeeID *string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range m.records {
		if r.CheckInTime.Before(from) || !r.CheckInTime.Before(to) {
			continue
		}
		if employeeID != nil && r.EmployeeID != *employeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type memoryEmployees struct {
	employee.EmployeeRepository
	byID map[string]employee.Employee
}

func (m *memoryEmployees) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func actingAs(t *testing.T, employeeID string, role employee.Role) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("attendance-test-secret", "1h")
	raw, _, err := svc.GenerateAccessToken(employeeID, role)
	require.NoError(t, err)
	token, err := svc.JWTAuth().Decode(raw)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newService(t *testing.T, fence geo.Fence) (*AttendanceServiceImpl, *memoryAttendance, *clock, string, string) {
	t.Helper()
	worker := uuid.Must(uuid.NewV7()).String()
	boss := uuid.Must(uuid.NewV7()).String()

	records := &memoryAttendance{}
	employees := &memoryEmployees{byID: map[string]employee.Employee{
		worker: {ID: worker, Name: "Worker", Role: employee.RoleEmployee},
		boss:   {ID: boss, Name: "Boss", Role: employee.RoleManager},
	}}
	c := &clock{t: time.Date(2024, 5, 14, 6, 0, 0, 0, time.UTC)}

	svc := NewAttendanceService(passthroughTx{}, records, employees, fence, time.UTC).(*AttendanceServiceImpl)
	svc.now = c.now
	return svc, records, c, worker, boss
}

func TestAttendanceService_CheckInThenCheckOut(t *testing.T) {
	svc, records, c, worker, _ := newService(t, geo.Fence{})
	ctx := actingAs(t, worker, employee.RoleEmployee)

	in, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: worker, Latitude: 30.04, Longitude: 31.23})
	require.NoError(t, err)
	assert.Nil(t, in.CheckOutTime)
	require.NotNil(t, in.EmployeeName)
	assert.Equal(t, "Worker", *in.EmployeeName)

	c.t = c.t.Add(8*time.Hour + 20*time.Minute)
	out, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: worker, Latitude: 30.05, Longitude: 31.24})
	require.NoError(t, err)
	require.NotNil(t, out.CheckOutTime)
	assert.Equal(t, 8.33, out.TotalHours)
	require.NotNil(t, out.CheckOut)
	assert.Equal(t, 30.05, out.CheckOut.Lat)

	require.Len(t, records.records, 1)
	assert.False(t, records.records[0].IsOpen())
}

func TestAttendanceService_SecondCheckInRejected(t *testing.T) {
	svc, records, _, worker, _ := newService(t, geo.Fence{})
	ctx := actingAs(t, worker, employee.RoleEmployee)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: worker})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: worker})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Len(t, records.records, 1, "no duplicate record")
}

func TestAttendanceService_CheckOutWithoutOpenRecord(t *testing.T) {
	svc, records, _, worker, _ := newService(t, geo.Fence{})
	ctx := actingAs(t, worker, employee.RoleEmployee)

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: worker})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	assert.Empty(t, records.records)
}

func TestAttendanceService_CheckInAgainAfterCheckOut(t *testing.T) {
	svc, records, c, worker, _ := newService(t, geo.Fence{})
	ctx := actingAs(t, worker, employee.RoleEmployee)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: worker})
	require.NoError(t, err)
	c.t = c.t.Add(time.Hour)
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: worker})
	require.NoError(t, err)
	c.t = c.t.Add(time.Hour)
	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: worker})
	require.NoError(t, err)

	assert.Len(t, records.records, 2)
}

func TestAttendanceService_EmployeeCannotActForOthers(t *testing.T) {
	svc, _, _, worker, boss := newService(t, geo.Fence{})

	_, err := svc.CheckIn(actingAs(t, worker, employee.RoleEmployee), attendance.CheckInRequest{EmployeeID: boss})
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)

	_, err = svc.CheckIn(actingAs(t, boss, employee.RoleManager), attendance.CheckInRequest{EmployeeID: worker})
	assert.NoError(t, err)
}

func TestAttendanceService_Geofence(t *testing.T) {
	fence := geo.Fence{Center: geo.Point{Lat: 30.0444, Lng: 31.2357}, RadiusM: 200}
	svc, _, _, worker, _ := newService(t, fence)
	ctx := actingAs(t, worker, employee.RoleEmployee)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: worker, Latitude: 29.9792, Longitude: 31.1342})
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: worker, Latitude: 30.0445, Longitude: 31.2358})
	assert.NoError(t, err)
}

func TestAttendanceService_Today(t *testing.T) {
	svc, _, c, worker, boss := newService(t, geo.Fence{})

	_, err := svc.CheckIn(actingAs(t, worker, employee.RoleEmployee), attendance.CheckInRequest{EmployeeID: worker})
	require.NoError(t, err)
	_, err = svc.CheckIn(actingAs(t, boss, employee.RoleManager), attendance.CheckInRequest{EmployeeID: boss})
	require.NoError(t, err)

	mine, err := svc.Today(actingAs(t, worker, employee.RoleEmployee))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, worker, mine[0].EmployeeID)

	all, err := svc.Today(actingAs(t, boss, employee.RoleManager))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	c.t = c.t.AddDate(0, 0, 1)
	tomorrow, err := svc.Today(actingAs(t, boss, employee.RoleManager))
	require.NoError(t, err)
	assert.Empty(t, tomorrow)
}

func TestAttendanceService_Status(t *testing.T) {
	svc, _, _, worker, _ := newService(t, geo.Fence{})
	ctx := actingAs(t, worker, employee.RoleEmployee)

	status, err := svc.Status(ctx, worker)
	require.NoError(t, err)
	assert.False(t, status.CheckedIn)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: worker})
	require.NoError(t, err)

	status, err = svc.Status(ctx, worker)
	require.NoError(t, err)
	assert.True(t, status.CheckedIn)
	require.NotNil(t, status.Open)
}

func TestAttendanceService_RequiresClaims(t *testing.T) {
	svc, _, _, worker, _ := newService(t, geo.Fence{})

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: worker})
	assert.Error(t, err)
}
