package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret = "test-secret-key-for-jwt"
	testEmployeeID    = "0190c5e6-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
)

type stubAuthService struct {
	jwtService jwt.Service
	login      func(req auth.LoginRequest) (auth.LoginResponse, error)
}

func (s *stubAuthService) Login(_ context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return s.login(req)
}

func (s *stubAuthService) ResetPassword(context.Context, auth.ResetPasswordRequest) error {
	return nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.jwtService.RevokeToken(token)
	return nil
}

type stubAttendanceService struct {
	checkInErr error
	today      []attendance.AttendanceResponse
}

func (s *stubAttendanceService) CheckIn(_ context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if s.checkInErr != nil {
		return attendance.AttendanceResponse{}, s.checkInErr
	}
	return attendance.AttendanceResponse{ID: "att-1", EmployeeID: req.EmployeeID}, nil
}

func (s *stubAttendanceService) CheckOut(context.Context, attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
}

func (s *stubAttendanceService) Today(context.Context) ([]attendance.AttendanceResponse, error) {
	return s.today, nil
}

func (s *stubAttendanceService) Status(context.Context, string) (attendance.StatusResponse, error) {
	return attendance.StatusResponse{}, nil
}

type stubRevenueService struct {
	revenue.RevenueService
	lastQuery revenue.ReportQuery
}

func (s *stubRevenueService) Report(_ context.Context, q revenue.ReportQuery) (revenue.ReportResponse, error) {
	s.lastQuery = q
	return revenue.ReportResponse{
		Period: q.Period,
		From:   "2026-03-01",
		To:     "2026-03-31",
		RevenueByEmployee: []revenue.EmployeeRevenue{
			{ID: testEmployeeID, Employee: revenue.Ref{ID: testEmployeeID, Name: "Omar"}, Total: decimal.RequireFromString("1500.50"), Currency: "EGP"},
		},
	}, nil
}

type testAPI struct {
	router     *chi.Mux
	jwtService jwt.Service
	auth       *stubAuthService
	attendance *stubAttendanceService
	revenue    *stubRevenueService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	api := &testAPI{
		jwtService: jwtService,
		auth:       &stubAuthService{jwtService: jwtService},
		attendance: &stubAttendanceService{},
		revenue:    &stubRevenueService{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api.router = NewRouter(
		logger,
		[]string{"http://localhost:3000"},
		jwtService,
		NewAuthHandler(api.auth),
		NewAttendanceHandler(api.attendance),
		NewRevenueHandler(api.revenue),
		NewCurrencyHandler(nil),
		NewEmployeeHandler(nil),
		NewCatalogHandler(nil),
		NewDashboardHandler(nil, nil),
	)
	return api
}

func (a *testAPI) token(t *testing.T, role employee.Role) string {
	t.Helper()
	token, _, err := a.jwtService.GenerateAccessToken(testEmployeeID, role)
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)
	api.auth.login = func(req auth.LoginRequest) (auth.LoginResponse, error) {
		if req.Password != "secret" {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{
			Token:    "tok",
			Employee: &auth.AuthenticatedActor{ID: testEmployeeID, Name: "Omar", Role: employee.RoleManager},
		}, nil
	}

	t.Run("success", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"phone": "0100", "password": "secret"})
		require.Equal(t, http.StatusOK, rec.Code)

		var data auth.LoginResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, "tok", data.Token)
		assert.False(t, data.FirstLogin)
	})

	t.Run("bad credentials", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"phone": "0100", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin_FirstLogin(t *testing.T) {
	api := newTestAPI(t)
	api.auth.login = func(req auth.LoginRequest) (auth.LoginResponse, error) {
		return auth.LoginResponse{FirstLogin: true, Phone: req.Phone}, nil
	}

	rec := api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"phone": "0100", "password": "x"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode(t, rec)
	assert.Equal(t, "Password reset required", resp.Message)
	var data auth.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.FirstLogin)
	assert.Equal(t, "0100", data.Phone)
	assert.Empty(t, data.Token)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{
		"/api/v1/attendance/today",
		"/api/v1/emp-revenue/report",
		"/api/v1/currencies",
		"/api/v1/cafes",
		"/api/v1/dashboard",
	} {
		t.Run(path, func(t *testing.T) {
			rec := api.do(http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, employee.RoleEmployee)

	rec := api.do(http.MethodGet, "/api/v1/attendance/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/attendance/today", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestManagerOnlyWrites(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, employee.RoleEmployee)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/currencies"},
		{http.MethodPatch, "/api/v1/cafes/abc"},
		{http.MethodDelete, "/api/v1/employees/abc"},
		{http.MethodPost, "/api/v1/emp-revenue"},
		{http.MethodGet, "/api/v1/dashboard"},
		{http.MethodGet, "/api/v1/salary"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := api.do(tc.method, tc.path, token, map[string]string{})
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestAttendance_ErrorMapping(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, employee.RoleEmployee)

	api.attendance.checkInErr = attendance.ErrAlreadyCheckedIn
	rec := api.do(http.MethodPost, "/api/v1/attendance/checkIn", token, attendance.CheckInRequest{EmployeeID: testEmployeeID})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPost, "/api/v1/attendance/checkOut", token, attendance.CheckOutRequest{EmployeeID: testEmployeeID})
	assert.Equal(t, http.StatusConflict, rec.Code)

	api.attendance.checkInErr = attendance.ErrOutsideAllowedRadius
	rec = api.do(http.MethodPost, "/api/v1/attendance/checkIn", token, attendance.CheckInRequest{EmployeeID: testEmployeeID})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	api.attendance.checkInErr = nil
	rec = api.do(http.MethodPost, "/api/v1/attendance/checkIn", token, attendance.CheckInRequest{EmployeeID: testEmployeeID})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRevenueReport(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, employee.RoleEmployee)

	rec := api.do(http.MethodGet, "/api/v1/emp-revenue/report?period=monthly&year=2026&month=3", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, revenue.ReportQuery{Period: revenue.PeriodMonthly, Year: 2026, Month: 3}, api.revenue.lastQuery)

	var data revenue.ReportResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	require.Len(t, data.RevenueByEmployee, 1)
	assert.True(t, decimal.RequireFromString("1500.50").Equal(data.RevenueByEmployee[0].Total))

	rec = api.do(http.MethodGet, "/api/v1/emp-revenue/report?period=hourly", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "period")
}

func TestRevenueReportPDF(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t, employee.RoleManager)

	rec := api.do(http.MethodGet, "/api/v1/emp-revenue/report.pdf?period=monthly", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "revenue-monthly-2026-03-01.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}
