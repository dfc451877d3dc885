package web

import (
	"context"
	"net/http"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/geo"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"golang.org/x/sync/errgroup"
)

type AttendanceHandler interface {
	Page(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	errorResponder
	api        *apiclient.Client
	geoTimeout time.Duration
}

func NewAttendanceHandler(api *apiclient.Client, store session.Store, geoTimeout time.Duration) AttendanceHandler {
	return &attendanceHandlerImpl{
		errorResponder: errorResponder{store: store},
		api:            api,
		geoTimeout:     geoTimeout,
	}
}

// AttendanceView drives the check-in screen. CanCheckIn and CanCheckOut only
// toggle the controls; the API decides.
type AttendanceView struct {
	EmployeeID  string                          `json:"employeeId"`
	Role        employee.Role                   `json:"role"`
	CheckedIn   bool                            `json:"checkedIn"`
	CanCheckIn  bool                            `json:"canCheckIn"`
	CanCheckOut bool                            `json:"canCheckOut"`
	Open        *attendance.AttendanceResponse  `json:"open,omitempty"`
	Today       []attendance.AttendanceResponse `json:"today"`
}

func (h *attendanceHandlerImpl) Page(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	var (
		status attendance.StatusResponse
		today  []attendance.AttendanceResponse
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		status, err = h.api.AttendanceStatus(ctx, s.Token, s.EmployeeID)
		return err
	})
	g.Go(func() error {
		var err error
		today, err = h.api.TodayAttendance(ctx, s.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		h.handle(w, r, err)
		return
	}

	if today == nil {
		today = []attendance.AttendanceResponse{}
	}
	response.Success(w, AttendanceView{
		EmployeeID:  s.EmployeeID,
		Role:        s.Role,
		CheckedIn:   status.CheckedIn,
		CanCheckIn:  !status.CheckedIn,
		CanCheckOut: status.CheckedIn,
		Open:        status.Open,
		Today:       today,
	})
}

func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, true)
}

func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, false)
}

func (h *attendanceHandlerImpl) record(w http.ResponseWriter, r *http.Request, checkIn bool) {
	s, _ := SessionFromContext(r.Context())

	get, err := readInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	point, err := h.locate(r.Context(), geo.FromForm(get))
	if err != nil {
		h.handle(w, r, err)
		return
	}

	var record attendance.AttendanceResponse
	if checkIn {
		record, err = h.api.CheckIn(r.Context(), s.Token, attendance.CheckInRequest{
			EmployeeID: s.EmployeeID,
			Latitude:   point.Lat,
			Longitude:  point.Lng,
		})
	} else {
		record, err = h.api.CheckOut(r.Context(), s.Token, attendance.CheckOutRequest{
			EmployeeID: s.EmployeeID,
			Latitude:   point.Lat,
			Longitude:  point.Lng,
		})
	}
	if err != nil {
		h.handle(w, r, err)
		return
	}

	if checkIn {
		response.SuccessWithMessage(w, "Checked in successfully", record)
		return
	}
	response.SuccessWithMessage(w, "Checked out successfully", record)
}

func (h *attendanceHandlerImpl) locate(ctx context.Context, locator geo.Locator) (geo.Point, error) {
	ctx, cancel := context.WithTimeout(ctx, h.geoTimeout)
	defer cancel()
	return locator.Locate(ctx)
}
