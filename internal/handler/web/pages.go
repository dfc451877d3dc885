package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
)

type PageHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Revenues(w http.ResponseWriter, r *http.Request)
	EmployeeRevenue(w http.ResponseWriter, r *http.Request)
	Settings(w http.ResponseWriter, r *http.Request)
}

type pageHandlerImpl struct {
	errorResponder
	api *apiclient.Client
}

func NewPageHandler(api *apiclient.Client, store session.Store) PageHandler {
	return &pageHandlerImpl{
		errorResponder: errorResponder{store: store},
		api:            api,
	}
}

func (h *pageHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	summary, err := h.api.Dashboard(r.Context(), s.Token, r.URL.Query().Get("month"))
	if err != nil {
		h.handle(w, r, err)
		return
	}
	response.Success(w, summary)
}

// Revenues shows the per-employee report for the requested period.
func (h *pageHandlerImpl) Revenues(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	report, err := h.api.RevenueReport(r.Context(), s.Token, pick(r.URL.Query(), "period", "year", "month", "date"))
	if err != nil {
		h.handle(w, r, err)
		return
	}
	if report.RevenueByEmployee == nil {
		report.RevenueByEmployee = []revenue.EmployeeRevenue{}
	}
	response.Success(w, report)
}

// EmployeeRevenue is the paginated drill-down for one employee.
func (h *pageHandlerImpl) EmployeeRevenue(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.api.EmployeeRevenue(r.Context(), s.Token, chi.URLParam(r, "id"), page, limit)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	if entries.Data == nil {
		entries.Data = []revenue.EntryResponse{}
	}
	response.Success(w, entries)
}

type SettingsView struct {
	EmployeeID    string        `json:"employeeId"`
	Role          employee.Role `json:"role"`
	CanManage     bool          `json:"canManage"`
	ResetPassword string        `json:"resetPassword"`
}

func (h *pageHandlerImpl) Settings(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())
	response.Success(w, SettingsView{
		EmployeeID:    s.EmployeeID,
		Role:          s.Role,
		CanManage:     s.Role.CanManage(),
		ResetPassword: "/reset-password",
	})
}

func pick(values url.Values, keys ...string) url.Values {
	out := url.Values{}
	for _, key := range keys {
		if v := values.Get(key); v != "" {
			out.Set(key, v)
		}
	}
	return out
}
