package http

import (
	"net/http"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/salary"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns monthly revenue figures
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// ListSalaries returns each employee's pay for a month
	ListSalaries(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	salaryService    salary.SalaryService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, salaryService salary.SalaryService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService, salaryService: salaryService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month") // format: YYYY-MM, default: current month

	result, err := h.dashboardService.Summary(r.Context(), dashboard.SummaryRequest{Month: month})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSalaries handles GET /salary
func (h *dashboardHandlerImpl) ListSalaries(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.salaryService.List(r.Context(), salary.ListRequest{Month: month})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
