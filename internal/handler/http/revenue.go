package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/pdf"
	"github.com/go-chi/chi/v5"
)

type RevenueHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Report handles GET /emp-revenue/report
	Report(w http.ResponseWriter, r *http.Request)
	// ReportPDF handles GET /emp-revenue/report.pdf
	ReportPDF(w http.ResponseWriter, r *http.Request)
	// EmployeeEntries handles GET /emp-revenue/employee/{id}
	EmployeeEntries(w http.ResponseWriter, r *http.Request)
}

type revenueHandlerImpl struct {
	revenueService revenue.RevenueService
}

func NewRevenueHandler(revenueService revenue.RevenueService) RevenueHandler {
	return &revenueHandlerImpl{
		revenueService: revenueService,
	}
}

// Create implements RevenueHandler.
func (h *revenueHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req revenue.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create revenue decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.revenueService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create revenue service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Revenue entry created", entry)
}

// Update implements RevenueHandler.
func (h *revenueHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req revenue.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update revenue decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	entry, err := h.revenueService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update revenue service error", "error", err, "entry_id", req.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Revenue entry updated", entry)
}

// Delete implements RevenueHandler.
func (h *revenueHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.revenueService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Revenue entry deleted", nil)
}

// Report implements RevenueHandler.
func (h *revenueHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	query, err := revenue.ParseReportQuery(r.URL.Query().Get)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.revenueService.Report(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ReportPDF implements RevenueHandler.
func (h *revenueHandlerImpl) ReportPDF(w http.ResponseWriter, r *http.Request) {
	query, err := revenue.ParseReportQuery(r.URL.Query().Get)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.revenueService.Report(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := pdf.RevenueReport(report)
	if err != nil {
		slog.Error("Revenue report render error", "error", err)
		response.InternalServerError(w, "Failed to render report")
		return
	}

	filename := fmt.Sprintf("revenue-%s-%s.pdf", report.Period, report.From)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		slog.Error("Revenue report write error", "error", err)
	}
}

// EmployeeEntries implements RevenueHandler.
func (h *revenueHandlerImpl) EmployeeEntries(w http.ResponseWriter, r *http.Request) {
	query := revenue.EmployeeEntriesQuery{
		EmployeeID: chi.URLParam(r, "id"),
	}

	// Unparseable values fall back to the defaults.
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		query.Page, _ = strconv.Atoi(pageStr)
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		query.Limit, _ = strconv.Atoi(limitStr)
	}

	page, err := h.revenueService.EmployeeEntries(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, page)
}
