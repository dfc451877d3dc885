package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/activity"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/cafe"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/category"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/purchase"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/reservation"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/shift"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/cmlabs-hris/bizdash-go/internal/service/catalog"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler interface {
	// Cafe handlers
	CreateCafe(w http.ResponseWriter, r *http.Request)
	GetCafe(w http.ResponseWriter, r *http.Request)
	ListCafes(w http.ResponseWriter, r *http.Request)
	UpdateCafe(w http.ResponseWriter, r *http.Request)
	DeleteCafe(w http.ResponseWriter, r *http.Request)

	// Category handlers
	CreateCategory(w http.ResponseWriter, r *http.Request)
	GetCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	UpdateCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)

	// Activity handlers
	CreateActivity(w http.ResponseWriter, r *http.Request)
	GetActivity(w http.ResponseWriter, r *http.Request)
	ListActivities(w http.ResponseWriter, r *http.Request)
	UpdateActivity(w http.ResponseWriter, r *http.Request)
	DeleteActivity(w http.ResponseWriter, r *http.Request)

	// Purchase handlers
	CreatePurchase(w http.ResponseWriter, r *http.Request)
	GetPurchase(w http.ResponseWriter, r *http.Request)
	ListPurchases(w http.ResponseWriter, r *http.Request)
	FilterPurchases(w http.ResponseWriter, r *http.Request)
	UpdatePurchase(w http.ResponseWriter, r *http.Request)
	DeletePurchase(w http.ResponseWriter, r *http.Request)

	// Cafe shift revenue handlers
	CreateShiftRevenue(w http.ResponseWriter, r *http.Request)
	GetShiftRevenue(w http.ResponseWriter, r *http.Request)
	ListShiftRevenue(w http.ResponseWriter, r *http.Request)
	UpdateShiftRevenue(w http.ResponseWriter, r *http.Request)
	DeleteShiftRevenue(w http.ResponseWriter, r *http.Request)

	// Reservation handlers
	CreateReservation(w http.ResponseWriter, r *http.Request)
	GetReservation(w http.ResponseWriter, r *http.Request)
	ListReservations(w http.ResponseWriter, r *http.Request)
	UpdateReservation(w http.ResponseWriter, r *http.Request)
	DeleteReservation(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandlerImpl{
		catalogService: catalogService,
	}
}

// ==================== CAFE HANDLERS ====================

func (h *catalogHandlerImpl) CreateCafe(w http.ResponseWriter, r *http.Request) {
	var req cafe.CreateCafeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateCafe(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cafe created successfully", result)
}

func (h *catalogHandlerImpl) GetCafe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.catalogService.GetCafe(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) ListCafes(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListCafes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *catalogHandlerImpl) UpdateCafe(w http.ResponseWriter, r *http.Request) {
	var req cafe.UpdateCafeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateCafe(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cafe updated successfully", result)
}

func (h *catalogHandlerImpl) DeleteCafe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.DeleteCafe(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cafe deleted successfully", nil)
}

// ==================== CATEGORY HANDLERS ====================

func (h *catalogHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req category.CreateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateCategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created successfully", result)
}

func (h *catalogHandlerImpl) GetCategory(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *catalogHandlerImpl) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req category.UpdateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateCategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category updated successfully", result)
}

func (h *catalogHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category deleted successfully", nil)
}

// ==================== ACTIVITY HANDLERS ====================

func (h *catalogHandlerImpl) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activity.CreateActivityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity created successfully", result)
}

func (h *catalogHandlerImpl) GetActivity(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetActivity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) ListActivities(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListActivities(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *catalogHandlerImpl) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req activity.UpdateActivityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity updated successfully", result)
}

func (h *catalogHandlerImpl) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteActivity(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity deleted successfully", nil)
}

// ==================== PURCHASE HANDLERS ====================

func (h *catalogHandlerImpl) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchase.CreatePurchaseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreatePurchase(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Purchase recorded successfully", result)
}

func (h *catalogHandlerImpl) GetPurchase(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetPurchase(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) ListPurchases(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListPurchases(r.Context(), purchase.PurchaseFilter{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// FilterPurchases handles GET /purchases/filter?cafe=&from=&to=
func (h *catalogHandlerImpl) FilterPurchases(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := purchase.PurchaseFilter{CafeID: query.Get("cafe")}
	if filter.CafeID == "" {
		filter.CafeID = query.Get("cafeId")
	}

	var errs validator.ValidationErrors
	if from := query.Get("from"); from != "" {
		if t, ok := validator.IsValidDate(from); ok {
			filter.From = &t
		} else {
			errs.Add("from", "from must be YYYY-MM-DD")
		}
	}
	if to := query.Get("to"); to != "" {
		if t, ok := validator.IsValidDate(to); ok {
			filter.To = &t
		} else {
			errs.Add("to", "to must be YYYY-MM-DD")
		}
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.catalogService.ListPurchases(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *catalogHandlerImpl) UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchase.UpdatePurchaseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdatePurchase(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Purchase updated successfully", result)
}

func (h *catalogHandlerImpl) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeletePurchase(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Purchase deleted successfully", nil)
}

// ==================== SHIFT REVENUE HANDLERS ====================

func (h *catalogHandlerImpl) CreateShiftRevenue(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateRevenueRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateShiftRevenue(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift revenue recorded successfully", result)
}

func (h *catalogHandlerImpl) GetShiftRevenue(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetShiftRevenue(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShiftRevenue handles GET /revenue?cafe=
func (h *catalogHandlerImpl) ListShiftRevenue(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListShiftRevenue(r.Context(), r.URL.Query().Get("cafe"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *catalogHandlerImpl) UpdateShiftRevenue(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateRevenueRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateShiftRevenue(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift revenue updated successfully", result)
}

func (h *catalogHandlerImpl) DeleteShiftRevenue(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteShiftRevenue(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift revenue deleted successfully", nil)
}

// ==================== RESERVATION HANDLERS ====================

func (h *catalogHandlerImpl) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservation.ReservationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateReservation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reservation created successfully", result)
}

func (h *catalogHandlerImpl) GetReservation(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetReservation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) ListReservations(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListReservations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *catalogHandlerImpl) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservation.ReservationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateReservation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reservation updated successfully", result)
}

func (h *catalogHandlerImpl) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteReservation(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reservation deleted successfully", nil)
}
