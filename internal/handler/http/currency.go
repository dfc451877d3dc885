package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CurrencyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type currencyHandlerImpl struct {
	currencyService currency.CurrencyService
}

func NewCurrencyHandler(currencyService currency.CurrencyService) CurrencyHandler {
	return &currencyHandlerImpl{
		currencyService: currencyService,
	}
}

// Create implements CurrencyHandler.
func (h *currencyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req currency.CreateCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create currency decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.currencyService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Currency created", result)
}

// Get implements CurrencyHandler.
func (h *currencyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.currencyService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements CurrencyHandler.
func (h *currencyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.currencyService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements CurrencyHandler.
func (h *currencyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req currency.UpdateCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update currency decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.currencyService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Currency updated", result)
}

// Delete implements CurrencyHandler.
func (h *currencyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.currencyService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Currency deleted", nil)
}
