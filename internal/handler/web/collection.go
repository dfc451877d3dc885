package web

import (
	"net/http"

	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
)

// CollectionHandler serves one remote collection: list, get, create, patch
// and delete, each a single API call. Request bodies are forwarded as is.
type CollectionHandler[T any] struct {
	errorResponder
	remote apiclient.Collection[T]
	// query parameters forwarded on List
	filters []string
}

func NewCollectionHandler[T any](remote apiclient.Collection[T], store session.Store, filters ...string) *CollectionHandler[T] {
	return &CollectionHandler[T]{
		errorResponder: errorResponder{store: store},
		remote:         remote,
		filters:        filters,
	}
}

func (h *CollectionHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	items, err := h.remote.List(r.Context(), s.Token, pick(r.URL.Query(), h.filters...))
	if err != nil {
		h.handle(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	response.Success(w, items)
}

func (h *CollectionHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	item, err := h.remote.Get(r.Context(), s.Token, chi.URLParam(r, "id"))
	if err != nil {
		h.handle(w, r, err)
		return
	}
	response.Success(w, item)
}

func (h *CollectionHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	body, err := readJSON(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := h.remote.Create(r.Context(), s.Token, body)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	response.Created(w, "Created successfully", item)
}

func (h *CollectionHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	body, err := readJSON(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := h.remote.Update(r.Context(), s.Token, chi.URLParam(r, "id"), body)
	if err != nil {
		h.handle(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Updated successfully", item)
}

func (h *CollectionHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	s, _ := SessionFromContext(r.Context())

	if err := h.remote.Delete(r.Context(), s.Token, chi.URLParam(r, "id")); err != nil {
		h.handle(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Deleted successfully", nil)
}

// Mount registers the read routes and, unless readOnly, the write routes.
func (h *CollectionHandler[T]) Mount(r chi.Router, readOnly bool) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	if readOnly {
		return
	}
	r.Post("/", h.Create)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
