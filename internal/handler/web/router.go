package web

import (
	"log/slog"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/activity"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/cafe"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/category"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/purchase"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/reservation"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/shift"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/salary"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Collections are the CRUD screens backed directly by API collections.
type Collections struct {
	Employees      *CollectionHandler[employee.EmployeeResponse]
	Cafes          *CollectionHandler[cafe.CafeResponse]
	Categories     *CollectionHandler[category.CategoryResponse]
	Activities     *CollectionHandler[activity.ActivityResponse]
	Purchases      *CollectionHandler[purchase.PurchaseResponse]
	PurchaseFilter *CollectionHandler[purchase.PurchaseResponse]
	ShiftRevenue   *CollectionHandler[shift.RevenueResponse]
	Currencies     *CollectionHandler[currency.CurrencyResponse]
	Salaries       *CollectionHandler[salary.Line]
	Reservations   *CollectionHandler[reservation.ReservationResponse]
	RevenueEntries *CollectionHandler[revenue.EntryResponse]
}

func NewCollections(api *apiclient.Client, store session.Store) Collections {
	return Collections{
		Employees:      NewCollectionHandler(apiclient.NewCollection[employee.EmployeeResponse](api, "/employees"), store),
		Cafes:          NewCollectionHandler(apiclient.NewCollection[cafe.CafeResponse](api, "/cafes"), store),
		Categories:     NewCollectionHandler(apiclient.NewCollection[category.CategoryResponse](api, "/categories"), store),
		Activities:     NewCollectionHandler(apiclient.NewCollection[activity.ActivityResponse](api, "/activities"), store),
		Purchases:      NewCollectionHandler(apiclient.NewCollection[purchase.PurchaseResponse](api, "/purchases"), store),
		PurchaseFilter: NewCollectionHandler(apiclient.NewCollection[purchase.PurchaseResponse](api, "/purchases/filter"), store, "cafe", "cafeId", "from", "to"),
		ShiftRevenue:   NewCollectionHandler(apiclient.NewCollection[shift.RevenueResponse](api, "/revenue"), store, "cafe"),
		Currencies:     NewCollectionHandler(apiclient.NewCollection[currency.CurrencyResponse](api, "/currencies"), store),
		Salaries:       NewCollectionHandler(apiclient.NewCollection[salary.Line](api, "/salary"), store, "month"),
		Reservations:   NewCollectionHandler(apiclient.NewCollection[reservation.ReservationResponse](api, "/reservations"), store),
		RevenueEntries: NewCollectionHandler(apiclient.NewCollection[revenue.EntryResponse](api, "/emp-revenue"), store),
	}
}

func NewRouter(
	logger *slog.Logger,
	store session.Store,
	tokenAuth *jwtauth.JWTAuth,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	pageHandler PageHandler,
	collections Collections,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.StripSlashes)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(Guard(store, tokenAuth))

	// Public
	r.Get("/", authHandler.Landing)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/reset-password", authHandler.ResetPasswordPage)
	r.Post("/reset-password", authHandler.ResetPassword)

	// Everything below has passed the guard
	r.Post("/logout", authHandler.Logout)

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", attendanceHandler.Page)
		r.Post("/check-in", attendanceHandler.CheckIn)
		r.Post("/check-out", attendanceHandler.CheckOut)
	})

	r.Get("/dashboard", pageHandler.Dashboard)
	r.Get("/settings", pageHandler.Settings)

	r.Route("/revenues", func(r chi.Router) {
		r.Get("/", pageHandler.Revenues)
		r.Get("/{id}", pageHandler.EmployeeRevenue)
		r.Post("/", collections.RevenueEntries.Create)
		r.Patch("/{id}", collections.RevenueEntries.Update)
		r.Delete("/{id}", collections.RevenueEntries.Delete)
	})

	r.Route("/employees", func(r chi.Router) {
		collections.Employees.Mount(r, false)
	})

	r.Route("/cafes", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			collections.Categories.Mount(r, false)
		})
		r.Route("/activities", func(r chi.Router) {
			collections.Activities.Mount(r, false)
		})
		r.Route("/purchases", func(r chi.Router) {
			r.Get("/filter", collections.PurchaseFilter.List)
			collections.Purchases.Mount(r, false)
		})
		r.Route("/revenue", func(r chi.Router) {
			collections.ShiftRevenue.Mount(r, false)
		})
		collections.Cafes.Mount(r, false)
	})

	r.Route("/currency", func(r chi.Router) {
		collections.Currencies.Mount(r, false)
	})

	r.Get("/salaries", collections.Salaries.List)

	r.Route("/reservation", func(r chi.Router) {
		collections.Reservations.Mount(r, false)
	})

	return r
}
