package http

import (
	"log/slog"

	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	revenueHandler RevenueHandler,
	currencyHandler CurrencyHandler,
	employeeHandler EmployeeHandler,
	catalogHandler CatalogHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/reset-password", authHandler.ResetPassword)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkIn", attendanceHandler.CheckIn)
				r.Post("/checkOut", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/status", attendanceHandler.Status)
			})

			r.Route("/emp-revenue", func(r chi.Router) {
				r.Get("/report", revenueHandler.Report)
				r.Get("/report.pdf", revenueHandler.ReportPDF)
				r.Get("/employee/{id}", revenueHandler.EmployeeEntries)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", revenueHandler.Create)
					r.Patch("/{id}", revenueHandler.Update)
					r.Delete("/{id}", revenueHandler.Delete)
				})
			})

			r.Route("/currencies", func(r chi.Router) {
				r.Get("/", currencyHandler.List)
				r.Get("/{id}", currencyHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", currencyHandler.Create)
					r.Patch("/{id}", currencyHandler.Update)
					r.Delete("/{id}", currencyHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Patch("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/cafes", func(r chi.Router) {
				r.Get("/", catalogHandler.ListCafes)
				r.Get("/{id}", catalogHandler.GetCafe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", catalogHandler.CreateCafe)
					r.Patch("/{id}", catalogHandler.UpdateCafe)
					r.Delete("/{id}", catalogHandler.DeleteCafe)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", catalogHandler.ListCategories)
				r.Get("/{id}", catalogHandler.GetCategory)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", catalogHandler.CreateCategory)
					r.Patch("/{id}", catalogHandler.UpdateCategory)
					r.Delete("/{id}", catalogHandler.DeleteCategory)
				})
			})

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", catalogHandler.ListActivities)
				r.Get("/{id}", catalogHandler.GetActivity)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", catalogHandler.CreateActivity)
					r.Patch("/{id}", catalogHandler.UpdateActivity)
					r.Delete("/{id}", catalogHandler.DeleteActivity)
				})
			})

			r.Route("/purchases", func(r chi.Router) {
				r.Get("/", catalogHandler.ListPurchases)
				r.Get("/filter", catalogHandler.FilterPurchases)
				r.Get("/{id}", catalogHandler.GetPurchase)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", catalogHandler.CreatePurchase)
					r.Patch("/{id}", catalogHandler.UpdatePurchase)
					r.Delete("/{id}", catalogHandler.DeletePurchase)
				})
			})

			r.Route("/revenue", func(r chi.Router) {
				r.Get("/", catalogHandler.ListShiftRevenue)
				r.Get("/{id}", catalogHandler.GetShiftRevenue)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", catalogHandler.CreateShiftRevenue)
					r.Patch("/{id}", catalogHandler.UpdateShiftRevenue)
					r.Delete("/{id}", catalogHandler.DeleteShiftRevenue)
				})
			})

			r.Route("/reservations", func(r chi.Router) {
				r.Get("/", catalogHandler.ListReservations)
				r.Get("/{id}", catalogHandler.GetReservation)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", catalogHandler.CreateReservation)
					r.Patch("/{id}", catalogHandler.UpdateReservation)
					r.Delete("/{id}", catalogHandler.DeleteReservation)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/dashboard", dashboardHandler.GetDashboard)
				r.Get("/salary", dashboardHandler.ListSalaries)
			})
		})
	})
	return r
}
