package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/config"
	appHTTP "github.com/cmlabs-hris/bizdash-go/internal/handler/http"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/logging"
	"github.com/cmlabs-hris/bizdash-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/bizdash-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/bizdash-go/internal/service/auth"
	catalogService "github.com/cmlabs-hris/bizdash-go/internal/service/catalog"
	currencyService "github.com/cmlabs-hris/bizdash-go/internal/service/currency"
	dashboardService "github.com/cmlabs-hris/bizdash-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/bizdash-go/internal/service/employee"
	revenueService "github.com/cmlabs-hris/bizdash-go/internal/service/revenue"
	salaryService "github.com/cmlabs-hris/bizdash-go/internal/service/salary"
	"github.com/cmlabs-hris/bizdash-go/migrations"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		os.Exit(1)
	}

	logger := logging.New("bizdash-api", cfg.App.Version, cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(logger)

	// Money is written as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, migrations.FS); err != nil {
			slog.Error("Error applying migrations", "error", err)
			os.Exit(1)
		}
	}

	loc := cfg.Business.Location()
	fence := cfg.Business.Fence()
	transactor := postgresql.NewTransactor(db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	currencyRepo := postgresql.NewCurrencyRepository(db)
	revenueRepo := postgresql.NewRevenueRepository(db)
	cafeRepo := postgresql.NewCafeRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	purchaseRepo := postgresql.NewPurchaseRepository(db)
	cafeRevenueRepo := postgresql.NewCafeRevenueRepository(db)
	reservationRepo := postgresql.NewReservationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(employeeRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(transactor, attendanceRepo, employeeRepo, fence, loc)
	revenueSvc := revenueService.NewRevenueService(transactor, revenueRepo, currencyRepo, employeeRepo, activityRepo, loc)
	currencySvc := currencyService.NewCurrencyService(currencyRepo)
	employeeSvc := employeeService.NewEmployeeService(transactor, employeeRepo)
	catalogSvc := catalogService.NewCatalogService(
		transactor,
		cafeRepo,
		categoryRepo,
		activityRepo,
		purchaseRepo,
		cafeRevenueRepo,
		reservationRepo,
		loc,
	)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, loc)
	salarySvc := salaryService.NewSalaryService(employeeRepo, revenueRepo, loc)

	router := appHTTP.NewRouter(
		logger,
		cfg.CORS.AllowedOrigins,
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewRevenueHandler(revenueSvc),
		appHTTP.NewCurrencyHandler(currencySvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewCatalogHandler(catalogSvc),
		appHTTP.NewDashboardHandler(dashboardSvc, salarySvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to shutdown server", "error", err)
		}
	}()

	slog.Info("API server listening", "addr", server.Addr, "timezone", loc.String(), "geofence", fence.Enabled())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
