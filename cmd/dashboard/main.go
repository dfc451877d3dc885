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
	"github.com/cmlabs-hris/bizdash-go/internal/handler/web"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/logging"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if err := cfg.ValidateDashboard(); err != nil {
		fmt.Println("Invalid config:", err)
		os.Exit(1)
	}

	logger := logging.New("bizdash-dashboard", cfg.App.Version, cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(logger)

	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := apiclient.New(cfg.Dashboard.APIBaseURL, cfg.Dashboard.RequestTimeout)
	store := session.NewCookieStore(cfg.Dashboard.CookieSecure)
	tokenAuth := jwt.NewTokenAuth(cfg.JWT.Secret)

	router := web.NewRouter(
		logger,
		store,
		tokenAuth,
		web.NewAuthHandler(api, store, tokenAuth),
		web.NewAttendanceHandler(api, store, cfg.Dashboard.GeoTimeout),
		web.NewPageHandler(api, store),
		web.NewCollections(api, store),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Dashboard.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Dashboard.RequestTimeout + 15*time.Second,
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

	slog.Info("Dashboard gateway listening", "addr", server.Addr, "api", cfg.Dashboard.APIBaseURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
