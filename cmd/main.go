package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/fadeline/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/fadeline/booking-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/fadeline/booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/fadeline/booking-service/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/fadeline/booking-service/internal/api/handlers/get_client_appointments"
	getProviderAppointmentsHandler "github.com/fadeline/booking-service/internal/api/handlers/get_provider_appointments"
	getScheduleHandler "github.com/fadeline/booking-service/internal/api/handlers/get_schedule"
	updateAppointmentStatusHandler "github.com/fadeline/booking-service/internal/api/handlers/update_appointment_status"
	updateScheduleHandler "github.com/fadeline/booking-service/internal/api/handlers/update_schedule"
	"github.com/fadeline/booking-service/internal/api/middleware"
	"github.com/fadeline/booking-service/internal/config"
	appointmentRepo "github.com/fadeline/booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/fadeline/booking-service/internal/infra/storage/schedule"
	directoryClient "github.com/fadeline/booking-service/internal/integrations/providerdirectory"
	appointmentsService "github.com/fadeline/booking-service/internal/service/appointments"
	scheduleService "github.com/fadeline/booking-service/internal/service/schedule"
	createAppointmentUC "github.com/fadeline/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/fadeline/booking-service/internal/usecase/get_available_slots"
	"github.com/fadeline/booking-service/pkg/dbmetrics"
	"github.com/fadeline/booking-service/pkg/logger"
	"github.com/fadeline/booking-service/pkg/metrics"
	"github.com/fadeline/booking-service/pkg/simpletxmanager"
	"github.com/fadeline/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	log.Info("Provider directory client initialized (url=%s, timeout=%ds)",
		cfg.Directory.URL, cfg.Directory.Timeout)

	// Repositories and transaction manager, instrumented when metrics
	// are on.
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		txMgr                 createAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentsSvc := appointmentsService.NewService(appointmentRepository, directory, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, directory, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		directory,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		directory,
		log,
	)

	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getProviderAppointments := getProviderAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/providers/{providerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/appointments",
		getProviderAppointments.Handle).Methods(http.MethodGet)

	// Provider-side mutations require the X-Provider-Ref header; the
	// handlers verify the caller against the resource's provider.
	providerOps := api.PathPrefix("").Subrouter()
	providerOps.Use(middleware.ProviderAuth)

	providerOps.HandleFunc("/providers/{providerId}/schedule",
		updateSchedule.Handle).Methods(http.MethodPut)
	providerOps.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	providerOps.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.HandleProvider).
		Methods(http.MethodPatch).
		Headers(middleware.ProviderRefHeader, "")

	// Client routes require the X-Client-Ref header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientRef}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
