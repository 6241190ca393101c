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

	cancelAppointmentHandler "github.com/afroconnect/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/afroconnect/booking-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/afroconnect/booking-service/internal/api/handlers/get_appointment"
	getAvailabilityRulesHandler "github.com/afroconnect/booking-service/internal/api/handlers/get_availability_rules"
	getAvailableSlotsHandler "github.com/afroconnect/booking-service/internal/api/handlers/get_available_slots"
	getBusinessAppointmentsHandler "github.com/afroconnect/booking-service/internal/api/handlers/get_business_appointments"
	getBusinessStatsHandler "github.com/afroconnect/booking-service/internal/api/handlers/get_business_stats"
	getCustomerAppointmentsHandler "github.com/afroconnect/booking-service/internal/api/handlers/get_customer_appointments"
	markPaidHandler "github.com/afroconnect/booking-service/internal/api/handlers/mark_paid"
	updateAppointmentStatusHandler "github.com/afroconnect/booking-service/internal/api/handlers/update_appointment_status"
	updateAvailabilityRulesHandler "github.com/afroconnect/booking-service/internal/api/handlers/update_availability_rules"
	"github.com/afroconnect/booking-service/internal/api/middleware"
	"github.com/afroconnect/booking-service/internal/config"
	"github.com/afroconnect/booking-service/internal/events"
	"github.com/afroconnect/booking-service/internal/infra/cache"
	appointmentRepo "github.com/afroconnect/booking-service/internal/infra/storage/appointment"
	availabilityRepo "github.com/afroconnect/booking-service/internal/infra/storage/availability"
	appointmentsService "github.com/afroconnect/booking-service/internal/service/appointments"
	availabilityService "github.com/afroconnect/booking-service/internal/service/availability"
	createAppointmentUC "github.com/afroconnect/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/afroconnect/booking-service/internal/usecase/get_available_slots"
	"github.com/afroconnect/booking-service/pkg/dbmetrics"
	"github.com/afroconnect/booking-service/pkg/logger"
	"github.com/afroconnect/booking-service/pkg/metrics"
	"github.com/afroconnect/booking-service/pkg/simpletxmanager"
	"github.com/afroconnect/booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AfroConnect BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Кэш правил доступности: Redis или no-op
	var rulesCache cache.Cache
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancelPing()
		defer redisCache.Close()
		rulesCache = redisCache
		log.Info("Redis cache connected (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	} else {
		rulesCache = cache.NewNoop()
		log.Info("Redis disabled, using no-op cache")
	}

	// Публикация событий переходов: RabbitMQ или no-op
	var publisher interface {
		PublishJSON(ctx context.Context, key string, v any) error
		Close() error
	}
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to event broker: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	} else {
		publisher = events.NewNoop()
		log.Info("Events disabled, using no-op publisher")
	}
	defer publisher.Close()

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		apptRepository  *appointmentRepo.Repository
		rulesRepository *availabilityRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		apptRepository = appointmentRepo.NewRepository(wrappedDB)
		rulesRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		apptRepository = appointmentRepo.NewRepository(db)
		rulesRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		rulesRepository,
		rulesCache,
		time.Duration(cfg.Redis.RulesTTLSeconds)*time.Second,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		apptRepository,
		publisher,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		apptRepository,
		availabilitySvc,
		txMgr,
		publisher,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		apptRepository,
		availabilitySvc,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	markPaid := markPaidHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBusinessAppointments := getBusinessAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBusinessStats := getBusinessStatsHandler.NewHandler(appointmentsSvc, log)
	getAvailabilityRules := getAvailabilityRulesHandler.NewHandler(availabilitySvc, log)
	updateAvailabilityRules := updateAvailabilityRulesHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты для записи
	api.HandleFunc("/businesses/{businessId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Правила доступности бизнеса
	api.HandleFunc("/businesses/{businessId}/availability-rules",
		getAvailabilityRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-Actor-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/paid", markPaid.Handle).Methods(http.MethodPatch)

	// --- Списки и статистика ---
	protected.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/appointments", getBusinessAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/stats", getBusinessStats.Handle).Methods(http.MethodGet)

	// --- Управление правилами доступности ---
	protected.HandleFunc("/businesses/{businessId}/availability-rules",
		updateAvailabilityRules.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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
