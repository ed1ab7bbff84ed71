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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_appointment"
	createExceptionHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_exception"
	deleteExceptionHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_exception"
	getAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_availability"
	getBookingRulesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_booking_rules"
	getNextAvailableHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_next_available"
	listAppointmentsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_appointments"
	listBarbersHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_barbers"
	listExceptionsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_exceptions"
	listServicesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_services"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	exceptionRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/exception"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/strapi"
	appointmentsService "github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/availability"
	catalogService "github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/confirmation"
	exceptionsService "github.com/m04kA/SMC-BarberBooking/internal/service/exceptions"
	createAppointmentUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_availability"
	getNextAvailableUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_next_available"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/ratelimit"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

// mailNotifier письма клиенту и салону; SMTP или заглушка
type mailNotifier interface {
	SendAppointmentConfirmation(ctx context.Context, data mailer.AppointmentEmail) error
	SendCancellation(ctx context.Context, data mailer.AppointmentEmail) error
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-BarberBooking...")
	log.Info("Configuration loaded from %s", configPath)

	rules, err := cfg.BookingRules()
	if err != nil {
		log.Fatal("Invalid booking rules: %v", err)
	}
	log.Info("Booking rules: interval=%dm, lead=%dh, buffer=%dm, max_days=%d, timezone=%s",
		rules.SlotIntervalMinutes, rules.LeadTimeHours, rules.BufferMinutes, rules.MaxDaysAhead, rules.Location)

	// Метрики (nil, если выключены; все методы nil-safe)
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.New(wrappedDB, log)

	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	exceptionRepository := exceptionRepo.NewRepository(wrappedDB)

	// Интеграции
	cms := strapi.NewClient(cfg.Strapi.URL, cfg.Strapi.Token, time.Duration(cfg.Strapi.Timeout)*time.Second, log)
	log.Info("Strapi client initialized (url=%s, timeout=%ds)", cfg.Strapi.URL, cfg.Strapi.Timeout)

	var notifier mailNotifier = mailer.Noop{}
	if cfg.Mail.Enabled {
		notifier = mailer.New(
			mailer.NewSMTPDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
			mailer.Config{From: cfg.Mail.From, ShopAddress: cfg.Mail.ShopAddress, ShopName: cfg.Mail.ShopName},
			metricsCollector,
			log,
		)
		log.Info("SMTP mailer enabled (host=%s:%d)", cfg.Mail.Host, cfg.Mail.Port)
	} else {
		log.Warn("Mail is disabled: confirmation emails will not be sent")
	}

	// Лимитер создания записей
	var limiter middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		switch cfg.RateLimit.Backend {
		case config.RateLimitBackendRedis:
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()

			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := rdb.Ping(pingCtx).Err(); err != nil {
				log.Warn("Redis is unreachable (addr=%s): %v", cfg.Redis.Addr, err)
			}
			cancel()

			limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window(), "rl:appointments")
		default:
			limiter = ratelimit.NewLocalLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
		}
		log.Info("Rate limit enabled (backend=%s, %d per %s, fail_open=%t)",
			cfg.RateLimit.Backend, cfg.RateLimit.Requests, cfg.RateLimit.Window(), cfg.RateLimit.FailOpen)
	}

	// Движок расчета слотов и генератор кодов
	engine := availability.NewEngine(rules)
	codes := confirmation.NewGenerator()

	// Сервисы
	catalogSvc := catalogService.NewService(cms, rules, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, notifier, txMgr, rules, log)
	exceptionsSvc := exceptionsService.NewService(exceptionRepository, cms, log)

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		exceptionRepository,
		cms,
		engine,
		metricsCollector,
		log,
	)
	getNextAvailableUseCase := getNextAvailableUC.NewUseCase(
		appointmentRepository,
		exceptionRepository,
		cms,
		engine,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		exceptionRepository,
		cms,
		engine,
		codes,
		notifier,
		txMgr,
		metricsCollector,
		log,
	)

	// Handlers
	listBarbers := listBarbersHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getBookingRules := getBookingRulesHandler.NewHandler(catalogSvc)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getNextAvailable := getNextAvailableHandler.NewHandler(getNextAvailableUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	createException := createExceptionHandler.NewHandler(exceptionsSvc, log)
	listExceptions := listExceptionsHandler.NewHandler(exceptionsSvc, log)
	deleteException := deleteExceptionHandler.NewHandler(exceptionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-rules", getBookingRules.Handle).Methods(http.MethodGet)

	// Сетка слотов и ближайший свободный слот
	api.HandleFunc("/barbers/{barberId:[0-9]+}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId:[0-9]+}/next-available", getNextAvailable.Handle).Methods(http.MethodGet)

	// Создание записи (с ограничением частоты)
	var create http.Handler = http.HandlerFunc(createAppointment.Handle)
	if limiter != nil {
		create = middleware.RateLimit(middleware.RateLimitOptions{
			Limiter:  limiter,
			FailOpen: cfg.RateLimit.FailOpen,
			Counter:  metricsCollector,
			Logger:   log,
		})(create)
	}
	api.Handle("/appointments", create).Methods(http.MethodPost)

	// Запись по коду подтверждения
	api.HandleFunc("/appointments/{code}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{code}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (X-Admin-Token или Authorization: Bearer)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	admin.HandleFunc("/barbers/{barberId:[0-9]+}/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{code}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Закрытые дни; barberId = 0 - весь салон
	admin.HandleFunc("/barbers/{barberId:[0-9]+}/exceptions", createException.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/barbers/{barberId:[0-9]+}/exceptions", listExceptions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/barbers/{barberId:[0-9]+}/exceptions/{exceptionId:[0-9]+}", deleteException.Handle).Methods(http.MethodDelete)

	if cfg.Admin.Token == "" {
		log.Warn("Admin token is not configured: admin routes are disabled")
	}

	// CORS оборачивает роутер целиком: preflight OPTIONS не совпадает с маршрутами mux
	handler := middleware.CORS(middleware.CORSPolicy{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.AdminTokenHeader, middleware.RequestIDHeader},
		MaxAge:         10 * time.Minute,
	})(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
