package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/get_availability"
	getBookingHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/get_booking"
	getPackagesHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/get_packages"
	getVenueSettingsHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/get_venue_settings"
	listBookingsHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/list_bookings"
	rescheduleBookingHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/update_booking_status"
	updateVenueSettingsHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/update_venue_settings"
	validateBookingHandler "github.com/KrisWemet/customer-connection-hub-sub001/internal/api/handlers/validate_booking"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/api/middleware"
	"github.com/KrisWemet/customer-connection-hub-sub001/internal/config"
	venueCache "github.com/KrisWemet/customer-connection-hub-sub001/internal/infra/cache/venue"
	bookingRepo "github.com/KrisWemet/customer-connection-hub-sub001/internal/infra/storage/booking"
	venueRepo "github.com/KrisWemet/customer-connection-hub-sub001/internal/infra/storage/venue"
	bookingsService "github.com/KrisWemet/customer-connection-hub-sub001/internal/service/bookings"
	venueService "github.com/KrisWemet/customer-connection-hub-sub001/internal/service/venue"
	createBookingUC "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/create_booking"
	getAvailabilityUC "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/get_availability"
	rescheduleBookingUC "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/reschedule_booking"
	validateBookingUC "github.com/KrisWemet/customer-connection-hub-sub001/internal/usecase/validate_booking"
	"github.com/KrisWemet/customer-connection-hub-sub001/migrations"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/dbmetrics"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/logger"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/metrics"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/txmanager"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load(".env")

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
	log = log.With("service", cfg.Metrics.ServiceName)
	defer log.Close()

	log.Info("Starting venue booking service...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Scheduling.Timezone, err)
	}

	// Инициализируем метрики (если включены)
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.RunMigrations {
		applied, err := migrations.Up(startupCtx, db)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Все запросы идут через обертку: без метрик она только проксирует вызовы
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Кэш настроек площадки
	var settingsCache venueService.SettingsCache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(startupCtx).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		settingsCache = venueCache.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)
		log.Info("Venue settings cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	venueRepository := venueRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	venueSvc := venueService.NewService(
		venueRepository,
		settingsCache,
		metricsCollector,
		cfg.Scheduling.VenueDefaults(),
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	validateBookingUseCase := validateBookingUC.NewUseCase(
		bookingRepository,
		venueSvc,
		metricsCollector,
		location,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueSvc,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		venueSvc,
		txMgr,
		location,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		venueSvc,
		location,
		log,
	)

	// Инициализируем handlers
	getPackages := getPackagesHandler.NewHandler(log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getVenueSettings := getVenueSettingsHandler.NewHandler(venueSvc, log)
	updateVenueSettings := updateVenueSettingsHandler.NewHandler(venueSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		public.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
		log.Info("Rate limit for public routes: %.1f rps, burst=%d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Правила пакетов
	public.HandleFunc("/packages", getPackages.Handle).Methods(http.MethodGet)

	// Календарь занятости и допустимые дни заезда
	public.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Проверка бронирования без сохранения
	public.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)

	// Текущие настройки площадки
	public.HandleFunc("/venue/settings", getVenueSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Управление площадкой ---
	protected.HandleFunc("/venue/settings", updateVenueSettings.Handle).Methods(http.MethodPut)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
