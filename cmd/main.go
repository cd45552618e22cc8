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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/cancel_booking"
	completeInterviewHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/complete_interview"
	confirmBookingHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/create_booking"
	createSlotHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/delete_slot"
	getBalanceHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/get_balance"
	getBookingHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/get_booking"
	getInterviewerBookingsHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/get_interviewer_bookings"
	getNotificationsHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/get_notifications"
	getPointsHistoryHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/get_points_history"
	getUserBookingsHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/get_user_bookings"
	grantPointsHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/grant_points"
	listSlotsHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/list_slots"
	markNotificationReadHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/mark_notification_read"
	updateSlotHandler "github.com/prepmate/MIP-BookingService/internal/api/handlers/update_slot"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/config"
	balanceCache "github.com/prepmate/MIP-BookingService/internal/infra/cache/balance"
	"github.com/prepmate/MIP-BookingService/internal/infra/migrate"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	interviewRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/interview"
	notificationRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/notification"
	pointsRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/points"
	slotRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/slot"
	notifyHubClient "github.com/prepmate/MIP-BookingService/internal/integrations/notifyhub"
	bookingsService "github.com/prepmate/MIP-BookingService/internal/service/bookings"
	ledgerService "github.com/prepmate/MIP-BookingService/internal/service/ledger"
	notifierService "github.com/prepmate/MIP-BookingService/internal/service/notifier"
	slotsService "github.com/prepmate/MIP-BookingService/internal/service/slots"
	cancelBookingUC "github.com/prepmate/MIP-BookingService/internal/usecase/cancel_booking"
	completeInterviewUC "github.com/prepmate/MIP-BookingService/internal/usecase/complete_interview"
	confirmBookingUC "github.com/prepmate/MIP-BookingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/prepmate/MIP-BookingService/internal/usecase/create_booking"
	"github.com/prepmate/MIP-BookingService/pkg/dbmetrics"
	"github.com/prepmate/MIP-BookingService/pkg/logger"
	"github.com/prepmate/MIP-BookingService/pkg/metrics"
	"github.com/prepmate/MIP-BookingService/pkg/simpletxmanager"
	"github.com/prepmate/MIP-BookingService/pkg/txmanager"
)

// TxManager интерфейс transaction manager, общий для сервисов и use cases
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type realTimeProvider struct{}

func (p *realTimeProvider) Now() time.Time {
	return time.Now()
}

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

	log.Info("Starting MIP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции
	if err := migrate.Up(cfg.Database.URL()); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

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

	// Подключаемся к Redis (если включен)
	var cache ledgerService.BalanceCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache = balanceCache.New(redisClient, time.Duration(cfg.Redis.BalanceTTL)*time.Second)
		log.Info("Balance cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.BalanceTTL)
	} else {
		log.Info("Balance cache disabled, balances are always computed from the ledger")
	}

	// Инициализируем клиента NotifyHub (если включен)
	var hub notifierService.HubClient
	if cfg.NotifyHub.Enabled {
		hub = notifyHubClient.NewClient(
			cfg.NotifyHub.URL,
			time.Duration(cfg.NotifyHub.Timeout)*time.Second,
			log,
		)
		log.Info("NotifyHub client initialized (url=%s, timeout=%ds)", cfg.NotifyHub.URL, cfg.NotifyHub.Timeout)
	} else {
		log.Info("NotifyHub disabled, notifications are stored in the database only")
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var dbExecutor dbmetrics.DBExecutor
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExecutor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		dbExecutor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	slotRepository := slotRepo.NewRepository(dbExecutor)
	bookingRepository := bookingRepo.NewRepository(dbExecutor)
	pointsRepository := pointsRepo.NewRepository(dbExecutor)
	interviewRepository := interviewRepo.NewRepository(dbExecutor)
	notificationRepository := notificationRepo.NewRepository(dbExecutor)

	timeProvider := &realTimeProvider{}

	// Инициализируем сервисы
	ledgerSvc := ledgerService.NewService(pointsRepository, cache, txMgr, log)
	slotsSvc := slotsService.NewService(slotRepository, bookingRepository, txMgr, timeProvider, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, slotRepository, log)
	notifierSvc := notifierService.NewService(notificationRepository, hub, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		ledgerSvc,
		notifierSvc,
		txMgr,
		log,
		cfg.Points.BookingCost,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		interviewRepository,
		notifierSvc,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		interviewRepository,
		ledgerSvc,
		notifierSvc,
		txMgr,
		log,
	)
	completeInterviewUseCase := completeInterviewUC.NewUseCase(
		interviewRepository,
		bookingRepository,
		ledgerSvc,
		txMgr,
		log,
		cfg.Points.InterviewerReward,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	completeInterview := completeInterviewHandler.NewHandler(completeInterviewUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getInterviewerBookings := getInterviewerBookingsHandler.NewHandler(bookingsSvc, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	getBalance := getBalanceHandler.NewHandler(ledgerSvc, log)
	getPointsHistory := getPointsHistoryHandler.NewHandler(ledgerSvc, log)
	grantPoints := grantPointsHandler.NewHandler(ledgerSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notifierSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notifierSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог слотов
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют JWT или X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		protected.Use(rateLimiter.Middleware())
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// --- Слоты (для интервьюеров) ---
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/interviewers/me/bookings", getInterviewerBookings.Handle).Methods(http.MethodGet)

	// --- Интервью ---
	protected.HandleFunc("/interviews/{interviewId}/complete", completeInterview.Handle).Methods(http.MethodPatch)

	// --- Баллы ---
	protected.HandleFunc("/points/balance", getBalance.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/points/history", getPointsHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/points/grant", grantPoints.Handle).Methods(http.MethodPost)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые компоненты
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}
	if rateLimiter != nil {
		rateLimiter.Stop()
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
