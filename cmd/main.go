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

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	adminBookingsHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/admin_bookings"
	cancelBookingHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/create_booking"
	eventsHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/events"
	fitnessHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/fitness"
	getAvailableHousesHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/get_available_houses"
	getBookingHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/get_booking"
	getHouseCalendarHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/get_house_calendar"
	getUserBookingsHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/get_user_bookings"
	housesHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/houses"
	menuHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/menu"
	tableReservationsHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/table_reservations"
	usersHandler "github.com/m04kA/SMC-ResortService/internal/api/handlers/users"
	"github.com/m04kA/SMC-ResortService/internal/api/middleware"
	"github.com/m04kA/SMC-ResortService/internal/config"
	"github.com/m04kA/SMC-ResortService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/booking"
	eventRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/event"
	fitnessRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/fitness"
	houseRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/house"
	menuRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/menu"
	tableReservationRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/table_reservation"
	userRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ResortService/internal/integrations/imagestore"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-ResortService/internal/service/bookings"
	eventsService "github.com/m04kA/SMC-ResortService/internal/service/events"
	fitnessService "github.com/m04kA/SMC-ResortService/internal/service/fitness"
	housesService "github.com/m04kA/SMC-ResortService/internal/service/houses"
	menuService "github.com/m04kA/SMC-ResortService/internal/service/menu"
	reservationsService "github.com/m04kA/SMC-ResortService/internal/service/reservations"
	usersService "github.com/m04kA/SMC-ResortService/internal/service/users"
	checkAvailabilityUC "github.com/m04kA/SMC-ResortService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-ResortService/internal/usecase/create_booking"
	getAvailableHousesUC "github.com/m04kA/SMC-ResortService/internal/usecase/get_available_houses"
	getHouseCalendarUC "github.com/m04kA/SMC-ResortService/internal/usecase/get_house_calendar"
	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
	"github.com/m04kA/SMC-ResortService/pkg/metrics"
	"github.com/m04kA/SMC-ResortService/pkg/txmanager"
)

const healthTimeout = 2 * time.Second

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(config.DefaultPath)
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

	log.Info("Starting SMC-ResortService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	recorder := metrics.NewRecorder(metricsCollector, cfg.Metrics.ServiceName)

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

	// При выключенных метриках обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	houseRepository := houseRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	menuRepository := menuRepo.NewRepository(wrappedDB)
	eventRepository := eventRepo.NewRepository(wrappedDB)
	tableReservationRepository := tableReservationRepo.NewRepository(wrappedDB)
	fitnessRepository := fitnessRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Интеграции
	var uploader housesService.ImageUploader = imagestore.NoopUploader{}
	if cfg.Storage.Enabled() {
		client, err := imagestore.NewClient(
			cfg.Storage.Endpoint,
			cfg.Storage.UseSSL,
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			cfg.Storage.Bucket,
			cfg.Storage.PublicURL,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize image storage: %v", err)
		}
		uploader = client
		log.Info("Image storage enabled (endpoint=%s, bucket=%s)", cfg.Storage.Endpoint, cfg.Storage.Bucket)
	}

	var publisher notifier.Publisher = notifier.Noop{}
	if cfg.Kafka.Enabled() {
		producer, err := notifier.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Fatal("Failed to initialize kafka producer: %v", err)
		}
		publisher = producer
		log.Info("Event publishing enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close publisher: %v", err)
		}
	}()

	policy := domain.BookingPolicy{
		WeekendMultiplier:  cfg.Pricing.WeekendMultiplier,
		MaxStayNights:      cfg.Booking.MaxStayNights,
		AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
	}

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(houseRepository, bookingRepository, recorder, policy, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		houseRepository,
		bookingRepository,
		publisher,
		recorder,
		txMgr,
		policy,
		log,
	)
	getAvailableHousesUseCase := getAvailableHousesUC.NewUseCase(houseRepository, bookingRepository, policy, log)
	getHouseCalendarUseCase := getHouseCalendarUC.NewUseCase(houseRepository, bookingRepository, policy.WeekendMultiplier, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, publisher, log)
	houseSvc := housesService.NewService(houseRepository, uploader, policy.WeekendMultiplier, log)
	menuSvc := menuService.NewService(menuRepository, log)
	eventSvc := eventsService.NewService(eventRepository, publisher, recorder, txMgr, log)
	reservationSvc := reservationsService.NewService(
		tableReservationRepository,
		publisher,
		recorder,
		txMgr,
		cfg.Dining.SeatsPerDay,
		log,
	)
	fitnessSvc := fitnessService.NewService(
		fitnessRepository,
		publisher,
		recorder,
		txMgr,
		cfg.Fitness.MembershipPrices(),
		log,
	)
	userSvc := usersService.NewService(userRepository, cfg.Auth.BcryptCost, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableHouses := getAvailableHousesHandler.NewHandler(getAvailableHousesUseCase, log)
	getHouseCalendar := getHouseCalendarHandler.NewHandler(getHouseCalendarUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingSvc, log)
	houses := housesHandler.NewHandler(houseSvc, log)
	menu := menuHandler.NewHandler(menuSvc, log)
	events := eventsHandler.NewHandler(eventSvc, log)
	tableReservations := tableReservationsHandler.NewHandler(reservationSvc, log)
	fitness := fitnessHandler.NewHandler(fitnessSvc, log)
	users := usersHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), healthTimeout)
		defer cancel()
		if err := wrappedDB.PingContext(ctx); err != nil {
			log.Error("GET /health - Database unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "база данных недоступна")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (X-User-ID необязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// --- Дома ---
	public.HandleFunc("/houses", houses.List).Methods(http.MethodGet)
	public.HandleFunc("/houses/available", getAvailableHouses.Handle).Methods(http.MethodGet)
	public.HandleFunc("/houses/{houseId:[0-9]+}", houses.Get).Methods(http.MethodGet)
	public.HandleFunc("/houses/{houseId:[0-9]+}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	public.HandleFunc("/houses/{houseId:[0-9]+}/calendar", getHouseCalendar.Handle).Methods(http.MethodGet)

	// --- Бронирование дома (гость может быть без аккаунта) ---
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// --- Ресторан ---
	public.HandleFunc("/menu", menu.GetMenu).Methods(http.MethodGet)
	public.HandleFunc("/table-reservations", tableReservations.Create).Methods(http.MethodPost)

	// --- Мероприятия ---
	public.HandleFunc("/events", events.ListUpcoming).Methods(http.MethodGet)
	public.HandleFunc("/events/{eventId:[0-9]+}", events.Get).Methods(http.MethodGet)
	public.HandleFunc("/events/{eventId:[0-9]+}/reservations", events.Reserve).Methods(http.MethodPost)

	// --- Фитнес ---
	public.HandleFunc("/fitness/courses", fitness.ListCourses).Methods(http.MethodGet)
	public.HandleFunc("/fitness/courses/{courseId:[0-9]+}", fitness.GetCourse).Methods(http.MethodGet)
	public.HandleFunc("/fitness/courses/{courseId:[0-9]+}/registrations", fitness.Register).Methods(http.MethodPost)
	public.HandleFunc("/fitness/memberships", fitness.CreateMembership).Methods(http.MethodPost)

	// --- Пользователи ---
	public.HandleFunc("/users/register", users.Register).Methods(http.MethodPost)
	public.HandleFunc("/users/login", users.Login).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/users/me", users.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (X-User-ID + роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)
	admin.Use(middleware.Admin(userRepository, log))

	// --- Дома ---
	admin.HandleFunc("/houses", houses.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/houses", houses.Create).Methods(http.MethodPost)
	admin.HandleFunc("/houses/{houseId:[0-9]+}", houses.GetAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/houses/{houseId:[0-9]+}", houses.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/houses/{houseId:[0-9]+}", houses.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/houses/{houseId:[0-9]+}/image", houses.UploadImage).Methods(http.MethodPost)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", adminBookings.List).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/status", adminBookings.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}", adminBookings.Delete).Methods(http.MethodDelete)

	// --- Меню ---
	admin.HandleFunc("/menu/categories", menu.ListCategories).Methods(http.MethodGet)
	admin.HandleFunc("/menu/categories", menu.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/menu/categories/{id:[0-9]+}", menu.UpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/menu/categories/{id:[0-9]+}", menu.DeleteCategory).Methods(http.MethodDelete)
	admin.HandleFunc("/menu/items", menu.ListItems).Methods(http.MethodGet)
	admin.HandleFunc("/menu/items", menu.CreateItem).Methods(http.MethodPost)
	admin.HandleFunc("/menu/items/{id:[0-9]+}", menu.UpdateItem).Methods(http.MethodPut)
	admin.HandleFunc("/menu/items/{id:[0-9]+}", menu.DeleteItem).Methods(http.MethodDelete)

	// --- Мероприятия ---
	admin.HandleFunc("/events", events.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/events", events.Create).Methods(http.MethodPost)
	admin.HandleFunc("/events/{eventId:[0-9]+}", events.GetAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/events/{eventId:[0-9]+}", events.Update).Methods(http.MethodPut)
	admin.HandleFunc("/events/{eventId:[0-9]+}", events.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/events/{eventId:[0-9]+}/reservations", events.ListReservations).Methods(http.MethodGet)
	admin.HandleFunc("/event-reservations/{id:[0-9]+}/status", events.UpdateReservationStatus).Methods(http.MethodPatch)

	// --- Брони столиков ---
	admin.HandleFunc("/table-reservations", tableReservations.List).Methods(http.MethodGet)
	admin.HandleFunc("/table-reservations/{id:[0-9]+}", tableReservations.Get).Methods(http.MethodGet)
	admin.HandleFunc("/table-reservations/{id:[0-9]+}/status", tableReservations.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/table-reservations/{id:[0-9]+}", tableReservations.Delete).Methods(http.MethodDelete)

	// --- Фитнес ---
	admin.HandleFunc("/fitness/courses", fitness.ListAllCourses).Methods(http.MethodGet)
	admin.HandleFunc("/fitness/courses", fitness.CreateCourse).Methods(http.MethodPost)
	admin.HandleFunc("/fitness/courses/{courseId:[0-9]+}", fitness.GetCourseAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/fitness/courses/{courseId:[0-9]+}", fitness.UpdateCourse).Methods(http.MethodPut)
	admin.HandleFunc("/fitness/courses/{courseId:[0-9]+}", fitness.DeleteCourse).Methods(http.MethodDelete)
	admin.HandleFunc("/fitness/courses/{courseId:[0-9]+}/registrations", fitness.ListRegistrations).Methods(http.MethodGet)
	admin.HandleFunc("/fitness/registrations/{id:[0-9]+}/status", fitness.UpdateRegistrationStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/fitness/memberships", fitness.ListMemberships).Methods(http.MethodGet)
	admin.HandleFunc("/fitness/memberships/{id:[0-9]+}/status", fitness.UpdateMembershipStatus).Methods(http.MethodPatch)

	// --- Пользователи ---
	admin.HandleFunc("/users", users.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId:[0-9]+}/role", users.UpdateRole).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{userId:[0-9]+}", users.Delete).Methods(http.MethodDelete)

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
