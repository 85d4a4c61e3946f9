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

	adminBookingsHandler "github.com/glammyapp/salon-service/internal/api/handlers/admin_bookings"
	adminCatalogHandler "github.com/glammyapp/salon-service/internal/api/handlers/admin_catalog"
	adminCouponsHandler "github.com/glammyapp/salon-service/internal/api/handlers/admin_coupons"
	adminMessagesHandler "github.com/glammyapp/salon-service/internal/api/handlers/admin_messages"
	adminNotificationsHandler "github.com/glammyapp/salon-service/internal/api/handlers/admin_notifications"
	adminReportsHandler "github.com/glammyapp/salon-service/internal/api/handlers/admin_reports"
	adminSettingsHandler "github.com/glammyapp/salon-service/internal/api/handlers/admin_settings"
	adminSlotOverridesHandler "github.com/glammyapp/salon-service/internal/api/handlers/admin_slot_overrides"
	blogHandler "github.com/glammyapp/salon-service/internal/api/handlers/blog"
	cancelBookingHandler "github.com/glammyapp/salon-service/internal/api/handlers/cancel_booking"
	catalogHandler "github.com/glammyapp/salon-service/internal/api/handlers/catalog"
	contentHandler "github.com/glammyapp/salon-service/internal/api/handlers/content"
	createBookingHandler "github.com/glammyapp/salon-service/internal/api/handlers/create_booking"
	customerAddressesHandler "github.com/glammyapp/salon-service/internal/api/handlers/customer_addresses"
	customerProfileHandler "github.com/glammyapp/salon-service/internal/api/handlers/customer_profile"
	getAvailableSlotsHandler "github.com/glammyapp/salon-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/glammyapp/salon-service/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/glammyapp/salon-service/internal/api/handlers/get_customer_bookings"
	getRescheduleHistoryHandler "github.com/glammyapp/salon-service/internal/api/handlers/get_reschedule_history"
	paymentsHandler "github.com/glammyapp/salon-service/internal/api/handlers/payments"
	requestOTPHandler "github.com/glammyapp/salon-service/internal/api/handlers/request_otp"
	rescheduleBookingHandler "github.com/glammyapp/salon-service/internal/api/handlers/reschedule_booking"
	validateCouponHandler "github.com/glammyapp/salon-service/internal/api/handlers/validate_coupon"
	verifyBookingHandler "github.com/glammyapp/salon-service/internal/api/handlers/verify_booking"
	verifyOTPHandler "github.com/glammyapp/salon-service/internal/api/handlers/verify_otp"
	"github.com/glammyapp/salon-service/internal/api/middleware"
	"github.com/glammyapp/salon-service/internal/config"
	blogRepo "github.com/glammyapp/salon-service/internal/infra/storage/blog"
	bookingRepo "github.com/glammyapp/salon-service/internal/infra/storage/booking"
	catalogRepo "github.com/glammyapp/salon-service/internal/infra/storage/catalog"
	contentRepo "github.com/glammyapp/salon-service/internal/infra/storage/content"
	couponRepo "github.com/glammyapp/salon-service/internal/infra/storage/coupon"
	customerRepo "github.com/glammyapp/salon-service/internal/infra/storage/customer"
	notificationRepo "github.com/glammyapp/salon-service/internal/infra/storage/notification"
	paymentRepo "github.com/glammyapp/salon-service/internal/infra/storage/payment"
	settingsRepo "github.com/glammyapp/salon-service/internal/infra/storage/settings"
	slotOverrideRepo "github.com/glammyapp/salon-service/internal/infra/storage/slotoverride"
	hyperPayClient "github.com/glammyapp/salon-service/internal/integrations/hyperpay"
	mailerClient "github.com/glammyapp/salon-service/internal/integrations/mailer"
	stripeClient "github.com/glammyapp/salon-service/internal/integrations/stripegw"
	whatsAppClient "github.com/glammyapp/salon-service/internal/integrations/whatsapp"
	blogService "github.com/glammyapp/salon-service/internal/service/blog"
	bookingsService "github.com/glammyapp/salon-service/internal/service/bookings"
	catalogService "github.com/glammyapp/salon-service/internal/service/catalog"
	contentService "github.com/glammyapp/salon-service/internal/service/content"
	couponsService "github.com/glammyapp/salon-service/internal/service/coupons"
	customersService "github.com/glammyapp/salon-service/internal/service/customers"
	notifierService "github.com/glammyapp/salon-service/internal/service/notifier"
	paymentsService "github.com/glammyapp/salon-service/internal/service/payments"
	remindersService "github.com/glammyapp/salon-service/internal/service/reminders"
	reportsService "github.com/glammyapp/salon-service/internal/service/reports"
	settingsService "github.com/glammyapp/salon-service/internal/service/settings"
	slotsService "github.com/glammyapp/salon-service/internal/service/slots"
	createBookingUC "github.com/glammyapp/salon-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/glammyapp/salon-service/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/glammyapp/salon-service/internal/usecase/reschedule_booking"
	"github.com/glammyapp/salon-service/pkg/dbmetrics"
	"github.com/glammyapp/salon-service/pkg/logger"
	"github.com/glammyapp/salon-service/pkg/metrics"
	"github.com/glammyapp/salon-service/pkg/simpletxmanager"
	"github.com/glammyapp/salon-service/pkg/txmanager"
)

// systemClock отдает текущее время сервисам, ожидающим TimeProvider
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

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

	log.Info("Starting salon-service...")
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

	// Инициализируем интеграционных клиентов
	hyperPay := hyperPayClient.NewClient(
		cfg.HyperPay.BaseURL,
		cfg.HyperPay.EntityID,
		cfg.HyperPay.AccessToken,
		time.Duration(cfg.HyperPay.Timeout)*time.Second,
		log,
	)
	stripeGW := stripeClient.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, log)
	whatsApp := whatsAppClient.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, log)
	mailer := mailerClient.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		log,
	)
	log.Info("Integration clients initialized (HyperPay=%s, Stripe, Twilio WhatsApp, SMTP=%s)",
		cfg.HyperPay.BaseURL, cfg.SMTP.Host)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		catalogRepository      *catalogRepo.Repository
		couponRepository       *couponRepo.Repository
		customerRepository     *customerRepo.Repository
		paymentRepository      *paymentRepo.Repository
		notificationRepository *notificationRepo.Repository
		settingsRepository     *settingsRepo.Repository
		slotOverrideRepository *slotOverrideRepo.Repository
		blogRepository         *blogRepo.Repository
		contentRepository      *contentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и платежах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		couponRepository = couponRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		slotOverrideRepository = slotOverrideRepo.NewRepository(wrappedDB)
		blogRepository = blogRepo.NewRepository(wrappedDB)
		contentRepository = contentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		couponRepository = couponRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		slotOverrideRepository = slotOverrideRepo.NewRepository(db)
		blogRepository = blogRepo.NewRepository(db)
		contentRepository = contentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemClock{}

	// Инициализируем сервисы
	notifierSvc := notifierService.NewService(
		notificationRepository,
		settingsRepository,
		whatsApp,
		mailer,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		customerRepository,
		notifierSvc,
		log,
	)
	customersSvc := customersService.NewService(customerRepository, whatsApp, clock, log)
	catalogSvc := catalogService.NewService(catalogRepository, txMgr, log)
	couponsSvc := couponsService.NewService(couponRepository, clock, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	slotsSvc := slotsService.NewService(slotOverrideRepository, catalogRepository, log)
	blogSvc := blogService.NewService(blogRepository, log)
	contentSvc := contentService.NewService(contentRepository, clock, log)
	reportsSvc := reportsService.NewService(bookingRepository, paymentRepository, log)
	paymentsSvc := paymentsService.NewService(
		paymentRepository,
		bookingRepository,
		hyperPay,
		stripeGW,
		txMgr,
		notifierSvc,
		clock,
		cfg.Payments.Currency,
		log,
	)
	remindersSvc := remindersService.NewService(
		bookingRepository,
		customerRepository,
		settingsRepository,
		whatsApp,
		notifierSvc,
		clock,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		customerRepository,
		couponRepository,
		settingsRepository,
		slotOverrideRepository,
		notifierSvc,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		settingsRepository,
		slotOverrideRepository,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		settingsRepository,
		slotOverrideRepository,
		notifierSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getRescheduleHistory := getRescheduleHistoryHandler.NewHandler(bookingSvc, log)
	verifyBooking := verifyBookingHandler.NewHandler(bookingSvc, log)
	requestOTP := requestOTPHandler.NewHandler(customersSvc, log)
	verifyOTP := verifyOTPHandler.NewHandler(customersSvc, log)
	customerProfile := customerProfileHandler.NewHandler(customersSvc, log)
	customerAddresses := customerAddressesHandler.NewHandler(customersSvc, log)
	payments := paymentsHandler.NewHandler(paymentsSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	validateCoupon := validateCouponHandler.NewHandler(couponsSvc, log)
	blog := blogHandler.NewHandler(blogSvc, log)
	siteContent := contentHandler.NewHandler(contentSvc, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingSvc, log)
	adminCatalog := adminCatalogHandler.NewHandler(catalogSvc, log)
	adminCoupons := adminCouponsHandler.NewHandler(couponsSvc, log)
	adminSettings := adminSettingsHandler.NewHandler(settingsSvc, log)
	adminSlotOverrides := adminSlotOverridesHandler.NewHandler(slotsSvc, log)
	adminNotifications := adminNotificationsHandler.NewHandler(notifierSvc, log)
	adminReports := adminReportsHandler.NewHandler(reportsSvc, log)
	adminMessages := adminMessagesHandler.NewHandler(contentSvc, log)

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

	// Каталог услуг
	api.HandleFunc("/catalog/categories", catalog.HandleListCategories).Methods(http.MethodGet)
	api.HandleFunc("/catalog/categories/{slug}", catalog.HandleGetCategory).Methods(http.MethodGet)
	api.HandleFunc("/catalog/services", catalog.HandleListServices).Methods(http.MethodGet)
	api.HandleFunc("/catalog/services/{serviceId}", catalog.HandleGetService).Methods(http.MethodGet)
	api.HandleFunc("/catalog/staff", catalog.HandleListStaff).Methods(http.MethodGet)
	api.HandleFunc("/catalog/staff/{staffId}", catalog.HandleGetStaff).Methods(http.MethodGet)

	// Получение доступных слотов для бронирования
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка бронирования по номеру и телефону
	api.HandleFunc("/bookings/verify", verifyBooking.Handle).Methods(http.MethodGet)

	// Проверка промокода
	api.HandleFunc("/coupons/validate", validateCoupon.Handle).Methods(http.MethodPost)

	// Авторизация по коду из WhatsApp
	api.HandleFunc("/auth/otp/request", requestOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/otp/verify", verifyOTP.Handle).Methods(http.MethodPost)

	// Блог и контент
	api.HandleFunc("/blog/posts", blog.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/blog/posts/{slug}", blog.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/blog/posts/{slug}/comments", blog.HandleAddComment).Methods(http.MethodPost)
	api.HandleFunc("/offers", siteContent.HandleListOffers).Methods(http.MethodGet)
	api.HandleFunc("/contact", siteContent.HandleSubmitContact).Methods(http.MethodPost)

	// Платежные коллбеки
	api.HandleFunc("/payments/hyperpay/result", payments.HandleHyperPayResult).Methods(http.MethodGet)
	api.HandleFunc("/webhooks/stripe", payments.HandleStripeWebhook).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedules", getRescheduleHistory.Handle).Methods(http.MethodGet)

	// --- Профиль клиента ---
	protected.HandleFunc("/customers/me", customerProfile.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/customers/me", customerProfile.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/customers/me/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/me/addresses", customerAddresses.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/customers/me/addresses", customerAddresses.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/customers/me/addresses/{addressId}", customerAddresses.HandleDelete).Methods(http.MethodDelete)

	// --- Платежи ---
	protected.HandleFunc("/bookings/{bookingId}/payments/hyperpay", payments.HandleHyperPayCheckout).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/payments/stripe", payments.HandleStripeIntent).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", adminBookings.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", adminBookings.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", adminBookings.HandleUpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.HandleAdmin).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.HandleAdmin).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/reschedules", getRescheduleHistory.HandleAdmin).Methods(http.MethodGet)

	// --- Каталог ---
	admin.HandleFunc("/catalog/categories", adminCatalog.HandleCreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/catalog/categories/{categoryId}", adminCatalog.HandleUpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/catalog/categories/{categoryId}", adminCatalog.HandleDeleteCategory).Methods(http.MethodDelete)
	admin.HandleFunc("/catalog/services", adminCatalog.HandleCreateService).Methods(http.MethodPost)
	admin.HandleFunc("/catalog/services/{serviceId}", adminCatalog.HandleUpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/catalog/services/{serviceId}", adminCatalog.HandleDeleteService).Methods(http.MethodDelete)
	admin.HandleFunc("/catalog/staff", adminCatalog.HandleCreateStaff).Methods(http.MethodPost)
	admin.HandleFunc("/catalog/staff/{staffId}", adminCatalog.HandleUpdateStaff).Methods(http.MethodPut)
	admin.HandleFunc("/catalog/staff/{staffId}", adminCatalog.HandleDeleteStaff).Methods(http.MethodDelete)

	// --- Блог ---
	admin.HandleFunc("/blog/posts", blog.HandleAdminCreate).Methods(http.MethodPost)
	admin.HandleFunc("/blog/posts/{postId}", blog.HandleAdminUpdate).Methods(http.MethodPut)

	// --- Промокоды ---
	admin.HandleFunc("/coupons", adminCoupons.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/coupons", adminCoupons.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/coupons/{couponId}", adminCoupons.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/coupons/{couponId}", adminCoupons.HandleDelete).Methods(http.MethodDelete)

	// --- Настройки салона ---
	admin.HandleFunc("/settings", adminSettings.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/settings", adminSettings.HandleUpdate).Methods(http.MethodPut)

	// --- Управление слотами ---
	admin.HandleFunc("/slot-overrides", adminSlotOverrides.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/slot-overrides", adminSlotOverrides.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/slot-overrides/{overrideId}", adminSlotOverrides.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/slot-overrides/{overrideId}", adminSlotOverrides.HandleDelete).Methods(http.MethodDelete)

	// --- Уведомления ---
	admin.HandleFunc("/notifications", adminNotifications.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/read-all", adminNotifications.HandleMarkAllRead).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/{notificationId}/read", adminNotifications.HandleMarkRead).Methods(http.MethodPatch)

	// --- Отчеты ---
	admin.HandleFunc("/reports/stats", adminReports.HandleStats).Methods(http.MethodGet)
	admin.HandleFunc("/reports/bookings/export", adminReports.HandleExportBookings).Methods(http.MethodGet)
	admin.HandleFunc("/reports/revenue/export", adminReports.HandleExportRevenue).Methods(http.MethodGet)

	// --- Обращения с сайта ---
	admin.HandleFunc("/contact-messages", adminMessages.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/contact-messages/{messageId}/read", adminMessages.HandleMarkRead).Methods(http.MethodPatch)

	// Запускаем рассылку напоминаний
	if err := remindersSvc.Start(); err != nil {
		log.Fatal("Failed to start reminders scheduler: %v", err)
	}
	log.Info("Reminders scheduler started")

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

	// Останавливаем планировщик напоминаний
	remindersSvc.Stop()
	log.Info("Reminders scheduler stopped")

	// Останавливаем сбор метрик connection pool
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
