package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/delivery/http/controllers"
	"medibridge-service/internal/app/delivery/http/middlewares"
	"medibridge-service/internal/app/delivery/http/routers"
	"medibridge-service/internal/app/drivers/database"
	"medibridge-service/internal/app/drivers/logger"
	smtpdriver "medibridge-service/internal/app/drivers/mailer"
	"medibridge-service/internal/app/drivers/messaging"
	miniodriver "medibridge-service/internal/app/drivers/storage"
	"medibridge-service/internal/app/services/core/appointments"
	"medibridge-service/internal/app/services/core/auth"
	"medibridge-service/internal/app/services/core/orders"
	"medibridge-service/internal/app/services/core/payments"
	"medibridge-service/internal/app/services/core/prescriptions"
	"medibridge-service/internal/app/services/core/users"
	"medibridge-service/internal/app/services/shared/mailer"
	"medibridge-service/internal/app/services/shared/payment_gateway"
	"medibridge-service/internal/app/services/shared/ratelimiter"
	redisrepo "medibridge-service/internal/app/services/shared/redis"
	"medibridge-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	mysqlDB := database.NewMySQLDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := miniodriver.NewMinio(driverConfig)
	smtpClient := smtpdriver.NewSMTPClient(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MySQL:          mysqlDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(redisClient)
	minioStorage := storage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)
	razorpayGateway := payment_gateway.NewRazorpayService(internalConfig)
	webhookLimiter := ratelimiter.NewWebhookRateLimiter(10, 20)

	mailerService, err := mailer.NewMailerService(smtpClient, rabbitMQConn, internalConfig.Mailer.QueueName)
	if err != nil {
		zapLogger.Sugar().Fatalf("Failed to initialize mailer service: %v", err)
	}
	workerStop, err := mailerService.StartWorker(logrusLogger)
	if err != nil {
		zapLogger.Sugar().Fatalf("Failed to start mail worker: %v", err)
	}
	bootstrap.WorkerStop = workerStop

	// Repositories
	userRepository := users.NewUserMySQLRepository(mysqlDB)
	appointmentRepository := appointments.NewAppointmentMySQLRepository(mysqlDB)
	orderRepository := orders.NewOrderMySQLRepository(mysqlDB)
	prescriptionRepository := prescriptions.NewPrescriptionMySQLRepository(mysqlDB)
	paymentRepository := payments.NewPaymentMySQLRepository(mysqlDB)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, internalConfig, zapLogger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, userRepository, mailerService, zapLogger)
	orderUsecase := orders.NewOrderUsecase(orderRepository, userRepository, mailerService, zapLogger)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, appointmentRepository, userRepository, zapLogger)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		appointmentRepository,
		orderRepository,
		userRepository,
		razorpayGateway,
		redisRepository,
		mailerService,
		internalConfig,
		zapLogger,
	)

	// Delivery
	mws := middlewares.NewMiddlewares(zapLogger, authUsecase, internalConfig)
	authController := controllers.NewAuthController(zapLogger, authUsecase)
	appointmentController := controllers.NewAppointmentController(zapLogger, appointmentUsecase)
	orderController := controllers.NewOrderController(zapLogger, orderUsecase)
	prescriptionController := controllers.NewPrescriptionController(zapLogger, prescriptionUsecase)
	paymentController := controllers.NewPaymentController(zapLogger, paymentUsecase)
	webhookController := controllers.NewWebhookController(zapLogger, paymentUsecase, webhookLimiter, internalConfig)
	uploadController := controllers.NewUploadController(zapLogger, minioStorage, internalConfig)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		mws,
		authController,
		appointmentController,
		orderController,
		prescriptionController,
		paymentController,
		webhookController,
		uploadController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrusLogger.Println("Waiting for pending requests already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		zapLogger.Sugar().Errorf("Error during resource shutdown: %v", err)
	}

	logrusLogger.Println("Server exiting")
}
