package main

import (
	"adhd-intake-service/internal/app/config"
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/delivery/http/controllers"
	"adhd-intake-service/internal/app/delivery/http/middlewares"
	"adhd-intake-service/internal/app/delivery/http/routers"
	"adhd-intake-service/internal/app/drivers/database"
	"adhd-intake-service/internal/app/drivers/logger"
	"adhd-intake-service/internal/app/drivers/messaging"
	"adhd-intake-service/internal/app/services/core/forms"
	intakeSessions "adhd-intake-service/internal/app/services/core/intake_sessions"
	"adhd-intake-service/internal/app/services/shared/locker"
	"adhd-intake-service/internal/app/services/shared/redis"
	"adhd-intake-service/internal/app/services/shared/safetyalert"
	"adhd-intake-service/internal/app/services/shared/storage"
	"adhd-intake-service/internal/app/services/shared/translation"
	"adhd-intake-service/internal/pkg/metrics"
	"adhd-intake-service/internal/pkg/utils"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Error validating config: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: requestTimeout,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      2 * requestTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown()
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	metrics.Init()

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Translation
	var translator contracts.Translator = translation.NewPassthroughTranslator()
	if bootstrap.InternalConfig.Translation.BaseUrl != "" {
		translator = translation.NewGoogleTranslator(bootstrap.InternalConfig, redisRepository, bootstrap.Logger)
	}

	// Response store
	responseStore, storeClose, err := storage.NewResponseStore(
		context.Background(),
		bootstrap.DriverConfig,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}
	bootstrap.StoreClose = storeClose

	// Safety alerts
	safetyAlertPublisher, err := safetyalert.NewSafetyAlertPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.SafetyAlertQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Form
	formUsecase := forms.NewFormUsecase(translator, bootstrap.Logger)
	formController := controllers.NewFormController(bootstrap.Logger, formUsecase)

	// Intake session
	draftSealer, err := utils.NewDraftSealer(bootstrap.InternalConfig.Intake.DraftEncryptionKey)
	if err != nil {
		return err
	}
	intakeSessionRepository := intakeSessions.NewIntakeSessionRedisRepository(
		redisRepository,
		draftSealer,
		time.Duration(bootstrap.InternalConfig.Intake.SessionExpiredTimeInHours)*time.Hour,
		bootstrap.Logger,
	)
	intakeSessionUsecase := intakeSessions.NewIntakeSessionUsecase(
		intakeSessionRepository,
		responseStore,
		safetyAlertPublisher,
		lockService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	intakeSessionController := controllers.NewIntakeSessionController(bootstrap.Logger, intakeSessionUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		formController,
		intakeSessionController,
	)

	bootstrap.Logger.Info("Application bootstrapped",
		zap.String("persistence_backend", responseStore.Backend()),
		zap.String("environment", bootstrap.InternalConfig.App.Env),
	)
	return nil
}
