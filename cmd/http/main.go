package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/delivery/http/controllers"
	"patient-records-service/internal/app/delivery/http/middlewares"
	"patient-records-service/internal/app/delivery/http/routers"
	"patient-records-service/internal/app/drivers/database"
	"patient-records-service/internal/app/drivers/logger"
	"patient-records-service/internal/app/drivers/messaging"
	"patient-records-service/internal/app/drivers/storage"
	"patient-records-service/internal/app/services/core/chat"
	"patient-records-service/internal/app/services/core/patients"
	"patient-records-service/internal/app/services/core/remedies"
	"patient-records-service/internal/app/services/patientrecords"
	"patient-records-service/internal/app/services/shared/cachestore"
	"patient-records-service/internal/app/services/shared/events"
	"patient-records-service/internal/app/services/shared/httpclient"
	"patient-records-service/internal/app/services/shared/tokenstore"
	"patient-records-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLog := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := bootstrapingTheApp(ctx, bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLog.Info("Server started",
			zap.String("address", internalConfig.App.Address),
			zap.String("port", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer shutdownCancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	cancel()
	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	zapLog := bootstrap.Logger

	// Cache store
	cacheStore, err := initCacheStore(ctx, bootstrap)
	if err != nil {
		return err
	}
	tokenStore := tokenstore.NewTokenStore(cacheStore)

	// Upstream client
	var recordClient contracts.PatientRecordClient
	if internalConfig.Upstream.UseMockData {
		zapLog.Info("Serving in-memory mock patients")
		recordClient = patientrecords.NewMockPatientClient(zapLog)
	} else {
		upstreamClient := httpclient.NewUpstreamClient(httpclient.Config{
			BaseURL:           internalConfig.Upstream.BaseUrl,
			CacheTTL:          internalConfig.Upstream.CacheTTL(),
			Timeout:           internalConfig.Upstream.RequestTimeout,
			RequestsPerSecond: internalConfig.Upstream.MaxRequestsPerSecond,
		}, cacheStore, tokenStore, zapLog)
		recordClient = patientrecords.NewPatientRecordClient(upstreamClient, zapLog)
	}

	// Patient events
	eventPublisher, startConsumer, err := initPatientEvents(bootstrap)
	if err != nil {
		return err
	}

	// Usecases
	remedyService := remedies.NewRemedyService()
	patientUsecase := patients.NewPatientUsecase(
		recordClient,
		remedyService,
		eventPublisher,
		patients.NewPatientState(),
		internalConfig,
		zapLog,
	)
	chatService := chat.NewChatService(patientUsecase, internalConfig, zapLog)
	chatService.StartCleanup(ctx, internalConfig.Chat.SessionSweepInterval())

	// Peer events mark the local list stale as well as dropping cached responses.
	if err := startConsumer(ctx, patientUsecase); err != nil {
		return err
	}

	if internalConfig.Upstream.RefreshOnStartup {
		if _, err := patientUsecase.RefreshPatients(ctx); err != nil {
			zapLog.Warn("Initial patient refresh failed, will retry on first read",
				zap.Error(err),
			)
		}
	}

	if internalConfig.Upstream.RefreshCronSpec != "" {
		refreshWorker := patients.NewRefreshWorker(zapLog, patientUsecase, internalConfig.Upstream.RefreshCronSpec)
		refreshWorker.Start(ctx)
		bootstrap.AddWorkerStop(refreshWorker.Stop)
	}

	// Delivery
	middlewares := middlewares.NewMiddlewares(zapLog, internalConfig)
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, routers.Controllers{
		Patient: controllers.NewPatientController(zapLog, patientUsecase),
		Admin:   controllers.NewAdminController(zapLog, patientUsecase),
		Auth:    controllers.NewAuthController(zapLog, tokenStore),
		Chat:    controllers.NewChatController(zapLog, chatService),
	})
	return nil
}

func initCacheStore(ctx context.Context, bootstrap *config.Bootstrap) (contracts.CacheStore, error) {
	driver := bootstrap.InternalConfig.Cache.Driver
	deps := cachestore.Dependencies{}

	switch driver {
	case constvars.CacheDriverRedis:
		bootstrap.Redis = database.NewRedisClient(bootstrap.DriverConfig)
		deps.Redis = bootstrap.Redis
	case constvars.CacheDriverMongo:
		bootstrap.Mongo = database.NewMongoDB(bootstrap.DriverConfig)
		collection := bootstrap.Mongo.
			Database(bootstrap.DriverConfig.MongoDB.DbName).
			Collection(constvars.MongoCacheCollection)
		if err := cachestore.EnsureMongoIndexes(ctx, collection); err != nil {
			return nil, err
		}
		deps.MongoCollection = collection
	case constvars.CacheDriverMinio:
		bootstrap.Minio = storage.NewMinio(bootstrap.DriverConfig)
		bucketName := bootstrap.InternalConfig.Cache.MinioBucketName
		if err := storage.EnsureBucket(bootstrap.Minio, bucketName); err != nil {
			return nil, err
		}
		deps.Minio = bootstrap.Minio
		deps.MinioBucketName = bucketName
	}

	store, err := cachestore.NewCacheStore(driver, deps)
	if err != nil {
		return nil, err
	}

	if memoryStore, ok := store.(*cachestore.MemoryStore); ok {
		memoryStore.StartCleanup(ctx, bootstrap.InternalConfig.Upstream.CacheCleanupInterval)
	}

	bootstrap.Logger.Info("Cache store ready",
		zap.String("driver", driver),
	)
	return store, nil
}

type consumerStarter func(ctx context.Context, invalidator events.PatientCacheInvalidator) error

func initPatientEvents(bootstrap *config.Bootstrap) (contracts.EventPublisher, consumerStarter, error) {
	internalConfig := bootstrap.InternalConfig
	if !internalConfig.RabbitMQ.Enabled {
		noop := func(ctx context.Context, invalidator events.PatientCacheInvalidator) error { return nil }
		return events.NewNoopPublisher(), noop, nil
	}

	exchange := internalConfig.RabbitMQ.PatientEventsExchange
	bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig)

	channel, err := messaging.DeclareFanout(bootstrap.RabbitMQ, exchange)
	if err != nil {
		return nil, nil, err
	}
	queue, err := messaging.BindInstanceQueue(channel, exchange)
	if err != nil {
		return nil, nil, err
	}

	start := func(ctx context.Context, invalidator events.PatientCacheInvalidator) error {
		consumer := events.NewConsumer(bootstrap.Logger, channel, queue, internalConfig.App.InstanceID, invalidator)
		stop, err := consumer.Start(ctx)
		if err != nil {
			return err
		}
		bootstrap.AddWorkerStop(stop)
		return nil
	}

	publisher := events.NewRabbitPublisher(channel, exchange, internalConfig.App.InstanceID, bootstrap.Logger)
	return publisher, start, nil
}
