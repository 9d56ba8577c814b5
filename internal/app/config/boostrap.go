package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	Redis          *redis.Client
	Mongo          *mongo.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to stop background workers
	WorkerStop func()
}

// AddWorkerStop chains stop onto WorkerStop. Workers stop in reverse order of
// registration.
func (b *Bootstrap) AddWorkerStop(stop func()) {
	previous := b.WorkerStop
	b.WorkerStop = func() {
		stop()
		if previous != nil {
			previous()
		}
	}
}

// Shutdown releases whichever drivers the selected cache driver and
// RabbitMQ flag opened.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped background workers")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.Mongo != nil {
		if err := b.Mongo.Disconnect(ctx); err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if err := b.Logger.Sync(); err != nil {
		log.Printf("Logger sync returned: %v", err)
	}
	log.Println("Successfully closing Logger")

	return nil
}
