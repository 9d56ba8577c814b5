package cachestore

import (
	"fmt"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies carries the driver clients; only the one matching the selected
// driver needs to be set.
type Dependencies struct {
	Redis           *redis.Client
	MongoCollection *mongo.Collection
	Minio           *minio.Client
	MinioBucketName string
}

func NewCacheStore(driver string, deps Dependencies) (contracts.CacheStore, error) {
	switch driver {
	case "", constvars.CacheDriverMemory:
		return NewMemoryStore(), nil
	case constvars.CacheDriverRedis:
		if deps.Redis == nil {
			return nil, exceptions.ErrCacheDriverUnknown(fmt.Errorf("redis client is not configured"), driver)
		}
		return NewRedisStore(deps.Redis), nil
	case constvars.CacheDriverMongo:
		if deps.MongoCollection == nil {
			return nil, exceptions.ErrCacheDriverUnknown(fmt.Errorf("mongo collection is not configured"), driver)
		}
		return NewMongoStore(deps.MongoCollection), nil
	case constvars.CacheDriverMinio:
		if deps.Minio == nil || deps.MinioBucketName == "" {
			return nil, exceptions.ErrCacheDriverUnknown(fmt.Errorf("minio client or bucket is not configured"), driver)
		}
		return NewMinioStore(deps.Minio, deps.MinioBucketName), nil
	default:
		return nil, exceptions.ErrCacheDriverUnknown(nil, driver)
	}
}
