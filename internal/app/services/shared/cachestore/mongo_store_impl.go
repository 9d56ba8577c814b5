package cachestore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCacheDocument struct {
	Key       string     `bson:"_id"`
	Value     []byte     `bson:"value"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

type mongoStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoStore(collection *mongo.Collection) contracts.CacheStore {
	return &mongoStore{collection: collection, now: time.Now}
}

// EnsureMongoIndexes lets MongoDB drop expired documents on its own. Find
// still checks expires_at since the TTL monitor only runs once a minute.
func EnsureMongoIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}

func (m *mongoStore) Find(ctx context.Context, key string) ([]byte, bool, error) {
	var document mongoCacheDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, exceptions.ErrCacheStoreFind(err, key)
	}

	if document.ExpiresAt != nil && !m.now().Before(*document.ExpiresAt) {
		if err := m.Remove(ctx, key); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	return document.Value, true, nil
}

func (m *mongoStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	document := mongoCacheDocument{Key: key, Value: value}
	if ttl > 0 {
		expiresAt := m.now().Add(ttl).UTC()
		document.ExpiresAt = &expiresAt
	}

	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, document, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrCacheStoreSet(err, key)
	}
	return nil
}

func (m *mongoStore) Remove(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return exceptions.ErrCacheStoreRemove(err, key)
	}
	return nil
}

func (m *mongoStore) ClearPrefix(ctx context.Context, prefix string) error {
	filter := bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	_, err := m.collection.DeleteMany(ctx, filter)
	if err != nil {
		return exceptions.ErrCacheStoreClearPrefix(err, prefix)
	}
	return nil
}
