package cachestore

import (
	"bytes"
	"context"
	"io"
	"time"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

const minioNoSuchKey = "NoSuchKey"

// minioObject is the stored object body; object storage has no native TTL.
type minioObject struct {
	Value     []byte     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type minioStore struct {
	client     *minio.Client
	bucketName string
	now        func() time.Time
}

func NewMinioStore(client *minio.Client, bucketName string) contracts.CacheStore {
	return &minioStore{client: client, bucketName: bucketName, now: time.Now}
}

func (m *minioStore) Find(ctx context.Context, key string) ([]byte, bool, error) {
	object, err := m.client.GetObject(ctx, m.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, false, exceptions.ErrCacheStoreFind(err, key)
	}
	defer object.Close()

	raw, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return nil, false, nil
		}
		return nil, false, exceptions.ErrCacheStoreFind(err, key)
	}

	var stored minioObject
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, false, exceptions.ErrCacheStoreFind(err, key)
	}

	if stored.ExpiresAt != nil && !m.now().Before(*stored.ExpiresAt) {
		if err := m.Remove(ctx, key); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	return stored.Value, true, nil
}

func (m *minioStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := minioObject{Value: value}
	if ttl > 0 {
		expiresAt := m.now().Add(ttl).UTC()
		stored.ExpiresAt = &expiresAt
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = m.client.PutObject(ctx, m.bucketName, key, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		return exceptions.ErrCacheStoreSet(err, key)
	}
	return nil
}

func (m *minioStore) Remove(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrCacheStoreRemove(err, key)
	}
	return nil
}

func (m *minioStore) ClearPrefix(ctx context.Context, prefix string) error {
	objects := m.client.ListObjects(ctx, m.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objects {
		if object.Err != nil {
			return exceptions.ErrCacheStoreClearPrefix(object.Err, prefix)
		}
		if err := m.Remove(ctx, object.Key); err != nil {
			return exceptions.ErrCacheStoreClearPrefix(err, prefix)
		}
	}
	return nil
}
