package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"pdf-share-server/config"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/util"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheRepository : копии документов (вместе с грантами) в Redis
type CacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb.Client, ttl}
}

func (r *CacheRepository) SetDocument(ctx context.Context, document *model.Document) error {
	data, err := json.Marshal(document)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации документа", err)
	}

	if err = r.client.Set(ctx, r.key(document.UUID), data, r.ttl).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка сохранения в Redis", err)
	}

	return nil
}

// GetDocument : nil, nil если документа нет в кэше
func (r *CacheRepository) GetDocument(ctx context.Context, uuid string) (*model.Document, error) {
	val, err := r.client.Get(ctx, r.key(uuid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] ошибка получения документа из Redis", err)
	}

	var document model.Document
	if err := json.Unmarshal(val, &document); err != nil {
		return nil, util.LogError("[CacheRepo] ошибка десериализации документа из кэша", err)
	}
	for i := range document.Grants {
		document.Grants[i].DocumentUUID = document.UUID
	}
	return &document, nil
}

func (r *CacheRepository) DeleteDocument(ctx context.Context, uuid string) error {
	if err := r.client.Del(ctx, r.key(uuid)).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка удаления документа из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(uuid string) string {
	return fmt.Sprintf("document:%s", uuid)
}
