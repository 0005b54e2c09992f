package service

import (
	"context"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/util"

	"go.uber.org/zap"
)

// documentLoader : чтение документа через Redis с откатом на БД
type documentLoader struct {
	documentRepository ports.DocumentRepository
	cacheRepository    ports.CacheRepository
	metrics            *MetricsService
}

func (l documentLoader) load(ctx context.Context, documentUUID string) (*model.Document, error) {
	if l.cacheRepository != nil {
		document, err := l.cacheRepository.GetDocument(ctx, documentUUID)
		if err != nil {
			util.LogWarn("[DocumentCache] ошибка чтения кэша", err, zap.String("document_uuid", documentUUID))
		}
		if document != nil {
			l.metrics.RecordCacheHit()
			return document, nil
		}
		l.metrics.RecordCacheMiss()
	}

	document, err := l.loadFresh(ctx, documentUUID)
	if err != nil {
		return nil, err
	}

	if l.cacheRepository != nil {
		if err := l.cacheRepository.SetDocument(ctx, document); err != nil {
			util.LogWarn("[DocumentCache] ошибка кэширования документа", err, zap.String("document_uuid", documentUUID))
		}
	}
	return document, nil
}

// loadFresh : мимо кэша, для проверок, где устаревшие данные недопустимы
func (l documentLoader) loadFresh(ctx context.Context, documentUUID string) (*model.Document, error) {
	return l.documentRepository.GetByUUID(ctx, l.documentRepository.Conn(), documentUUID)
}

func (l documentLoader) invalidate(ctx context.Context, documentUUID string) {
	if l.cacheRepository == nil {
		return
	}
	if err := l.cacheRepository.DeleteDocument(ctx, documentUUID); err != nil {
		util.LogWarn("[DocumentCache] не удалось удалить документ из кэша", err, zap.String("document_uuid", documentUUID))
	}
}
