package service

import (
	"context"
	"fmt"
	"path/filepath"
	"pdf-share-server/config"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/ports"
	"pdf-share-server/internal/util"
	"strings"
	"unicode"
)

// NewFileStorage : выбирает хранилище по storage.provider
func NewFileStorage(ctx context.Context, cfg *config.AppConfig) (ports.FileStorage, error) {
	switch cfg.Storage.Provider {
	case config.StorageProviderS3:
		return NewS3Storage(ctx, &cfg.Storage.S3, cfg.PresignTTL())
	case config.StorageProviderDrive:
		return NewDriveStorage(ctx, &cfg.Storage.Drive)
	default:
		return nil, fmt.Errorf("неизвестный storage.provider: %s", cfg.Storage.Provider)
	}
}

// documentKey : ключ объекта в хранилище, от названия не зависит
func documentKey(ownerUUID, documentUUID string) string {
	return fmt.Sprintf("documents/%s/%s.pdf", ownerUUID, documentUUID)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Map(func(r rune) rune {
		if r == '"' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		return "document.pdf"
	}
	return name
}

// resolveView : read-only проекция со свежей ссылкой на файл
func resolveView(ctx context.Context, storage ports.FileStorage, document *model.Document) model.DocumentView {
	view := document.View()
	view.FileURL = resolveFileURL(ctx, storage, document.FileReference, document.FileURL)
	return view
}

func resolveFileURL(ctx context.Context, storage ports.FileStorage, reference, storedURL string) string {
	url, err := storage.ResolveURL(ctx, reference, storedURL)
	if err != nil {
		util.LogWarn("[FileStorage] не удалось получить ссылку на файл, отдаём сохранённую", err)
		return storedURL
	}
	return url
}
