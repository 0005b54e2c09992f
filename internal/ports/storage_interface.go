package ports

import (
	"context"
	"pdf-share-server/internal/model"
)

// FileStorage : внешнее хранилище PDF файлов (S3 или Google Drive)
type FileStorage interface {
	Upload(ctx context.Context, key, filename string, content []byte) (*model.StoredFile, error)
	Rename(ctx context.Context, reference, title string) error
	Delete(ctx context.Context, reference string) error
	// ResolveURL : ссылка для просмотра, storedURL это то, что вернул Upload
	ResolveURL(ctx context.Context, reference, storedURL string) (string, error)
}
