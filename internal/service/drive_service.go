package service

import (
	"bytes"
	"context"
	"pdf-share-server/config"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/util"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveStorage : PDF файлы в Google Drive, доступны по ссылке на чтение
type DriveStorage struct {
	service  *drive.Service
	folderID string
}

func NewDriveStorage(ctx context.Context, cfg *config.DriveConfig, opts ...option.ClientOption) (*DriveStorage, error) {
	if cfg.CredentialsFile != "" {
		opts = append([]option.ClientOption{
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(drive.DriveFileScope),
		}, opts...)
	}

	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, util.LogError("[DriveStorage] не удалось создать клиент Google Drive", err)
	}

	return &DriveStorage{service: service, folderID: cfg.FolderID}, nil
}

// Upload : создаёт файл, открывает его на чтение по ссылке и возвращает webViewLink
func (s *DriveStorage) Upload(ctx context.Context, _, filename string, content []byte) (*model.StoredFile, error) {
	file := &drive.File{
		Name:     sanitizeFilename(filename),
		MimeType: pdfContentType,
	}
	if s.folderID != "" {
		file.Parents = []string{s.folderID}
	}

	created, err := s.service.Files.Create(file).
		Media(bytes.NewReader(content)).
		Fields("id,webViewLink").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, util.LogError("[DriveStorage] не удалось загрузить файл", err)
	}

	_, err = s.service.Permissions.Create(created.Id, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		if deleteErr := s.Delete(ctx, created.Id); deleteErr != nil {
			util.LogWarn("[DriveStorage] не удалось удалить файл после ошибки", deleteErr)
		}
		return nil, util.LogError("[DriveStorage] не удалось открыть доступ к файлу", err)
	}

	return &model.StoredFile{Reference: created.Id, ViewURL: created.WebViewLink}, nil
}

// Rename : меняет имя файла в Drive вслед за названием документа
func (s *DriveStorage) Rename(ctx context.Context, fileID, title string) error {
	_, err := s.service.Files.Update(fileID, &drive.File{Name: sanitizeFilename(title)}).
		Fields("id,name").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return util.LogError("[DriveStorage] не удалось переименовать файл", err)
	}
	return nil
}

func (s *DriveStorage) Delete(ctx context.Context, fileID string) error {
	err := s.service.Files.Delete(fileID).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return util.LogError("[DriveStorage] не удалось удалить файл", err)
	}
	return nil
}

// ResolveURL : webViewLink постоянный, берём сохранённый
func (s *DriveStorage) ResolveURL(_ context.Context, _, storedURL string) (string, error) {
	return storedURL, nil
}
