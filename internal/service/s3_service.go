package service

import (
	"bytes"
	"context"
	"pdf-share-server/config"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/util"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const pdfContentType = "application/pdf"

// S3Storage : PDF файлы в S3 / MinIO, ссылка на просмотр это presigned GET
type S3Storage struct {
	client     *s3.Client
	bucket     string
	psClient   *s3.PresignClient
	presignTTL time.Duration
}

func NewS3Storage(ctx context.Context, cfg *config.S3Config, presignTTL time.Duration) (*S3Storage, error) {
	var client *s3.Client

	if cfg.Local {
		client = newLocalS3Client(cfg)

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, util.LogError("[S3Storage] ошибка создания бакета", err)
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Storage] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	return newS3Storage(client, cfg.Bucket, presignTTL), nil
}

func newS3Storage(client *s3.Client, bucket string, presignTTL time.Duration) *S3Storage {
	return &S3Storage{
		client:     client,
		psClient:   s3.NewPresignClient(client),
		bucket:     bucket,
		presignTTL: presignTTL,
	}
}

func newLocalS3Client(cfg *config.S3Config) *s3.Client {
	return s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,
	})
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return util.LogError("[S3Storage] ошибка создания бакета", err)
	}

	zap.L().Info("[S3Storage] бакет создан", zap.String("bucket", bucket))
	return nil
}

// Upload : кладёт файл под ключом key, ключ и есть file reference
func (s *S3Storage) Upload(ctx context.Context, key, filename string, content []byte) (*model.StoredFile, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(content),
		ContentLength:      aws.Int64(int64(len(content))),
		ContentType:        aws.String(pdfContentType),
		ContentDisposition: aws.String(`inline; filename="` + sanitizeFilename(filename) + `"`),
	})
	if err != nil {
		return nil, util.LogError("[S3Storage] не удалось загрузить объект", err)
	}

	return &model.StoredFile{Reference: key}, nil
}

// Rename : ключ объекта не зависит от названия документа, менять нечего
func (s *S3Storage) Rename(_ context.Context, _, _ string) error {
	return nil
}

// Delete : удаление объекта
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return util.LogError("[S3Storage] не удалось удалить объект", err)
	}
	return nil
}

// ResolveURL : генерация pre-signed URL для GET
func (s *S3Storage) ResolveURL(ctx context.Context, key, _ string) (string, error) {
	req, err := s.psClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.presignTTL
	})
	if err != nil {
		return "", util.LogError("[S3Storage] не удалось сгенерировать presigned GET URL", err)
	}

	return req.URL, nil
}
