package storage

import (
	"context"
	"io"
	"time"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, objectName, contentType string, size int64) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return objectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
