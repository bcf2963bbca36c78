package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, objectName, contentType string, size int64) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
}
