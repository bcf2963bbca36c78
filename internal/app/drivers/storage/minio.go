package storage

import (
	"log"

	"medibridge-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	minioClient, err := minio.New(driverConfig.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.AccessKey, driverConfig.Minio.SecretKey, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	log.Println("Successfully connected to minio")
	return minioClient
}
