package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DriverConfig struct {
	MySQL    MySQLConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Minio    MinioConfig
	SMTP     SMTPConfig
	Logger   LoggerConfig
}

type MySQLConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Database        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

type MinioConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type LoggerConfig struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App      AppConfig
	JWT      JWTConfig
	Razorpay RazorpayConfig
	Upload   UploadConfig
	Mailer   MailerConfig
}

type AppConfig struct {
	Env             string
	Port            string
	EndpointPrefix  string
	Version         string
	ShutdownTimeout int
	MaxRequests     int
}

type JWTConfig struct {
	Secret        string
	ExpTimeInHour int
}

type RazorpayConfig struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

type UploadConfig struct {
	MaxSizeMB int64
}

type MailerConfig struct {
	QueueName string
}

type Bootstrap struct {
	Router         *chi.Mux
	MySQL          *gorm.DB
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped background workers")
	}

	if sqlDB, err := b.MySQL.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing MySQL")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	err = b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
