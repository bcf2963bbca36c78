package config

import (
	"medibridge-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MySQL: MySQLConfig{
			Host:            utils.GetEnvString("MYSQL_HOST", "localhost"),
			Port:            utils.GetEnvString("MYSQL_PORT", "3306"),
			User:            utils.GetEnvString("MYSQL_USER", "root"),
			Password:        utils.GetEnvString("MYSQL_PASSWORD", ""),
			Database:        utils.GetEnvString("MYSQL_DATABASE", "healthcare_db"),
			MaxOpenConns:    utils.GetEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    utils.GetEnvInt("MYSQL_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: utils.GetEnvInt("MYSQL_CONN_MAX_LIFETIME_IN_MINUTE", 30),
		},
		Redis: RedisConfig{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			User:     utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: MinioConfig{
			Endpoint:   utils.GetEnvString("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:  utils.GetEnvString("MINIO_ACCESS_KEY", ""),
			SecretKey:  utils.GetEnvString("MINIO_SECRET_KEY", ""),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "healthcare-uploads"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTPConfig{
			Host:     utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:     utils.GetEnvInt("SMTP_PORT", 587),
			User:     utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
			From:     utils.GetEnvString("SMTP_EMAIL_SENDER", "noreply@medibridge.local"),
		},
		Logger: LoggerConfig{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: AppConfig{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":5000"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUESTS", 100),
		},
		JWT: JWTConfig{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Razorpay: RazorpayConfig{
			KeyID:         utils.GetEnvString("RAZORPAY_KEY_ID", ""),
			KeySecret:     utils.GetEnvString("RAZORPAY_KEY_SECRET", ""),
			WebhookSecret: utils.GetEnvString("RAZORPAY_WEBHOOK_SECRET", ""),
		},
		Upload: UploadConfig{
			MaxSizeMB: utils.GetEnvInt64("APP_UPLOAD_MAX_SIZE_IN_MB", 5),
		},
		Mailer: MailerConfig{
			QueueName: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer_queue"),
		},
	}
}
