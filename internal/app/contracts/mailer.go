package contracts

import (
	"context"

	"medibridge-service/internal/pkg/dto/requests"
)

type MailerService interface {
	QueueEmail(ctx context.Context, payload *requests.EmailPayload) error
}
