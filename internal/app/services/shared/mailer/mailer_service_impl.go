package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	driver "medibridge-service/internal/app/drivers/mailer"
	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Service is the queue-backed mailer plus its delivery worker.
type Service interface {
	contracts.MailerService
	StartWorker(log *logrus.Logger) (stop func(), err error)
}

type mailerService struct {
	Channel *amqp091.Channel
	Client  *driver.SMTPClient
	Queue   string
}

func NewMailerService(client *driver.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (Service, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Client:  client,
		Queue:   queue,
	}, nil
}

func (s *mailerService) QueueEmail(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	return nil
}

func (s *mailerService) sendBasicEmail(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(constvars.EmailBasicFormat, to, subject, body))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := smtp.SendMail(addr, s.Client.Auth, s.Client.EmailSender, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}

func (s *mailerService) sendHTMLEmail(to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(constvars.EmailHTMLFormat, to, subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := smtp.SendMail(addr, s.Client.Auth, s.Client.EmailSender, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}
