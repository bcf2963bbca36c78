package mailer

import (
	"medibridge-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// StartWorker consumes queued email payloads and delivers them over SMTP.
// It returns a stop function that cancels the consumer; in-flight deliveries
// finish before the goroutine exits.
func (s *mailerService) StartWorker(log *logrus.Logger) (stop func(), err error) {
	deliveries, err := s.Channel.Consume(s.Queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for delivery := range deliveries {
			var payload requests.EmailPayload
			if err := json.Unmarshal(delivery.Body, &payload); err != nil {
				log.WithError(err).Warn("dropping malformed email payload")
				delivery.Nack(false, false)
				continue
			}

			var sendErr error
			if payload.HTML {
				sendErr = s.sendHTMLEmail(payload.To, payload.Subject, payload.Body)
			} else {
				sendErr = s.sendBasicEmail(payload.To, payload.Subject, payload.Body)
			}
			if sendErr != nil {
				log.WithError(sendErr).WithField("to", payload.To).Error("failed to send email")
				delivery.Nack(false, false)
				continue
			}

			log.WithField("to", payload.To).Info("email sent")
			delivery.Ack(false)
		}
	}()

	return func() {
		s.Channel.Close()
		<-done
	}, nil
}
