// Command email_worker consumes the domain event queue and sends
// transactional email for the events that warrant one: account creation
// and password changes. Other events are acked and ignored.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/fgcplatform/identity/config"
	"github.com/fgcplatform/identity/pkg/helpers"
	"github.com/fgcplatform/identity/pkg/mailer"
)

type envelope struct {
	EventID    string          `json:"event_id"`
	Event      string          `json:"event"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type userPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Same declaration as the publisher side so either may start first.
	if _, err := ch.QueueDeclare(cfg.RabbitMQEventQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventQueue, "email-worker", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to start consumer: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Infof("email worker consuming %q", cfg.RabbitMQEventQueue)
	for {
		select {
		case <-quit:
			logger.Info("email worker shutting down")
			return
		case d, ok := <-msgs:
			if !ok {
				logger.Warn("consumer channel closed")
				return
			}
			handle(logger, mg, cfg.MailSendEnabled, d)
		}
	}
}

func handle(logger *logrus.Logger, mg *mailer.Mailgun, sendEnabled bool, d amqp.Delivery) {
	var env envelope
	if err := json.Unmarshal(d.Body, &env); err != nil {
		logger.WithError(err).Warn("malformed event, dropping")
		_ = d.Nack(false, false)
		return
	}

	var subject, text, html string
	var user userPayload
	switch env.Event {
	case "user.created", "admin.created":
		if err := json.Unmarshal(env.Payload, &user); err != nil {
			logger.WithError(err).Warn("malformed payload, dropping")
			_ = d.Nack(false, false)
			return
		}
		subject, text, html = mailer.WelcomeEmail(user.Name)
	case "user.password_changed":
		if err := json.Unmarshal(env.Payload, &user); err != nil {
			logger.WithError(err).Warn("malformed payload, dropping")
			_ = d.Nack(false, false)
			return
		}
		subject, text, html = mailer.PasswordChangedEmail(user.Name)
	default:
		_ = d.Ack(false)
		return
	}

	fields := logrus.Fields{"event": env.Event, "event_id": env.EventID, "to": user.Email}
	if !sendEnabled {
		logger.WithFields(fields).Info("mail sending disabled, skipping")
		_ = d.Ack(false)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := mg.Send(ctx, user.Email, subject, text, html); err != nil {
		logger.WithError(err).WithFields(fields).Error("failed to send email, requeueing")
		_ = d.Nack(false, true)
		return
	}
	logger.WithFields(fields).Info("email sent")
	_ = d.Ack(false)
}
