package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const bookingQueueName = "booking.confirmed"

// PublishBookingConfirmed publishes a BookingConfirmedEvent to the
// durable booking.confirmed queue.  Errors are logged and returned so
// callers can ignore them without interrupting the request flow; the
// function never panics.  Messages are marked persistent.
func PublishBookingConfirmed(ctx context.Context, amqpURL string, event BookingConfirmedEvent, log zerolog.Logger) error {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		log.Error().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Error().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		log.Error().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", bookingQueueName, false, false, pub); err != nil {
		log.Error().Err(err).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
