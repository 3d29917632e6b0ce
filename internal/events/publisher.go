// Package events publishes board and task activity events to RabbitMQ.
// Publishing is strictly fire-and-forget: errors are logged and returned so
// callers can ignore them, and a request never fails because the broker is
// down.
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const activityQueueName = "board.activity"

// Event kinds published on entity mutations.
const (
	BoardCreated = "board.created"
	BoardRenamed = "board.renamed"
	BoardDeleted = "board.deleted"
	TaskCreated  = "task.created"
	TaskUpdated  = "task.updated"
	TaskDeleted  = "task.deleted"
)

// Event is the activity record written to the queue.
type Event struct {
	Kind     string    `json:"kind"`
	EntityID string    `json:"entityId"`
	BoardID  string    `json:"boardId,omitempty"`
	UserID   string    `json:"userId"`
	At       time.Time `json:"at"`
}

// Publisher writes events to the board.activity queue. A nil Publisher, or
// one constructed with an empty URL, silently drops every event so the rest
// of the application does not need broker configuration to run.
type Publisher struct {
	url string
}

// NewPublisher returns a publisher for the given AMQP URL. An empty URL
// disables publishing.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// Publish marshals the event and sends it as a persistent message. The
// queue is declared durable on every publish, which is idempotent.
func (p *Publisher) Publish(ctx context.Context, ev Event) error {
	if p == nil || p.url == "" {
		return nil
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Warnf("events: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warnf("events: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		activityQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	); err != nil {
		log.Warnf("events: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Warnf("events: marshal failed: %v", err)
		return err
	}
	err = ch.PublishWithContext(ctx, "", activityQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Warnf("events: publish failed: %v", err)
	}
	return err
}
