package amqp

import (
	"BudgetBuddy/internal/entity"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const (
	ExchangeName     = "budgetbuddy.events"
	ActivityLogQueue = "user-activity-logs"
)

type IEventBus interface {
	PublishActivity(evt entity.ActivityEvent)
	ConsumeActivity(ctx context.Context, handler func(entity.ActivityEvent) error) error
	Close() error
}

type client struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	log     *logrus.Logger
}

func New(log *logrus.Logger) (IEventBus, error) {
	url := os.Getenv("AMQP_URL")

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	c := &client{
		conn:    conn,
		channel: channel,
		log:     log,
	}

	if err := c.setup(); err != nil {
		c.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return c, nil
}

func (c *client) setup() error {
	err := c.channel.ExchangeDeclare(
		ExchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		ActivityLogQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := c.channel.QueueBind(ActivityLogQueue, ActivityLogQueue, ExchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishActivity sends an activity event without blocking the caller. Delivery
// is at-least-once once the broker accepts it; failures are logged and dropped,
// callers must not depend on the event landing.
func (c *client) PublishActivity(evt entity.ActivityEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		body, err := json.Marshal(evt)
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"error":   err.Error(),
				"user_id": evt.UserID,
			}).Error("Failed to marshal activity event")
			return
		}

		err = c.channel.PublishWithContext(
			ctx,
			ExchangeName,
			ActivityLogQueue,
			false, // mandatory
			false, // immediate
			amqp091.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp091.Persistent,
				Timestamp:    time.Now(),
				Body:         body,
			},
		)
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"error":       err.Error(),
				"user_id":     evt.UserID,
				"action":      evt.Action,
				"entity_type": evt.EntityType,
			}).Error("Failed to publish activity event")
			return
		}

		c.log.WithFields(logrus.Fields{
			"user_id":     evt.UserID,
			"action":      evt.Action,
			"entity_type": evt.EntityType,
		}).Debug("Published activity event")
	}()
}

func (c *client) ConsumeActivity(ctx context.Context, handler func(entity.ActivityEvent) error) error {
	msgs, err := c.channel.Consume(
		ActivityLogQueue,
		"activity-service",
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"queue": ActivityLogQueue,
	}).Info("Started consuming activity events")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			var evt entity.ActivityEvent
			if err := json.Unmarshal(delivery.Body, &evt); err != nil {
				c.log.WithFields(logrus.Fields{
					"error": err.Error(),
				}).Error("Failed to unmarshal activity event")
				delivery.Nack(false, false)
				continue
			}

			if err := handler(evt); err != nil {
				c.log.WithFields(logrus.Fields{
					"error":   err.Error(),
					"user_id": evt.UserID,
				}).Error("Failed to handle activity event")
				delivery.Nack(false, true)
				continue
			}

			delivery.Ack(false)
		}
	}
}

func (c *client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
