// Package kafka consumes orders published on the intake topic and hands them
// to the order service. Malformed or invalid messages are logged and
// committed so they are not redelivered; persistence failures are not
// committed so the broker retries them.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"

	"github.com/ricardomaia/credo/internal/order"
)

// OrderCreator abstracts the consumer from the service layer.
type OrderCreator interface {
	Create(ctx context.Context, o *order.Order) error
}

type Consumer struct {
	reader  *kafka.Reader
	service OrderCreator
	log     *slog.Logger
}

func NewConsumer(brokers []string, topic, groupID string, service OrderCreator, log *slog.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})

	return &Consumer{
		reader:  reader,
		service: service,
		log:     log,
	}
}

type itemMessage struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
	Description string  `json:"description"`
}

type orderMessage struct {
	ID         string        `json:"id" validate:"required"`
	CustomerID string        `json:"customer_id" validate:"required"`
	Status     order.Status  `json:"status"`
	Items      []itemMessage `json:"items" validate:"required,gt=0,dive"`
}

var validate = validator.New()

func (m orderMessage) toOrder() *order.Order {
	status := m.Status
	if status == "" {
		status = order.StatusPending
	}

	o := order.New(m.ID, m.CustomerID, status)

	items := make([]order.Item, len(m.Items))
	for i, item := range m.Items {
		items[i] = order.Item{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Description: item.Description,
		}
	}

	o.SetItems(items)

	return o
}

// Run blocks reading messages until the context is cancelled. It is meant to
// run in its own goroutine.
func (c *Consumer) Run(ctx context.Context) {
	log := c.log.With(slog.String("component", "kafka_consumer"))
	log.Info("kafka consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("kafka consumer stopped")
				return
			}

			if errors.Is(err, io.EOF) {
				log.Info("kafka reader closed")
				return
			}

			log.Error("fetching message", slog.String("error", err.Error()))

			continue
		}

		if err := c.handleMessage(ctx, msg); err != nil {
			// Not committed: the broker redelivers it.
			log.Error("handling message", slog.String("error", err.Error()))
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.Error("committing message", slog.String("error", err.Error()))
		}
	}
}

// handleMessage decodes, validates and stores one order. A nil return means
// the offset can be committed, including for messages that are skipped as
// unprocessable.
func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message) error {
	var m orderMessage

	if err := json.Unmarshal(msg.Value, &m); err != nil {
		c.log.Warn("skipping malformed message", slog.String("error", err.Error()))
		return nil
	}

	if err := validate.Struct(m); err != nil {
		c.log.Warn("skipping invalid message",
			slog.String("error", err.Error()),
			slog.String("order_id", m.ID),
		)

		return nil
	}

	o := m.toOrder()

	if err := c.service.Create(ctx, o); err != nil {
		var vErr *order.ValidationError
		if errors.As(err, &vErr) {
			// Domain-invalid orders will never become valid on redelivery.
			c.log.Warn("skipping order failing domain validation",
				slog.String("reason", vErr.Reason),
				slog.String("order_id", o.ID),
			)

			return nil
		}

		return err
	}

	c.log.Info("order ingested", slog.String("order_id", o.ID))

	return nil
}

func (c *Consumer) Close() error {
	c.log.Info("closing kafka consumer")
	return c.reader.Close()
}
