package events

import (
	"encoding/json"
	"fmt"
	"time"

	"dinehub/internal/model"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Subjects for order lifecycle events.
const (
	SubjectOrderCreated       = "order.created"
	SubjectOrderStatusUpdated = "order.status_updated"
)

// OrderEvent is the wire form of an order lifecycle event.
type OrderEvent struct {
	OrderID    string       `json:"order_id"`
	Status     model.Status `json:"status"`
	TotalPrice float64      `json:"total_price"`
	OccurredAt string       `json:"occurred_at"`
}

// Publisher emits order lifecycle events to NATS. It is optional
// infrastructure: the write path never waits on it.
type Publisher struct {
	nc     *nats.Conn
	logger zerolog.Logger
}

// NewPublisher connects to NATS at url.
func NewPublisher(url string, logger zerolog.Logger) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("dinehub"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info().Str("url", url).Msg("connected to NATS")

	return &Publisher{
		nc:     nc,
		logger: logger.With().Str("component", "events").Logger(),
	}, nil
}

// OrderCreated publishes an order.created event.
func (p *Publisher) OrderCreated(order *model.Order) {
	p.publish(SubjectOrderCreated, order)
}

// OrderStatusUpdated publishes an order.status_updated event.
func (p *Publisher) OrderStatusUpdated(order *model.Order) {
	p.publish(SubjectOrderStatusUpdated, order)
}

func (p *Publisher) publish(subject string, order *model.Order) {
	event := OrderEvent{
		OrderID:    order.OrderID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("failed to marshal event")
		return
	}

	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Warn().
			Err(err).
			Str("subject", subject).
			Str("order_id", order.OrderID).
			Msg("failed to publish event")
		return
	}

	p.logger.Debug().
		Str("subject", subject).
		Str("order_id", order.OrderID).
		Msg("event published")
}

// Close drains the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
		p.logger.Info().Msg("NATS connection closed")
	}
}
