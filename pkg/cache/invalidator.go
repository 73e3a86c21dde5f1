package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Invalidator is the fire-and-forget cache-invalidation sink. Delivery
// failures are logged, never retried, and never affect the already-committed
// catalog change.
type Invalidator interface {
	Invalidate(scope string, categoryID uint)
}

// AMQPInvalidator publishes invalidation events to a topic exchange. A nil
// receiver is a no-op, so callers never have to branch on whether a broker
// is configured.
type AMQPInvalidator struct {
	ch       *amqp.Channel
	exchange string
	log      *logrus.Logger
}

func NewAMQPInvalidator(url, exchange string, log *logrus.Logger) (*AMQPInvalidator, error) {
	if url == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &AMQPInvalidator{ch: ch, exchange: exchange, log: log}, nil
}

func (p *AMQPInvalidator) Invalidate(scope string, categoryID uint) {
	if p == nil || p.ch == nil {
		return
	}
	key := fmt.Sprintf("%s.category.%d", scope, categoryID)
	body, _ := json.Marshal(map[string]any{
		"scope":      scope,
		"categoryId": categoryID,
		"at":         time.Now().Unix(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   time.Now(),
	})
	if err != nil {
		p.log.WithError(err).WithField("key", key).Warn("cache invalidation publish failed")
	}
}
