package gateway

import (
	"context"
	"encoding/json"
	"sync"

	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

type AMQPChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPEventPublisher sends reservation events to a topic exchange, routed by
// event type. amqp channels are not safe for concurrent publishing, hence the
// mutex.
type AMQPEventPublisher struct {
	mu       sync.Mutex
	channel  AMQPChannel
	exchange string
}

var _ commands.EventPublisher = (*AMQPEventPublisher)(nil)

func NewAMQPEventPublisher(channel AMQPChannel, exchange string) (*AMQPEventPublisher, error) {
	if err := channel.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return nil, errs.Wrapf(err, "declare exchange %s", exchange)
	}
	return &AMQPEventPublisher{channel: channel, exchange: exchange}, nil
}

func (p *AMQPEventPublisher) Publish(ctx context.Context, event commands.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, event.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ReservationID.String(),
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", event.Type)
	}
	return nil
}

func (p *AMQPEventPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.Close()
}
