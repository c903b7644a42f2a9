package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// Publisher implements domain.OrderEventPublisher over an AMQP work queue.
// The kitchen consumer drains the queue; checkout never depends on it.
type Publisher struct {
	pool      *ChannelPool
	queueName string
}

// orderEvent is the wire shape pushed to the kitchen queue.
type orderEvent struct {
	OrderID      string            `json:"idPedido"`
	CustomerID   string            `json:"idCliente"`
	Items        []domain.LineItem `json:"itens"`
	DeliveryMode string            `json:"modoEntrega"`
	Total        string            `json:"totalFinal"`
}

// NewPublisher creates a publisher over the given channel pool.
func NewPublisher(pool *ChannelPool, queueName string) *Publisher {
	return &Publisher{
		pool:      pool,
		queueName: queueName,
	}
}

// PublishOrder implements domain.OrderEventPublisher
func (p *Publisher) PublishOrder(ctx context.Context, order *domain.Order) error {
	ch, err := p.pool.GetChannel()
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer p.pool.ReturnChannel(ch)

	body, err := json.Marshal(orderEvent{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		Items:        order.Items,
		DeliveryMode: string(order.DeliveryMode),
		Total:        order.Total().StringFixed(2),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = ch.PublishWithContext(pubCtx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	return nil
}
