package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// OrderServiceImpl implements domain.OrderService
type OrderServiceImpl struct {
	orderRepo domain.OrderRepository
	publisher domain.OrderEventPublisher
}

// NewOrderService creates a new order service. publisher may be nil when no
// broker is configured.
func NewOrderService(orderRepo domain.OrderRepository, publisher domain.OrderEventPublisher) domain.OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// Submit implements domain.OrderService. Validation happens before any
// persistence attempt; a colliding order id surfaces as ErrDuplicateOrder
// from the storage layer. Publishing to the kitchen queue is best-effort
// and never fails a submitted order.
func (s *OrderServiceImpl) Submit(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil || len(order.Items) == 0 {
		return nil, domain.ErrInvalidOrder
	}
	if order.ID == "" {
		return nil, domain.ErrInvalidOrder
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidOrder
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if err == domain.ErrDuplicateOrder {
			return nil, err
		}
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrder(ctx, order); err != nil {
			log.Printf("ORDER_EVENT_PUBLISH_FAILED: order_id=%s error=%v", order.ID, err)
		}
	}

	return order, nil
}
