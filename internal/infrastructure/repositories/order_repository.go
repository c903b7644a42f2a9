package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// OrderRepositoryImpl implements domain.OrderRepository using GORM
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// DBOrder represents the database model for a submitted order. Line items
// are stored as a JSON document in a single column.
type DBOrder struct {
	ID           string `gorm:"primaryKey;size:64"`
	CustomerID   string `gorm:"index;size:64"`
	Items        string `gorm:"type:text"`
	DeliveryMode string `gorm:"size:16"`
	CreatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBOrder) TableName() string {
	return "orders"
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create implements domain.OrderRepository. The primary key on the order id
// enforces uniqueness; a collision surfaces as ErrDuplicateOrder and leaves
// the store unchanged.
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *domain.Order) error {
	dbOrder, err := r.domainToDB(order)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(dbOrder).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateOrder
		}
		return err
	}
	order.CreatedAt = dbOrder.CreatedAt
	return nil
}

// FindByID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var dbOrder DBOrder
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbOrder).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbOrder)
}

// domainToDB converts a domain order to its database model
func (r *OrderRepositoryImpl) domainToDB(order *domain.Order) (*DBOrder, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}
	return &DBOrder{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		Items:        string(items),
		DeliveryMode: string(order.DeliveryMode),
	}, nil
}

// dbToDomain converts a database order back to the domain order
func (r *OrderRepositoryImpl) dbToDomain(dbOrder *DBOrder) (*domain.Order, error) {
	var items []domain.LineItem
	if err := json.Unmarshal([]byte(dbOrder.Items), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	return &domain.Order{
		ID:           dbOrder.ID,
		CustomerID:   dbOrder.CustomerID,
		Items:        items,
		DeliveryMode: domain.DeliveryMode(dbOrder.DeliveryMode),
		CreatedAt:    dbOrder.CreatedAt,
	}, nil
}
