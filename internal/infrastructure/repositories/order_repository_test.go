package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

func testOrder(id string) *domain.Order {
	return &domain.Order{
		ID:         id,
		CustomerID: "cust-1",
		Items: []domain.LineItem{
			{ID: "p1", Name: "X-Burger", Quantity: 2, UnitPrice: decimal.RequireFromString("15.00")},
			{ID: "p2", Name: "Refrigerante", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
		DeliveryMode: domain.DeliveryDelivery,
	}
}

func TestOrderRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := testOrder("order-1")
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.CustomerID != "cust-1" {
		t.Errorf("expected customer cust-1, got %q", found.CustomerID)
	}
	if len(found.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(found.Items))
	}
	if found.Items[0].Name != "X-Burger" || found.Items[0].Quantity != 2 {
		t.Errorf("unexpected first item %+v", found.Items[0])
	}
	if !found.Items[0].UnitPrice.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("unexpected unit price %s", found.Items[0].UnitPrice)
	}
	if found.DeliveryMode != domain.DeliveryDelivery {
		t.Errorf("unexpected delivery mode %q", found.DeliveryMode)
	}
	if !found.Total().Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("expected total 40.00, got %s", found.Total())
	}
}

func TestOrderRepositoryImpl_DuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testOrder("order-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := testOrder("order-1")
	second.CustomerID = "cust-2"
	err := repo.Create(ctx, second)
	if !errors.Is(err, domain.ErrDuplicateOrder) {
		t.Fatalf("expected ErrDuplicateOrder, got %v", err)
	}

	// the stored order is the first submission, untouched
	found, err := repo.FindByID(ctx, "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.CustomerID != "cust-1" {
		t.Errorf("duplicate submission must not overwrite, got customer %q", found.CustomerID)
	}
}

func TestOrderRepositoryImpl_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
