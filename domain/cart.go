package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft is an in-progress order being assembled by a client session. The
// draft id is generated once and stays stable until finalization; a
// finalized draft rejects further mutation.
type Draft struct {
	id         string
	customerID string
	items      []LineItem
	finalized  bool
}

// NewDraft creates an empty draft for the given customer.
func NewDraft(customerID string) *Draft {
	return &Draft{
		id:         uuid.NewString(),
		customerID: customerID,
	}
}

// ID returns the draft id, which becomes the order id on finalization.
func (d *Draft) ID() string { return d.id }

// CustomerID returns the owning customer id, empty if none was set.
func (d *Draft) CustomerID() string { return d.customerID }

// Items returns a copy of the current line items.
func (d *Draft) Items() []LineItem {
	items := make([]LineItem, len(d.items))
	copy(items, d.items)
	return items
}

// AddItem adds quantity units of the named product. Products are
// deduplicated by name: re-adding an existing product increments its
// quantity and keeps the unit price from the first insertion. The price of
// later calls is ignored, matching the client the mobile app shipped with.
func (d *Draft) AddItem(name string, quantity int, unitPrice decimal.Decimal) error {
	if d.finalized {
		return ErrDraftFinalized
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return ErrInvalidPrice
	}

	for i := range d.items {
		if d.items[i].Name == name {
			d.items[i].Quantity += quantity
			return nil
		}
	}

	d.items = append(d.items, LineItem{
		ID:        uuid.NewString(),
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	return nil
}

// Total computes the draft total for the given delivery mode.
func (d *Draft) Total(mode DeliveryMode) decimal.Decimal {
	return ComputeTotal(d.items, mode)
}

// Finalize converts the draft into an immutable Order. It fails with
// ErrEmptyCart when no items were added and ErrMissingCustomer when the
// draft has no customer. The draft is not reusable afterward.
func (d *Draft) Finalize(mode DeliveryMode) (*Order, error) {
	if d.finalized {
		return nil, ErrDraftFinalized
	}
	if len(d.items) == 0 {
		return nil, ErrEmptyCart
	}
	if d.customerID == "" {
		return nil, ErrMissingCustomer
	}

	d.finalized = true
	return &Order{
		ID:           d.id,
		CustomerID:   d.customerID,
		Items:        d.Items(),
		DeliveryMode: mode,
	}, nil
}
