package procurement

import (
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the lifecycle state of a purchase order
type PurchaseOrderStatus string

const (
	POStatusPending           PurchaseOrderStatus = "PENDING"
	POStatusOrdered           PurchaseOrderStatus = "ORDERED"
	POStatusPartiallyReceived PurchaseOrderStatus = "PARTIALLY_RECEIVED"
	POStatusReceived          PurchaseOrderStatus = "RECEIVED"
	POStatusCancelled         PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is one of the defined values
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case POStatusPending, POStatusOrdered, POStatusPartiallyReceived, POStatusReceived, POStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further status changes are allowed
func (s PurchaseOrderStatus) IsTerminal() bool {
	return s == POStatusReceived || s == POStatusCancelled
}

// CanReceive reports whether goods may be received against an order in this state
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == POStatusOrdered || s == POStatusPartiallyReceived
}

// PurchaseOrder is the aggregate root for procurement. Its lines are owned
// by the order and always load and save with it.
type PurchaseOrder struct {
	shared.BaseEntity
	SupplierID           uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status               PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	OrderDate            time.Time           `gorm:"not null"`
	ExpectedDeliveryDate *time.Time          `gorm:""`
	Notes                string              `gorm:"type:text"`
	Items                []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem is one product line on a purchase order
type PurchaseOrderItem struct {
	shared.BaseEntity
	PurchaseOrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuantityOrdered  int64           `gorm:"not null"`
	QuantityReceived int64           `gorm:"not null;default:0"`
	UnitPricePaid    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// IsFullyReceived reports whether the line has been received in full
func (i *PurchaseOrderItem) IsFullyReceived() bool {
	return i.QuantityReceived >= i.QuantityOrdered
}

// AddReceivedQuantity records a partial or full delivery against the line.
// Received quantity only ever increases and never exceeds the ordered
// quantity.
func (i *PurchaseOrderItem) AddReceivedQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Received quantity must be positive")
	}
	if i.QuantityReceived+quantity > i.QuantityOrdered {
		return shared.NewDomainErrorf("INVALID_INPUT",
			"Received quantity cannot exceed quantity ordered (ordered %d, already received %d, receiving %d)",
			i.QuantityOrdered, i.QuantityReceived, quantity)
	}

	i.QuantityReceived += quantity
	i.UpdatedAt = time.Now()

	return nil
}

// NewPurchaseOrder creates an empty order in PENDING state
func NewPurchaseOrder(supplierID uuid.UUID, expectedDelivery *time.Time, notes string) (*PurchaseOrder, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}

	return &PurchaseOrder{
		BaseEntity: shared.NewBaseEntity(),
		SupplierID: supplierID,
		Status:     POStatusPending,
		OrderDate:  time.Now(),

		ExpectedDeliveryDate: expectedDelivery,
		Notes:                notes,
		Items:                make([]PurchaseOrderItem, 0),
	}, nil
}

// AddItem appends a product line. Orders may only be composed before any
// receiving has happened.
func (po *PurchaseOrder) AddItem(productID uuid.UUID, quantityOrdered int64, unitPrice decimal.Decimal) error {
	if po.Status != POStatusPending && po.Status != POStatusOrdered {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot add items to a purchase order in status %s", po.Status)
	}
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantityOrdered <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Ordered quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Unit price cannot be negative")
	}

	po.Items = append(po.Items, PurchaseOrderItem{
		BaseEntity:      shared.NewBaseEntity(),
		PurchaseOrderID: po.ID,
		ProductID:       productID,
		QuantityOrdered: quantityOrdered,
		UnitPricePaid:   unitPrice,
	})
	po.UpdatedAt = time.Now()

	return nil
}

// FindItem returns the line with the given ID, or nil
func (po *PurchaseOrder) FindItem(itemID uuid.UUID) *PurchaseOrderItem {
	for idx := range po.Items {
		if po.Items[idx].ID == itemID {
			return &po.Items[idx]
		}
	}
	return nil
}

// ReceiveItem records a delivery against one line and recalculates the
// order status from its lines.
func (po *PurchaseOrder) ReceiveItem(itemID uuid.UUID, quantity int64) (*PurchaseOrderItem, error) {
	if !po.Status.CanReceive() {
		return nil, shared.NewDomainErrorf("INVALID_STATE",
			"Cannot receive items for a purchase order in status %s", po.Status)
	}

	item := po.FindItem(itemID)
	if item == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Purchase order item not found")
	}

	if err := item.AddReceivedQuantity(quantity); err != nil {
		return nil, err
	}

	po.RecalculateStatus()

	return item, nil
}

// RecalculateStatus derives the order status from its lines: RECEIVED when
// every line is fully received, PARTIALLY_RECEIVED when any quantity has
// arrived, otherwise the status is left as is.
func (po *PurchaseOrder) RecalculateStatus() {
	if po.Status == POStatusCancelled {
		return
	}

	allReceived := len(po.Items) > 0
	anyReceived := false
	for idx := range po.Items {
		if !po.Items[idx].IsFullyReceived() {
			allReceived = false
		}
		if po.Items[idx].QuantityReceived > 0 {
			anyReceived = true
		}
	}

	switch {
	case allReceived:
		po.Status = POStatusReceived
	case anyReceived:
		po.Status = POStatusPartiallyReceived
	}
	po.UpdatedAt = time.Now()
}

// IsFullyReceived reports whether every line has been received in full
func (po *PurchaseOrder) IsFullyReceived() bool {
	if len(po.Items) == 0 {
		return false
	}
	for idx := range po.Items {
		if !po.Items[idx].IsFullyReceived() {
			return false
		}
	}
	return true
}

// TransitionTo performs a manual status change. Repeating the current
// status is a no-op, terminal states admit nothing else, and RECEIVED may
// only be entered once every line is fully received.
func (po *PurchaseOrder) TransitionTo(status PurchaseOrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainErrorf("INVALID_INPUT", "Unknown purchase order status: %s", status)
	}
	if status == po.Status {
		return nil
	}
	if po.Status.IsTerminal() {
		return shared.NewDomainErrorf("INVALID_STATE",
			"Purchase order status cannot change once %s", po.Status)
	}
	if status == POStatusReceived && !po.IsFullyReceived() {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot mark purchase order as RECEIVED until all items are fully received")
	}

	po.Status = status
	po.UpdatedAt = time.Now()

	return nil
}
