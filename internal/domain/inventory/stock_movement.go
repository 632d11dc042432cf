package inventory

import (
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockMovementType classifies a ledger entry
type StockMovementType string

const (
	MovementInitialStock       StockMovementType = "INITIAL_STOCK"
	MovementSale               StockMovementType = "SALE"
	MovementPurchaseReceipt    StockMovementType = "PURCHASE_RECEIPT"
	MovementAdjustmentIncrease StockMovementType = "ADJUSTMENT_INCREASE"
	MovementAdjustmentDecrease StockMovementType = "ADJUSTMENT_DECREASE"
	MovementReturnToSupplier   StockMovementType = "RETURN_TO_SUPPLIER"
	MovementCustomerReturn     StockMovementType = "CUSTOMER_RETURN"
	MovementInternalUse        StockMovementType = "INTERNAL_USE"
)

// IsValid checks if the movement type is one of the defined values
func (t StockMovementType) IsValid() bool {
	switch t {
	case MovementInitialStock, MovementSale, MovementPurchaseReceipt,
		MovementAdjustmentIncrease, MovementAdjustmentDecrease,
		MovementReturnToSupplier, MovementCustomerReturn, MovementInternalUse:
		return true
	}
	return false
}

// String returns the string representation
func (t StockMovementType) String() string {
	return string(t)
}

// IsRestock reports whether an inbound movement of this type counts as a
// restock for LastRestockedAt purposes
func (t StockMovementType) IsRestock() bool {
	switch t {
	case MovementPurchaseReceipt, MovementInitialStock, MovementAdjustmentIncrease, MovementCustomerReturn:
		return true
	}
	return false
}

// StockMovement is an immutable ledger entry recording a single signed
// change to a product's on-hand quantity. Movements are never updated or
// deleted; corrections are new compensating movements.
type StockMovement struct {
	shared.BaseEntity
	ProductID           uuid.UUID         `gorm:"type:uuid;not null;index:idx_stock_movements_product_date,priority:1"`
	QuantityChanged     int64             `gorm:"not null"`
	MovementType        StockMovementType `gorm:"type:varchar(30);not null;index"`
	MovementDate        time.Time         `gorm:"not null;index:idx_stock_movements_product_date,priority:2,sort:desc"`
	Reason              string            `gorm:"type:text"`
	PurchaseOrderItemID *uuid.UUID        `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a validated ledger entry
func NewStockMovement(productID uuid.UUID, quantityChanged int64, movementType StockMovementType, reason string, poItemID *uuid.UUID, at time.Time) (*StockMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantityChanged == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity change cannot be zero")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainErrorf("INVALID_MOVEMENT_TYPE", "Unknown stock movement type: %s", movementType)
	}

	return &StockMovement{
		BaseEntity:          shared.NewBaseEntity(),
		ProductID:           productID,
		QuantityChanged:     quantityChanged,
		MovementType:        movementType,
		MovementDate:        at,
		Reason:              reason,
		PurchaseOrderItemID: poItemID,
	}, nil
}
