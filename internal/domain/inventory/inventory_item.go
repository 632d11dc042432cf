package inventory

import (
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InventoryItem tracks the on-hand quantity for a single product.
// It is the aggregate root for stock operations; every change to
// QuantityOnHand must be accompanied by exactly one StockMovement.
type InventoryItem struct {
	shared.BaseEntity
	ProductID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	QuantityOnHand    int64      `gorm:"not null;default:0"`
	LowStockThreshold int64      `gorm:"not null;default:0"`
	LastRestockedAt   *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a zero-quantity inventory record for a product
func NewInventoryItem(productID uuid.UUID) (*InventoryItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}

	return &InventoryItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
	}, nil
}

// ApplyMovement mutates the on-hand quantity by the movement's signed delta.
// The resulting quantity must not go below zero. Restocking movement types
// with a positive delta stamp LastRestockedAt.
func (i *InventoryItem) ApplyMovement(quantityChanged int64, movementType StockMovementType, at time.Time) error {
	if quantityChanged == 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity change cannot be zero")
	}
	if !movementType.IsValid() {
		return shared.NewDomainErrorf("INVALID_MOVEMENT_TYPE", "Unknown stock movement type: %s", movementType)
	}

	newQuantity := i.QuantityOnHand + quantityChanged
	if newQuantity < 0 {
		return shared.NewDomainErrorf("INSUFFICIENT_STOCK",
			"Stock for product %s cannot go below zero (on hand %d, change %d)",
			i.ProductID, i.QuantityOnHand, quantityChanged)
	}

	i.QuantityOnHand = newQuantity
	if quantityChanged > 0 && movementType.IsRestock() {
		restockedAt := at
		i.LastRestockedAt = &restockedAt
	}
	i.UpdatedAt = time.Now()

	return nil
}

// SetLowStockThreshold updates the alerting threshold
func (i *InventoryItem) SetLowStockThreshold(threshold int64) error {
	if threshold < 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Low stock threshold cannot be negative")
	}

	i.LowStockThreshold = threshold
	i.UpdatedAt = time.Now()

	return nil
}

// IsLowStock reports whether the item has fallen to or below its threshold.
// A zero threshold means alerting is disabled for this product.
func (i *InventoryItem) IsLowStock() bool {
	return i.LowStockThreshold > 0 && i.QuantityOnHand <= i.LowStockThreshold
}
