package inventory

import (
	"time"

	"github.com/granhotel/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// InventoryItemResponse represents an inventory record in API responses
type InventoryItemResponse struct {
	ID                uuid.UUID  `json:"id"`
	ProductID         uuid.UUID  `json:"product_id"`
	QuantityOnHand    int64      `json:"quantity_on_hand"`
	LowStockThreshold int64      `json:"low_stock_threshold"`
	IsLowStock        bool       `json:"is_low_stock"`
	LastRestockedAt   *time.Time `json:"last_restocked_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ToInventoryItemResponse maps an aggregate to its response shape
func ToInventoryItemResponse(item *inventory.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:                item.ID,
		ProductID:         item.ProductID,
		QuantityOnHand:    item.QuantityOnHand,
		LowStockThreshold: item.LowStockThreshold,
		IsLowStock:        item.IsLowStock(),
		LastRestockedAt:   item.LastRestockedAt,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

// ToInventoryItemResponses maps a slice of aggregates
func ToInventoryItemResponses(items []inventory.InventoryItem) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = ToInventoryItemResponse(&items[i])
	}
	return responses
}

// StockMovementResponse represents a ledger entry in API responses
type StockMovementResponse struct {
	ID                  uuid.UUID  `json:"id"`
	ProductID           uuid.UUID  `json:"product_id"`
	QuantityChanged     int64      `json:"quantity_changed"`
	MovementType        string     `json:"movement_type"`
	MovementDate        time.Time  `json:"movement_date"`
	Reason              string     `json:"reason,omitempty"`
	PurchaseOrderItemID *uuid.UUID `json:"purchase_order_item_id,omitempty"`
}

// ToStockMovementResponses maps ledger entries to their response shape
func ToStockMovementResponses(movements []inventory.StockMovement) []StockMovementResponse {
	responses := make([]StockMovementResponse, len(movements))
	for i := range movements {
		m := &movements[i]
		responses[i] = StockMovementResponse{
			ID:                  m.ID,
			ProductID:           m.ProductID,
			QuantityChanged:     m.QuantityChanged,
			MovementType:        m.MovementType.String(),
			MovementDate:        m.MovementDate,
			Reason:              m.Reason,
			PurchaseOrderItemID: m.PurchaseOrderItemID,
		}
	}
	return responses
}

// UpdateStockRequest represents a request to change a product's stock level
type UpdateStockRequest struct {
	ProductID           uuid.UUID  `json:"product_id" binding:"required"`
	QuantityChanged     int64      `json:"quantity_changed" binding:"required"`
	MovementType        string     `json:"movement_type" binding:"required"`
	Reason              string     `json:"reason"`
	PurchaseOrderItemID *uuid.UUID `json:"purchase_order_item_id"`
}

// ProvisionInventoryItemRequest represents a request to create an inventory record
type ProvisionInventoryItemRequest struct {
	ProductID         uuid.UUID `json:"product_id" binding:"required"`
	InitialQuantity   int64     `json:"initial_quantity" binding:"min=0"`
	LowStockThreshold int64     `json:"low_stock_threshold" binding:"min=0"`
}

// SetLowStockThresholdRequest represents a request to change the alert threshold
type SetLowStockThresholdRequest struct {
	Threshold int64 `json:"threshold" binding:"min=0"`
}

// MovementHistoryFilter narrows and pages a movement history listing
type MovementHistoryFilter struct {
	DateFrom     *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo       *time.Time `form:"date_to" time_format:"2006-01-02"`
	MovementType string     `form:"movement_type"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// StockAuditResponse reports whether an aggregate agrees with its ledger
type StockAuditResponse struct {
	ProductID      uuid.UUID `json:"product_id"`
	QuantityOnHand int64     `json:"quantity_on_hand"`
	LedgerTotal    int64     `json:"ledger_total"`
	Consistent     bool      `json:"consistent"`
}
