package procurement

import (
	"time"

	"github.com/granhotel/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToSupplierResponse maps a supplier to its response shape
func ToSupplierResponse(s *procurement.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSupplierResponses maps a slice of suppliers
func ToSupplierResponses(suppliers []procurement.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}

// SupplierRequest represents a create or update supplier request
type SupplierRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"max=50"`
	Address       string `json:"address"`
}

// PurchaseOrderItemResponse represents an order line in API responses
type PurchaseOrderItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	QuantityOrdered  int64           `json:"quantity_ordered"`
	QuantityReceived int64           `json:"quantity_received"`
	UnitPricePaid    decimal.Decimal `json:"unit_price_paid"`
	FullyReceived    bool            `json:"fully_received"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID                   uuid.UUID                   `json:"id"`
	SupplierID           uuid.UUID                   `json:"supplier_id"`
	Status               string                      `json:"status"`
	OrderDate            time.Time                   `json:"order_date"`
	ExpectedDeliveryDate *time.Time                  `json:"expected_delivery_date,omitempty"`
	Notes                string                      `json:"notes,omitempty"`
	Items                []PurchaseOrderItemResponse `json:"items"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
}

// ToPurchaseOrderResponse maps an order with its lines to the response shape
func ToPurchaseOrderResponse(po *procurement.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(po.Items))
	for i := range po.Items {
		item := &po.Items[i]
		items[i] = PurchaseOrderItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			QuantityOrdered:  item.QuantityOrdered,
			QuantityReceived: item.QuantityReceived,
			UnitPricePaid:    item.UnitPricePaid,
			FullyReceived:    item.IsFullyReceived(),
		}
	}

	return PurchaseOrderResponse{
		ID:                   po.ID,
		SupplierID:           po.SupplierID,
		Status:               po.Status.String(),
		OrderDate:            po.OrderDate,
		ExpectedDeliveryDate: po.ExpectedDeliveryDate,
		Notes:                po.Notes,
		Items:                items,
		CreatedAt:            po.CreatedAt,
		UpdatedAt:            po.UpdatedAt,
	}
}

// ToPurchaseOrderResponses maps a slice of orders
func ToPurchaseOrderResponses(orders []procurement.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}

// CreatePurchaseOrderItemRequest is one requested order line. UnitPricePaid
// defaults to the product's current catalog price when omitted.
type CreatePurchaseOrderItemRequest struct {
	ProductID       uuid.UUID        `json:"product_id" binding:"required"`
	QuantityOrdered int64            `json:"quantity_ordered" binding:"required,gt=0"`
	UnitPricePaid   *decimal.Decimal `json:"unit_price_paid"`
}

// CreatePurchaseOrderRequest represents a request to create an order
type CreatePurchaseOrderRequest struct {
	SupplierID           uuid.UUID                        `json:"supplier_id" binding:"required"`
	ExpectedDeliveryDate *time.Time                       `json:"expected_delivery_date"`
	Notes                string                           `json:"notes"`
	Items                []CreatePurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReceiveItemRequest represents a delivery against one order line
type ReceiveItemRequest struct {
	QuantityReceived int64 `json:"quantity_received" binding:"required,gt=0"`
}

// UpdateStatusRequest represents a manual status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PurchaseOrderListFilter narrows and pages an order listing
type PurchaseOrderListFilter struct {
	SupplierID *uuid.UUID `form:"supplier_id"`
	Status     string     `form:"status"`
	DateFrom   *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}
