package handler

import (
	"github.com/gin-gonic/gin"
	inventoryapp "github.com/granhotel/backend/internal/application/inventory"
)

// InventoryHandler handles stock level and movement ledger API endpoints
type InventoryHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(stockService *inventoryapp.StockService) *InventoryHandler {
	return &InventoryHandler{stockService: stockService}
}

// Provision creates the inventory record for a product
func (h *InventoryHandler) Provision(c *gin.Context) {
	var req inventoryapp.ProvisionInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.stockService.ProvisionInventoryItem(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// GetByProduct retrieves the stock level for a product
func (h *InventoryHandler) GetByProduct(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	item, err := h.stockService.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// UpdateStock posts a movement against a product and adjusts its quantity
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	var req inventoryapp.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.stockService.UpdateStock(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// SetThreshold changes a product's low stock alert threshold
func (h *InventoryHandler) SetThreshold(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req inventoryapp.SetLowStockThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.stockService.SetLowStockThreshold(c.Request.Context(), productID, req.Threshold)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// ListLowStock lists active products at or below their alert threshold
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	page, pageSize := parsePagination(c)

	items, err := h.stockService.ListLowStock(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// MovementHistory lists the movement ledger for a product, newest first
func (h *InventoryHandler) MovementHistory(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var filter inventoryapp.MovementHistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	movements, total, err := h.stockService.GetMovementHistory(c.Request.Context(), productID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, movements, total, filter.Page, filter.PageSize)
}

// Audit compares a product's quantity on hand against its ledger sum
func (h *InventoryHandler) Audit(c *gin.Context) {
	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	audit, err := h.stockService.AuditProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, audit)
}
