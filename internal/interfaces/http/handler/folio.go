package handler

import (
	"github.com/gin-gonic/gin"
	billingapp "github.com/granhotel/backend/internal/application/billing"
	"github.com/granhotel/backend/internal/interfaces/http/dto"
)

// FolioHandler handles guest folio API endpoints
type FolioHandler struct {
	BaseHandler
	folioService *billingapp.FolioService
}

// NewFolioHandler creates a new FolioHandler
func NewFolioHandler(folioService *billingapp.FolioService) *FolioHandler {
	return &FolioHandler{folioService: folioService}
}

// GetOrCreate returns the guest's open folio, creating one when none
// exists. With a reservation id the lookup is scoped to that
// reservation; without one the guest's most recent open folio of any
// scope is reused.
func (h *FolioHandler) GetOrCreate(c *gin.Context) {
	var req billingapp.GetOrCreateFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	folio, err := h.folioService.GetOrCreateOpenFolio(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, folio)
}

// GetDetails retrieves a folio with its full transaction list
func (h *FolioHandler) GetDetails(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid folio ID format")
		return
	}

	folio, err := h.folioService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, folio)
}

// AddTransaction posts a charge or payment to an open folio
func (h *FolioHandler) AddTransaction(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid folio ID format")
		return
	}

	var req billingapp.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	folio, err := h.folioService.AddTransaction(c.Request.Context(), id, req, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, folio)
}

// UpdateStatus moves a folio through its lifecycle (settle or void)
func (h *FolioHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid folio ID format")
		return
	}

	var req billingapp.UpdateFolioStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	folio, err := h.folioService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, folio)
}

// ListForGuest returns a guest's folios, optionally filtered by status
func (h *FolioHandler) ListForGuest(c *gin.Context) {
	guestID, err := parseIDParam(c, "guest_id")
	if err != nil {
		h.BadRequest(c, "Invalid guest ID format")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := toFilter(req)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	folios, total, err := h.folioService.ListForGuest(c.Request.Context(), guestID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, folios, total, filter.Page, filter.PageSize)
}
