package billing

import (
	"time"

	"github.com/granhotel/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FolioResponse represents a folio in API responses
type FolioResponse struct {
	ID            uuid.UUID       `json:"id"`
	GuestID       uuid.UUID       `json:"guest_id"`
	ReservationID *uuid.UUID      `json:"reservation_id,omitempty"`
	Status        string          `json:"status"`
	TotalCharges  decimal.Decimal `json:"total_charges"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	Balance       decimal.Decimal `json:"balance"`
	OpenedAt      time.Time       `json:"opened_at"`
	ClosedAt      *time.Time      `json:"closed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToFolioResponse maps a folio to its response shape
func ToFolioResponse(f *billing.GuestFolio) FolioResponse {
	return FolioResponse{
		ID:            f.ID,
		GuestID:       f.GuestID,
		ReservationID: f.ReservationID,
		Status:        f.Status.String(),
		TotalCharges:  f.TotalCharges,
		TotalPayments: f.TotalPayments,
		Balance:       f.Balance(),
		OpenedAt:      f.OpenedAt,
		ClosedAt:      f.ClosedAt,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// ToFolioResponses maps a slice of folios
func ToFolioResponses(folios []billing.GuestFolio) []FolioResponse {
	responses := make([]FolioResponse, len(folios))
	for i := range folios {
		responses[i] = ToFolioResponse(&folios[i])
	}
	return responses
}

// FolioTransactionResponse represents a folio ledger entry in API responses
type FolioTransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	TransactionDate time.Time       `json:"transaction_date"`
	Description     string          `json:"description"`
	ChargeAmount    decimal.Decimal `json:"charge_amount"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	TransactionType string          `json:"transaction_type"`
	POSSaleID       *uuid.UUID      `json:"pos_sale_id,omitempty"`
	ReservationID   *uuid.UUID      `json:"reservation_id,omitempty"`
	CreatedBy       *uuid.UUID      `json:"created_by,omitempty"`
}

// FolioDetailsResponse is a folio with its full transaction list
type FolioDetailsResponse struct {
	FolioResponse
	Transactions []FolioTransactionResponse `json:"transactions"`
}

// ToFolioDetailsResponse maps a folio and its transactions
func ToFolioDetailsResponse(f *billing.GuestFolio) FolioDetailsResponse {
	transactions := make([]FolioTransactionResponse, len(f.Transactions))
	for i := range f.Transactions {
		txn := &f.Transactions[i]
		transactions[i] = FolioTransactionResponse{
			ID:              txn.ID,
			TransactionDate: txn.TransactionDate,
			Description:     txn.Description,
			ChargeAmount:    txn.ChargeAmount,
			PaymentAmount:   txn.PaymentAmount,
			TransactionType: txn.TransactionType.String(),
			POSSaleID:       txn.POSSaleID,
			ReservationID:   txn.ReservationID,
			CreatedBy:       txn.CreatedBy,
		}
	}

	return FolioDetailsResponse{
		FolioResponse: ToFolioResponse(f),
		Transactions:  transactions,
	}
}

// GetOrCreateFolioRequest asks for the guest's open folio
type GetOrCreateFolioRequest struct {
	GuestID       uuid.UUID  `json:"guest_id" binding:"required"`
	ReservationID *uuid.UUID `json:"reservation_id"`
}

// AddTransactionRequest posts one entry to a folio
type AddTransactionRequest struct {
	TransactionType string          `json:"transaction_type" binding:"required"`
	Description     string          `json:"description" binding:"required,max=300"`
	ChargeAmount    decimal.Decimal `json:"charge_amount"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	POSSaleID       *uuid.UUID      `json:"pos_sale_id"`
	ReservationID   *uuid.UUID      `json:"reservation_id"`
}

// UpdateFolioStatusRequest represents a folio lifecycle change
type UpdateFolioStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
