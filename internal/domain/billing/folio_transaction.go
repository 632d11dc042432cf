package billing

import (
	"strings"
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FolioTransactionType classifies a folio ledger entry
type FolioTransactionType string

const (
	TxnRoomCharge         FolioTransactionType = "ROOM_CHARGE"
	TxnPOSCharge          FolioTransactionType = "POS_CHARGE"
	TxnServiceCharge      FolioTransactionType = "SERVICE_CHARGE"
	TxnPayment            FolioTransactionType = "PAYMENT"
	TxnRefund             FolioTransactionType = "REFUND"
	TxnDiscountAdjustment FolioTransactionType = "DISCOUNT_ADJUSTMENT"
	TxnTaxCharge          FolioTransactionType = "TAX_CHARGE"
)

// IsValid checks if the transaction type is one of the defined values
func (t FolioTransactionType) IsValid() bool {
	switch t {
	case TxnRoomCharge, TxnPOSCharge, TxnServiceCharge, TxnPayment,
		TxnRefund, TxnDiscountAdjustment, TxnTaxCharge:
		return true
	}
	return false
}

// String returns the string representation
func (t FolioTransactionType) String() string {
	return string(t)
}

// FolioTransaction is an immutable entry on a guest folio. Exactly one of
// ChargeAmount and PaymentAmount is non-zero, except for zero-value
// discount adjustments. Corrections are new compensating entries.
type FolioTransaction struct {
	shared.BaseEntity
	GuestFolioID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	TransactionDate time.Time            `gorm:"not null"`
	Description     string               `gorm:"type:varchar(300);not null"`
	ChargeAmount    decimal.Decimal      `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentAmount   decimal.Decimal      `gorm:"type:decimal(12,2);not null;default:0"`
	TransactionType FolioTransactionType `gorm:"type:varchar(30);not null;index"`
	POSSaleID       *uuid.UUID           `gorm:"type:uuid;index"`
	ReservationID   *uuid.UUID           `gorm:"type:uuid"`
	CreatedBy       *uuid.UUID           `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (FolioTransaction) TableName() string {
	return "folio_transactions"
}

// NewFolioTransaction creates a validated folio entry
func NewFolioTransaction(
	folioID uuid.UUID,
	transactionType FolioTransactionType,
	description string,
	charge, payment decimal.Decimal,
	posSaleID, reservationID, createdBy *uuid.UUID,
) (*FolioTransaction, error) {
	if folioID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Folio ID cannot be empty")
	}
	if !transactionType.IsValid() {
		return nil, shared.NewDomainErrorf("INVALID_TRANSACTION_TYPE", "Unknown folio transaction type: %s", transactionType)
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction description is required")
	}
	if charge.IsNegative() || payment.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction amounts cannot be negative")
	}
	if charge.IsPositive() && payment.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "A transaction cannot be both a charge and a payment")
	}
	if charge.IsZero() && payment.IsZero() && transactionType != TxnDiscountAdjustment {
		return nil, shared.NewDomainErrorf("INVALID_INPUT",
			"Zero-value transactions are only allowed for %s", TxnDiscountAdjustment)
	}

	return &FolioTransaction{
		BaseEntity:      shared.NewBaseEntity(),
		GuestFolioID:    folioID,
		TransactionDate: time.Now(),
		Description:     description,
		ChargeAmount:    charge,
		PaymentAmount:   payment,
		TransactionType: transactionType,
		POSSaleID:       posSaleID,
		ReservationID:   reservationID,
		CreatedBy:       createdBy,
	}, nil
}
