package billing

import (
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FolioStatus represents the lifecycle state of a guest folio
type FolioStatus string

const (
	FolioStatusOpen    FolioStatus = "OPEN"
	FolioStatusClosed  FolioStatus = "CLOSED"
	FolioStatusSettled FolioStatus = "SETTLED"
	FolioStatusVoided  FolioStatus = "VOIDED"
)

// IsValid checks if the status is one of the defined values
func (s FolioStatus) IsValid() bool {
	switch s {
	case FolioStatusOpen, FolioStatusClosed, FolioStatusSettled, FolioStatusVoided:
		return true
	}
	return false
}

// String returns the string representation
func (s FolioStatus) String() string {
	return string(s)
}

// GuestFolio is the aggregate root of the billing ledger for one guest
// stay. Totals are always recomputed from the full transaction list rather
// than adjusted incrementally, so a folio self-heals from any historical
// drift on its next write.
type GuestFolio struct {
	shared.BaseEntity
	GuestID       uuid.UUID          `gorm:"type:uuid;not null;index:idx_guest_folios_guest_status,priority:1"`
	ReservationID *uuid.UUID         `gorm:"type:uuid;index"`
	Status        FolioStatus        `gorm:"type:varchar(20);not null;default:'OPEN';index:idx_guest_folios_guest_status,priority:2"`
	TotalCharges  decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	TotalPayments decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	OpenedAt      time.Time          `gorm:"not null"`
	ClosedAt      *time.Time         `gorm:""`
	Transactions  []FolioTransaction `gorm:"foreignKey:GuestFolioID;references:ID"`
}

// TableName returns the table name for GORM
func (GuestFolio) TableName() string {
	return "guest_folios"
}

// NewGuestFolio opens a folio for a guest, optionally tied to a reservation
func NewGuestFolio(guestID uuid.UUID, reservationID *uuid.UUID) (*GuestFolio, error) {
	if guestID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Guest ID cannot be empty")
	}

	return &GuestFolio{
		BaseEntity:    shared.NewBaseEntity(),
		GuestID:       guestID,
		ReservationID: reservationID,
		Status:        FolioStatusOpen,
		TotalCharges:  decimal.Zero,
		TotalPayments: decimal.Zero,
		OpenedAt:      time.Now(),
		Transactions:  make([]FolioTransaction, 0),
	}, nil
}

// Balance returns charges minus payments
func (f *GuestFolio) Balance() decimal.Decimal {
	return f.TotalCharges.Sub(f.TotalPayments)
}

// AddTransaction appends an entry and resyncs the totals. Only OPEN folios
// accept new entries.
func (f *GuestFolio) AddTransaction(txn *FolioTransaction) error {
	if f.Status != FolioStatusOpen {
		return shared.NewDomainErrorf("INVALID_STATE",
			"Cannot add transactions to a folio in status %s", f.Status)
	}

	f.Transactions = append(f.Transactions, *txn)
	f.RecalculateTotals()

	return nil
}

// RecalculateTotals rebuilds TotalCharges and TotalPayments as fresh sums
// over every transaction on the folio.
func (f *GuestFolio) RecalculateTotals() {
	charges := decimal.Zero
	payments := decimal.Zero
	for idx := range f.Transactions {
		charges = charges.Add(f.Transactions[idx].ChargeAmount)
		payments = payments.Add(f.Transactions[idx].PaymentAmount)
	}

	f.TotalCharges = charges
	f.TotalPayments = payments
	f.UpdatedAt = time.Now()
}

// UpdateStatus changes the folio lifecycle state. Settlement requires a
// zero balance. Leaving OPEN stamps ClosedAt; returning to OPEN clears it.
func (f *GuestFolio) UpdateStatus(status FolioStatus) error {
	if !status.IsValid() {
		return shared.NewDomainErrorf("INVALID_INPUT", "Unknown folio status: %s", status)
	}
	if status == FolioStatusSettled && !f.Balance().IsZero() {
		return shared.NewDomainErrorf("FOLIO_NOT_SETTLEABLE",
			"Folio cannot be settled with outstanding balance %s", f.Balance().StringFixed(2))
	}

	f.Status = status
	switch status {
	case FolioStatusOpen:
		f.ClosedAt = nil
	case FolioStatusClosed, FolioStatusSettled, FolioStatusVoided:
		if f.ClosedAt == nil {
			now := time.Now()
			f.ClosedAt = &now
		}
	}
	f.UpdatedAt = time.Now()

	return nil
}
