package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/granhotel/backend/internal/domain/billing"
)

// GormGuestDirectory implements the GuestDirectory port against the guest
// and reservation tables owned by the front-desk service. Billing only
// reads them for existence and ownership checks.
type GormGuestDirectory struct {
	db *gorm.DB
}

// NewGormGuestDirectory creates a new GormGuestDirectory
func NewGormGuestDirectory(db *gorm.DB) *GormGuestDirectory {
	return &GormGuestDirectory{db: db}
}

// GuestExists reports whether a guest record exists
func (d *GormGuestDirectory) GuestExists(ctx context.Context, guestID uuid.UUID) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).
		Table("guests").
		Where("id = ?", guestID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReservationBelongsToGuest reports whether the reservation exists and is
// held by the given guest
func (d *GormGuestDirectory) ReservationBelongsToGuest(ctx context.Context, reservationID, guestID uuid.UUID) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).
		Table("reservations").
		Where("id = ? AND guest_id = ?", reservationID, guestID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormGuestDirectory implements GuestDirectory
var _ billing.GuestDirectory = (*GormGuestDirectory)(nil)
