package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/granhotel/backend/internal/domain/billing"
	"github.com/granhotel/backend/internal/domain/shared"
)

// GormGuestFolioRepository implements GuestFolioRepository using GORM.
// Folios always load with their full transaction ledger, oldest first.
type GormGuestFolioRepository struct {
	db *gorm.DB
}

// NewGormGuestFolioRepository creates a new GormGuestFolioRepository
func NewGormGuestFolioRepository(db *gorm.DB) *GormGuestFolioRepository {
	return &GormGuestFolioRepository{db: db}
}

func preloadTransactions(db *gorm.DB) *gorm.DB {
	return db.Order("transaction_date ASC, id ASC")
}

// FindByID finds a folio with its transactions
func (r *GormGuestFolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.GuestFolio, error) {
	var folio billing.GuestFolio
	if err := r.db.WithContext(ctx).
		Preload("Transactions", preloadTransactions).
		First(&folio, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &folio, nil
}

// FindByIDForUpdate finds a folio with its transactions and locks the folio
// row so concurrent postings to the same folio serialize
func (r *GormGuestFolioRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*billing.GuestFolio, error) {
	var folio billing.GuestFolio
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&folio, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Order("transaction_date ASC, id ASC").
		Find(&folio.Transactions, "guest_folio_id = ?", folio.ID).Error; err != nil {
		return nil, err
	}
	return &folio, nil
}

// FindOpenForGuest returns the most recently opened OPEN folio for a guest,
// scoped to the reservation when one is given
func (r *GormGuestFolioRepository) FindOpenForGuest(ctx context.Context, guestID uuid.UUID, reservationID *uuid.UUID) (*billing.GuestFolio, error) {
	query := r.db.WithContext(ctx).
		Preload("Transactions", preloadTransactions).
		Where("guest_id = ? AND status = ?", guestID, billing.FolioStatusOpen)

	// No reservation given means any OPEN folio for the guest qualifies,
	// reservation-scoped or not.
	if reservationID != nil {
		query = query.Where("reservation_id = ?", *reservationID)
	}

	var folio billing.GuestFolio
	if err := query.Order("opened_at DESC").First(&folio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &folio, nil
}

// FindByGuest lists a guest's folios, transactions included
func (r *GormGuestFolioRepository) FindByGuest(ctx context.Context, guestID uuid.UUID, filter shared.Filter) ([]billing.GuestFolio, error) {
	var folios []billing.GuestFolio
	query := r.db.WithContext(ctx).
		Model(&billing.GuestFolio{}).
		Preload("Transactions", preloadTransactions).
		Where("guest_id = ?", guestID)

	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, GuestFolioSortFields, "opened_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	if err := query.Order(orderBy + " " + orderDir).Find(&folios).Error; err != nil {
		return nil, err
	}
	return folios, nil
}

// CountByGuest counts a guest's folios
func (r *GormGuestFolioRepository) CountByGuest(ctx context.Context, guestID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&billing.GuestFolio{}).
		Where("guest_id = ?", guestID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a folio together with its transactions
func (r *GormGuestFolioRepository) Save(ctx context.Context, folio *billing.GuestFolio) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(folio).Error
}

// Ensure GormGuestFolioRepository implements GuestFolioRepository
var _ billing.GuestFolioRepository = (*GormGuestFolioRepository)(nil)
