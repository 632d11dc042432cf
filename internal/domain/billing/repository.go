package billing

import (
	"context"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// GuestFolioRepository defines the persistence interface for folios.
// Folios always load with their transactions.
type GuestFolioRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestFolio, error)
	// FindByIDForUpdate locks the folio row for the duration of the
	// surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*GuestFolio, error)
	// FindOpenForGuest returns the most recently opened OPEN folio for the
	// guest, scoped to the reservation when one is given.
	FindOpenForGuest(ctx context.Context, guestID uuid.UUID, reservationID *uuid.UUID) (*GuestFolio, error)
	FindByGuest(ctx context.Context, guestID uuid.UUID, filter shared.Filter) ([]GuestFolio, error)
	CountByGuest(ctx context.Context, guestID uuid.UUID) (int64, error)
	Save(ctx context.Context, folio *GuestFolio) error
}

// GuestDirectory is the read-only collaborator interface onto the
// guest/reservation subsystem. Folio operations only need existence and
// ownership checks, never guest CRUD.
type GuestDirectory interface {
	GuestExists(ctx context.Context, guestID uuid.UUID) (bool, error)
	ReservationBelongsToGuest(ctx context.Context, reservationID, guestID uuid.UUID) (bool, error)
}
