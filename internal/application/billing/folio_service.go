package billing

import (
	"context"
	"errors"

	"github.com/granhotel/backend/internal/domain/billing"
	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FolioService handles the guest billing ledger
type FolioService struct {
	scope  TransactionScope
	folios billing.GuestFolioRepository
	guests billing.GuestDirectory
}

// NewFolioService creates a new FolioService
func NewFolioService(scope TransactionScope, folios billing.GuestFolioRepository, guests billing.GuestDirectory) *FolioService {
	return &FolioService{scope: scope, folios: folios, guests: guests}
}

// GetOrCreateOpenFolio returns the guest's most recently opened OPEN folio,
// creating one when none exists. A reservation id narrows the lookup to
// that reservation; without one any open folio for the guest matches.
func (s *FolioService) GetOrCreateOpenFolio(ctx context.Context, req GetOrCreateFolioRequest) (*FolioResponse, error) {
	exists, err := s.guests.GuestExists(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainErrorf("NOT_FOUND", "Guest %s not found", req.GuestID)
	}
	if req.ReservationID != nil {
		owned, err := s.guests.ReservationBelongsToGuest(ctx, *req.ReservationID, req.GuestID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, shared.NewDomainError("INVALID_INPUT", "Reservation does not belong to the guest")
		}
	}

	var result *billing.GuestFolio
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		folio, err := repos.Folios().FindOpenForGuest(ctx, req.GuestID, req.ReservationID)
		if err == nil {
			result = folio
			return nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		folio, err = billing.NewGuestFolio(req.GuestID, req.ReservationID)
		if err != nil {
			return err
		}
		if err := repos.Folios().Save(ctx, folio); err != nil {
			return err
		}
		result = folio
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToFolioResponse(result)
	return &response, nil
}

// AddTransaction posts one entry to an OPEN folio and resyncs the totals
// from the full ledger in the same transaction.
func (s *FolioService) AddTransaction(ctx context.Context, folioID uuid.UUID, req AddTransactionRequest, createdBy *uuid.UUID) (*FolioDetailsResponse, error) {
	txnType := billing.FolioTransactionType(req.TransactionType)
	if !txnType.IsValid() {
		return nil, shared.NewDomainErrorf("INVALID_TRANSACTION_TYPE", "Unknown folio transaction type: %s", req.TransactionType)
	}

	var result *billing.GuestFolio
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		folio, err := repos.Folios().FindByIDForUpdate(ctx, folioID)
		if err != nil {
			return err
		}

		txn, err := billing.NewFolioTransaction(folio.ID, txnType, req.Description,
			req.ChargeAmount, req.PaymentAmount, req.POSSaleID, req.ReservationID, createdBy)
		if err != nil {
			return err
		}
		if err := folio.AddTransaction(txn); err != nil {
			return err
		}
		if err := repos.Folios().Save(ctx, folio); err != nil {
			return err
		}

		result = folio
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToFolioDetailsResponse(result)
	return &response, nil
}

// UpdateStatus changes a folio's lifecycle state
func (s *FolioService) UpdateStatus(ctx context.Context, folioID uuid.UUID, status string) (*FolioResponse, error) {
	target := billing.FolioStatus(status)
	if !target.IsValid() {
		return nil, shared.NewDomainErrorf("INVALID_INPUT", "Unknown folio status: %s", status)
	}

	var result *billing.GuestFolio
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		folio, err := repos.Folios().FindByIDForUpdate(ctx, folioID)
		if err != nil {
			return err
		}
		if err := folio.UpdateStatus(target); err != nil {
			return err
		}
		if err := repos.Folios().Save(ctx, folio); err != nil {
			return err
		}
		result = folio
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToFolioResponse(result)
	return &response, nil
}

// GetDetails returns a folio with its full transaction list
func (s *FolioService) GetDetails(ctx context.Context, folioID uuid.UUID) (*FolioDetailsResponse, error) {
	folio, err := s.folios.FindByID(ctx, folioID)
	if err != nil {
		return nil, err
	}

	response := ToFolioDetailsResponse(folio)
	return &response, nil
}

// ListForGuest returns all of a guest's folios, newest first
func (s *FolioService) ListForGuest(ctx context.Context, guestID uuid.UUID, filter shared.Filter) ([]FolioResponse, int64, error) {
	exists, err := s.guests.GuestExists(ctx, guestID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, shared.NewDomainErrorf("NOT_FOUND", "Guest %s not found", guestID)
	}

	folios, err := s.folios.FindByGuest(ctx, guestID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.folios.CountByGuest(ctx, guestID)
	if err != nil {
		return nil, 0, err
	}

	return ToFolioResponses(folios), total, nil
}
