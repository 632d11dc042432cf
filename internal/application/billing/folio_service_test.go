package billing

import (
	"context"
	"testing"

	"github.com/granhotel/backend/internal/domain/billing"
	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGuestFolioRepository struct {
	mock.Mock
}

func (m *MockGuestFolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.GuestFolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.GuestFolio), args.Error(1)
}

func (m *MockGuestFolioRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*billing.GuestFolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.GuestFolio), args.Error(1)
}

func (m *MockGuestFolioRepository) FindOpenForGuest(ctx context.Context, guestID uuid.UUID, reservationID *uuid.UUID) (*billing.GuestFolio, error) {
	args := m.Called(ctx, guestID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.GuestFolio), args.Error(1)
}

func (m *MockGuestFolioRepository) FindByGuest(ctx context.Context, guestID uuid.UUID, filter shared.Filter) ([]billing.GuestFolio, error) {
	args := m.Called(ctx, guestID, filter)
	return args.Get(0).([]billing.GuestFolio), args.Error(1)
}

func (m *MockGuestFolioRepository) CountByGuest(ctx context.Context, guestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGuestFolioRepository) Save(ctx context.Context, folio *billing.GuestFolio) error {
	args := m.Called(ctx, folio)
	return args.Error(0)
}

type MockGuestDirectory struct {
	mock.Mock
}

func (m *MockGuestDirectory) GuestExists(ctx context.Context, guestID uuid.UUID) (bool, error) {
	args := m.Called(ctx, guestID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuestDirectory) ReservationBelongsToGuest(ctx context.Context, reservationID, guestID uuid.UUID) (bool, error) {
	args := m.Called(ctx, reservationID, guestID)
	return args.Bool(0), args.Error(1)
}

func newFolioService() (*FolioService, *MockGuestFolioRepository, *MockGuestDirectory) {
	folios := new(MockGuestFolioRepository)
	guests := new(MockGuestDirectory)
	return NewFolioService(NewNoOpTransactionScope(folios), folios, guests), folios, guests
}

func TestGetOrCreateOpenFolio(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing open folio", func(t *testing.T) {
		service, folios, guests := newFolioService()
		guestID := uuid.New()
		existing, _ := billing.NewGuestFolio(guestID, nil)

		guests.On("GuestExists", ctx, guestID).Return(true, nil)
		folios.On("FindOpenForGuest", ctx, guestID, (*uuid.UUID)(nil)).Return(existing, nil)

		resp, err := service.GetOrCreateOpenFolio(ctx, GetOrCreateFolioRequest{GuestID: guestID})
		require.NoError(t, err)
		assert.Equal(t, existing.ID, resp.ID)
		folios.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("creates folio when none open", func(t *testing.T) {
		service, folios, guests := newFolioService()
		guestID := uuid.New()

		guests.On("GuestExists", ctx, guestID).Return(true, nil)
		folios.On("FindOpenForGuest", ctx, guestID, (*uuid.UUID)(nil)).Return(nil, shared.ErrNotFound)
		folios.On("Save", ctx, mock.AnythingOfType("*billing.GuestFolio")).Return(nil)

		resp, err := service.GetOrCreateOpenFolio(ctx, GetOrCreateFolioRequest{GuestID: guestID})
		require.NoError(t, err)
		assert.Equal(t, "OPEN", resp.Status)
		assert.True(t, resp.Balance.IsZero())
	})

	t.Run("unknown guest", func(t *testing.T) {
		service, _, guests := newFolioService()
		guestID := uuid.New()
		guests.On("GuestExists", ctx, guestID).Return(false, nil)

		_, err := service.GetOrCreateOpenFolio(ctx, GetOrCreateFolioRequest{GuestID: guestID})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("reservation owned by another guest", func(t *testing.T) {
		service, _, guests := newFolioService()
		guestID := uuid.New()
		reservationID := uuid.New()

		guests.On("GuestExists", ctx, guestID).Return(true, nil)
		guests.On("ReservationBelongsToGuest", ctx, reservationID, guestID).Return(false, nil)

		_, err := service.GetOrCreateOpenFolio(ctx, GetOrCreateFolioRequest{GuestID: guestID, ReservationID: &reservationID})
		assert.Error(t, err)
	})
}

func TestAddTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("posts charge and resyncs totals", func(t *testing.T) {
		service, folios, _ := newFolioService()
		folio, _ := billing.NewGuestFolio(uuid.New(), nil)

		folios.On("FindByIDForUpdate", ctx, folio.ID).Return(folio, nil)
		folios.On("Save", ctx, folio).Return(nil)

		staffID := uuid.New()
		resp, err := service.AddTransaction(ctx, folio.ID, AddTransactionRequest{
			TransactionType: "ROOM_CHARGE",
			Description:     "Room 301, night of 2026-08-27",
			ChargeAmount:    decimal.NewFromInt(180),
		}, &staffID)
		require.NoError(t, err)
		assert.True(t, resp.TotalCharges.Equal(decimal.NewFromInt(180)))
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(180)))
		require.Len(t, resp.Transactions, 1)
		assert.Equal(t, &staffID, resp.Transactions[0].CreatedBy)
	})

	t.Run("closed folio rejects entries", func(t *testing.T) {
		service, folios, _ := newFolioService()
		folio, _ := billing.NewGuestFolio(uuid.New(), nil)
		require.NoError(t, folio.UpdateStatus(billing.FolioStatusClosed))

		folios.On("FindByIDForUpdate", ctx, folio.ID).Return(folio, nil)

		_, err := service.AddTransaction(ctx, folio.ID, AddTransactionRequest{
			TransactionType: "PAYMENT",
			Description:     "cash",
			PaymentAmount:   decimal.NewFromInt(10),
		}, nil)
		require.Error(t, err)
		folios.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid type rejected before loading", func(t *testing.T) {
		service, folios, _ := newFolioService()
		_, err := service.AddTransaction(ctx, uuid.New(), AddTransactionRequest{
			TransactionType: "GRATUITY",
			Description:     "tip",
			ChargeAmount:    decimal.NewFromInt(5),
		}, nil)
		require.Error(t, err)
		folios.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
	})
}

func TestUpdateFolioStatusService(t *testing.T) {
	ctx := context.Background()

	t.Run("settles a balanced folio", func(t *testing.T) {
		service, folios, _ := newFolioService()
		folio, _ := billing.NewGuestFolio(uuid.New(), nil)

		folios.On("FindByIDForUpdate", ctx, folio.ID).Return(folio, nil)
		folios.On("Save", ctx, folio).Return(nil)

		resp, err := service.UpdateStatus(ctx, folio.ID, "SETTLED")
		require.NoError(t, err)
		assert.Equal(t, "SETTLED", resp.Status)
		assert.NotNil(t, resp.ClosedAt)
	})

	t.Run("settlement with outstanding balance rejected", func(t *testing.T) {
		service, folios, _ := newFolioService()
		folio, _ := billing.NewGuestFolio(uuid.New(), nil)
		txn, err := billing.NewFolioTransaction(folio.ID, billing.TxnRoomCharge, "room",
			decimal.NewFromInt(50), decimal.Zero, nil, nil, nil)
		require.NoError(t, err)
		require.NoError(t, folio.AddTransaction(txn))

		folios.On("FindByIDForUpdate", ctx, folio.ID).Return(folio, nil)

		_, err = service.UpdateStatus(ctx, folio.ID, "SETTLED")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FOLIO_NOT_SETTLEABLE", domainErr.Code)
	})
}

func TestListForGuest(t *testing.T) {
	ctx := context.Background()
	service, folios, guests := newFolioService()
	guestID := uuid.New()
	folio, _ := billing.NewGuestFolio(guestID, nil)

	guests.On("GuestExists", ctx, guestID).Return(true, nil)
	folios.On("FindByGuest", ctx, guestID, mock.Anything).Return([]billing.GuestFolio{*folio}, nil)
	folios.On("CountByGuest", ctx, guestID).Return(int64(1), nil)

	resp, total, err := service.ListForGuest(ctx, guestID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, resp, 1)
	assert.Equal(t, guestID, resp[0].GuestID)
}
