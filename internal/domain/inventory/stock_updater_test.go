package inventory

import (
	"context"
	"testing"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*InventoryItem), args.Error(1)
}

func (m *mockItemRepo) FindByProductID(ctx context.Context, productID uuid.UUID) (*InventoryItem, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*InventoryItem), args.Error(1)
}

func (m *mockItemRepo) FindByProductIDForUpdate(ctx context.Context, productID uuid.UUID) (*InventoryItem, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*InventoryItem), args.Error(1)
}

func (m *mockItemRepo) FindAll(ctx context.Context, filter shared.Filter) ([]InventoryItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]InventoryItem), args.Error(1)
}

func (m *mockItemRepo) FindLowStock(ctx context.Context, filter shared.Filter) ([]InventoryItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]InventoryItem), args.Error(1)
}

func (m *mockItemRepo) Save(ctx context.Context, item *InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockMovementRepo struct {
	mock.Mock
}

func (m *mockMovementRepo) Save(ctx context.Context, movement *StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *mockMovementRepo) FindByProduct(ctx context.Context, productID uuid.UUID, query MovementHistoryQuery, filter shared.Filter) ([]StockMovement, error) {
	args := m.Called(ctx, productID, query, filter)
	return args.Get(0).([]StockMovement), args.Error(1)
}

func (m *mockMovementRepo) CountByProduct(ctx context.Context, productID uuid.UUID, query MovementHistoryQuery) (int64, error) {
	args := m.Called(ctx, productID, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMovementRepo) SumQuantityByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func TestStockUpdaterApply(t *testing.T) {
	ctx := context.Background()
	updater := NewStockUpdater()

	t.Run("applies delta and appends one ledger entry", func(t *testing.T) {
		productID := uuid.New()
		item, _ := NewInventoryItem(productID)
		item.QuantityOnHand = 10

		items := new(mockItemRepo)
		movements := new(mockMovementRepo)
		items.On("FindByProductIDForUpdate", ctx, productID).Return(item, nil)
		items.On("Save", ctx, item).Return(nil)
		movements.On("Save", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

		updated, err := updater.Apply(ctx, items, movements, StockUpdate{
			ProductID:       productID,
			QuantityChanged: -4,
			MovementType:    MovementSale,
			Reason:          "POS sale",
		})
		require.NoError(t, err)
		assert.EqualValues(t, 6, updated.QuantityOnHand)

		movements.AssertNumberOfCalls(t, "Save", 1)
		saved := movements.Calls[0].Arguments.Get(1).(*StockMovement)
		assert.EqualValues(t, -4, saved.QuantityChanged)
		assert.Equal(t, MovementSale, saved.MovementType)
		assert.Equal(t, productID, saved.ProductID)
	})

	t.Run("missing inventory record maps to not found", func(t *testing.T) {
		productID := uuid.New()
		items := new(mockItemRepo)
		movements := new(mockMovementRepo)
		items.On("FindByProductIDForUpdate", ctx, productID).Return(nil, shared.ErrNotFound)

		_, err := updater.Apply(ctx, items, movements, StockUpdate{
			ProductID:       productID,
			QuantityChanged: 1,
			MovementType:    MovementPurchaseReceipt,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		movements.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("insufficient stock writes nothing", func(t *testing.T) {
		productID := uuid.New()
		item, _ := NewInventoryItem(productID)
		item.QuantityOnHand = 2

		items := new(mockItemRepo)
		movements := new(mockMovementRepo)
		items.On("FindByProductIDForUpdate", ctx, productID).Return(item, nil)

		_, err := updater.Apply(ctx, items, movements, StockUpdate{
			ProductID:       productID,
			QuantityChanged: -3,
			MovementType:    MovementSale,
		})
		require.Error(t, err)
		items.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		movements.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("zero delta rejected before loading the aggregate", func(t *testing.T) {
		items := new(mockItemRepo)
		movements := new(mockMovementRepo)

		_, err := updater.Apply(ctx, items, movements, StockUpdate{
			ProductID:       uuid.New(),
			QuantityChanged: 0,
			MovementType:    MovementSale,
		})
		require.Error(t, err)
		items.AssertNotCalled(t, "FindByProductIDForUpdate", mock.Anything, mock.Anything)
	})
}
