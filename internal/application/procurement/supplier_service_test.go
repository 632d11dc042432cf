package procurement

import (
	"context"
	"testing"

	"github.com/granhotel/backend/internal/domain/procurement"
	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSupplierService() (*SupplierService, *MockSupplierRepository, *MockPurchaseOrderRepository) {
	suppliers := new(MockSupplierRepository)
	orders := new(MockPurchaseOrderRepository)
	return NewSupplierService(suppliers, orders), suppliers, orders
}

func TestSupplierCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates supplier with unique name", func(t *testing.T) {
		service, suppliers, _ := newSupplierService()
		suppliers.On("FindByName", ctx, "Andes Beverages SA").Return(nil, shared.ErrNotFound)
		suppliers.On("Save", ctx, mock.AnythingOfType("*procurement.Supplier")).Return(nil)

		resp, err := service.Create(ctx, SupplierRequest{Name: "Andes Beverages SA"})
		require.NoError(t, err)
		assert.Equal(t, "Andes Beverages SA", resp.Name)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		service, suppliers, _ := newSupplierService()
		existing, _ := procurement.NewSupplier("Andes Beverages SA", "", "", "", "")
		suppliers.On("FindByName", ctx, "Andes Beverages SA").Return(existing, nil)

		_, err := service.Create(ctx, SupplierRequest{Name: "Andes Beverages SA"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestSupplierDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes supplier with no orders", func(t *testing.T) {
		service, suppliers, orders := newSupplierService()
		supplier, _ := procurement.NewSupplier("Andes Beverages SA", "", "", "", "")
		suppliers.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		orders.On("CountBySupplier", ctx, supplier.ID).Return(int64(0), nil)
		suppliers.On("Delete", ctx, supplier.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, supplier.ID))
		suppliers.AssertExpectations(t)
	})

	t.Run("supplier with purchase orders is not deletable", func(t *testing.T) {
		service, suppliers, orders := newSupplierService()
		supplier, _ := procurement.NewSupplier("Andes Beverages SA", "", "", "", "")
		suppliers.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		orders.On("CountBySupplier", ctx, supplier.ID).Return(int64(3), nil)

		err := service.Delete(ctx, supplier.ID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		suppliers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		service, suppliers, _ := newSupplierService()
		id := uuid.New()
		suppliers.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)
		assert.Error(t, service.Delete(ctx, id))
	})
}
