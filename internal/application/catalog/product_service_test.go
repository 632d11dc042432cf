package catalog

import (
	"context"
	"testing"

	"github.com/granhotel/backend/internal/domain/catalog"
	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product with unique SKU", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("FindBySKU", ctx, "COLA-330").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{
			SKU:   "COLA-330",
			Name:  "Cola 330ml",
			Price: decimal.NewFromFloat(2.50),
		})
		require.NoError(t, err)
		assert.Equal(t, "COLA-330", resp.SKU)
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate SKU rejected", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)
		existing, _ := catalog.NewProduct("COLA-330", "Cola", decimal.Zero)

		repo.On("FindBySKU", ctx, "COLA-330").Return(existing, nil)

		_, err := service.Create(ctx, CreateProductRequest{SKU: "COLA-330", Name: "Cola"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestProductSetActive(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	service := NewProductService(repo)
	product, _ := catalog.NewProduct("COLA-330", "Cola", decimal.Zero)

	repo.On("FindByID", ctx, product.ID).Return(product, nil)
	repo.On("Save", ctx, product).Return(nil)

	resp, err := service.SetActive(ctx, product.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}
