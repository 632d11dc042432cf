package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granhotel/backend/internal/domain/shared"
	"gorm.io/gorm"
)

func newMockInventoryItemRepository(t *testing.T) (*GormInventoryItemRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormInventoryItemRepository(gormDB), mock, mockDB
}

func TestGormInventoryItemRepositoryFindByProductID(t *testing.T) {
	t.Run("finds item by product", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "product_id", "quantity_on_hand", "low_stock_threshold"}).
			AddRow(itemID, productID, int64(42), int64(10))

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnRows(rows)

		item, err := repo.FindByProductID(context.Background(), productID)

		require.NoError(t, err)
		assert.Equal(t, productID, item.ProductID)
		assert.Equal(t, int64(42), item.QuantityOnHand)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for untracked product", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryItemRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		item, err := repo.FindByProductID(context.Background(), productID)

		assert.Nil(t, item)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryItemRepositoryFindByProductIDForUpdate(t *testing.T) {
	t.Run("issues a row lock", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "product_id", "quantity_on_hand", "low_stock_threshold"}).
			AddRow(itemID, productID, int64(5), int64(10))

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id = \$1 .* FOR UPDATE`).
			WithArgs(productID, 1).
			WillReturnRows(rows)

		item, err := repo.FindByProductIDForUpdate(context.Background(), productID)

		require.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for untracked product", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryItemRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE product_id = \$1 .* FOR UPDATE`).
			WithArgs(productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByProductIDForUpdate(context.Background(), productID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryItemRepositoryFindLowStock(t *testing.T) {
	t.Run("joins products and applies threshold predicate", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "product_id", "quantity_on_hand", "low_stock_threshold"}).
			AddRow(itemID, productID, int64(3), int64(10))

		mock.ExpectQuery(`SELECT .* FROM "inventory_items" JOIN products ON products\.id = inventory_items\.product_id WHERE products\.is_active = \$1 AND inventory_items\.low_stock_threshold > 0 AND inventory_items\.quantity_on_hand <= inventory_items\.low_stock_threshold`).
			WithArgs(true).
			WillReturnRows(rows)

		items, err := repo.FindLowStock(context.Background(), shared.Filter{})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(3), items[0].QuantityOnHand)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryItemRepositoryCount(t *testing.T) {
	t.Run("counts items", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryItemRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory_items"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		count, err := repo.Count(context.Background(), shared.Filter{})

		assert.NoError(t, err)
		assert.Equal(t, int64(12), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
