package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront-insights/pkg/database"
)

var itemColumnNames = []string{
	"order_item_id", "order_id", "product_id", "quantity", "price_at_purchase",
}

func newItemRepo(t *testing.T) (*OrderItemRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return NewOrderItemRepository(mock), mock
}

func TestOrderItemRepository_ListByOrderIDs(t *testing.T) {
	repo, mock := newItemRepo(t)
	defer mock.ExpectationsWereMet()

	ids := []string{"order-001", "order-002"}
	mock.ExpectQuery("FROM order_items").
		WithArgs(ids).
		WillReturnRows(pgxmock.NewRows(itemColumnNames).
			AddRow("item-001", "order-001", "prod-001", 2, "10.00").
			AddRow("item-002", "order-002", "prod-002", 1, "5.50"))

	items, err := repo.ListByOrderIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "10.00", items[0].PriceAtPurchase)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestOrderItemRepository_ListByOrderIDs_EmptySkipsQuery(t *testing.T) {
	repo, mock := newItemRepo(t)
	defer mock.ExpectationsWereMet()

	items, err := repo.ListByOrderIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderItemRepository_ListByProductID(t *testing.T) {
	repo, mock := newItemRepo(t)
	defer mock.ExpectationsWereMet()

	mock.ExpectQuery("WHERE product_id").
		WithArgs("prod-001").
		WillReturnRows(pgxmock.NewRows(itemColumnNames).
			AddRow("item-001", "order-001", "prod-001", 1, "10.00"))

	items, err := repo.ListByProductID(context.Background(), "prod-001")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "order-001", items[0].OrderID)
}

func TestOrderItemRepository_ListSoldBetween(t *testing.T) {
	repo, mock := newItemRepo(t)
	defer mock.ExpectationsWereMet()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// pgxmock scans into the repository's pointer destinations only when the
	// mock value is itself a pointer, so nullable columns use pointer values.
	productID, name, price := "prod-001", "Widget", "12.00"
	cols := append(append([]string{}, itemColumnNames...),
		"p_product_id", "p_name", "p_price", "p_created_at")
	rows := pgxmock.NewRows(cols).
		AddRow("item-001", "order-001", "prod-001", 2, "10.00", &productID, &name, &price, &created).
		// Orphaned line item: product row deleted, LEFT JOIN yields nulls.
		AddRow("item-002", "order-002", "prod-gone", 1, "3.00", nil, nil, nil, nil)

	mock.ExpectQuery("LEFT JOIN products").
		WithArgs(start, end).
		WillReturnRows(rows)

	items, err := repo.ListSoldBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Widget", items[0].Product.Name)
	assert.Equal(t, "12.00", items[0].Product.Price)

	assert.Nil(t, items[1].Product)
}
