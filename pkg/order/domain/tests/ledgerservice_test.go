package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/order/domain/model"
	"storefront/pkg/order/domain/service"
)

func setup(t *testing.T) (service.LedgerService, *mockOrderRepository) {
	t.Helper()
	repo := &mockOrderRepository{}
	return service.NewLedgerService(repo), repo
}

func pendingOrder(owner int64, total string) model.Order {
	return model.Order{
		OwnerID:   owner,
		Items:     []model.Item{{ProductID: 1, ProductName: "Wireless Headphones", UnitPrice: decimal.RequireFromString("99.99"), Quantity: 2}},
		Total:     decimal.RequireFromString(total),
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func TestAppend(t *testing.T) {
	ledger, repo := setup(t)

	first, err := ledger.Append(pendingOrder(7, "199.98"))
	require.NoError(t, err)
	second, err := ledger.Append(pendingOrder(7, "49.99"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.NotEmpty(t, first.Ref)
	assert.NotEqual(t, first.Ref, second.Ref)
	assert.Len(t, repo.orders, 2)
}

func TestListByOwner(t *testing.T) {
	ledger, _ := setup(t)

	_, err := ledger.Append(pendingOrder(7, "199.98"))
	require.NoError(t, err)
	_, err = ledger.Append(pendingOrder(9, "49.99"))
	require.NoError(t, err)
	_, err = ledger.Append(pendingOrder(7, "79.99"))
	require.NoError(t, err)

	orders, err := ledger.ListByOwner(7)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// Ledger order is creation order.
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(3), orders[1].ID)

	all, err := ledger.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

type mockOrderRepository struct {
	seq    int64
	orders []model.Order
}

func (m *mockOrderRepository) NextID() (int64, error) {
	m.seq++
	return m.seq, nil
}

func (m *mockOrderRepository) Append(order *model.Order) error {
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderRepository) FindByOwner(owner int64) ([]model.Order, error) {
	var orders []model.Order
	for _, order := range m.orders {
		if order.OwnerID == owner {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) FindAll() ([]model.Order, error) {
	orders := make([]model.Order, len(m.orders))
	copy(orders, m.orders)
	return orders, nil
}
