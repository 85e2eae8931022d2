package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/cart/domain/model"
	"storefront/pkg/cart/domain/service"
	catalogmodel "storefront/pkg/catalog/domain/model"
	"storefront/pkg/common/domain"
)

const owner = int64(7)

func setup(t *testing.T) (service.CartService, *mockCartRepository, *mockProductSource, *mockEventDispatcher) {
	t.Helper()
	repo := &mockCartRepository{carts: make(map[int64][]model.Line)}
	products := &mockProductSource{products: map[int64]catalogmodel.Product{
		1: {ID: 1, Name: "Wireless Headphones", Price: decimal.NewFromFloat(99.99), Category: "Electronics", Stock: 5},
		2: {ID: 2, Name: "Smart Watch", Price: decimal.NewFromFloat(199.99), Category: "Electronics", Stock: 30},
	}}
	dispatcher := &mockEventDispatcher{}
	return service.NewCartService(repo, products, dispatcher), repo, products, dispatcher
}

func TestAddItem(t *testing.T) {
	t.Run("Success creates a line with a snapshot", func(t *testing.T) {
		carts, _, _, dispatcher := setup(t)

		lines, err := carts.AddItem(owner, 1, 2)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1), lines[0].ProductID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "Wireless Headphones", lines[0].Snapshot.Name)
		assert.True(t, decimal.NewFromFloat(99.99).Equal(lines[0].Snapshot.Price))

		require.Len(t, dispatcher.events, 1)
		added, ok := dispatcher.events[0].(model.ItemAdded)
		require.True(t, ok)
		assert.Equal(t, owner, added.Owner)
	})

	t.Run("Repeated adds sum quantities", func(t *testing.T) {
		carts, _, _, _ := setup(t)

		_, err := carts.AddItem(owner, 1, 2)
		require.NoError(t, err)
		lines, err := carts.AddItem(owner, 1, 3)
		require.NoError(t, err)

		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)

		// Same total as a single add of 5.
		single, _, _, _ := setup(t)
		lines, err = single.AddItem(owner, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("Snapshot is frozen at first add", func(t *testing.T) {
		carts, _, products, _ := setup(t)

		_, err := carts.AddItem(owner, 1, 1)
		require.NoError(t, err)

		// An admin edit between adds must not leak into the existing line.
		p := products.products[1]
		p.Price = decimal.NewFromFloat(149.99)
		p.Name = "Wireless Headphones Pro"
		products.products[1] = p

		lines, err := carts.AddItem(owner, 1, 1)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "Wireless Headphones", lines[0].Snapshot.Name)
		assert.True(t, decimal.NewFromFloat(99.99).Equal(lines[0].Snapshot.Price))
	})

	t.Run("Line survives product deletion", func(t *testing.T) {
		carts, _, products, _ := setup(t)

		_, err := carts.AddItem(owner, 1, 1)
		require.NoError(t, err)
		delete(products.products, 1)

		lines, err := carts.Get(owner)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "Wireless Headphones", lines[0].Snapshot.Name)
	})

	t.Run("Fail on insufficient stock", func(t *testing.T) {
		carts, repo, _, _ := setup(t)

		_, err := carts.AddItem(owner, 1, 10)

		assert.ErrorIs(t, err, catalogmodel.ErrInsufficientStock)
		assert.Empty(t, repo.carts[owner])
	})

	t.Run("Fail on unknown product", func(t *testing.T) {
		carts, _, _, _ := setup(t)

		_, err := carts.AddItem(owner, 42, 1)
		assert.ErrorIs(t, err, catalogmodel.ErrProductNotFound)
	})

	t.Run("Fail on non-positive quantity", func(t *testing.T) {
		carts, _, _, _ := setup(t)

		_, err := carts.AddItem(owner, 1, 0)
		assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("Replaces the quantity outright", func(t *testing.T) {
		carts, _, _, _ := setup(t)
		_, err := carts.AddItem(owner, 1, 2)
		require.NoError(t, err)

		lines, err := carts.SetQuantity(owner, 1, 4)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 4, lines[0].Quantity)
	})

	t.Run("Zero removes the line", func(t *testing.T) {
		carts, _, _, dispatcher := setup(t)
		_, err := carts.AddItem(owner, 1, 2)
		require.NoError(t, err)
		dispatcher.Reset()

		lines, err := carts.SetQuantity(owner, 1, 0)

		require.NoError(t, err)
		assert.Empty(t, lines)

		got, err := carts.Get(owner)
		require.NoError(t, err)
		assert.Empty(t, got)

		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(model.ItemRemoved)
		assert.True(t, ok)
	})

	t.Run("Negative removes the line too", func(t *testing.T) {
		carts, _, _, _ := setup(t)
		_, err := carts.AddItem(owner, 1, 2)
		require.NoError(t, err)

		lines, err := carts.SetQuantity(owner, 1, -3)

		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("Fail when the cart was never created", func(t *testing.T) {
		carts, _, _, _ := setup(t)

		_, err := carts.SetQuantity(owner, 1, 2)
		assert.ErrorIs(t, err, model.ErrCartNotFound)
	})

	t.Run("Fail when the line is absent", func(t *testing.T) {
		carts, _, _, _ := setup(t)
		_, err := carts.AddItem(owner, 1, 2)
		require.NoError(t, err)

		_, err = carts.SetQuantity(owner, 2, 2)
		assert.ErrorIs(t, err, model.ErrLineNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Removes the line and keeps the rest", func(t *testing.T) {
		carts, _, _, _ := setup(t)
		_, err := carts.AddItem(owner, 1, 2)
		require.NoError(t, err)
		_, err = carts.AddItem(owner, 2, 1)
		require.NoError(t, err)

		lines, err := carts.RemoveItem(owner, 1)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, int64(2), lines[0].ProductID)
	})

	t.Run("Missing line is not an error", func(t *testing.T) {
		carts, _, _, _ := setup(t)
		_, err := carts.AddItem(owner, 1, 2)
		require.NoError(t, err)

		lines, err := carts.RemoveItem(owner, 42)

		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})

	t.Run("Absent cart is not an error", func(t *testing.T) {
		carts, repo, _, _ := setup(t)

		lines, err := carts.RemoveItem(owner, 1)

		require.NoError(t, err)
		assert.Empty(t, lines)
		_, exists := repo.carts[owner]
		assert.False(t, exists)
	})
}

type mockCartRepository struct {
	carts map[int64][]model.Line
}

func (m *mockCartRepository) Lines(owner int64) ([]model.Line, error) {
	stored := m.carts[owner]
	lines := make([]model.Line, len(stored))
	copy(lines, stored)
	return lines, nil
}

func (m *mockCartRepository) Update(owner int64, fn model.UpdateFunc) ([]model.Line, error) {
	stored, exists := m.carts[owner]
	work := make([]model.Line, len(stored))
	copy(work, stored)

	result, err := fn(work, exists)
	if err != nil {
		return nil, err
	}
	if !exists && len(result) == 0 {
		return nil, nil
	}
	if result == nil {
		result = []model.Line{}
	}
	m.carts[owner] = result

	out := make([]model.Line, len(result))
	copy(out, result)
	return out, nil
}

type mockProductSource struct {
	products map[int64]catalogmodel.Product
}

func (m *mockProductSource) Get(id int64) (catalogmodel.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return catalogmodel.Product{}, catalogmodel.ErrProductNotFound
	}
	return p, nil
}

type mockEventDispatcher struct {
	events []domain.Event
}

func (m *mockEventDispatcher) Dispatch(event domain.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}
