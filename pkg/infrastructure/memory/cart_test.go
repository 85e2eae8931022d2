package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/cart/domain/model"
)

func TestCartStoreAbsentCartStaysAbsent(t *testing.T) {
	s := NewCartStore()

	lines, err := s.Update(7, func(lines []model.Line, exists bool) ([]model.Line, error) {
		assert.False(t, exists)
		return lines, nil
	})
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = s.Update(7, func(_ []model.Line, exists bool) ([]model.Line, error) {
		assert.False(t, exists)
		return nil, nil
	})
	require.NoError(t, err)
}

func TestCartStoreClearedCartStillExists(t *testing.T) {
	s := NewCartStore()

	_, err := s.Update(7, func(lines []model.Line, _ bool) ([]model.Line, error) {
		return append(lines, model.Line{ProductID: 1, Quantity: 2}), nil
	})
	require.NoError(t, err)

	_, err = s.Update(7, func(_ []model.Line, _ bool) ([]model.Line, error) {
		return nil, nil
	})
	require.NoError(t, err)

	_, err = s.Update(7, func(lines []model.Line, exists bool) ([]model.Line, error) {
		assert.True(t, exists)
		assert.Empty(t, lines)
		return lines, nil
	})
	require.NoError(t, err)
}

func TestCartStoreFailedUpdateChangesNothing(t *testing.T) {
	s := NewCartStore()

	_, err := s.Update(7, func(lines []model.Line, _ bool) ([]model.Line, error) {
		return append(lines, model.Line{ProductID: 1, Quantity: 2}), nil
	})
	require.NoError(t, err)

	_, err = s.Update(7, func(lines []model.Line, _ bool) ([]model.Line, error) {
		lines[0].Quantity = 99
		return lines, model.ErrLineNotFound
	})
	assert.ErrorIs(t, err, model.ErrLineNotFound)

	lines, err := s.Lines(7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartStoreCopiesOut(t *testing.T) {
	s := NewCartStore()

	_, err := s.Update(7, func(lines []model.Line, _ bool) ([]model.Line, error) {
		return append(lines, model.Line{ProductID: 1, Quantity: 2}), nil
	})
	require.NoError(t, err)

	lines, err := s.Lines(7)
	require.NoError(t, err)
	lines[0].Quantity = 99

	again, err := s.Lines(7)
	require.NoError(t, err)
	assert.Equal(t, 2, again[0].Quantity)
}

// All updates for one owner are serialized, so concurrent increments cannot
// lose each other.
func TestCartStoreUpdateSerializedPerOwner(t *testing.T) {
	s := NewCartStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(7, func(lines []model.Line, _ bool) ([]model.Line, error) {
				for i := range lines {
					if lines[i].ProductID == 1 {
						lines[i].Quantity++
						return lines, nil
					}
				}
				return append(lines, model.Line{ProductID: 1, Quantity: 1}), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	lines, err := s.Lines(7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 50, lines[0].Quantity)
}
