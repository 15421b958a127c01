package main

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/guest-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, cb func(ctx context.Context) error) error {
	return cb(ctx)
}

type memorySaver struct {
	mu     sync.Mutex
	orders map[string]entities.Order
	items  map[string][]entities.OrderItem
	fail   error
}

func newMemorySaver() *memorySaver {
	return &memorySaver{
		orders: make(map[string]entities.Order),
		items:  make(map[string][]entities.OrderItem),
	}
}

func (s *memorySaver) SaveOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.orders[o.ID] = o
	return nil
}

func (s *memorySaver) SaveItems(_ context.Context, orderID string, items []entities.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[orderID] = items
	return nil
}

func TestGenerate(t *testing.T) {
	saver := newMemorySaver()

	require.NoError(t, generate(context.Background(), passthroughTx{}, saver, 5, 2, 3))

	require.Len(t, saver.orders, 7)

	hex64 := regexp.MustCompile(`^[0-9a-f]{64}$`)
	guests, owned := 0, 0
	for id, o := range saver.orders {
		assert.True(t, entities.ValidOrderID(id))
		assert.Regexp(t, hex64, o.AccessToken)
		assert.NotEmpty(t, saver.items[id])
		if o.IsGuest() {
			guests++
		} else {
			owned++
		}
	}
	assert.Equal(t, 5, guests)
	assert.Equal(t, 2, owned)
}

func TestGenerate_StopsOnSaveError(t *testing.T) {
	saver := newMemorySaver()
	saver.fail = errors.New("insert failed")

	err := generate(context.Background(), passthroughTx{}, saver, 3, 0, 1)
	assert.ErrorIs(t, err, saver.fail)
}

func TestRandomOrder_TotalsMatchItems(t *testing.T) {
	o, err := randomOrder(nil)
	require.NoError(t, err)

	var sum float64
	for _, it := range o.Items {
		assert.Equal(t, o.ID, it.OrderID)
		assert.InDelta(t, it.Price*float64(it.Quantity), it.Total, 1e-9)
		sum += it.Total
	}
	assert.InDelta(t, sum, o.Subtotal, 1e-9)
	assert.Equal(t, o.Subtotal, o.Total)
}
