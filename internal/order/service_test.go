package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abgdnv/bookstore/internal/cart"
	"github.com/abgdnv/bookstore/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "user-123"

func newTestService(t *testing.T) (*Service, *cart.Service, store.KVStore) {
	t.Helper()
	kv := store.NewInMemoryStore()
	carts := cart.NewService(kv)
	return NewService(kv, carts), carts, kv
}

func Test_OrderService_Create(t *testing.T) {
	// given
	service, carts, _ := newTestService(t)
	ctx := context.Background()
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	_, err := carts.Add(ctx, testUser, "1", 2)
	require.NoError(t, err)

	dto := CreateDto{
		Items:           []LineItem{{BookID: "1", Title: "X", Quantity: 2, Price: 2500}},
		Total:           5000,
		ShippingAddress: "221B Baker Street",
	}

	// when
	created, err := service.Create(ctx, testUser, dto)

	// then
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "order-"))
	assert.Equal(t, testUser, created.UserID)
	assert.Equal(t, dto.Items, created.Items)
	assert.Equal(t, int64(5000), created.Total)
	assert.Equal(t, "221B Baker Street", created.ShippingAddress)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, fixed.Format(time.RFC3339), created.CreatedAt)

	// order appended to the user's history
	orders, err := service.ListByUser(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)

	// cart is empty after checkout
	items, err := carts.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func Test_OrderService_Create_GeneratesUniqueIDs(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()
	dto := CreateDto{
		Items:           []LineItem{{BookID: "1", Title: "X", Quantity: 1, Price: 100}},
		Total:           100,
		ShippingAddress: "somewhere",
	}

	seen := make(map[string]bool)
	for range 5 {
		created, err := service.Create(ctx, testUser, dto)
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "order ID %s generated twice", created.ID)
		seen[created.ID] = true
	}

	orders, err := service.ListByUser(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}

func Test_OrderService_Create_ClearsCartRegardlessOfContents(t *testing.T) {
	testCases := []struct {
		name     string
		cartSeed []cart.Item
	}{
		{name: "cart with one entry", cartSeed: []cart.Item{{BookID: "1", Quantity: 2}}},
		{name: "cart with several entries", cartSeed: []cart.Item{{BookID: "1", Quantity: 2}, {BookID: "7", Quantity: 1}}},
		{name: "already empty cart", cartSeed: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service, carts, _ := newTestService(t)
			ctx := context.Background()
			for _, item := range tc.cartSeed {
				_, err := carts.Add(ctx, testUser, item.BookID, item.Quantity)
				require.NoError(t, err)
			}
			// when
			_, err := service.Create(ctx, testUser, CreateDto{
				Items:           []LineItem{{BookID: "1", Title: "X", Quantity: 1, Price: 100}},
				Total:           100,
				ShippingAddress: "somewhere",
			})
			// then
			require.NoError(t, err)
			items, err := carts.Get(ctx, testUser)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func Test_OrderService_ListByUser(t *testing.T) {
	t.Run("Success - empty history for unknown user", func(t *testing.T) {
		service, _, _ := newTestService(t)
		orders, err := service.ListByUser(context.Background(), testUser)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("Success - orders scoped per user", func(t *testing.T) {
		service, _, _ := newTestService(t)
		ctx := context.Background()
		dto := CreateDto{
			Items:           []LineItem{{BookID: "1", Title: "X", Quantity: 1, Price: 100}},
			Total:           100,
			ShippingAddress: "somewhere",
		}
		_, err := service.Create(ctx, "user-a", dto)
		require.NoError(t, err)

		ordersA, err := service.ListByUser(ctx, "user-a")
		require.NoError(t, err)
		assert.Len(t, ordersA, 1)

		ordersB, err := service.ListByUser(ctx, "user-b")
		require.NoError(t, err)
		assert.Empty(t, ordersB)
	})
}
