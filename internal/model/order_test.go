package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_Defaults(t *testing.T) {
	customer := CustomerDetails{FullName: "Jane Doe", Phone: "07123456789"}
	order := NewOrder(customer, []LineItem{
		{MenuItemID: "A"},
		{MenuItemID: "B", Quantity: 3, Status: StatusComplete},
	})

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, StatusPending, order.Items[0].Status)
	assert.Equal(t, 3, order.Items[1].Quantity)
	assert.Equal(t, StatusComplete, order.Items[1].Status)
}

func TestNewOrder_GeneratedIDsAreUnique(t *testing.T) {
	customer := CustomerDetails{FullName: "Jane Doe", Phone: "07123456789"}

	// Repeat customers with the same phone must not collide.
	first := NewOrder(customer, nil)
	second := NewOrder(customer, nil)
	assert.NotEqual(t, first.OrderID, second.OrderID)
}

func TestCustomerDetails_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer CustomerDetails
		wantErr  error
	}{
		{
			name:     "valid",
			customer: CustomerDetails{FullName: "Jane Doe", Phone: "07123456789"},
			wantErr:  nil,
		},
		{
			name:     "name too short",
			customer: CustomerDetails{FullName: "Jan", Phone: "07123456789"},
			wantErr:  ErrInvalidCustomerName,
		},
		{
			name:     "phone too short",
			customer: CustomerDetails{FullName: "Jane Doe", Phone: "071234"},
			wantErr:  ErrInvalidCustomerPhone,
		},
		{
			name:     "phone too long",
			customer: CustomerDetails{FullName: "Jane Doe", Phone: "071234567890123"},
			wantErr:  ErrInvalidCustomerPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOrder_RecomputeTotal(t *testing.T) {
	customer := CustomerDetails{FullName: "Jane Doe", Phone: "07123456789"}

	t.Run("sums quantity times unit price", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "A", Quantity: 2},
			{MenuItemID: "B", Quantity: 1},
		})

		err := order.RecomputeTotal(map[string]float64{"A": 100, "B": 50})
		require.NoError(t, err)
		assert.Equal(t, 250.0, order.TotalPrice)
		assert.Equal(t, StatusPending, order.Status)
	})

	t.Run("matches by identifier not position", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "B", Quantity: 1},
			{MenuItemID: "A", Quantity: 2},
		})

		// Same prices, line items in the opposite order.
		err := order.RecomputeTotal(map[string]float64{"A": 100, "B": 50})
		require.NoError(t, err)
		assert.Equal(t, 250.0, order.TotalPrice)
	})

	t.Run("empty items price to zero", func(t *testing.T) {
		order := NewOrder(customer, nil)

		err := order.RecomputeTotal(map[string]float64{})
		require.NoError(t, err)
		assert.Equal(t, 0.0, order.TotalPrice)
	})

	t.Run("unresolvable reference fails the whole recomputation", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "A", Quantity: 2},
			{MenuItemID: "GONE", Quantity: 1},
		})

		err := order.RecomputeTotal(map[string]float64{"A": 100})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMenuItemNotFound))
		assert.Equal(t, 0.0, order.TotalPrice)
	})
}

func TestOrder_SetLineItemStatus(t *testing.T) {
	customer := CustomerDetails{FullName: "Jane Doe", Phone: "07123456789"}

	t.Run("unknown item leaves the order untouched", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "A", Quantity: 2},
			{MenuItemID: "B", Quantity: 1},
		})
		require.NoError(t, order.RecomputeTotal(map[string]float64{"A": 100, "B": 50}))

		ok := order.SetLineItemStatus("MISSING", StatusComplete)

		assert.False(t, ok)
		assert.Equal(t, 250.0, order.TotalPrice)
		assert.Equal(t, StatusPending, order.Status)
		assert.Equal(t, StatusPending, order.Items[0].Status)
		assert.Equal(t, StatusPending, order.Items[1].Status)
	})

	t.Run("order completes only after the last item", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "A", Quantity: 2},
			{MenuItemID: "B", Quantity: 1},
			{MenuItemID: "C", Quantity: 1},
		})

		require.True(t, order.SetLineItemStatus("A", StatusComplete))
		assert.Equal(t, StatusPending, order.Status)

		require.True(t, order.SetLineItemStatus("B", StatusComplete))
		assert.Equal(t, StatusPending, order.Status)

		require.True(t, order.SetLineItemStatus("C", StatusComplete))
		assert.Equal(t, StatusComplete, order.Status)
	})

	t.Run("one pending item keeps the order pending", func(t *testing.T) {
		// A scan that stops early at a non-COMPLETE item must not still
		// conclude the order is COMPLETE.
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "A"},
			{MenuItemID: "B"},
		})

		require.True(t, order.SetLineItemStatus("B", StatusComplete))
		assert.Equal(t, StatusPending, order.Status)
	})

	t.Run("idempotent", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "A"},
			{MenuItemID: "B"},
		})

		require.True(t, order.SetLineItemStatus("A", StatusComplete))
		once := *order

		require.True(t, order.SetLineItemStatus("A", StatusComplete))
		assert.Equal(t, once.Status, order.Status)
		assert.Equal(t, once.Items[0].Status, order.Items[0].Status)
		assert.Equal(t, once.Items[1].Status, order.Items[1].Status)
	})

	t.Run("all rejected items reject the order", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "A"},
			{MenuItemID: "B"},
		})

		require.True(t, order.SetLineItemStatus("A", StatusRejected))
		assert.Equal(t, StatusPending, order.Status)

		require.True(t, order.SetLineItemStatus("B", StatusRejected))
		assert.Equal(t, StatusRejected, order.Status)
	})

	t.Run("mixed terminal statuses stay pending", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{
			{MenuItemID: "A"},
			{MenuItemID: "B"},
		})

		require.True(t, order.SetLineItemStatus("A", StatusComplete))
		require.True(t, order.SetLineItemStatus("B", StatusRejected))
		assert.Equal(t, StatusPending, order.Status)
	})

	t.Run("reopening a completed item reopens the order", func(t *testing.T) {
		order := NewOrder(customer, []LineItem{{MenuItemID: "A"}})

		require.True(t, order.SetLineItemStatus("A", StatusComplete))
		assert.Equal(t, StatusComplete, order.Status)

		require.True(t, order.SetLineItemStatus("A", StatusPending))
		assert.Equal(t, StatusPending, order.Status)
	})

	t.Run("empty order never vacuously completes", func(t *testing.T) {
		// All-COMPLETE over zero items is vacuously true; the order still
		// stays PENDING by policy.
		order := NewOrder(customer, nil)
		order.recomputeStatus()
		assert.Equal(t, StatusPending, order.Status)
	})
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusComplete.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("SHIPPED").Valid())
	assert.False(t, Status("").Valid())
}
