//go:build unit

package order_test

import (
	"testing"
	"time"

	"website-rentals/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID uuid.UUID, qty float64, rental bool) order.Line {
	l := order.Line{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  qty,
		IsRental:  rental,
	}
	if rental {
		l.PickupDate = time.Date(2021, 9, 10, 8, 0, 0, 0, time.UTC)
		l.ReturnDate = time.Date(2021, 9, 12, 18, 0, 0, 0, time.UTC)
	}
	return l
}

func TestReconstruct(t *testing.T) {
	t.Run("rejects an empty order", func(t *testing.T) {
		_, err := order.Reconstruct(uuid.New(), uuid.New(), order.StatusDraft, nil)
		assert.ErrorIs(t, err, order.ErrNoLines)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		_, err := order.Reconstruct(uuid.New(), uuid.New(), order.StatusDraft,
			[]order.Line{line(uuid.New(), 0, false)})
		assert.ErrorIs(t, err, order.ErrNonPositiveQty)
	})

	t.Run("rejects rental lines without dates", func(t *testing.T) {
		l := line(uuid.New(), 1, true)
		l.ReturnDate = time.Time{}
		_, err := order.Reconstruct(uuid.New(), uuid.New(), order.StatusDraft, []order.Line{l})
		assert.ErrorIs(t, err, order.ErrMissingRentalDates)
	})
}

func TestQuantityOrdered(t *testing.T) {
	productID := uuid.New()
	o, err := order.Reconstruct(uuid.New(), uuid.New(), order.StatusDraft, []order.Line{
		line(productID, 1, true),
		line(productID, 2, true),
		line(productID, 5, false),
		line(uuid.New(), 4, true),
	})
	require.NoError(t, err)

	// Only rental lines of the same product count toward the total.
	assert.Equal(t, 3.0, o.QuantityOrdered(productID))
	assert.Len(t, o.RentalLines(), 3)
}

func TestConfirm(t *testing.T) {
	t.Run("draft orders confirm", func(t *testing.T) {
		o, err := order.Reconstruct(uuid.New(), uuid.New(), order.StatusDraft,
			[]order.Line{line(uuid.New(), 1, true)})
		require.NoError(t, err)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("confirmed orders refuse a second confirmation", func(t *testing.T) {
		o, err := order.Reconstruct(uuid.New(), uuid.New(), order.StatusConfirmed,
			[]order.Line{line(uuid.New(), 1, true)})
		require.NoError(t, err)

		assert.ErrorIs(t, o.Confirm(), order.ErrNotDraft)
	})
}
