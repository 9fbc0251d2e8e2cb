//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"website-rentals/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTimeslots(t *testing.T, body string) request.TimeslotsRequest {
	t.Helper()
	var req request.TimeslotsRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestTimeslotsRequestToQuery(t *testing.T) {
	productID := uuid.New()

	t.Run("omitted flags and quantity default to both sides at qty zero", func(t *testing.T) {
		req := decodeTimeslots(t, `{"product_id":"`+productID.String()+`","start_date":"2021-09-10"}`)

		q, err := req.ToQuery(nil)
		require.NoError(t, err)

		assert.True(t, q.IncludeStart)
		assert.True(t, q.IncludeStop)
		assert.Equal(t, 0.0, q.Quantity)
		assert.Nil(t, q.Stop)
	})

	t.Run("explicit false opts a side out", func(t *testing.T) {
		req := decodeTimeslots(t, `{"product_id":"`+productID.String()+`","start_date":"2021-09-10","include_start":false,"include_stop":true}`)

		q, err := req.ToQuery(nil)
		require.NoError(t, err)

		assert.False(t, q.IncludeStart)
		assert.True(t, q.IncludeStop)
	})

	t.Run("explicit quantity passes through", func(t *testing.T) {
		req := decodeTimeslots(t, `{"product_id":"`+productID.String()+`","start_date":"2021-09-10","qty":3}`)

		q, err := req.ToQuery(nil)
		require.NoError(t, err)

		assert.Equal(t, 3.0, q.Quantity)
	})
}
