package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripCost(t *testing.T) {
	rate := decimal.RequireFromString("0.5")

	cost := TripCost(decimal.NewFromInt(100), &rate)
	require.NotNil(t, cost)
	assert.True(t, decimal.NewFromInt(50).Equal(*cost))

	assert.Nil(t, TripCost(decimal.Zero, &rate), "no kilometers, nothing to reimburse")
	assert.Nil(t, TripCost(decimal.NewFromInt(100), nil), "no rate configured for the user")
}

func TestTripCostUnaffectedByLaterRateChange(t *testing.T) {
	rate := decimal.RequireFromString("0.5")
	cost := TripCost(decimal.NewFromInt(100), &rate)
	require.NotNil(t, cost)

	rate = decimal.RequireFromString("0.9")
	assert.True(t, decimal.NewFromInt(50).Equal(*cost))
}
