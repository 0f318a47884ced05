package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func expenseWith(mutate func(*DailyExpense)) DailyExpense {
	e := DailyExpense{
		UserID: "u1",
		Date:   time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
	}
	if mutate != nil {
		mutate(&e)
	}
	return e
}

func TestIsEmpty(t *testing.T) {
	emptyExpense := expenseWith(nil)
	assert.True(t, emptyExpense.IsEmpty())

	zeroTrip := decimal.Zero
	e := expenseWith(func(e *DailyExpense) { e.TripCost = &zeroTrip })
	assert.True(t, e.IsEmpty(), "zero tripCost still counts as empty")

	nonEmpty := []func(*DailyExpense){
		func(e *DailyExpense) { e.Expenses = decimal.NewFromInt(10) },
		func(e *DailyExpense) { e.Destination = "Milano" },
		func(e *DailyExpense) { e.Kms = decimal.NewFromInt(100) },
		func(e *DailyExpense) { e.TravelHours = 2 },
		func(e *DailyExpense) { e.HolidayHours = 8 },
		func(e *DailyExpense) { e.SickHours = 8 },
		func(e *DailyExpense) { e.DonationHours = 4 },
		func(e *DailyExpense) { e.FurloughHours = 8 },
	}
	for i, mutate := range nonEmpty {
		mutated := expenseWith(mutate)
		assert.False(t, mutated.IsEmpty(), "case %d", i)
	}
}

func TestReconcile(t *testing.T) {
	empty := expenseWith(nil)
	filled := expenseWith(func(e *DailyExpense) { e.SickHours = 8 })

	assert.Equal(t, ActionNoOp, Reconcile(nil, empty))
	assert.Equal(t, ActionInsert, Reconcile(nil, filled))
	assert.Equal(t, ActionUpdate, Reconcile(&filled, filled))

	// all fields back to zero deletes the stored row instead of
	// updating it to zeros
	assert.Equal(t, ActionDelete, Reconcile(&filled, empty))
}
