package companyhours

import (
	"testing"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtraHoursBusinessWeekday(t *testing.T) {
	monday := day(2024, time.March, 4)

	// 9 worked hours against 8 contractual
	assert.Equal(t, 1.0, ExtraHours(monday, 9, 8))
	// at or below the threshold
	assert.Equal(t, 0.0, ExtraHours(monday, 8, 8))
	assert.Equal(t, 0.0, ExtraHours(monday, 3, 8))
	assert.Equal(t, 0.0, ExtraHours(monday, 0, 8))
}

func TestExtraHoursSaturdayIsFullyOvertime(t *testing.T) {
	saturday := day(2024, time.March, 9)

	// full amount regardless of hoursPerDay
	assert.Equal(t, 9.0, ExtraHours(saturday, 9, 8))
	assert.Equal(t, 2.0, ExtraHours(saturday, 2, 8))
	assert.Equal(t, 2.0, ExtraHours(saturday, 2, 4))
}

func TestExtraHoursNonBusinessDays(t *testing.T) {
	sunday := day(2024, time.March, 10)
	christmas := day(2024, time.December, 25)
	easterMonday := day(2024, time.April, 1)

	for _, d := range []time.Time{sunday, christmas, easterMonday} {
		assert.Equal(t, 7.5, ExtraHours(d, 7.5, 8), "%s", d.Format("2006-01-02"))
	}
}

func TestAggregateWorkHoursSumsAcrossJobs(t *testing.T) {
	items := []timesheet.WorkItem{
		{UserID: "u1", JobID: "J1", Date: day(2024, time.March, 4), Hours: 4},
		{UserID: "u1", JobID: "J2", Date: day(2024, time.March, 4), Hours: 3.5},
		{UserID: "u1", JobID: "J1", Date: day(2024, time.March, 5), Hours: 8},
		{UserID: "u2", JobID: "J1", Date: day(2024, time.March, 4), Hours: 8},
	}

	totals := AggregateWorkHours(items)
	assert.Equal(t, 7.5, totals[DayKey{UserID: "u1", Date: "2024-03-04"}])
	assert.Equal(t, 8.0, totals[DayKey{UserID: "u1", Date: "2024-03-05"}])
	assert.Equal(t, 8.0, totals[DayKey{UserID: "u2", Date: "2024-03-04"}])

	_, ok := totals[DayKey{UserID: "u2", Date: "2024-03-05"}]
	assert.False(t, ok, "no entry for a day without work items")
}

func TestMergeDay(t *testing.T) {
	u := user.User{Draft: user.Draft{Username: "mario", HoursPerDay: 8}, ID: "u1"}
	monday := day(2024, time.March, 4)

	t.Run("both absent", func(t *testing.T) {
		assert.Nil(t, MergeDay(u, monday, nil, nil))
	})

	t.Run("work only", func(t *testing.T) {
		total := 9.0
		item := MergeDay(u, monday, &total, nil)
		require.NotNil(t, item)
		assert.Equal(t, 9.0, item.WorkedHours)
		assert.Equal(t, 1.0, item.ExtraHours)
		assert.True(t, item.Expenses.IsZero())
		assert.Empty(t, item.Destination)
	})

	t.Run("expense only", func(t *testing.T) {
		trip := decimal.NewFromInt(50)
		expense := timesheet.DailyExpense{
			UserID:       "u1",
			Date:         monday,
			Kms:          decimal.NewFromInt(100),
			TripCost:     &trip,
			Destination:  "Bologna",
			HolidayHours: 4,
		}
		item := MergeDay(u, monday, nil, &expense)
		require.NotNil(t, item)
		assert.Equal(t, 0.0, item.WorkedHours)
		assert.Equal(t, 0.0, item.ExtraHours)
		assert.Equal(t, 4.0, item.HolidayHours)
		assert.Equal(t, "Bologna", item.Destination)
		// stored tripCost is copied, not recomputed
		require.NotNil(t, item.TripCost)
		assert.True(t, item.TripCost.Equal(trip))
	})

	t.Run("both present", func(t *testing.T) {
		total := 6.0
		expense := timesheet.DailyExpense{
			UserID:      "u1",
			Date:        monday,
			TravelHours: 2,
			Expenses:    decimal.NewFromInt(30),
		}
		item := MergeDay(u, monday, &total, &expense)
		require.NotNil(t, item)
		assert.Equal(t, 6.0, item.WorkedHours)
		assert.Equal(t, 2.0, item.TravelHours)
		assert.True(t, item.Expenses.Equal(decimal.NewFromInt(30)))
	})
}

func TestMergeMonthIdempotent(t *testing.T) {
	users := []user.User{
		{Draft: user.Draft{Username: "mario", HoursPerDay: 8}, ID: "u1"},
		{Draft: user.Draft{Username: "anna", HoursPerDay: 8}, ID: "u2"},
	}
	workItems := []timesheet.WorkItem{
		{UserID: "u1", JobID: "J1", Date: day(2024, time.March, 4), Hours: 9},
		{UserID: "u2", JobID: "J1", Date: day(2024, time.March, 9), Hours: 5},
	}
	expenses := []timesheet.DailyExpense{
		{UserID: "u1", Date: day(2024, time.March, 5), SickHours: 8},
	}

	first := MergeMonth(users, workItems, expenses)
	second := MergeMonth(users, workItems, expenses)
	assert.Equal(t, first, second, "merging the same inputs twice yields identical output")

	// one record per user-day with either source, an expense-only day
	// still produces a record
	require.Len(t, first, 3)
	assert.Equal(t, "anna", first[0].Username)
	assert.Equal(t, "2024-03-09", first[0].Date)
	assert.Equal(t, 5.0, first[0].ExtraHours, "Saturday hours fully overtime")
	assert.Equal(t, "2024-03-05", first[2].Date)
	assert.Equal(t, 8.0, first[2].SickHours)
}

func TestMergeMonthOrderIndependent(t *testing.T) {
	users := []user.User{
		{Draft: user.Draft{Username: "mario", HoursPerDay: 8}, ID: "u1"},
	}
	a := []timesheet.WorkItem{
		{UserID: "u1", JobID: "J1", Date: day(2024, time.March, 4), Hours: 4},
		{UserID: "u1", JobID: "J2", Date: day(2024, time.March, 4), Hours: 5},
	}
	b := []timesheet.WorkItem{a[1], a[0]}

	assert.Equal(t, MergeMonth(users, a, nil), MergeMonth(users, b, nil))
}

func TestRollupMonthTotalsMatchPerDaySums(t *testing.T) {
	users := []user.User{
		{Draft: user.Draft{Username: "mario", HoursPerDay: 8}, ID: "u1"},
	}
	workItems := []timesheet.WorkItem{
		{UserID: "u1", JobID: "J1", Date: day(2024, time.March, 4), Hours: 9},
		{UserID: "u1", JobID: "J1", Date: day(2024, time.March, 5), Hours: 8},
		{UserID: "u1", JobID: "J2", Date: day(2024, time.March, 9), Hours: 4},
	}
	trip := decimal.NewFromInt(50)
	expenses := []timesheet.DailyExpense{
		{UserID: "u1", Date: day(2024, time.March, 6), HolidayHours: 8, Kms: decimal.NewFromInt(100), TripCost: &trip},
	}

	merged := MergeMonth(users, workItems, expenses)
	totals := RollupMonth(merged)
	require.Len(t, totals, 1)

	var workedSum, extraSum float64
	for _, item := range merged {
		workedSum += item.WorkedHours
		extraSum += item.ExtraHours
	}

	assert.Equal(t, workedSum, totals[0].WorkedHours)
	assert.Equal(t, extraSum, totals[0].ExtraHours)
	// Monday 9h over 8 -> 1, Tuesday 8h -> 0, Saturday 4h -> 4
	assert.Equal(t, 5.0, totals[0].ExtraHours)
	assert.Equal(t, 8.0, totals[0].HolidayHours)
	assert.True(t, totals[0].Kms.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals[0].TripCost.Equal(trip))
}

func TestRollupWorkItemsIgnoresExpenses(t *testing.T) {
	workItems := []timesheet.WorkItem{
		{UserID: "u1", JobID: "J1", Date: day(2024, time.March, 4), Hours: 4},
		{UserID: "u1", JobID: "J1", Date: day(2024, time.March, 5), Hours: 5},
		{UserID: "u1", JobID: "J2", Date: day(2024, time.March, 4), Hours: 2},
		{UserID: "u2", JobID: "J1", Date: day(2024, time.March, 4), Hours: 8},
	}

	result := RollupWorkItems(workItems, "2024-03")
	require.Len(t, result, 3)
	assert.Equal(t, timesheet.MonthWorkItem{UserID: "u1", JobID: "J1", Month: "2024-03", Hours: 9}, result[0])
	assert.Equal(t, timesheet.MonthWorkItem{UserID: "u1", JobID: "J2", Month: "2024-03", Hours: 2}, result[1])
	assert.Equal(t, timesheet.MonthWorkItem{UserID: "u2", JobID: "J1", Month: "2024-03", Hours: 8}, result[2])
}
