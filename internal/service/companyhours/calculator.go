package companyhours

import (
	"sort"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/calendar"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DayKey identifies one user-day in the merge.
type DayKey struct {
	UserID string
	Date   string
}

// AggregateWorkHours sums recorded hours per user-day across all jobs.
// A user-day with no work items simply has no entry.
func AggregateWorkHours(items []timesheet.WorkItem) map[DayKey]float64 {
	totals := make(map[DayKey]float64)
	for _, w := range items {
		key := DayKey{UserID: w.UserID, Date: validator.FormatDate(w.Date)}
		totals[key] += w.Hours
	}
	return totals
}

// ExtraHours computes the overtime portion of a day's worked hours.
// On holidays, non-business days and Saturdays every worked hour
// counts as overtime regardless of the contractual daily hours;
// Saturday is checked explicitly because the calendar treats it as a
// nominal business day while the contract always pays it as overtime.
func ExtraHours(date time.Time, totalHoursWorked, hoursPerDay float64) float64 {
	if calendar.IsHoliday(date) || !calendar.IsBusinessDay(date) || date.Weekday() == time.Saturday {
		return totalHoursWorked
	}
	if totalHoursWorked > hoursPerDay {
		return totalHoursWorked - hoursPerDay
	}
	return 0
}

// MergeDay joins the work-item total and the daily expense of one
// user-day into a single record. Returns nil when neither side exists.
// The stored tripCost is copied as-is, never recomputed.
func MergeDay(u user.User, date time.Time, workTotal *float64, expense *timesheet.DailyExpense) *timesheet.CompanyHoursItem {
	if workTotal == nil && expense == nil {
		return nil
	}

	item := &timesheet.CompanyHoursItem{
		UserID:   u.ID,
		Username: u.Username,
		Name:     u.Name,
		Surname:  u.Surname,
		Date:     validator.FormatDate(date),
		Expenses: decimal.Zero,
		Kms:      decimal.Zero,
	}

	if workTotal != nil {
		item.WorkedHours = *workTotal
	}
	if expense != nil {
		item.TravelHours = expense.TravelHours
		item.HolidayHours = expense.HolidayHours
		item.HolidayApproved = expense.HolidayApproved
		item.SickHours = expense.SickHours
		item.DonationHours = expense.DonationHours
		item.FurloughHours = expense.FurloughHours
		item.Expenses = expense.Expenses
		item.Kms = expense.Kms
		item.Destination = expense.Destination
		item.TripCost = expense.TripCost
	}

	item.ExtraHours = ExtraHours(date, item.WorkedHours, u.HoursPerDay)
	return item
}

// MergeMonth runs the per-day merge over a month's fetched data,
// producing one CompanyHoursItem for every user-day that has either a
// work item or a daily expense. Output order is (username, date),
// independent of input order.
func MergeMonth(users []user.User, workItems []timesheet.WorkItem, expenses []timesheet.DailyExpense) []timesheet.CompanyHoursItem {
	workTotals := AggregateWorkHours(workItems)

	expenseByKey := make(map[DayKey]timesheet.DailyExpense, len(expenses))
	for _, e := range expenses {
		expenseByKey[DayKey{UserID: e.UserID, Date: validator.FormatDate(e.Date)}] = e
	}

	// union of user-days touched by either source
	days := make(map[DayKey]time.Time)
	for _, w := range workItems {
		days[DayKey{UserID: w.UserID, Date: validator.FormatDate(w.Date)}] = w.Date
	}
	for _, e := range expenses {
		days[DayKey{UserID: e.UserID, Date: validator.FormatDate(e.Date)}] = e.Date
	}

	usersByID := make(map[string]user.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	var items []timesheet.CompanyHoursItem
	for key, date := range days {
		u, ok := usersByID[key.UserID]
		if !ok {
			// rows referencing a deleted user are skipped
			continue
		}

		var workTotal *float64
		if total, ok := workTotals[key]; ok {
			workTotal = &total
		}
		var expense *timesheet.DailyExpense
		if e, ok := expenseByKey[key]; ok {
			expense = &e
		}

		if item := MergeDay(u, date, workTotal, expense); item != nil {
			items = append(items, *item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Username != items[j].Username {
			return items[i].Username < items[j].Username
		}
		return items[i].Date < items[j].Date
	})
	return items
}

// RollupMonth folds the merged per-day records into per-user monthly
// totals. Pure summation, independent of input ordering.
func RollupMonth(items []timesheet.CompanyHoursItem) []timesheet.MonthlyTotals {
	byUser := make(map[string]*timesheet.MonthlyTotals)
	var order []string

	for _, item := range items {
		totals, ok := byUser[item.UserID]
		if !ok {
			totals = &timesheet.MonthlyTotals{
				UserID:   item.UserID,
				Expenses: decimal.Zero,
				Kms:      decimal.Zero,
				TripCost: decimal.Zero,
			}
			byUser[item.UserID] = totals
			order = append(order, item.UserID)
		}

		totals.WorkedHours += item.WorkedHours
		totals.ExtraHours += item.ExtraHours
		totals.TravelHours += item.TravelHours
		totals.HolidayHours += item.HolidayHours
		totals.SickHours += item.SickHours
		totals.DonationHours += item.DonationHours
		totals.FurloughHours += item.FurloughHours
		totals.Expenses = totals.Expenses.Add(item.Expenses)
		totals.Kms = totals.Kms.Add(item.Kms)
		if item.TripCost != nil {
			totals.TripCost = totals.TripCost.Add(*item.TripCost)
		}
	}

	sort.Strings(order)
	result := make([]timesheet.MonthlyTotals, 0, len(order))
	for _, userID := range order {
		result = append(result, *byUser[userID])
	}
	return result
}

// RollupWorkItems groups raw work items by (user, job) for the
// company-wide monthly view. DailyExpense never feeds this view.
func RollupWorkItems(items []timesheet.WorkItem, month string) []timesheet.MonthWorkItem {
	type userJob struct {
		userID string
		jobID  string
	}

	totals := make(map[userJob]float64)
	for _, w := range items {
		totals[userJob{userID: w.UserID, jobID: w.JobID}] += w.Hours
	}

	result := make([]timesheet.MonthWorkItem, 0, len(totals))
	for key, hours := range totals {
		result = append(result, timesheet.MonthWorkItem{
			UserID: key.userID,
			JobID:  key.jobID,
			Month:  month,
			Hours:  hours,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].UserID != result[j].UserID {
			return result[i].UserID < result[j].UserID
		}
		return result[i].JobID < result[j].JobID
	})
	return result
}
