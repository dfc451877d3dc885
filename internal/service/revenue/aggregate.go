package revenue

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/shopspring/decimal"
)

// ResolveWindow turns a report query into calendar-day bounds. Days are
// counted in loc; the returned times are midnights in UTC so they compare
// directly with DATE columns.
func ResolveWindow(q revenue.ReportQuery, now time.Time, loc *time.Location) revenue.Window {
	local := now.In(loc)
	today := day(local.Year(), local.Month(), local.Day())

	year := q.Year
	if year == 0 {
		year = today.Year()
	}
	month := time.Month(q.Month)
	if month == 0 {
		month = today.Month()
	}

	anchor := today
	if q.Date != "" {
		if d, err := time.Parse("2006-01-02", q.Date); err == nil {
			anchor = day(d.Year(), d.Month(), d.Day())
		}
	}

	switch q.Period {
	case revenue.PeriodDaily:
		return revenue.Window{From: anchor, To: anchor.AddDate(0, 0, 1)}
	case revenue.PeriodWeekly:
		start := WeekStart(anchor)
		return revenue.Window{From: start, To: start.AddDate(0, 0, 7)}
	case revenue.PeriodYearly:
		start := day(year, time.January, 1)
		return revenue.Window{From: start, To: start.AddDate(1, 0, 0)}
	default:
		start := day(year, month, 1)
		return revenue.Window{From: start, To: start.AddDate(0, 1, 0)}
	}
}

// WeekStart returns the Saturday on or before d.
func WeekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) - int(time.Saturday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// MonthWindow returns the window of a "YYYY-MM" month, or of the current
// month in loc when month is empty.
func MonthWindow(month string, now time.Time, loc *time.Location) (revenue.Window, error) {
	var q revenue.ReportQuery
	q.Period = revenue.PeriodMonthly
	if month != "" {
		m, err := time.Parse("2006-01", month)
		if err != nil {
			return revenue.Window{}, err
		}
		q.Year, q.Month = m.Year(), int(m.Month())
	}
	return ResolveWindow(q, now, loc), nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Aggregate sums the stored EGP amount per employee. Rows are ordered by
// total descending, then by name and id so equal totals keep a stable order.
func Aggregate(entries []revenue.Entry) []revenue.EmployeeTotal {
	index := make(map[string]int)
	var totals []revenue.EmployeeTotal

	for _, e := range entries {
		i, ok := index[e.EmployeeID]
		if !ok {
			i = len(totals)
			index[e.EmployeeID] = i
			totals = append(totals, revenue.EmployeeTotal{
				EmployeeID:   e.EmployeeID,
				EmployeeName: e.EmployeeName,
				Total:        decimal.Zero,
			})
		}
		totals[i].Total = totals[i].Total.Add(e.EGPAmount)
	}

	sort.SliceStable(totals, func(a, b int) bool {
		if c := totals[a].Total.Cmp(totals[b].Total); c != 0 {
			return c > 0
		}
		if totals[a].EmployeeName != totals[b].EmployeeName {
			return totals[a].EmployeeName < totals[b].EmployeeName
		}
		return totals[a].EmployeeID < totals[b].EmployeeID
	})

	return totals
}

// Snapshot converts amount into EGP at rate, rounded to the cent the way
// egp_amount is stored.
func Snapshot(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(revenue.AmountPlaces)
}

// TotalPages is ceil(total/limit); zero when there is nothing to page.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
