package revenue

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveWindow(t *testing.T) {
	now := time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC) // Tuesday

	tests := []struct {
		name     string
		query    revenue.ReportQuery
		wantFrom string
		wantTo   string
	}{
		{"daily defaults to today", revenue.ReportQuery{Period: revenue.PeriodDaily}, "2024-05-14", "2024-05-15"},
		{"daily explicit date", revenue.ReportQuery{Period: revenue.PeriodDaily, Date: "2024-02-29"}, "2024-02-29", "2024-03-01"},
		{"weekly starts on saturday", revenue.ReportQuery{Period: revenue.PeriodWeekly}, "2024-05-11", "2024-05-18"},
		{"weekly anchored on a saturday", revenue.ReportQuery{Period: revenue.PeriodWeekly, Date: "2024-05-18"}, "2024-05-18", "2024-05-25"},
		{"weekly anchored on a friday", revenue.ReportQuery{Period: revenue.PeriodWeekly, Date: "2024-05-17"}, "2024-05-11", "2024-05-18"},
		{"monthly defaults to current", revenue.ReportQuery{Period: revenue.PeriodMonthly}, "2024-05-01", "2024-06-01"},
		{"monthly explicit december", revenue.ReportQuery{Period: revenue.PeriodMonthly, Year: 2023, Month: 12}, "2023-12-01", "2024-01-01"},
		{"yearly", revenue.ReportQuery{Period: revenue.PeriodYearly, Year: 2022}, "2022-01-01", "2023-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveWindow(tt.query, now, time.UTC)
			assert.Equal(t, tt.wantFrom, w.From.Format("2006-01-02"))
			assert.Equal(t, tt.wantTo, w.To.Format("2006-01-02"))
		})
	}
}

func TestResolveWindow_UsesBusinessTimezone(t *testing.T) {
	cairo := time.FixedZone("EEST", 3*60*60)
	now := time.Date(2024, 5, 14, 22, 30, 0, 0, time.UTC) // already the 15th in Cairo

	w := ResolveWindow(revenue.ReportQuery{Period: revenue.PeriodDaily}, now, cairo)

	assert.Equal(t, "2024-05-15", w.From.Format("2006-01-02"))
}

func TestWeekStart(t *testing.T) {
	for _, d := range []string{"2024-05-11", "2024-05-12", "2024-05-15", "2024-05-17"} {
		assert.Equal(t, "2024-05-11", WeekStart(date(d)).Format("2006-01-02"), d)
	}
}

func TestMonthWindow(t *testing.T) {
	w, err := MonthWindow("2024-02", time.Now(), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", w.From.Format("2006-01-02"))
	assert.Equal(t, "2024-03-01", w.To.Format("2006-01-02"))

	_, err = MonthWindow("02-2024", time.Now(), time.UTC)
	assert.Error(t, err)
}

func TestAggregate(t *testing.T) {
	entries := []revenue.Entry{
		{EmployeeID: "a", EmployeeName: "Alice", EGPAmount: decimal.RequireFromString("10.10")},
		{EmployeeID: "b", EmployeeName: "Bob", EGPAmount: decimal.RequireFromString("40")},
		{EmployeeID: "a", EmployeeName: "Alice", EGPAmount: decimal.RequireFromString("29.90")},
		{EmployeeID: "c", EmployeeName: "Carol", EGPAmount: decimal.RequireFromString("5")},
	}

	got := Aggregate(entries)

	require.Len(t, got, 3)
	// Alice and Bob tie at 40, broken by name.
	assert.Equal(t, "Alice", got[0].EmployeeName)
	assert.True(t, got[0].Total.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "Bob", got[1].EmployeeName)
	assert.Equal(t, "Carol", got[2].EmployeeName)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 7, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}
