package revenue

import (
	"context"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/activity"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memoryRevenue struct {
	revenue.RevenueRepository
	entries    map[string]revenue.Entry
	lastOffset int
}

func (m *memoryRevenue) Create(_ context.Context, e revenue.Entry) (revenue.Entry, error) {
	e.ID = uuid.Must(uuid.NewV7()).String()
	m.entries[e.ID] = e
	return e, nil
}

func (m *memoryRevenue) GetByID(_ context.Context, id string) (revenue.Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return revenue.Entry{}, revenue.ErrEntryNotFound
	}
	return e, nil
}

func (m *memoryRevenue) Update(_ context.Context, e revenue.Entry) (revenue.Entry, error) {
	if _, ok := m.entries[e.ID]; !ok {
		return revenue.Entry{}, revenue.ErrEntryNotFound
	}
	m.entries[e.ID] = e
	return e, nil
}

func (m *memoryRevenue) Delete(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return revenue.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *memoryRevenue) ListInWindow(_ context.Context, from, to time.Time) ([]revenue.Entry, error) {
	w := revenue.Window{From: from, To: to}
	var out []revenue.Entry
	for _, e := range m.entries {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryRevenue) ListByEmployee(_ context.Context, employeeID string, limit, offset int) ([]revenue.Entry, int64, error) {
	m.lastOffset = offset
	var all []revenue.Entry
	for _, e := range m.entries {
		if e.EmployeeID == employeeID {
			all = append(all, e)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type memoryCurrencies struct {
	currency.CurrencyRepository
	byCode map[string]currency.Currency
}

func (m *memoryCurrencies) GetByCode(_ context.Context, code string) (currency.Currency, error) {
	c, ok := m.byCode[code]
	if !ok {
		return currency.Currency{}, currency.ErrCurrencyNotFound
	}
	return c, nil
}

type memoryEmployees struct {
	employee.EmployeeRepository
	byID map[string]employee.Employee
}

func (m *memoryEmployees) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type memoryActivities struct {
	activity.ActivityRepository
	byID map[string]activity.Activity
}

func (m *memoryActivities) GetByID(_ context.Context, id string) (activity.Activity, error) {
	a, ok := m.byID[id]
	if !ok {
		return activity.Activity{}, activity.ErrActivityNotFound
	}
	return a, nil
}

type fixture struct {
	svc        *RevenueServiceImpl
	entries    *memoryRevenue
	currencies *memoryCurrencies
	alice      string
	bob        string
	tour       string
}

func newFixture(t *testing.T, now time.Time) fixture {
	t.Helper()
	newID := func() string { return uuid.Must(uuid.NewV7()).String() }

	f := fixture{alice: newID(), bob: newID(), tour: newID()}
	f.entries = &memoryRevenue{entries: map[string]revenue.Entry{}}
	f.currencies = &memoryCurrencies{byCode: map[string]currency.Currency{
		"EGP": {ID: newID(), Code: "EGP", Name: "Egyptian Pound", ExchangeRate: decimal.NewFromInt(1)},
		"USD": {ID: newID(), Code: "USD", Name: "US Dollar", ExchangeRate: decimal.RequireFromString("48.50")},
		"EUR": {ID: newID(), Code: "EUR", Name: "Euro", ExchangeRate: decimal.RequireFromString("52.10")},
	}}
	employees := &memoryEmployees{byID: map[string]employee.Employee{
		f.alice: {ID: f.alice, Name: "Alice"},
		f.bob:   {ID: f.bob, Name: "Bob"},
	}}
	activities := &memoryActivities{byID: map[string]activity.Activity{
		f.tour: {ID: f.tour, Name: "Desert tour"},
	}}

	svc := NewRevenueService(passthroughTx{}, f.entries, f.currencies, employees, activities, time.UTC).(*RevenueServiceImpl)
	svc.now = func() time.Time { return now }
	f.svc = svc
	return f
}

func strPtr(s string) *string { return &s }

func TestRevenueService_Create_SnapshotsRate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC))

	resp, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
		Employee: f.alice,
		Activity: f.tour,
		Currency: strPtr("usd"),
		Amount:   decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", resp.Currency.Code)
	assert.True(t, resp.ExchangeRate.Equal(decimal.RequireFromString("48.50")))
	assert.True(t, resp.EGPAmount.Equal(decimal.RequireFromString("4850")), "got %s", resp.EGPAmount)
	assert.Equal(t, "2024-05-14", resp.Date)
	assert.Equal(t, "Alice", resp.Employee.Name)
	assert.Equal(t, "Desert tour", resp.Activity.Name)
}

func TestRevenueService_Create_DefaultsToEGP(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Now())

	resp, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
		Employee: f.alice,
		Activity: f.tour,
		Amount:   decimal.RequireFromString("250.75"),
	})
	require.NoError(t, err)

	assert.Equal(t, "EGP", resp.Currency.Code)
	assert.True(t, resp.EGPAmount.Equal(decimal.RequireFromString("250.75")))
}

func TestRevenueService_Create_RejectsUnknownReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Now())

	_, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
		Employee: uuid.Must(uuid.NewV7()).String(),
		Activity: f.tour,
		Amount:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, revenue.ErrEmployeeNotFound)

	_, err = f.svc.Create(ctx, revenue.CreateEntryRequest{
		Employee: f.alice,
		Activity: f.tour,
		Currency: strPtr("GBP"),
		Amount:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, revenue.ErrCurrencyNotFound)
	assert.Empty(t, f.entries.entries)
}

func TestRevenueService_Create_Validation(t *testing.T) {
	f := newFixture(t, time.Now())

	_, err := f.svc.Create(context.Background(), revenue.CreateEntryRequest{Amount: decimal.NewFromInt(-5)})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee")
	assert.Contains(t, fields, "activity")
	assert.Contains(t, fields, "amount")
}

func TestRevenueService_Update_UsesRateAtEditTime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC))

	created, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
		Employee: f.alice,
		Activity: f.tour,
		Currency: strPtr("USD"),
		Amount:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// The USD rate moves after the entry was written.
	usd := f.currencies.byCode["USD"]
	usd.ExchangeRate = decimal.NewFromInt(50)
	f.currencies.byCode["USD"] = usd

	stored := f.entries.entries[created.ID]
	assert.True(t, stored.EGPAmount.Equal(decimal.NewFromInt(485)), "stored snapshot must not follow the new rate")

	amount := decimal.NewFromInt(20)
	updated, err := f.svc.Update(ctx, revenue.UpdateEntryRequest{ID: created.ID, Amount: &amount})
	require.NoError(t, err)
	assert.True(t, updated.ExchangeRate.Equal(decimal.NewFromInt(50)))
	assert.True(t, updated.EGPAmount.Equal(decimal.NewFromInt(1000)))

	updated, err = f.svc.Update(ctx, revenue.UpdateEntryRequest{ID: created.ID, Currency: strPtr("EUR")})
	require.NoError(t, err)
	assert.Equal(t, "EUR", updated.Currency.Code)
	assert.True(t, updated.EGPAmount.Equal(decimal.RequireFromString("1042")))
}

func TestRevenueService_Update_NotFound(t *testing.T) {
	f := newFixture(t, time.Now())
	amount := decimal.NewFromInt(1)

	_, err := f.svc.Update(context.Background(), revenue.UpdateEntryRequest{
		ID:     uuid.Must(uuid.NewV7()).String(),
		Amount: &amount,
	})
	assert.ErrorIs(t, err, revenue.ErrEntryNotFound)
}

func TestRevenueService_Report_TotalsMatchEntries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC))

	add := func(emp, code, amount, date string) {
		_, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
			Employee: emp, Activity: f.tour, Currency: strPtr(code),
			Amount: decimal.RequireFromString(amount), Date: strPtr(date),
		})
		require.NoError(t, err)
	}
	add(f.alice, "EGP", "100", "2024-05-01")
	add(f.alice, "USD", "2", "2024-05-20")   // 97
	add(f.bob, "EGP", "500.5", "2024-05-31") // last day of May
	add(f.bob, "EGP", "999", "2024-06-01")   // outside the window
	add(f.alice, "EGP", "999", "2024-04-30") // outside the window

	report, err := f.svc.Report(ctx, revenue.ReportQuery{Period: revenue.PeriodMonthly, Year: 2024, Month: 5})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", report.From)
	assert.Equal(t, "2024-05-31", report.To)
	require.Len(t, report.RevenueByEmployee, 2)

	assert.Equal(t, "Bob", report.RevenueByEmployee[0].Employee.Name)
	assert.True(t, report.RevenueByEmployee[0].Total.Equal(decimal.RequireFromString("500.5")))
	assert.Equal(t, "Alice", report.RevenueByEmployee[1].Employee.Name)
	assert.True(t, report.RevenueByEmployee[1].Total.Equal(decimal.RequireFromString("197")))
	for _, row := range report.RevenueByEmployee {
		assert.Equal(t, "EGP", row.Currency)
		assert.Equal(t, row.Employee.ID, row.ID)
	}
}

func TestRevenueService_Report_InvalidPeriod(t *testing.T) {
	f := newFixture(t, time.Now())

	_, err := f.svc.Report(context.Background(), revenue.ReportQuery{Period: "hourly"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestRevenueService_EmployeeEntries_Pagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Now())

	for i := 0; i < 45; i++ {
		_, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
			Employee: f.alice, Activity: f.tour, Amount: decimal.NewFromInt(int64(i + 1)),
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
		wantRows  int
		wantPages int
	}{
		{"first page default limit", 1, 0, 1, 20, 20, 3},
		{"last partial page", 3, 20, 3, 20, 5, 3},
		{"page below one clamps", -4, 20, 1, 20, 20, 3},
		{"beyond last page is empty", 4, 20, 4, 20, 0, 3},
		{"limit is capped", 1, 500, 1, 100, 45, 1},
		{"exact division", 3, 15, 3, 15, 15, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.svc.EmployeeEntries(ctx, revenue.EmployeeEntriesQuery{
				EmployeeID: f.alice, Page: tt.page, Limit: tt.limit,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Len(t, page.Data, tt.wantRows)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, int64(45), page.Total)
			assert.NotNil(t, page.Data)
		})
	}
}

func TestRevenueService_EmployeeEntries_NoEntries(t *testing.T) {
	f := newFixture(t, time.Now())

	page, err := f.svc.EmployeeEntries(context.Background(), revenue.EmployeeEntriesQuery{EmployeeID: f.bob, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Data)
}

func TestRevenueService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Now())

	created, err := f.svc.Create(ctx, revenue.CreateEntryRequest{Employee: f.bob, Activity: f.tour, Amount: decimal.NewFromInt(3)})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, created.ID), revenue.ErrEntryNotFound)
}

func TestRevenueService_Create_RoundsSnapshotToStoredScale(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC))

	usd := f.currencies.byCode["USD"]
	usd.ExchangeRate = decimal.RequireFromString("48.123456")
	f.currencies.byCode["USD"] = usd

	resp, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
		Employee: f.alice,
		Activity: f.tour,
		Currency: strPtr("USD"),
		Amount:   decimal.RequireFromString("10.01"),
	})
	require.NoError(t, err)

	// 10.01 * 48.123456 = 481.71579456
	assert.True(t, resp.EGPAmount.Equal(decimal.RequireFromString("481.72")), "got %s", resp.EGPAmount)
	stored := f.entries.entries[resp.ID]
	assert.True(t, stored.EGPAmount.Equal(resp.EGPAmount))
	assert.True(t, stored.EGPAmount.Equal(stored.Amount.Mul(stored.ExchangeRate).Round(2)))

	report, err := f.svc.Report(ctx, revenue.ReportQuery{Period: revenue.PeriodMonthly, Year: 2024, Month: 5})
	require.NoError(t, err)
	require.Len(t, report.RevenueByEmployee, 1)
	assert.True(t, report.RevenueByEmployee[0].Total.Equal(resp.EGPAmount))
}

func TestRevenueService_RejectsSubCentAmounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Now())

	for _, amount := range []string{"10.005", "0.004"} {
		_, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
			Employee: f.alice,
			Activity: f.tour,
			Amount:   decimal.RequireFromString(amount),
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, amount)
		assert.Contains(t, verrs.ToMap(), "amount")
	}
	assert.Empty(t, f.entries.entries)

	created, err := f.svc.Create(ctx, revenue.CreateEntryRequest{
		Employee: f.alice, Activity: f.tour, Amount: decimal.RequireFromString("10.500"),
	})
	require.NoError(t, err)

	amount := decimal.RequireFromString("3.141")
	_, err = f.svc.Update(ctx, revenue.UpdateEntryRequest{ID: created.ID, Amount: &amount})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "amount")
}

func TestRevenueService_EmployeeEntries_FarPageIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Now())

	_, err := f.svc.Create(ctx, revenue.CreateEntryRequest{Employee: f.alice, Activity: f.tour, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)

	for _, p := range []int{100_000_000_000_000_000, math.MaxInt} {
		page, err := f.svc.EmployeeEntries(ctx, revenue.EmployeeEntriesQuery{EmployeeID: f.alice, Page: p, Limit: 100})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f.entries.lastOffset, 0)
		assert.Equal(t, p, page.Page)
		assert.Equal(t, 1, page.TotalPages)
		assert.Empty(t, page.Data)
		assert.NotNil(t, page.Data)
	}
}

func TestRevenueService_Delete_InvalidIDIsNotFound(t *testing.T) {
	f := newFixture(t, time.Now())

	assert.ErrorIs(t, f.svc.Delete(context.Background(), "123"), revenue.ErrEntryNotFound)
}
