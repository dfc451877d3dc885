package salary

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/salary"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployees struct {
	employee.EmployeeRepository
	rows []employee.Employee
}

func (s stubEmployees) List(context.Context) ([]employee.Employee, error) {
	return s.rows, nil
}

type stubRevenue struct {
	revenue.RevenueRepository
	entries []revenue.Entry
}

func (s stubRevenue) ListInWindow(_ context.Context, from, to time.Time) ([]revenue.Entry, error) {
	var out []revenue.Entry
	for _, e := range s.entries {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestSalaryService_List(t *testing.T) {
	fixed := decimal.NewFromInt(6000)
	employees := stubEmployees{rows: []employee.Employee{
		{ID: "e1", Name: "Fixed Fady", Type: employee.PayTypeFixed, FixedSalary: &fixed},
		{ID: "e2", Name: "Variable Vera", Type: employee.PayTypeVariable},
		{ID: "e3", Name: "Idle Ibrahim", Type: employee.PayTypeVariable},
	}}
	entries := stubRevenue{entries: []revenue.Entry{
		{EmployeeID: "e2", EmployeeName: "Variable Vera", EGPAmount: decimal.RequireFromString("1500.25"), Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)},
		{EmployeeID: "e2", EmployeeName: "Variable Vera", EGPAmount: decimal.RequireFromString("499.75"), Date: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		{EmployeeID: "e2", EmployeeName: "Variable Vera", EGPAmount: decimal.NewFromInt(999), Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		// Fixed employees are never paid from revenue.
		{EmployeeID: "e1", EmployeeName: "Fixed Fady", EGPAmount: decimal.NewFromInt(50), Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}}

	svc := NewSalaryService(employees, entries, time.UTC)

	lines, err := svc.List(context.Background(), salary.ListRequest{Month: "2024-06"})
	require.NoError(t, err)
	require.Len(t, lines, 3)

	byID := map[string]salary.Line{}
	for _, l := range lines {
		byID[l.EmployeeID] = l
		assert.Equal(t, "EGP", l.Currency)
	}
	assert.True(t, byID["e1"].Salary.Equal(decimal.NewFromInt(6000)))
	assert.True(t, byID["e2"].Salary.Equal(decimal.NewFromInt(2000)))
	assert.True(t, byID["e3"].Salary.IsZero())
}

func TestSalaryService_List_InvalidMonth(t *testing.T) {
	svc := NewSalaryService(stubEmployees{}, stubRevenue{}, time.UTC)

	_, err := svc.List(context.Background(), salary.ListRequest{Month: "2024/06"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
