package pdf

import (
	"bytes"
	"testing"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"12.5", "12.50"},
		{"1234567.891", "1,234,567.89"},
		{"-0.5", "-0.50"},
		{"-1500", "-1,500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestRevenueReport(t *testing.T) {
	report := revenue.ReportResponse{
		Period: revenue.PeriodMonthly,
		From:   "2024-05-01",
		To:     "2024-05-31",
		RevenueByEmployee: []revenue.EmployeeRevenue{
			{ID: "a", Employee: revenue.Ref{ID: "a", Name: "Mona Adel"}, Total: decimal.RequireFromString("1500.25"), Currency: "EGP"},
			{ID: "b", Employee: revenue.Ref{ID: "b", Name: "Karim Ünal"}, Total: decimal.RequireFromString("99"), Currency: "EGP"},
		},
	}

	out, err := RevenueReport(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRevenueReport_Empty(t *testing.T) {
	out, err := RevenueReport(revenue.ReportResponse{Period: revenue.PeriodDaily, From: "2024-05-01", To: "2024-05-01"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
