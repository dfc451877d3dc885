package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/salary"
	revenueservice "github.com/cmlabs-hris/bizdash-go/internal/service/revenue"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	employee.EmployeeRepository
	revenue.RevenueRepository
	loc *time.Location
	now func() time.Time
}

func NewSalaryService(employeeRepo employee.EmployeeRepository, revenueRepo revenue.RevenueRepository, loc *time.Location) salary.SalaryService {
	return &SalaryServiceImpl{
		EmployeeRepository: employeeRepo,
		RevenueRepository:  revenueRepo,
		loc:                loc,
		now:                time.Now,
	}
}

// List implements salary.SalaryService.
func (s *SalaryServiceImpl) List(ctx context.Context, req salary.ListRequest) ([]salary.Line, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	window, err := revenueservice.MonthWindow(req.Month, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	entries, err := s.RevenueRepository.ListInWindow(ctx, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue entries: %w", err)
	}

	earned := make(map[string]decimal.Decimal)
	for _, t := range revenueservice.Aggregate(entries) {
		earned[t.EmployeeID] = t.Total
	}

	lines := make([]salary.Line, 0, len(employees))
	for _, e := range employees {
		pay := decimal.Zero
		switch e.Type {
		case employee.PayTypeFixed:
			if e.FixedSalary != nil {
				pay = *e.FixedSalary
			}
		case employee.PayTypeVariable:
			if total, ok := earned[e.ID]; ok {
				pay = total
			}
		}

		lines = append(lines, salary.Line{
			EmployeeID: e.ID,
			Name:       e.Name,
			Phone:      e.Phone,
			Role:       e.Role,
			Type:       e.Type,
			Salary:     pay,
			Currency:   currency.BaseCode,
		})
	}

	return lines, nil
}
