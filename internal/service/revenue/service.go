package revenue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/activity"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

type RevenueServiceImpl struct {
	db database.Transactor
	revenue.RevenueRepository
	currency.CurrencyRepository
	employee.EmployeeRepository
	activity.ActivityRepository
	loc *time.Location
	now func() time.Time
}

func NewRevenueService(
	db database.Transactor,
	revenueRepo revenue.RevenueRepository,
	currencyRepo currency.CurrencyRepository,
	employeeRepo employee.EmployeeRepository,
	activityRepo activity.ActivityRepository,
	loc *time.Location,
) revenue.RevenueService {
	return &RevenueServiceImpl{
		db:                 db,
		RevenueRepository:  revenueRepo,
		CurrencyRepository: currencyRepo,
		EmployeeRepository: employeeRepo,
		ActivityRepository: activityRepo,
		loc:                loc,
		now:                time.Now,
	}
}

// Create implements revenue.RevenueService.
func (s *RevenueServiceImpl) Create(ctx context.Context, req revenue.CreateEntryRequest) (revenue.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return revenue.EntryResponse{}, err
	}

	code := currency.BaseCode
	if req.Currency != nil && *req.Currency != "" {
		code = *req.Currency
	}

	date := s.today()
	if req.Date != nil {
		date, _ = time.Parse("2006-01-02", *req.Date)
	}

	var created revenue.Entry
	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		emp, err := s.lookupEmployee(ctx, req.Employee)
		if err != nil {
			return err
		}
		act, err := s.lookupActivity(ctx, req.Activity)
		if err != nil {
			return err
		}
		cur, err := s.lookupCurrency(ctx, code)
		if err != nil {
			return err
		}

		entry := revenue.Entry{
			EmployeeID:   emp.ID,
			ActivityID:   act.ID,
			CurrencyID:   cur.ID,
			Amount:       req.Amount,
			ExchangeRate: cur.ExchangeRate,
			EGPAmount:    Snapshot(req.Amount, cur.ExchangeRate),
			Date:         date,
		}

		created, err = s.RevenueRepository.Create(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to create revenue entry: %w", err)
		}
		created.EmployeeName = emp.Name
		created.ActivityName = act.Name
		created.CurrencyCode = cur.Code
		created.CurrencyName = cur.Name
		return nil
	})
	if err != nil {
		return revenue.EntryResponse{}, err
	}

	return revenue.NewEntryResponse(created), nil
}

// Update implements revenue.RevenueService. Every edit takes a fresh
// snapshot of the (possibly changed) currency's current rate.
func (s *RevenueServiceImpl) Update(ctx context.Context, req revenue.UpdateEntryRequest) (revenue.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return revenue.EntryResponse{}, err
	}

	var updated revenue.Entry
	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		entry, err := s.RevenueRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Employee != nil {
			emp, err := s.lookupEmployee(ctx, *req.Employee)
			if err != nil {
				return err
			}
			entry.EmployeeID, entry.EmployeeName = emp.ID, emp.Name
		}
		if req.Activity != nil {
			act, err := s.lookupActivity(ctx, *req.Activity)
			if err != nil {
				return err
			}
			entry.ActivityID, entry.ActivityName = act.ID, act.Name
		}
		if req.Amount != nil {
			entry.Amount = *req.Amount
		}
		if req.Date != nil {
			entry.Date, _ = time.Parse("2006-01-02", *req.Date)
		}

		code := entry.CurrencyCode
		if req.Currency != nil {
			code = *req.Currency
		}
		cur, err := s.lookupCurrency(ctx, code)
		if err != nil {
			return err
		}
		entry.CurrencyID, entry.CurrencyCode, entry.CurrencyName = cur.ID, cur.Code, cur.Name
		entry.ExchangeRate = cur.ExchangeRate
		entry.EGPAmount = Snapshot(entry.Amount, cur.ExchangeRate)

		updated, err = s.RevenueRepository.Update(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to update revenue entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return revenue.EntryResponse{}, err
	}

	return revenue.NewEntryResponse(updated), nil
}

// Delete implements revenue.RevenueService.
func (s *RevenueServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return revenue.ErrEntryNotFound
	}
	if err := s.RevenueRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, revenue.ErrEntryNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete revenue entry: %w", err)
	}
	return nil
}

// Report implements revenue.RevenueService.
func (s *RevenueServiceImpl) Report(ctx context.Context, query revenue.ReportQuery) (revenue.ReportResponse, error) {
	if err := query.Validate(); err != nil {
		return revenue.ReportResponse{}, err
	}

	window := ResolveWindow(query, s.now(), s.loc)

	entries, err := s.RevenueRepository.ListInWindow(ctx, window.From, window.To)
	if err != nil {
		return revenue.ReportResponse{}, fmt.Errorf("failed to list revenue entries: %w", err)
	}

	totals := Aggregate(entries)
	rows := make([]revenue.EmployeeRevenue, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, revenue.EmployeeRevenue{
			ID:       t.EmployeeID,
			Employee: revenue.Ref{ID: t.EmployeeID, Name: t.EmployeeName},
			Total:    t.Total,
			Currency: currency.BaseCode,
		})
	}

	return revenue.ReportResponse{
		RevenueByEmployee: rows,
		Period:            query.Period,
		From:              window.From.Format("2006-01-02"),
		To:                window.To.AddDate(0, 0, -1).Format("2006-01-02"),
	}, nil
}

// EmployeeEntries implements revenue.RevenueService.
func (s *RevenueServiceImpl) EmployeeEntries(ctx context.Context, query revenue.EmployeeEntriesQuery) (revenue.EmployeeEntriesPage, error) {
	if err := query.Validate(); err != nil {
		return revenue.EmployeeEntriesPage{}, err
	}
	query.Normalize()

	entries, total, err := s.RevenueRepository.ListByEmployee(ctx, query.EmployeeID, query.Limit, query.Offset())
	if err != nil {
		return revenue.EmployeeEntriesPage{}, fmt.Errorf("failed to list employee revenue: %w", err)
	}

	page := revenue.EmployeeEntriesPage{
		Data:       make([]revenue.EntryResponse, 0, len(entries)),
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: TotalPages(total, query.Limit),
	}
	if query.Page > page.TotalPages {
		return page, nil
	}
	for _, e := range entries {
		page.Data = append(page.Data, revenue.NewEntryResponse(e))
	}
	return page, nil
}

func (s *RevenueServiceImpl) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *RevenueServiceImpl) lookupEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, revenue.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (s *RevenueServiceImpl) lookupActivity(ctx context.Context, id string) (activity.Activity, error) {
	act, err := s.ActivityRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, activity.ErrActivityNotFound) {
			return activity.Activity{}, revenue.ErrActivityNotFound
		}
		return activity.Activity{}, fmt.Errorf("failed to get activity: %w", err)
	}
	return act, nil
}

func (s *RevenueServiceImpl) lookupCurrency(ctx context.Context, code string) (currency.Currency, error) {
	cur, err := s.CurrencyRepository.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, currency.ErrCurrencyNotFound) {
			return currency.Currency{}, revenue.ErrCurrencyNotFound
		}
		return currency.Currency{}, fmt.Errorf("failed to get currency: %w", err)
	}
	return cur, nil
}
