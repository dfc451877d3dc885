package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db           database.Transactor
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db database.Transactor, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.EmployeeService. New accounts must replace
// their password on first login.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.Employee{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Role:         req.Role,
		Type:         req.Type,
		FixedSalary:  req.FixedSalary,
		FirstLogin:   true,
		PasswordHash: string(hash),
	}
	// Variable pay is derived from revenue; a stray salary would be misleading.
	if newEmployee.Type == employee.PayTypeVariable {
		newEmployee.FixedSalary = nil
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrPhoneExists) || errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee created", "employee_id", created.ID, "role", created.Role)
	return employee.NewEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.NewEmployeeResponse(e))
	}
	return result, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.employeeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Type != nil && *req.Type == employee.PayTypeFixed && req.FixedSalary == nil && current.FixedSalary == nil {
			var errs validator.ValidationErrors
			errs.Add("fixedSalary", "fixedSalary is required for fixed employees")
			return errs
		}

		if err := s.employeeRepo.Update(ctx, req); err != nil {
			if errors.Is(err, employee.ErrPhoneExists) || errors.Is(err, employee.ErrEmailExists) {
				return err
			}
			return fmt.Errorf("failed to update employee: %w", err)
		}

		updated, err = s.employeeRepo.GetByID(ctx, req.ID)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrEmployeeInUse) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
