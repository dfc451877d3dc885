package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, phone, email, role, type, fixed_salary, first_login, password_hash, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Phone, &emp.Email, &emp.Role, &emp.Type,
		&emp.FixedSalary, &emp.FirstLogin, &emp.PasswordHash, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// mapEmployeeWriteError translates unique violations on phone and email.
func mapEmployeeWriteError(err error) error {
	if constraint, ok := isUniqueViolation(err); ok {
		switch constraint {
		case "employees_phone_key":
			return employee.ErrPhoneExists
		case "employees_email_key":
			return employee.ErrEmailExists
		}
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := newID()
	if err != nil {
		return employee.Employee{}, err
	}

	query := `
		INSERT INTO employees (id, name, phone, email, role, type, fixed_salary, first_login, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		id, newEmployee.Name, newEmployee.Phone, newEmployee.Email, newEmployee.Role, newEmployee.Type,
		newEmployee.FixedSalary, newEmployee.FirstLogin, newEmployee.PasswordHash,
	))
	if err != nil {
		return employee.Employee{}, mapEmployeeWriteError(err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// GetByPhone implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE phone = $1`, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by phone: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	// Build dynamic update query
	query := `UPDATE employees SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	set := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Phone != nil {
		set("phone", *req.Phone)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.Role != nil {
		set("role", *req.Role)
	}
	if req.Type != nil {
		set("type", *req.Type)
		if *req.Type == employee.PayTypeVariable && req.FixedSalary == nil {
			query += ", fixed_salary = NULL"
		}
	}
	if req.FixedSalary != nil {
		set("fixed_salary", *req.FixedSalary)
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapEmployeeWriteError(err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdatePassword implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string, firstLogin bool) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET password_hash = $1, first_login = $2, updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, passwordHash, firstLogin, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return employee.ErrEmployeeInUse
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
