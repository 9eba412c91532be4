package service

import (
	"context"
	"fmt"

	"github.com/evhammar/staffdir/internal/logger"
	"github.com/evhammar/staffdir/internal/model"
)

// Employee implements directory operations on top of an employee store.
type Employee struct {
	employeeStore model.EmployeeStore
	logger        *logger.Logger
}

// NewEmployee creates a new Employee service.
func NewEmployee(employeeStore model.EmployeeStore, logger *logger.Logger) *Employee {
	return &Employee{
		employeeStore: employeeStore,
		logger:        logger,
	}
}

// CreateEmployee stores a new employee. Params must be normalized by the
// caller. Store sentinel errors pass through wrapped so the boundary can
// match them with errors.Is.
func (s *Employee) CreateEmployee(ctx context.Context, params model.CreateEmployeeParams) (model.Employee, error) {
	employee, err := s.employeeStore.Create(ctx, params)
	if err != nil {
		return model.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Debug("Employee service: employee created",
		"id", employee.ID,
		"email", employee.Email)

	return employee, nil
}

// ListEmployees returns all employees, newest first.
func (s *Employee) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.employeeStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// DeleteEmployee removes the employee with the given id.
func (s *Employee) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.logger.Debug("Employee service: employee deleted", "id", id)

	return nil
}
