package model

import (
	"context"
	"time"
)

// EmployeeStore defines storage operations for employees.
type EmployeeStore interface {
	Create(ctx context.Context, params CreateEmployeeParams) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}

// Employee represents a stored directory entry. Records are immutable
// after creation; the only mutation is full removal.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

// CreateEmployeeParams contains parameters to create an employee.
// All fields are expected to be normalized by the caller: names trimmed,
// email trimmed and lower-cased.
type CreateEmployeeParams struct {
	FirstName string
	LastName  string
	Email     string
}
