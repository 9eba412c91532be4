package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/evhammar/staffdir/internal/model"
)

var _ model.EmployeeStore = (*EmployeeRepository)(nil)

// EmployeeRepository is an in-memory employee store. All state lives in
// the process; a restart resets the collection. Mutations are serialized
// by the mutex so id and email uniqueness hold under concurrent requests.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]model.Employee
	nextID    uint64
}

// NewEmployeeRepository creates an empty EmployeeRepository.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: make(map[string]model.Employee),
		nextID:    1,
	}
}

// Create stores a new employee and assigns it the next sequential id.
// Params are expected to be normalized already. Returns
// model.ErrDuplicateEmail when another record holds the same email.
// The counter only advances on success, and freed ids are never reused.
func (r *EmployeeRepository) Create(_ context.Context, params model.CreateEmployeeParams) (model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.Email == params.Email {
			return model.Employee{}, model.ErrDuplicateEmail
		}
	}

	employee := model.Employee{
		ID:        strconv.FormatUint(r.nextID, 10),
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		CreatedAt: time.Now().UTC(),
	}

	r.employees[employee.ID] = employee
	r.nextID++

	return employee, nil
}

// List returns all employees ordered by creation time, newest first.
// The relative order of records with identical timestamps is unspecified.
func (r *EmployeeRepository) List(_ context.Context) ([]model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]model.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		list = append(list, e)
	}

	slices.SortFunc(list, func(a, b model.Employee) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return list, nil
}

// Delete removes the employee with the given id. Returns
// model.ErrNotFound when no such record exists.
func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return model.ErrNotFound
	}

	delete(r.employees, id)

	return nil
}
