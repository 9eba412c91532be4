package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/evhammar/staffdir/internal/logger"
	"github.com/evhammar/staffdir/internal/model"
)

// EmployeeService defines business operations for directory management.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, params model.CreateEmployeeParams) (model.Employee, error)
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

// Employee handles HTTP endpoints for the employee directory.
type Employee struct {
	employeeService EmployeeService
	logger          *logger.Logger
}

// NewEmployee creates a new Employee handler.
func NewEmployee(employeeService EmployeeService, logger *logger.Logger) *Employee {
	return &Employee{
		employeeService: employeeService,
		logger:          logger,
	}
}

type employeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func toEmployeeResponse(e model.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// Create validates and stores a new employee.
// Responds 201 with the created record, 400 with the collected
// validation issues, or 409 when the email is already taken.
func (h *Employee) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Employee handler: malformed create request body", "error", err.Error())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Malformed request body"})
		return
	}

	req.Normalize()
	if issues := req.Validate(); len(issues) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:  "ValidationError",
			Issues: issues,
		})
		return
	}

	employee, err := h.employeeService.CreateEmployee(r.Context(), model.CreateEmployeeParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.logger.Error("Employee handler: create failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmployeeResponse(employee))
}

// List returns all employees, newest first.
func (h *Employee) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		h.logger.Error("Employee handler: list failed", "error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(employees, func(e model.Employee, _ int) employeeResponse {
		return toEmployeeResponse(e)
	}))
}

// Delete removes the employee addressed by the path id.
// Responds 204 on success and 404 when the id is unknown.
func (h *Employee) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		h.logger.Debug("Employee handler: delete failed",
			"id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
