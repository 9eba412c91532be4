package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/evhammar/staffdir/internal/model"
	"github.com/evhammar/staffdir/internal/testutil"
)

// MockEmployeeService mocks the EmployeeService interface
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, params model.CreateEmployeeParams) (model.Employee, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestEmployee_Create(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	svc.On("CreateEmployee", mock.Anything, model.CreateEmployeeParams{
		FirstName: "Anna",
		LastName:  "Svensson",
		Email:     "anna@example.com",
	}).Return(model.Employee{
		ID:        "1",
		FirstName: "Anna",
		LastName:  "Svensson",
		Email:     "anna@example.com",
		CreatedAt: createdAt,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/employees",
		strings.NewReader(`{"firstName":"Anna","lastName":"Svensson","email":"anna@example.com"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1", body["id"])
	assert.Equal(t, "Anna", body["firstName"])
	assert.Equal(t, "Svensson", body["lastName"])
	assert.Equal(t, "anna@example.com", body["email"])
	assert.Equal(t, "2025-03-14T09:26:53Z", body["createdAt"])
	svc.AssertExpectations(t)
}

func TestEmployee_Create_NormalizesInput(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	svc.On("CreateEmployee", mock.Anything, model.CreateEmployeeParams{
		FirstName: "Bo",
		LastName:  "Li",
		Email:     "bo.li@example.com",
	}).Return(model.Employee{ID: "1", FirstName: "Bo", LastName: "Li", Email: "bo.li@example.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/employees",
		strings.NewReader(`{"firstName":"  Bo ","lastName":" Li ","email":" Bo.Li@Example.com "}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestEmployee_Create_ValidationError(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/employees",
		strings.NewReader(`{"firstName":"","lastName":"","email":"noatsign"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body validationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ValidationError", body.Error)
	assert.ElementsMatch(t, []Issue{
		{Path: "firstName", Message: "Förnamn krävs"},
		{Path: "lastName", Message: "Efternamn krävs"},
		{Path: "email", Message: "E-post måste innehålla '@'"},
	}, body.Issues)
	svc.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestEmployee_Create_WhitespaceOnlyNamesRejected(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/employees",
		strings.NewReader(`{"firstName":"   ","lastName":"Svensson","email":"anna@example.com"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body validationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Issues, 1)
	assert.Equal(t, Issue{Path: "firstName", Message: "Förnamn krävs"}, body.Issues[0])
}

func TestEmployee_Create_DuplicateEmail(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	svc.On("CreateEmployee", mock.Anything, mock.Anything).
		Return(model.Employee{}, model.ErrDuplicateEmail)

	req := httptest.NewRequest(http.MethodPost, "/api/employees",
		strings.NewReader(`{"firstName":"Anna","lastName":"Svensson","email":"anna@example.com"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, rec.Body.String())
}

func TestEmployee_Create_MalformedBody(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestEmployee_Create_ServiceError(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	svc.On("CreateEmployee", mock.Anything, mock.Anything).
		Return(model.Employee{}, errors.New("boom"))

	req := httptest.NewRequest(http.MethodPost, "/api/employees",
		strings.NewReader(`{"firstName":"Anna","lastName":"Svensson","email":"anna@example.com"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestEmployee_List(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	svc.On("ListEmployees", mock.Anything).Return([]model.Employee{
		{ID: "2", FirstName: "Bo", LastName: "Li", Email: "bo@example.com", CreatedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)},
		{ID: "1", FirstName: "Anna", LastName: "Svensson", Email: "anna@example.com", CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "2", body[0]["id"])
	assert.Equal(t, "1", body[1]["id"])
}

func TestEmployee_List_EmptyIsJSONArray(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	svc.On("ListEmployees", mock.Anything).Return([]model.Employee{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestEmployee_Delete(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	svc.On("DeleteEmployee", mock.Anything, "1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestEmployee_Delete_NotFound(t *testing.T) {
	svc := &MockEmployeeService{}
	h := NewEmployee(svc, testutil.MakeNoopLogger())

	svc.On("DeleteEmployee", mock.Anything, "does-not-exist").Return(model.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/does-not-exist", nil)
	req.SetPathValue("id", "does-not-exist")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
