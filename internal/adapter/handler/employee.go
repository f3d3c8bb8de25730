package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	employeedto "github.com/meetpulse-team/meetpulse/internal/adapter/dto/employee"
	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/domain/repositories"
)

// Employee handles employee identity HTTP requests
type Employee struct {
	employees repositories.EmployeeRepository
}

// NewEmployee creates a new employee handler
func NewEmployee(employees repositories.EmployeeRepository) *Employee {
	return &Employee{employees: employees}
}

// Create onboards an employee
// POST /v1/employees
func (h *Employee) Create(c echo.Context) error {
	var req employeedto.CreateEmployeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	employee := &entities.Employee{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
		Role:   req.Role,
	}
	if err := h.employees.Create(c.Request().Context(), employee); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, employee)
}

// List retrieves all employees
// GET /v1/employees
func (h *Employee) List(c echo.Context) error {
	employees, err := h.employees.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, http.StatusOK, employees, len(employees))
}

// Get retrieves one employee by name
// GET /v1/employees/:name
func (h *Employee) Get(c echo.Context) error {
	employee, err := h.employees.FindByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, employee)
}
