package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a validator with the domain-specific tags registered:
// access_role for the four login roles and task_status for the task
// lifecycle values.
func New() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("access_role", func(fl validator.FieldLevel) bool {
		return entities.AccessRole(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return entities.TaskStatus(fl.Field().String()).IsValid()
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
