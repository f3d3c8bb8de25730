package employee

// CreateEmployeeRequest onboards an employee. Name must be globally unique;
// it is the identity other tables reference by string.
type CreateEmployeeRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
	Role   string `json:"role" validate:"omitempty,access_role"`
}
