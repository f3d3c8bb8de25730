package auth

// LoginRequest authenticates an employee by their unique name and the
// access role they want the session to run as.
type LoginRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required,access_role"`
}

// RefreshRequest exchanges a refresh token for a new token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
