package jwt

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
)

// Claims represents JWT custom claims. Name is the employee's unique name,
// which becomes app.current_name on the database side; Role selects the
// database login role the request runs on.
type Claims struct {
	Name string              `json:"name"`
	Role entities.AccessRole `json:"role"`
	jwt.RegisteredClaims
}
