package ports

import (
	"context"

	"github.com/riverstore/commerce-api/internal/core/domain"
)

// RegisterInput carries the registration form fields. All are required.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       int
	Password  string
}

// Claims is the identity snapshot embedded in a session token. It reflects
// the user at login time, not the current store state.
type Claims struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CartID    string `json:"cart,omitempty"`
}

// AuthService owns credential lifecycle and stateless session tokens.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Current(token string) (*Claims, error)
}
