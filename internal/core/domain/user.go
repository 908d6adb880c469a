package domain

import "errors"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrMissingFields = errors.New("missing required fields")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account. PasswordHash holds the bcrypt hash of
// the password; the plaintext is never stored. CartID is a weak reference to
// the cart provisioned at registration.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Age          int    `json:"age"`
	PasswordHash string `json:"-"`
	CartID       string `json:"cart,omitempty"`
	Role         string `json:"role"`
}
