package parent

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("parent not found")

type (
	Parent struct {
		ID        string    `json:"id" firestore:"-"`
		Name      string    `json:"name" firestore:"name"`
		Email     string    `json:"email" firestore:"email"`
		Phone     string    `json:"phone" firestore:"phone"`
		CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	}

	// NewParent is the single-step parent registration form.
	NewParent struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"omitempty,email"`
		Phone string `json:"phone"`
	}

	Repository interface {
		CreateParent(ctx context.Context, p Parent) (Parent, error)
		GetParent(ctx context.Context, id string) (Parent, error)
		QueryAllParents(ctx context.Context) ([]Parent, error)
	}

	// Account is the identity payload returned by the remote parent login
	// endpoint. Token is opaque to the app.
	Account struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Email    string   `json:"email"`
		Children []string `json:"children"`
		Token    string   `json:"token"`
	}

	// Authenticator is the remote parent login endpoint.
	Authenticator interface {
		Login(ctx context.Context, email, password string) (Account, error)
	}
)

// LoginError carries the endpoint's detail message for a failed login.
type LoginError struct {
	StatusCode int
	Detail     string
}

func (e *LoginError) Error() string { return e.Detail }
