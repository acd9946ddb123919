package core

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned by AuthService implementations on a
	// credential mismatch; it never reveals which of email/password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

type (
	// AuthUser is the auth provider's view of a signed-in account.
	// Token is an opaque provider session token; the app never inspects it.
	AuthUser struct {
		UID   string
		Email string
		Token string
	}

	// AuthService abstracts the external email/password auth provider.
	AuthService interface {
		SignIn(ctx context.Context, email, password string) (AuthUser, error)
		SignOut(ctx context.Context, token string) error
		CreateAccount(ctx context.Context, email, password string) (AuthUser, error)
	}
)
