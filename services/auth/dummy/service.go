package dummy

import (
	"context"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/childguard/app/core"
)

// authService is an in-memory email/password provider for development and
// tests. Accounts live in a map; tokens are short-lived JWTs.
type authService struct {
	mu       sync.RWMutex
	accounts map[string]account
	secret   []byte
}

type account struct {
	uid          string
	passwordHash []byte
}

var _ core.AuthService = (*authService)(nil)

func NewAuthService(secret string) *authService {
	return &authService{
		accounts: make(map[string]account),
		secret:   []byte(secret),
	}
}

// AddAccount registers an account directly, bypassing validation. Test helper.
func (svc *authService) AddAccount(email, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	uid := uuid.New().String()
	svc.mu.Lock()
	svc.accounts[email] = account{uid: uid, passwordHash: hash}
	svc.mu.Unlock()
	return uid
}

func (svc *authService) SignIn(ctx context.Context, email, password string) (core.AuthUser, error) {
	svc.mu.RLock()
	acc, ok := svc.accounts[email]
	svc.mu.RUnlock()
	if !ok {
		return core.AuthUser{}, core.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return core.AuthUser{}, core.ErrInvalidCredentials
	}

	claims := jwt.StandardClaims{
		Subject:   acc.uid,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	if err != nil {
		return core.AuthUser{}, err
	}
	return core.AuthUser{UID: acc.uid, Email: email, Token: token}, nil
}

func (svc *authService) SignOut(ctx context.Context, token string) error {
	return nil
}

func (svc *authService) CreateAccount(ctx context.Context, email, password string) (core.AuthUser, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if _, ok := svc.accounts[email]; ok {
		return core.AuthUser{}, core.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return core.AuthUser{}, err
	}
	uid := uuid.New().String()
	svc.accounts[email] = account{uid: uid, passwordHash: hash}
	return core.AuthUser{UID: uid, Email: email}, nil
}
