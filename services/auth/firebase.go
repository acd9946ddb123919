package authsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/childguard/app/core"
)

// firebaseService signs users in and out against the Identity Toolkit REST
// API. Password verification is a client-side concern in Firebase; the Admin
// SDK has no sign-in call, so this goes straight to the REST endpoints.
type firebaseService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  core.Logger
}

var _ core.AuthService = (*firebaseService)(nil)

func NewFirebaseService(conf *core.Config, logger core.Logger) *firebaseService {
	return &firebaseService{
		baseURL: strings.TrimRight(conf.Firebase.AuthBaseURL, "/"),
		apiKey:  conf.Firebase.WebApiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type (
	credentialsPayload struct {
		Email             string `json:"email"`
		Password          string `json:"password"`
		ReturnSecureToken bool   `json:"returnSecureToken"`
	}

	accountResponse struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
		IDToken string `json:"idToken"`
	}

	errorResponse struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
)

func (svc *firebaseService) SignIn(ctx context.Context, email, password string) (core.AuthUser, error) {
	return svc.post(ctx, "/v1/accounts:signInWithPassword", email, password)
}

func (svc *firebaseService) CreateAccount(ctx context.Context, email, password string) (core.AuthUser, error) {
	usr, err := svc.post(ctx, "/v1/accounts:signUp", email, password)
	if err == core.ErrInvalidCredentials {
		// signUp has no credential mismatch; a 400 here is a duplicate email
		return core.AuthUser{}, core.ErrEmailTaken
	}
	return usr, err
}

// SignOut discards the provider session. Identity Toolkit tokens are
// stateless and simply expire; there is nothing to revoke server-side.
func (svc *firebaseService) SignOut(ctx context.Context, token string) error {
	return nil
}

func (svc *firebaseService) post(ctx context.Context, path, email, password string) (core.AuthUser, error) {
	body, err := json.Marshal(credentialsPayload{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return core.AuthUser{}, errors.Wrap(err, "encoding credentials")
	}

	url := svc.baseURL + path + "?key=" + svc.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return core.AuthUser{}, errors.Wrap(err, "building auth request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := svc.client.Do(req)
	if err != nil {
		return core.AuthUser{}, errors.Wrap(err, "calling auth provider")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var errRes errorResponse
		_ = json.NewDecoder(res.Body).Decode(&errRes)
		if res.StatusCode == http.StatusBadRequest {
			svc.logger.Debug("auth provider rejection: " + errRes.Error.Message)
			return core.AuthUser{}, core.ErrInvalidCredentials
		}
		return core.AuthUser{}, errors.Errorf("auth provider: status %d: %s", res.StatusCode, errRes.Error.Message)
	}

	var acc accountResponse
	if err := json.NewDecoder(res.Body).Decode(&acc); err != nil {
		return core.AuthUser{}, errors.Wrap(err, "decoding auth response")
	}
	return core.AuthUser{UID: acc.LocalID, Email: acc.Email, Token: acc.IDToken}, nil
}
