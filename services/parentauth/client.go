package parentauthsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/parent"
)

const loginPath = "/parent-dashboard/api/parent/login/"

// client authenticates parents against the remote dashboard API. The app
// holds no parent credentials itself; the endpoint is the source of truth.
type client struct {
	baseURL string
	http    *http.Client
}

var _ parent.Authenticator = (*client)(nil)

func NewClient(conf *core.Config) *client {
	return &client{
		baseURL: strings.TrimRight(conf.ParentAPI.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.ParentAPI.Timeout},
	}
}

func (c *client) Login(ctx context.Context, email, password string) (parent.Account, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return parent.Account{}, errors.Wrap(err, "encoding login payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return parent.Account{}, errors.Wrap(err, "building login request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return parent.Account{}, errors.Wrap(err, "calling parent login endpoint")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var errRes struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(res.Body).Decode(&errRes)
		if errRes.Detail == "" {
			errRes.Detail = "login failed"
		}
		return parent.Account{}, &parent.LoginError{StatusCode: res.StatusCode, Detail: errRes.Detail}
	}

	var acc parent.Account
	if err := json.NewDecoder(res.Body).Decode(&acc); err != nil {
		return parent.Account{}, errors.Wrap(err, "decoding login response")
	}
	return acc, nil
}
