package authsvc

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/childguard/app/core"
)

func newTestService(baseURL string) *firebaseService {
	conf := &core.Config{}
	conf.Firebase.AuthBaseURL = baseURL
	conf.Firebase.WebApiKey = "test-key"
	return NewFirebaseService(conf, core.NewStdLogger(log.New(os.Stdout, "", 0)))
}

func TestFirebaseService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			_, _ = w.Write([]byte(`{"localId": "uid1", "email": "mr.t@test.cd", "idToken": "tok"}`))
		}))
		defer srv.Close()

		usr, err := newTestService(srv.URL).SignIn(ctx, "mr.t@test.cd", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, core.AuthUser{UID: "uid1", Email: "mr.t@test.cd", Token: "tok"}, usr)
	})

	t.Run("rejection maps to invalid credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "INVALID_PASSWORD"}}`))
		}))
		defer srv.Close()

		_, err := newTestService(srv.URL).SignIn(ctx, "mr.t@test.cd", "wrong")
		assert.Equal(t, core.ErrInvalidCredentials, err)
	})

	t.Run("provider outage is not a credential error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestService(srv.URL).SignIn(ctx, "mr.t@test.cd", "s3cret")
		assert.Error(t, err)
		assert.NotEqual(t, core.ErrInvalidCredentials, err)
	})
}

func TestFirebaseService_CreateAccount(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/accounts:signUp", r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "EMAIL_EXISTS"}}`))
		}))
		defer srv.Close()

		_, err := newTestService(srv.URL).CreateAccount(context.Background(), "mr.t@test.cd", "s3cret")
		assert.Equal(t, core.ErrEmailTaken, err)
	})
}
