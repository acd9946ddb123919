package parent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/childguard/app/core"
)

type fakeRepo struct {
	parents map[string]Parent
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) CreateParent(ctx context.Context, p Parent) (Parent, error) {
	p.ID = fmt.Sprintf("p%d", len(r.parents)+1)
	r.parents[p.ID] = p
	return p, nil
}

func (r *fakeRepo) GetParent(ctx context.Context, id string) (Parent, error) {
	if p, ok := r.parents[id]; ok {
		return p, nil
	}
	return Parent{}, ErrNotFound
}

func (r *fakeRepo) QueryAllParents(ctx context.Context) ([]Parent, error) {
	out := make([]Parent, 0, len(r.parents))
	for _, p := range r.parents {
		out = append(out, p)
	}
	return out, nil
}

type fakeAuth struct {
	acc Account
	err error
}

var _ Authenticator = (*fakeAuth)(nil)

func (a *fakeAuth) Login(ctx context.Context, email, password string) (Account, error) {
	return a.acc, a.err
}

type fakeMail struct {
	sent []*core.EmailMessage
}

var _ core.EmailService = (*fakeMail)(nil)

func (m *fakeMail) SendMessages(messages ...*core.EmailMessage) {
	m.sent = append(m.sent, messages...)
}

func setup(t *testing.T) (*Service, *fakeRepo, *fakeAuth, *fakeMail) {
	t.Helper()
	validate, translator := core.NewValidator()
	repo := &fakeRepo{parents: make(map[string]Parent)}
	auth := &fakeAuth{}
	mail := &fakeMail{}
	return NewService(repo, auth, mail, validate, translator), repo, auth, mail
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		svc, repo, _, mail := setup(t)

		p, err := svc.Register(ctx, NewParent{Name: "  Ma P ", Email: "MA@Test.CD", Phone: "+243 970 000 001"})
		assert.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Ma P", p.Name)
		assert.Equal(t, "ma@test.cd", p.Email)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Contains(t, repo.parents, p.ID)

		// welcome email went out
		assert.Len(t, mail.sent, 1)
		assert.Equal(t, "ma@test.cd", mail.sent[0].To[0].Address)
	})

	t.Run("no email means no welcome message", func(t *testing.T) {
		svc, _, _, mail := setup(t)

		_, err := svc.Register(ctx, NewParent{Name: "Ma P", Phone: "+243 970 000 001"})
		assert.NoError(t, err)
		assert.Empty(t, mail.sent)
	})

	t.Run("validation", func(t *testing.T) {
		svc, repo, _, _ := setup(t)

		_, err := svc.Register(ctx, NewParent{Email: "nope"})
		var vErr *core.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{"name", "email"}, vErr.FieldNames())
		assert.Empty(t, repo.parents)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		svc, _, auth, _ := setup(t)
		auth.acc = Account{ID: "p1", Name: "Ma P", Email: "ma@test.cd", Children: []string{"s1"}, Token: "tok"}

		acc, err := svc.Login(ctx, "MA@Test.CD ", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, auth.acc, acc)
	})

	t.Run("endpoint detail travels back", func(t *testing.T) {
		svc, _, auth, _ := setup(t)
		auth.err = &LoginError{StatusCode: 401, Detail: "Account disabled, contact the school."}

		_, err := svc.Login(ctx, "ma@test.cd", "s3cret")
		var lErr *LoginError
		assert.ErrorAs(t, err, &lErr)
		assert.Equal(t, "Account disabled, contact the school.", lErr.Detail)
		assert.Equal(t, 401, lErr.StatusCode)
	})
}
