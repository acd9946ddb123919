package teacher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/childguard/app/core"
)

type fakeRepo struct {
	teachers    map[string]Teacher // keyed by email
	assignments []Assignment
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) CreateTeacher(ctx context.Context, t Teacher) (Teacher, error) {
	r.teachers[t.Email] = t
	return t, nil
}

func (r *fakeRepo) GetTeacherByEmail(ctx context.Context, email string) (Teacher, error) {
	if t, ok := r.teachers[email]; ok {
		return t, nil
	}
	return Teacher{}, ErrNotFound
}

func (r *fakeRepo) QueryAssignmentsByTeacher(ctx context.Context, teacherID string) ([]Assignment, error) {
	var out []Assignment
	for _, a := range r.assignments {
		if a.TeacherID == teacherID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeAuth struct {
	usr core.AuthUser
	err error
}

var _ core.AuthService = (*fakeAuth)(nil)

func (a *fakeAuth) SignIn(ctx context.Context, email, password string) (core.AuthUser, error) {
	return a.usr, a.err
}
func (a *fakeAuth) SignOut(ctx context.Context, token string) error { return nil }
func (a *fakeAuth) CreateAccount(ctx context.Context, email, password string) (core.AuthUser, error) {
	return a.usr, a.err
}

func setup(t *testing.T) (*Service, *fakeRepo, *fakeAuth) {
	t.Helper()
	repo := &fakeRepo{teachers: make(map[string]Teacher)}
	auth := &fakeAuth{}
	return NewService(repo, auth), repo, auth
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		svc, repo, auth := setup(t)
		repo.teachers["mr.t@test.cd"] = Teacher{ID: "t1", Name: "Mr. T", Email: "mr.t@test.cd"}
		auth.usr = core.AuthUser{UID: "uid1", Email: "mr.t@test.cd", Token: "tok"}

		tch, token, err := svc.Login(ctx, " Mr.T@Test.CD ", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, "t1", tch.ID)
		assert.Equal(t, "tok", token)
	})

	t.Run("credential mismatch", func(t *testing.T) {
		svc, repo, auth := setup(t)
		repo.teachers["mr.t@test.cd"] = Teacher{ID: "t1", Email: "mr.t@test.cd"}
		auth.err = core.ErrInvalidCredentials

		_, _, err := svc.Login(ctx, "mr.t@test.cd", "wrong")
		assert.Equal(t, core.ErrInvalidCredentials, err)
	})

	t.Run("account exists but no teacher profile", func(t *testing.T) {
		svc, _, auth := setup(t)
		auth.usr = core.AuthUser{UID: "uid1", Email: "someone@test.cd", Token: "tok"}

		// provider acceptance alone is not enough
		_, _, err := svc.Login(ctx, "someone@test.cd", "s3cret")
		assert.Equal(t, ErrRoleNotFound, err)
		assert.NotEqual(t, core.ErrInvalidCredentials, err)
	})
}

func TestService_Assignments(t *testing.T) {
	svc, repo, _ := setup(t)
	repo.assignments = []Assignment{
		{ID: "a1", TeacherID: "t1", ClassID: "c1", ClassName: "P5A", CourseID: "m1", CourseName: "Algebra"},
		{ID: "a2", TeacherID: "t2", ClassID: "c2"},
	}

	got, err := svc.Assignments(context.Background(), "t1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "P5A", got[0].ClassName)
}
