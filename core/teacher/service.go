package teacher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/childguard/app/core"
)

type Service struct {
	repo Repository
	auth core.AuthService
}

func NewService(repo Repository, auth core.AuthService) *Service {
	return &Service{repo: repo, auth: auth}
}

// Login verifies the credentials against the auth provider AND looks up the
// teacher profile by email. Both must succeed: provider acceptance with no
// profile row fails with ErrRoleNotFound.
func (svc *Service) Login(ctx context.Context, email, password string) (Teacher, string, error) {
	email = core.CleanString(email, true /* lower */)

	usr, err := svc.auth.SignIn(ctx, email, password)
	if err != nil {
		if errors.Cause(err) == core.ErrInvalidCredentials {
			return Teacher{}, "", core.ErrInvalidCredentials
		}
		return Teacher{}, "", errors.Wrap(err, "signing in")
	}

	t, err := svc.repo.GetTeacherByEmail(ctx, email)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return Teacher{}, "", ErrRoleNotFound
		}
		return Teacher{}, "", errors.Wrap(err, "finding teacher by email")
	}
	return t, usr.Token, nil
}

func (svc *Service) Logout(ctx context.Context, token string) error {
	return svc.auth.SignOut(ctx, token)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Teacher, error) {
	return svc.repo.GetTeacherByEmail(ctx, core.CleanString(email, true /* lower */))
}

// Assignments lists the class/course pairs the teacher teaches.
func (svc *Service) Assignments(ctx context.Context, teacherID string) ([]Assignment, error) {
	return svc.repo.QueryAssignmentsByTeacher(ctx, teacherID)
}
