package main

import (
	"context"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/teacher"
)

// addTeacher creates the auth provider account and the matching teacher
// profile document. Both must exist for the teacher to sign in; an account
// with no profile is rejected at login.
func (cli *commandLine) addTeacher(email, name, pwd string) error {
	ctx := context.Background()
	email = core.CleanString(email, true /* lower */)
	name = core.CleanString(name)

	if _, err := cli.teacherRepo.GetTeacherByEmail(ctx, email); err == nil {
		return core.ErrEmailTaken
	} else if err != teacher.ErrNotFound {
		return err
	}

	if _, err := cli.auth.CreateAccount(ctx, email, pwd); err != nil && err != core.ErrEmailTaken {
		return err
	}
	if _, err := cli.teacherRepo.CreateTeacher(ctx, teacher.Teacher{Name: name, Email: email}); err != nil {
		return err
	}
	return nil
}
