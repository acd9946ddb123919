package nav

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/childguard/app/core/session"
)

func newTestFlow(t *testing.T) *Flow {
	t.Helper()
	f := NewFlow(session.New())
	if err := f.FinishSplash(); err != nil {
		t.Fatalf("FinishSplash() failed: %v", err)
	}
	return f
}

func TestFlow_startsOnSplash(t *testing.T) {
	f := NewFlow(session.New())
	assert.Equal(t, ScreenSplash, f.Current())

	assert.NoError(t, f.FinishSplash())
	assert.Equal(t, ScreenRoleSelection, f.Current())

	// splash never remounts
	err := f.FinishSplash()
	assert.Equal(t, ErrInvalidTransition, errors.Cause(err))
}

func TestFlow_teacherLoginPath(t *testing.T) {
	f := newTestFlow(t)

	assert.NoError(t, f.SelectTeacherLogin())
	assert.Equal(t, ScreenTeacherLogin, f.Current())

	assert.NoError(t, f.TeacherLoggedIn(session.Teacher{ID: "t1", Name: "Mr. T"}, "tok"))
	assert.Equal(t, ScreenTeacherHome, f.Current())
	assert.Equal(t, session.RoleTeacher, f.Session().Role())
	assert.Equal(t, "tok", f.Session().Token())

	assert.NoError(t, f.Logout())
	assert.Equal(t, ScreenRoleSelection, f.Current())
	assert.Equal(t, session.RoleNone, f.Session().Role())
}

func TestFlow_parentLoginPath(t *testing.T) {
	f := newTestFlow(t)

	assert.NoError(t, f.SelectParentLogin())
	assert.Equal(t, ScreenParentLogin, f.Current())

	// back cancels the login screen
	assert.NoError(t, f.Back())
	assert.Equal(t, ScreenRoleSelection, f.Current())

	assert.NoError(t, f.SelectParentLogin())
	assert.NoError(t, f.ParentLoggedIn(session.Parent{ID: "p1", Name: "Ma P"}, "tok"))
	assert.Equal(t, ScreenParentHome, f.Current())
}

func TestFlow_studentRegistrationPath(t *testing.T) {
	f := newTestFlow(t)

	assert.NoError(t, f.SelectRegistration(session.UserTypeStudent))
	assert.Equal(t, ScreenRegistration, f.Current())
	assert.Equal(t, session.UserTypeStudent, f.UserType())

	assert.NoError(t, f.CompleteRegistration("s42"))
	assert.Equal(t, ScreenThankYou, f.Current())
	assert.Equal(t, session.RoleOnboarding, f.Session().Role())

	assert.NoError(t, f.ContinueToDashboard())
	assert.Equal(t, ScreenDashboard, f.Current())

	assert.NoError(t, f.OpenFeedback())
	assert.Equal(t, ScreenFeedback, f.Current())
	assert.NoError(t, f.Back())
	assert.Equal(t, ScreenDashboard, f.Current())

	assert.NoError(t, f.OpenAttendance())
	assert.Equal(t, ScreenAttendance, f.Current())
	assert.NoError(t, f.Back())

	// logging out from the dashboard clears everything
	assert.NoError(t, f.Logout())
	assert.Equal(t, ScreenRoleSelection, f.Current())
	assert.Equal(t, session.RoleNone, f.Session().Role())
	assert.Empty(t, f.UserType())
}

func TestFlow_parentRegistrationLeadsToLogin(t *testing.T) {
	f := newTestFlow(t)

	assert.NoError(t, f.SelectRegistration(session.UserTypeParent))
	assert.NoError(t, f.CompleteRegistration("p42"))

	// parents log in with the account the dashboard provisioned; there is
	// no onboarding identity for them
	assert.Equal(t, ScreenParentLogin, f.Current())
	assert.Equal(t, session.RoleNone, f.Session().Role())
}

func TestFlow_backUnwindsOnboarding(t *testing.T) {
	f := newTestFlow(t)

	assert.NoError(t, f.SelectRegistration(session.UserTypeStudent))
	assert.NoError(t, f.CompleteRegistration("s42"))
	assert.NoError(t, f.ContinueToDashboard())

	assert.NoError(t, f.Back())
	assert.Equal(t, ScreenThankYou, f.Current())
	assert.NoError(t, f.Back())
	assert.Equal(t, ScreenRegistration, f.Current())

	// leaving the stack entirely drops the onboarding identity
	assert.NoError(t, f.Back())
	assert.Equal(t, ScreenRoleSelection, f.Current())
	assert.Equal(t, session.RoleNone, f.Session().Role())
	assert.Empty(t, f.UserType())
}

func TestFlow_homeAndOnboardingAreExclusive(t *testing.T) {
	f := newTestFlow(t)

	assert.NoError(t, f.SelectTeacherLogin())
	assert.NoError(t, f.TeacherLoggedIn(session.Teacher{ID: "t1"}, "tok"))

	// a signed-in role owns the screen; onboarding entry points are gone
	assert.Error(t, f.SelectRegistration(session.UserTypeStudent))
	assert.Error(t, f.SelectTeacherLogin())
	assert.Error(t, f.SelectParentLogin())
	assert.Equal(t, ScreenTeacherHome, f.Current())
}

func TestFlow_invalidTransitions(t *testing.T) {
	f := newTestFlow(t)

	tests := []struct {
		name string
		op   func() error
	}{
		{"teacher login without screen", func() error { return f.TeacherLoggedIn(session.Teacher{}, "") }},
		{"parent login without screen", func() error { return f.ParentLoggedIn(session.Parent{}, "") }},
		{"complete registration without draft", func() error { return f.CompleteRegistration("x") }},
		{"continue without thank-you", func() error { return f.ContinueToDashboard() }},
		{"feedback outside dashboard", func() error { return f.OpenFeedback() }},
		{"attendance outside dashboard", func() error { return f.OpenAttendance() }},
		{"back at role selection", func() error { return f.Back() }},
		{"logout while signed out", func() error { return f.Logout() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			assert.Equal(t, ErrInvalidTransition, errors.Cause(err))
			assert.Equal(t, ScreenRoleSelection, f.Current())
		})
	}
}

func TestFlow_remountCancelsScreenContext(t *testing.T) {
	f := newTestFlow(t)

	ctx := f.Context()
	select {
	case <-ctx.Done():
		t.Fatal("mounted screen context already cancelled")
	default:
	}

	// any transition unmounts the screen; its in-flight work must be dropped
	assert.NoError(t, f.SelectTeacherLogin())
	select {
	case <-ctx.Done():
	default:
		t.Fatal("previous screen context not cancelled on transition")
	}

	next := f.Context()
	assert.NotEqual(t, ctx, next)
	select {
	case <-next.Done():
		t.Fatal("fresh screen context already cancelled")
	default:
	}
}
