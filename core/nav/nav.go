// Package nav owns the screen router: a single state machine deciding which
// screen tree is mounted from the session role and the onboarding progress.
// Exactly one screen is mounted at any time; the home trees and the
// onboarding stack are mutually exclusive.
package nav

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/childguard/app/core/session"
)

type Screen int

const (
	ScreenSplash Screen = iota
	ScreenRoleSelection
	ScreenTeacherLogin
	ScreenTeacherHome
	ScreenParentLogin
	ScreenParentHome
	ScreenRegistration
	ScreenThankYou
	ScreenDashboard
	ScreenFeedback
	ScreenAttendance
)

var screenNames = map[Screen]string{
	ScreenSplash:        "splash",
	ScreenRoleSelection: "role-selection",
	ScreenTeacherLogin:  "teacher-login",
	ScreenTeacherHome:   "teacher-home",
	ScreenParentLogin:   "parent-login",
	ScreenParentHome:    "parent-home",
	ScreenRegistration:  "registration",
	ScreenThankYou:      "thank-you",
	ScreenDashboard:     "dashboard",
	ScreenFeedback:      "feedback",
	ScreenAttendance:    "attendance",
}

func (s Screen) String() string { return screenNames[s] }

var ErrInvalidTransition = errors.New("invalid transition")

// Flow is the navigation coordinator state. It is the sole writer of the
// Session. Every mutating method remounts: the previous screen's context is
// cancelled so in-flight responses for unmounted screens are dropped.
type Flow struct {
	mu      sync.Mutex
	session *session.Session

	splashDone   bool
	teacherLogin bool
	parentLogin  bool
	userType     session.UserType
	stack        []Screen

	screenCtx context.Context
	cancel    context.CancelFunc
}

func NewFlow(sess *session.Session) *Flow {
	f := &Flow{session: sess}
	f.screenCtx, f.cancel = context.WithCancel(context.Background())
	return f
}

func (f *Flow) Session() *session.Session { return f.session }

// Current is the total mapping from flow state to the one mounted screen.
func (f *Flow) Current() Screen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current()
}

func (f *Flow) current() Screen {
	if !f.splashDone {
		return ScreenSplash
	}
	switch f.session.Role() {
	case session.RoleTeacher:
		return ScreenTeacherHome
	case session.RoleParent:
		return ScreenParentHome
	}
	if f.teacherLogin {
		return ScreenTeacherLogin
	}
	if f.parentLogin {
		return ScreenParentLogin
	}
	if n := len(f.stack); n > 0 {
		return f.stack[n-1]
	}
	return ScreenRoleSelection
}

// Context returns the mounted screen's context. It is cancelled on the next
// transition; a data fetch outliving its screen sees the cancellation.
func (f *Flow) Context() context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.screenCtx
}

// UserType reports which registration path the onboarding stack was entered with.
func (f *Flow) UserType() session.UserType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userType
}

func (f *Flow) remount() {
	f.cancel()
	f.screenCtx, f.cancel = context.WithCancel(context.Background())
}

func (f *Flow) invalid(op string) error {
	return errors.Wrapf(ErrInvalidTransition, "%s from %s", op, f.current())
}

// FinishSplash leaves the splash screen, either after the startup delay or
// when explicitly skipped.
func (f *Flow) FinishSplash() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.splashDone {
		return f.invalid("finish splash")
	}
	f.splashDone = true
	f.remount()
	return nil
}

func (f *Flow) SelectTeacherLogin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenRoleSelection {
		return f.invalid("select teacher login")
	}
	f.teacherLogin = true
	f.remount()
	return nil
}

func (f *Flow) SelectParentLogin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenRoleSelection {
		return f.invalid("select parent login")
	}
	f.parentLogin = true
	f.remount()
	return nil
}

// SelectRegistration enters the onboarding stack. The registration screen
// owns its own draft; a fresh one is created on every entry.
func (f *Flow) SelectRegistration(ut session.UserType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenRoleSelection {
		return f.invalid("select registration")
	}
	f.userType = ut
	f.stack = []Screen{ScreenRegistration}
	f.remount()
	return nil
}

// TeacherLoggedIn installs the teacher identity. Any onboarding state is
// discarded: the home trees and the stack never coexist.
func (f *Flow) TeacherLoggedIn(t session.Teacher, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenTeacherLogin {
		return f.invalid("teacher login")
	}
	f.session.SetIdentity(t, token)
	f.teacherLogin = false
	f.stack = nil
	f.remount()
	return nil
}

func (f *Flow) ParentLoggedIn(p session.Parent, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenParentLogin {
		return f.invalid("parent login")
	}
	f.session.SetIdentity(p, token)
	f.parentLogin = false
	f.stack = nil
	f.remount()
	return nil
}

// CompleteRegistration advances past the registration screen: students move
// on to the thank-you screen with an onboarding identity, parents are taken
// to the parent login.
func (f *Flow) CompleteRegistration(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenRegistration {
		return f.invalid("complete registration")
	}
	if f.userType == session.UserTypeParent {
		f.stack = nil
		f.parentLogin = true
	} else {
		f.session.SetIdentity(session.Onboarding{UserID: userID, UserType: f.userType}, "")
		f.stack = append(f.stack, ScreenThankYou)
	}
	f.remount()
	return nil
}

func (f *Flow) ContinueToDashboard() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenThankYou {
		return f.invalid("continue to dashboard")
	}
	f.stack = append(f.stack, ScreenDashboard)
	f.remount()
	return nil
}

func (f *Flow) OpenFeedback() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenDashboard {
		return f.invalid("open feedback")
	}
	f.stack = append(f.stack, ScreenFeedback)
	f.remount()
	return nil
}

func (f *Flow) OpenAttendance() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current() != ScreenDashboard {
		return f.invalid("open attendance")
	}
	f.stack = append(f.stack, ScreenAttendance)
	f.remount()
	return nil
}

// Back cancels a login screen or pops the onboarding stack.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case f.teacherLogin:
		f.teacherLogin = false
	case f.parentLogin:
		f.parentLogin = false
	case len(f.stack) > 0:
		f.stack = f.stack[:len(f.stack)-1]
		if len(f.stack) == 0 {
			f.session.Clear()
			f.userType = ""
		}
	default:
		return f.invalid("back")
	}
	f.remount()
	return nil
}

// Logout clears the identity and every onboarding remnant; the next screen
// is always role selection.
func (f *Flow) Logout() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.current() {
	case ScreenTeacherHome, ScreenParentHome, ScreenDashboard:
	default:
		return f.invalid("logout")
	}
	f.session.Clear()
	f.teacherLogin = false
	f.parentLogin = false
	f.stack = nil
	f.userType = ""
	f.remount()
	return nil
}
