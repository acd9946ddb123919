package main

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/attendance"
	"github.com/childguard/app/core/comment"
	"github.com/childguard/app/core/feedback"
	"github.com/childguard/app/core/nav"
	"github.com/childguard/app/core/parent"
	"github.com/childguard/app/core/school"
	"github.com/childguard/app/core/session"
	"github.com/childguard/app/core/student"
	"github.com/childguard/app/core/teacher"
)

// genericLoginAlert is shown for every teacher login failure. A credential
// mismatch and a missing teacher profile stay distinct errors internally but
// are indistinguishable to the person at the screen.
const genericLoginAlert = "Invalid email or password."

type services struct {
	teacher    *teacher.Service
	parent     *parent.Service
	student    *student.Service
	school     *school.Service
	attendance *attendance.Service
	comment    *comment.Service
	feedback   *feedback.Service
}

// Coordinator is the screen event layer: it drives the navigation flow,
// calls the domain services with the mounted screen's context and converts
// errors into user-facing alerts. It owns the registration draft; a fresh
// one is created every time the registration screen mounts.
type Coordinator struct {
	conf   *core.Config
	logger core.Logger
	flow   *nav.Flow
	svc    services

	mu    sync.Mutex
	draft *student.Draft
}

func NewCoordinator(conf *core.Config, logger core.Logger, flow *nav.Flow, svc services) *Coordinator {
	return &Coordinator{conf: conf, logger: logger, flow: flow, svc: svc}
}

func (c *Coordinator) Flow() *nav.Flow { return c.flow }

// Draft is the active registration draft, nil outside the onboarding stack.
func (c *Coordinator) Draft() *student.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Start waits out the splash delay and moves to role selection.
func (c *Coordinator) Start() error {
	if !c.conf.TestMode {
		time.Sleep(c.conf.SplashDelay)
	}
	return c.flow.FinishSplash()
}

func (c *Coordinator) ChooseTeacherLogin() error { return c.flow.SelectTeacherLogin() }
func (c *Coordinator) ChooseParentLogin() error  { return c.flow.SelectParentLogin() }

func (c *Coordinator) ChooseRegistration(ut session.UserType) error {
	if err := c.flow.SelectRegistration(ut); err != nil {
		return err
	}
	c.mu.Lock()
	c.draft = student.NewDraft(ut)
	c.mu.Unlock()
	return nil
}

// TeacherLogin runs the two-stage teacher verification. Both failure modes
// alert with the same generic message; the distinction only reaches the logs.
func (c *Coordinator) TeacherLogin(email, password string) (string, error) {
	t, token, err := c.svc.teacher.Login(c.flow.Context(), email, password)
	if err != nil {
		switch errors.Cause(err) {
		case core.ErrInvalidCredentials:
			return genericLoginAlert, nil
		case teacher.ErrRoleNotFound:
			c.logger.Warn("teacher login: account exists but no teacher profile", map[string]interface{}{"email": email})
			return genericLoginAlert, nil
		}
		return "", err
	}
	if err := c.flow.TeacherLoggedIn(session.Teacher{ID: t.ID, Email: t.Email, Name: t.Name}, token); err != nil {
		return "", err
	}
	return "", nil
}

// ParentLogin authenticates against the remote endpoint; its detail message
// is surfaced verbatim.
func (c *Coordinator) ParentLogin(email, password string) (string, error) {
	acc, err := c.svc.parent.Login(c.flow.Context(), email, password)
	if err != nil {
		var loginErr *parent.LoginError
		if errors.As(err, &loginErr) {
			return loginErr.Detail, nil
		}
		return "", err
	}
	if err := c.flow.ParentLoggedIn(session.Parent{ID: acc.ID, Email: acc.Email, Name: acc.Name, Children: acc.Children}, acc.Token); err != nil {
		return "", err
	}
	return "", nil
}

func (c *Coordinator) StartRecording(rec student.Recorder) error {
	d := c.Draft()
	if d == nil {
		return errors.Wrap(nav.ErrInvalidTransition, "start recording with no draft")
	}
	return d.StartRecording(c.flow.Context(), rec)
}

func (c *Coordinator) StopRecording(rec student.Recorder) error {
	d := c.Draft()
	if d == nil {
		return errors.Wrap(nav.ErrInvalidTransition, "stop recording with no draft")
	}
	return d.StopRecording(c.flow.Context(), rec)
}

// SubmitRegistration finalizes the draft: students go through the enrollment
// backend, parents are written straight to the document store. On any alert
// the draft stays as-is for another attempt.
func (c *Coordinator) SubmitRegistration() (string, error) {
	d := c.Draft()
	if d == nil {
		return "", errors.Wrap(nav.ErrInvalidTransition, "submit registration with no draft")
	}

	var userID string
	switch d.UserType() {
	case session.UserTypeParent:
		np := parent.NewParent{
			Name:  strings.TrimSpace(d.Form.FirstName + " " + d.Form.LastName),
			Email: d.Form.Email,
			Phone: d.Form.Phone,
		}
		p, err := c.svc.parent.Register(c.flow.Context(), np)
		if err != nil {
			return alertFromErr(err)
		}
		userID = p.ID
	default:
		res, err := c.svc.student.Register(c.flow.Context(), d)
		if err != nil {
			return alertFromErr(err)
		}
		userID = res.StudentID
	}

	if err := c.flow.CompleteRegistration(userID); err != nil {
		return "", err
	}
	c.mu.Lock()
	c.draft = nil
	c.mu.Unlock()
	return "", nil
}

func (c *Coordinator) ContinueToDashboard() error { return c.flow.ContinueToDashboard() }
func (c *Coordinator) OpenFeedback() error        { return c.flow.OpenFeedback() }
func (c *Coordinator) OpenAttendance() error      { return c.flow.OpenAttendance() }

func (c *Coordinator) Back() error {
	if err := c.flow.Back(); err != nil {
		return err
	}
	c.dropDraftIfUnmounted()
	return nil
}

func (c *Coordinator) Logout() error {
	if err := c.flow.Logout(); err != nil {
		return err
	}
	c.dropDraftIfUnmounted()
	return nil
}

// dropDraftIfUnmounted discards the draft when the registration screen is no
// longer in the mounted tree. Abandoned drafts never survive.
func (c *Coordinator) dropDraftIfUnmounted() {
	switch c.flow.Current() {
	case nav.ScreenRegistration, nav.ScreenThankYou, nav.ScreenDashboard, nav.ScreenFeedback, nav.ScreenAttendance:
		return
	}
	c.mu.Lock()
	c.draft = nil
	c.mu.Unlock()
}

// SubmitFeedback stores app feedback for the signed-in or onboarding user.
func (c *Coordinator) SubmitFeedback(message string, rating int) (string, error) {
	userID, userType := c.currentUser()
	_, err := c.svc.feedback.Submit(c.flow.Context(), userID, userType, feedback.NewFeedback{Message: message, Rating: rating})
	if err != nil {
		return alertFromErr(err)
	}
	return "", c.flow.Back()
}

// AttendanceSummary computes the onboarding student's attendance rate.
func (c *Coordinator) AttendanceSummary() (int, string, error) {
	userID, _ := c.currentUser()
	records, err := c.svc.attendance.ForStudent(c.flow.Context(), userID)
	if err != nil {
		alert, aerr := alertFromErr(err)
		return 0, alert, aerr
	}
	return attendance.Percentage(records), "", nil
}

// SendComment posts a comment as the signed-in teacher or parent.
func (c *Coordinator) SendComment(receiverID string, nc comment.NewComment) (string, error) {
	id := c.flow.Session().Identity()
	var err error
	switch who := id.(type) {
	case session.Teacher:
		_, err = c.svc.comment.SendFromTeacher(c.flow.Context(), who.ID, nc)
	case session.Parent:
		_, err = c.svc.comment.SendFromParent(c.flow.Context(), who.ID, receiverID, nc)
	default:
		return "", errors.Wrap(nav.ErrInvalidTransition, "send comment while signed out")
	}
	if err != nil {
		return alertFromErr(err)
	}
	return "", nil
}

// Assignments lists the signed-in teacher's class/course pairs.
func (c *Coordinator) Assignments() ([]teacher.Assignment, error) {
	who, ok := c.flow.Session().Identity().(session.Teacher)
	if !ok {
		return nil, errors.Wrap(nav.ErrInvalidTransition, "list assignments while not a teacher")
	}
	return c.svc.teacher.Assignments(c.flow.Context(), who.ID)
}

// MarkRoll saves one day's attendance for a class the teacher teaches.
func (c *Coordinator) MarkRoll(roll attendance.Roll) (string, error) {
	if _, ok := c.flow.Session().Identity().(session.Teacher); !ok {
		return "", errors.Wrap(nav.ErrInvalidTransition, "mark attendance while not a teacher")
	}
	if err := c.svc.attendance.SaveRoll(c.flow.Context(), roll); err != nil {
		return "Saving attendance failed partway; re-mark the remaining students.", nil
	}
	return "", nil
}

// Inbox lists received comments and flips their read flag.
func (c *Coordinator) Inbox() ([]comment.Comment, error) {
	userID, _ := c.currentUser()
	comments, err := c.svc.comment.Received(c.flow.Context(), userID)
	if err != nil {
		return nil, err
	}
	for _, cm := range comments {
		if !cm.Read {
			if err := c.svc.comment.MarkRead(c.flow.Context(), cm.ID); err != nil {
				return comments, err
			}
		}
	}
	return comments, nil
}

func (c *Coordinator) currentUser() (string, session.UserType) {
	switch id := c.flow.Session().Identity().(type) {
	case session.Teacher:
		return id.ID, ""
	case session.Parent:
		return id.ID, session.UserTypeParent
	case session.Onboarding:
		return id.UserID, id.UserType
	}
	return "", ""
}

// alertFromErr renders expected failures as alerts and passes everything
// else through as a real error.
func alertFromErr(err error) (string, error) {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		lines := make([]string, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			lines = append(lines, f.Field+": "+f.Error)
		}
		return strings.Join(lines, "\n"), nil
	}
	var eErr *student.EnrollmentError
	if errors.As(err, &eErr) {
		return eErr.Detail, nil
	}
	var lErr *parent.LoginError
	if errors.As(err, &lErr) {
		return lErr.Detail, nil
	}
	switch errors.Cause(err) {
	case student.ErrSamplesRequired, student.ErrRecorderBusy, student.ErrNotRecording, comment.ErrNoParent:
		return errors.Cause(err).Error(), nil
	}
	return "", err
}
