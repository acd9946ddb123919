package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

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
	authsvc "github.com/childguard/app/services/auth"
	authdummy "github.com/childguard/app/services/auth/dummy"
	emailsvc "github.com/childguard/app/services/email"
	enrollmentsvc "github.com/childguard/app/services/enrollment"
	logsvc "github.com/childguard/app/services/logger"
	parentauthsvc "github.com/childguard/app/services/parentauth"
	dummydb "github.com/childguard/app/storage/dummy"
	firestoredb "github.com/childguard/app/storage/firestore"
)

func main() {
	std := log.New(os.Stdout, "APP : ", log.LstdFlags|log.Lshortfile)
	conf := core.NewConfig(core.Getwd())

	var logger core.Logger
	if conf.Debug {
		logger = core.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	if err := run(conf, logger); err != nil {
		logger.Fatal("app exited", err)
	}
}

type repos struct {
	teacher    teacher.Repository
	parent     parent.Repository
	student    student.Repository
	school     school.Repository
	attendance attendance.Repository
	comment    comment.Repository
	feedback   feedback.Repository
}

// openStore picks the real document store, or the in-memory one when no
// project is configured (offline development against the devserver).
func openStore(ctx context.Context, conf *core.Config, logger core.Logger) (repos, core.AuthService, func(), error) {
	if conf.Firebase.ProjectID == "" {
		db, err := dummydb.Open()
		if err != nil {
			return repos{}, nil, nil, err
		}
		return repos{
			teacher:    dummydb.NewTeacherRepository(db),
			parent:     dummydb.NewParentRepository(db),
			student:    dummydb.NewStudentRepository(db),
			school:     dummydb.NewSchoolRepository(db),
			attendance: dummydb.NewAttendanceRepository(db),
			comment:    dummydb.NewCommentRepository(db),
			feedback:   dummydb.NewFeedbackRepository(db),
		}, authdummy.NewAuthService(conf.AppName), func() {}, nil
	}

	db, err := firestoredb.Open(ctx, conf)
	if err != nil {
		return repos{}, nil, nil, err
	}
	return repos{
		teacher:    firestoredb.NewTeacherRepository(db),
		parent:     firestoredb.NewParentRepository(db),
		student:    firestoredb.NewStudentRepository(db),
		school:     firestoredb.NewSchoolRepository(db),
		attendance: firestoredb.NewAttendanceRepository(db),
		comment:    firestoredb.NewCommentRepository(db),
		feedback:   firestoredb.NewFeedbackRepository(db),
	}, authsvc.NewFirebaseService(conf, logger), func() { _ = db.Close() }, nil
}

func run(conf *core.Config, logger core.Logger) error {
	ctx := context.Background()

	store, auth, cleanup, err := openStore(ctx, conf, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	validate, translator := core.NewValidator()

	svc := services{
		teacher:    teacher.NewService(store.teacher, auth),
		parent:     parent.NewService(store.parent, parentauthsvc.NewClient(conf), mailSvc, validate, translator),
		student:    student.NewService(store.student, enrollmentsvc.NewClient(conf), validate, translator),
		school:     school.NewService(store.school),
		attendance: attendance.NewService(store.attendance),
		comment:    comment.NewService(store.comment, store.student, validate, translator),
		feedback:   feedback.NewService(store.feedback, validate, translator),
	}

	flow := nav.NewFlow(session.New())
	coord := NewCoordinator(conf, logger, flow, svc)
	return repl(coord, logger)
}

// repl is a terminal rendition of the screen flow: it prints the mounted
// screen and reads one action per line. The real UI renders the same flow
// state; only the surface differs.
func repl(coord *Coordinator, logger core.Logger) error {
	if err := coord.Start(); err != nil {
		return err
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\n[%s] > ", coord.Flow().Current())
		if !in.Scan() {
			return in.Err()
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		alert, err := dispatch(coord, fields)
		if err == errQuit {
			return nil
		}
		if err != nil {
			logger.Error("action failed", err)
			continue
		}
		if alert != "" {
			fmt.Println("! " + alert)
		}
	}
}

func dispatch(coord *Coordinator, fields []string) (string, error) {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "teacher":
		return "", coord.ChooseTeacherLogin()
	case "parent":
		return "", coord.ChooseParentLogin()
	case "register":
		ut := session.UserTypeStudent
		if len(args) > 0 && args[0] == string(session.UserTypeParent) {
			ut = session.UserTypeParent
		}
		return "", coord.ChooseRegistration(ut)
	case "login":
		if len(args) < 2 {
			return "usage: login EMAIL PASSWORD", nil
		}
		if coord.Flow().Current() == nav.ScreenTeacherLogin {
			return coord.TeacherLogin(args[0], args[1])
		}
		return coord.ParentLogin(args[0], args[1])
	case "submit":
		return coord.SubmitRegistration()
	case "continue":
		return "", coord.ContinueToDashboard()
	case "feedback":
		if coord.Flow().Current() == nav.ScreenDashboard {
			return "", coord.OpenFeedback()
		}
		if len(args) < 2 {
			return "usage: feedback RATING MESSAGE", nil
		}
		rating, err := strconv.Atoi(args[0])
		if err != nil {
			return "rating must be a number between 1 and 5", nil
		}
		return coord.SubmitFeedback(strings.Join(args[1:], " "), rating)
	case "attendance":
		if coord.Flow().Current() == nav.ScreenDashboard {
			if err := coord.OpenAttendance(); err != nil {
				return "", err
			}
		}
		pct, alert, err := coord.AttendanceSummary()
		if alert != "" || err != nil {
			return alert, err
		}
		fmt.Printf("attendance: %d%%\n", pct)
		return "", nil
	case "classes":
		assignments, err := coord.Assignments()
		if err != nil {
			return "", err
		}
		for _, a := range assignments {
			fmt.Printf("%s (%s): %s (%s)\n", a.ClassName, a.ClassID, a.CourseName, a.CourseID)
		}
		return "", nil
	case "mark":
		if len(args) < 3 {
			return "usage: mark CLASS COURSE STUDENT=STATUS...", nil
		}
		roll := attendance.Roll{ClassID: args[0], CourseID: args[1], Marks: map[string]attendance.Status{}}
		for _, m := range args[2:] {
			parts := strings.SplitN(m, "=", 2)
			if len(parts) != 2 {
				return "usage: mark CLASS COURSE STUDENT=STATUS...", nil
			}
			roll.StudentIDs = append(roll.StudentIDs, parts[0])
			roll.Marks[parts[0]] = attendance.Status(parts[1])
		}
		return coord.MarkRoll(roll)
	case "comment":
		if _, isParent := coord.Flow().Session().Identity().(session.Parent); isParent {
			if len(args) < 4 {
				return "usage: comment TEACHER STUDENT COURSE MESSAGE", nil
			}
			nc := comment.NewComment{StudentID: args[1], CourseID: args[2], Comment: strings.Join(args[3:], " ")}
			return coord.SendComment(args[0], nc)
		}
		if len(args) < 3 {
			return "usage: comment STUDENT COURSE MESSAGE", nil
		}
		nc := comment.NewComment{StudentID: args[0], CourseID: args[1], Comment: strings.Join(args[2:], " ")}
		return coord.SendComment("", nc)
	case "inbox":
		comments, err := coord.Inbox()
		if err != nil {
			return "", err
		}
		for _, cm := range comments {
			fmt.Printf("[%s] %s: %s\n", cm.Timestamp.Format("2006-01-02 15:04"), cm.SenderID, cm.Comment)
		}
		return "", nil
	case "back":
		return "", coord.Back()
	case "logout":
		return "", coord.Logout()
	case "quit":
		return "", errQuit
	}
	return "unknown action: " + cmd, nil
}

var errQuit = fmt.Errorf("quit")
