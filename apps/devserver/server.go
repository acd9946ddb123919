// Package main runs a stand-in for the two external backends the app talks
// to in production: the voice-enrollment service and the parent dashboard
// API. It exists for local development and integration tests only.
package main

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/student"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		TokenSecret    string

		// ParentAccounts maps email to password for the parent login stub.
		ParentAccounts map[string]string
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
		conf *core.Config

		mu       sync.Mutex
		enrolled []string // student ids handed out so far
	}
)

var _ Server = (*server)(nil)

func NewServer(conf *core.Config, opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
		conf: conf,
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Debug = s.conf.Debug

	s.app.GET("/", s.home)
	s.app.POST("/api/add-student", s.addStudent)
	s.app.POST("/parent-dashboard/api/parent/login", s.parentLogin)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "ChildGuard dev backends")
}

// addStudent mimics the enrollment backend: it wants the full form plus
// exactly the required number of voice samples and answers with the new
// student's id.
func (s *server) addStudent(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "expected multipart form data"})
	}

	for _, field := range []string{"firstName", "lastName", "age", "school", "faculty", "department", "parent"} {
		if v := ctx.FormValue(field); v == "" {
			return ctx.JSON(http.StatusBadRequest, echo.Map{"error": field + " is required"})
		}
	}

	var samples int
	for i := 0; i < student.RequiredSamples; i++ {
		if fhs := form.File["voice_sample_"+strconv.Itoa(i)]; len(fhs) > 0 {
			samples++
		}
	}
	if samples < student.RequiredSamples {
		return ctx.JSON(http.StatusBadRequest, echo.Map{
			"error": strconv.Itoa(student.RequiredSamples) + " voice samples are required, got " + strconv.Itoa(samples),
		})
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.enrolled = append(s.enrolled, id)
	s.mu.Unlock()
	return ctx.JSON(http.StatusCreated, echo.Map{"student_id": id})
}

// parentLogin mimics the parent dashboard API: fixed accounts, JWT on
// success, a "detail" message on failure like the real endpoint.
func (s *server) parentLogin(ctx echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}

	pwd, ok := s.opts.ParentAccounts[body.Email]
	if !ok || pwd != body.Password {
		return ctx.JSON(http.StatusUnauthorized, echo.Map{"detail": "invalid email or password"})
	}

	claims := jwt.StandardClaims{
		Subject:   body.Email,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.TokenSecret))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"id":       uuid.NewSHA1(uuid.NameSpaceOID, []byte(body.Email)).String(),
		"name":     "Dev Parent",
		"email":    body.Email,
		"children": []string{},
		"token":    token,
	})
}
