package session

import "sync"

// Role determines which screen tree and data queries apply.
type Role int

const (
	RoleNone Role = iota
	RoleTeacher
	RoleParent
	RoleOnboarding
)

func (r Role) String() string {
	switch r {
	case RoleTeacher:
		return "teacher"
	case RoleParent:
		return "parent"
	case RoleOnboarding:
		return "onboarding"
	}
	return "none"
}

// UserType selects the registration path for new users.
type UserType string

const (
	UserTypeParent  UserType = "parent"
	UserTypeStudent UserType = "student"
)

type (
	// Identity is a tagged union: exactly one of Teacher, Parent or
	// Onboarding is ever held by a Session.
	Identity interface {
		Role() Role
		DisplayName() string
	}

	Teacher struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	Parent struct {
		ID       string   `json:"id"`
		Email    string   `json:"email"`
		Name     string   `json:"name"`
		Children []string `json:"children,omitempty"`
	}

	// Onboarding identifies a freshly registered user who has not logged
	// into a home tree yet.
	Onboarding struct {
		UserID   string   `json:"user_id"`
		UserType UserType `json:"user_type"`
	}
)

func (t Teacher) Role() Role          { return RoleTeacher }
func (t Teacher) DisplayName() string { return t.Name }

func (p Parent) Role() Role          { return RoleParent }
func (p Parent) DisplayName() string { return p.Name }

func (o Onboarding) Role() Role          { return RoleOnboarding }
func (o Onboarding) DisplayName() string { return string(o.UserType) }

// Session holds the single active identity and its opaque provider token.
// It is created once at startup and passed explicitly; the navigation
// coordinator is its only writer.
type Session struct {
	mu       sync.RWMutex
	identity Identity
	token    string
}

func New() *Session {
	return &Session{}
}

func (s *Session) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *Session) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return RoleNone
	}
	return s.identity.Role()
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetIdentity installs a new identity, discarding any previous one.
// At most one non-none role is ever active.
func (s *Session) SetIdentity(id Identity, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = id
	s.token = token
}

// Clear resets the session to anonymous.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.token = ""
}
