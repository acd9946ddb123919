package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_identityUnion(t *testing.T) {
	sess := New()
	assert.Equal(t, RoleNone, sess.Role())
	assert.Nil(t, sess.Identity())
	assert.Empty(t, sess.Token())

	sess.SetIdentity(Teacher{ID: "t1", Email: "t@test.cd", Name: "Mr. T"}, "tok-1")
	assert.Equal(t, RoleTeacher, sess.Role())
	assert.Equal(t, "Mr. T", sess.Identity().DisplayName())
	assert.Equal(t, "tok-1", sess.Token())

	// installing a new identity discards the previous one
	sess.SetIdentity(Parent{ID: "p1", Name: "Ma P", Children: []string{"s1"}}, "tok-2")
	assert.Equal(t, RoleParent, sess.Role())
	p, ok := sess.Identity().(Parent)
	assert.True(t, ok)
	assert.Equal(t, []string{"s1"}, p.Children)
	assert.Equal(t, "tok-2", sess.Token())

	sess.SetIdentity(Onboarding{UserID: "s9", UserType: UserTypeStudent}, "")
	assert.Equal(t, RoleOnboarding, sess.Role())
	assert.Equal(t, "student", sess.Identity().DisplayName())

	sess.Clear()
	assert.Equal(t, RoleNone, sess.Role())
	assert.Nil(t, sess.Identity())
	assert.Empty(t, sess.Token())
}

func TestRole_String(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleNone, "none"},
		{RoleTeacher, "teacher"},
		{RoleParent, "parent"},
		{RoleOnboarding, "onboarding"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.String())
	}
}
