package teacher

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("teacher not found")
	// ErrRoleNotFound means the auth provider accepted the credentials but
	// no teacher profile exists for the email. It is kept distinct from a
	// credential mismatch even though the UI shows one generic message.
	ErrRoleNotFound = errors.New("user role not found")
)

type (
	Teacher struct {
		ID    string `json:"id" firestore:"-"`
		Name  string `json:"name" firestore:"name"`
		Email string `json:"email" firestore:"email"`
	}

	// Assignment joins a teacher to one class/course pair they teach.
	// Read-only reference data.
	Assignment struct {
		ID         string `json:"id" firestore:"-"`
		TeacherID  string `json:"teacherId" firestore:"teacherId"`
		ClassID    string `json:"classId" firestore:"classId"`
		ClassName  string `json:"className" firestore:"className"`
		CourseID   string `json:"courseId" firestore:"courseId"`
		CourseName string `json:"courseName" firestore:"courseName"`
	}

	Repository interface {
		CreateTeacher(ctx context.Context, t Teacher) (Teacher, error)
		GetTeacherByEmail(ctx context.Context, email string) (Teacher, error)
		QueryAssignmentsByTeacher(ctx context.Context, teacherID string) ([]Assignment, error)
	}
)
