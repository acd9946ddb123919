package student

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("student not found")

type (
	// Student is the document-store view of a registered student. Students
	// are created by the enrollment backend, never by this app; the app only
	// reads them.
	Student struct {
		ID           string    `json:"id" firestore:"-"`
		FirstName    string    `json:"firstName" firestore:"firstName"`
		LastName     string    `json:"lastName" firestore:"lastName"`
		Age          int       `json:"age" firestore:"age"`
		ClassID      string    `json:"class_id" firestore:"class_id"`
		ParentID     string    `json:"parent_id" firestore:"parent_id"`
		SchoolID     string    `json:"school_id" firestore:"school_id"`
		DepartmentID string    `json:"department_id" firestore:"department_id"`
		HasVoiceData bool      `json:"has_voice_data" firestore:"has_voice_data"`
		CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
	}

	Repository interface {
		GetStudent(ctx context.Context, id string) (Student, error)
		QueryStudentsByClass(ctx context.Context, classID string) ([]Student, error)
	}
)

func (s Student) FullName() string {
	if s.FirstName == "" {
		return s.LastName
	}
	return s.FirstName + " " + s.LastName
}
