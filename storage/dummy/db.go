package dummydb

import (
	"sync"

	"github.com/childguard/app/core/attendance"
	"github.com/childguard/app/core/comment"
	"github.com/childguard/app/core/feedback"
	"github.com/childguard/app/core/parent"
	"github.com/childguard/app/core/school"
	"github.com/childguard/app/core/student"
	"github.com/childguard/app/core/teacher"
)

// DB is an in-memory document store for development and tests. Each
// collection is its own table guarded by its own lock, mirroring the fact
// that the real store has no cross-collection transactions here.
type (
	DB struct {
		students    *studentTable
		parents     *parentTable
		teachers    *teacherTable
		assignments *assignmentTable
		attendance  *attendanceTable
		comments    *commentTable
		feedback    *feedbackTable
		reference   *referenceTable
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*student.Student
	}

	parentTable struct {
		sync.RWMutex
		table map[string]*parent.Parent
	}

	teacherTable struct {
		sync.RWMutex
		table map[string]*teacher.Teacher
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*teacher.Assignment
	}

	attendanceTable struct {
		sync.RWMutex
		table map[string]*attendance.Record
	}

	commentTable struct {
		sync.RWMutex
		table map[string]*comment.Comment
	}

	feedbackTable struct {
		sync.RWMutex
		table map[string]*feedback.Feedback
	}

	referenceTable struct {
		sync.RWMutex
		schools     map[string]*school.School
		faculties   map[string]*school.Faculty
		departments map[string]*school.Department
		courses     map[string]*school.Course
	}
)

func Open() (*DB, error) {
	db := &DB{
		students:    &studentTable{table: make(map[string]*student.Student)},
		parents:     &parentTable{table: make(map[string]*parent.Parent)},
		teachers:    &teacherTable{table: make(map[string]*teacher.Teacher)},
		assignments: &assignmentTable{table: make(map[string]*teacher.Assignment)},
		attendance:  &attendanceTable{table: make(map[string]*attendance.Record)},
		comments:    &commentTable{table: make(map[string]*comment.Comment)},
		feedback:    &feedbackTable{table: make(map[string]*feedback.Feedback)},
		reference: &referenceTable{
			schools:     make(map[string]*school.School),
			faculties:   make(map[string]*school.Faculty),
			departments: make(map[string]*school.Department),
			courses:     make(map[string]*school.Course),
		},
	}
	return db, nil
}
