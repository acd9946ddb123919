package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/childguard/app/core/teacher"
)

type teacherRepository struct {
	db          *teacherTable
	assignments *assignmentTable
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *DB) *teacherRepository {
	return &teacherRepository{db: db.teachers, assignments: db.assignments}
}

func (repo *teacherRepository) CreateTeacher(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *teacherRepository) GetTeacherByEmail(ctx context.Context, email string) (teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, t := range repo.db.table {
		if t.Email == email {
			return *t, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) QueryAssignmentsByTeacher(ctx context.Context, teacherID string) ([]teacher.Assignment, error) {
	repo.assignments.RLock()
	defer repo.assignments.RUnlock()

	assignments := make([]teacher.Assignment, 0)
	for _, a := range repo.assignments.table {
		if a.TeacherID == teacherID {
			assignments = append(assignments, *a)
		}
	}
	return assignments, nil
}

// CreateAssignment seeds a class/course assignment. Seeding helper.
func (repo *teacherRepository) CreateAssignment(ctx context.Context, a teacher.Assignment) (teacher.Assignment, error) {
	repo.assignments.Lock()
	defer repo.assignments.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	repo.assignments.table[a.ID] = &a
	return a, nil
}
