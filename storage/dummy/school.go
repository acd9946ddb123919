package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/childguard/app/core/school"
)

type schoolRepository struct {
	db *referenceTable
}

var _ school.Repository = (*schoolRepository)(nil) // interface compliance check

func NewSchoolRepository(db *DB) *schoolRepository {
	return &schoolRepository{db: db.reference}
}

func (repo *schoolRepository) QueryAllSchools(ctx context.Context) ([]school.School, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	schools := make([]school.School, 0, len(repo.db.schools))
	for _, s := range repo.db.schools {
		schools = append(schools, *s)
	}
	return schools, nil
}

func (repo *schoolRepository) QueryAllFaculties(ctx context.Context) ([]school.Faculty, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	faculties := make([]school.Faculty, 0, len(repo.db.faculties))
	for _, f := range repo.db.faculties {
		faculties = append(faculties, *f)
	}
	return faculties, nil
}

func (repo *schoolRepository) QueryAllDepartments(ctx context.Context) ([]school.Department, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	departments := make([]school.Department, 0, len(repo.db.departments))
	for _, d := range repo.db.departments {
		departments = append(departments, *d)
	}
	return departments, nil
}

func (repo *schoolRepository) QueryAllCourses(ctx context.Context) ([]school.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]school.Course, 0, len(repo.db.courses))
	for _, c := range repo.db.courses {
		courses = append(courses, *c)
	}
	return courses, nil
}

func (repo *schoolRepository) CreateSchool(ctx context.Context, s school.School) (school.School, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	repo.db.schools[s.ID] = &s
	return s, nil
}

func (repo *schoolRepository) CreateFaculty(ctx context.Context, f school.Faculty) (school.Faculty, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	repo.db.faculties[f.ID] = &f
	return f, nil
}

func (repo *schoolRepository) CreateDepartment(ctx context.Context, d school.Department) (school.Department, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	repo.db.departments[d.ID] = &d
	return d, nil
}

func (repo *schoolRepository) CreateCourse(ctx context.Context, c school.Course) (school.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	repo.db.courses[c.ID] = &c
	return c, nil
}
