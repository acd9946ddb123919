package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/childguard/app/core/school"
)

type schoolRepository struct {
	schools     *firestore.CollectionRef
	faculties   *firestore.CollectionRef
	departments *firestore.CollectionRef
	courses     *firestore.CollectionRef
}

var _ school.Repository = (*schoolRepository)(nil) // interface compliance check

func NewSchoolRepository(db *DB) *schoolRepository {
	return &schoolRepository{
		schools:     db.client.Collection(colSchools),
		faculties:   db.client.Collection(colFaculties),
		departments: db.client.Collection(colDepartments),
		courses:     db.client.Collection(colCourses),
	}
}

func (repo *schoolRepository) QueryAllSchools(ctx context.Context) ([]school.School, error) {
	iter := repo.schools.Documents(ctx)
	defer iter.Stop()

	schools := make([]school.School, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying schools")
		}
		var s school.School
		if err := doc.DataTo(&s); err != nil {
			return nil, errors.Wrap(err, "decoding school")
		}
		s.ID = doc.Ref.ID
		schools = append(schools, s)
	}
	return schools, nil
}

func (repo *schoolRepository) QueryAllFaculties(ctx context.Context) ([]school.Faculty, error) {
	iter := repo.faculties.Documents(ctx)
	defer iter.Stop()

	faculties := make([]school.Faculty, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying faculties")
		}
		var f school.Faculty
		if err := doc.DataTo(&f); err != nil {
			return nil, errors.Wrap(err, "decoding faculty")
		}
		f.ID = doc.Ref.ID
		faculties = append(faculties, f)
	}
	return faculties, nil
}

func (repo *schoolRepository) QueryAllDepartments(ctx context.Context) ([]school.Department, error) {
	iter := repo.departments.Documents(ctx)
	defer iter.Stop()

	departments := make([]school.Department, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying departments")
		}
		var d school.Department
		if err := doc.DataTo(&d); err != nil {
			return nil, errors.Wrap(err, "decoding department")
		}
		d.ID = doc.Ref.ID
		departments = append(departments, d)
	}
	return departments, nil
}

func (repo *schoolRepository) QueryAllCourses(ctx context.Context) ([]school.Course, error) {
	iter := repo.courses.Documents(ctx)
	defer iter.Stop()

	courses := make([]school.Course, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying courses")
		}
		var c school.Course
		if err := doc.DataTo(&c); err != nil {
			return nil, errors.Wrap(err, "decoding course")
		}
		c.ID = doc.Ref.ID
		courses = append(courses, c)
	}
	return courses, nil
}

func (repo *schoolRepository) CreateSchool(ctx context.Context, s school.School) (school.School, error) {
	ref, _, err := repo.schools.Add(ctx, s)
	if err != nil {
		return school.School{}, errors.Wrap(err, "creating school")
	}
	s.ID = ref.ID
	return s, nil
}

func (repo *schoolRepository) CreateFaculty(ctx context.Context, f school.Faculty) (school.Faculty, error) {
	ref, _, err := repo.faculties.Add(ctx, f)
	if err != nil {
		return school.Faculty{}, errors.Wrap(err, "creating faculty")
	}
	f.ID = ref.ID
	return f, nil
}

func (repo *schoolRepository) CreateDepartment(ctx context.Context, d school.Department) (school.Department, error) {
	ref, _, err := repo.departments.Add(ctx, d)
	if err != nil {
		return school.Department{}, errors.Wrap(err, "creating department")
	}
	d.ID = ref.ID
	return d, nil
}

func (repo *schoolRepository) CreateCourse(ctx context.Context, c school.Course) (school.Course, error) {
	ref, _, err := repo.courses.Add(ctx, c)
	if err != nil {
		return school.Course{}, errors.Wrap(err, "creating course")
	}
	c.ID = ref.ID
	return c, nil
}
